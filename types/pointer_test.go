package types

import (
	"testing"

	"github.com/ravelang/ravec/report"
)

func TestVoidPointerElementIsChar(t *testing.T) {
	p := &Pointer{Instance: TheVoid}

	if got := p.GetElementType(); got != CharType {
		t.Errorf("expected void* element type to be the canonical CharType, got %#v", got)
	}
}

func TestConstVoidPointerElementIsChar(t *testing.T) {
	p := &Pointer{Instance: &Const{Instance: TheVoid}}

	if got := p.GetElementType(); got != CharType {
		t.Errorf("expected const void* element type to be the canonical CharType, got %#v", got)
	}
}

func TestPointerElementStripsConst(t *testing.T) {
	p := &Pointer{Instance: &Const{Instance: IntType}}

	if got := p.GetElementType(); got != IntType {
		t.Errorf("expected const int* element type to be the canonical IntType, got %#v", got)
	}
}

func TestArraySizeRequiresConstantCount(t *testing.T) {
	a := &Array{Count: nil, Element: IntType}

	triggered, _ := report.ExpectFatal(func() {
		a.Size()
	})

	if !triggered {
		t.Error("expected Array.Size with no constant count to report a fatal error")
	}
}

func TestArraySize(t *testing.T) {
	a := &Array{Count: intNode{5}, Element: IntType}

	if got := a.Size(); got != 160 {
		t.Errorf("expected [5]int to be 160 bits, got %d", got)
	}
}

// intNode is a minimal types.Node/IntegerValuer stand-in, local to this test
// file for the same reason fieldStub/structDeclStub are local to
// struct_test.go.
type intNode struct{ v int64 }

func (n intNode) Comptime() Node       { return n }
func (n intNode) IntegerValue() int64  { return n.v }

func TestCopyIsStructurallyIndependent(t *testing.T) {
	original := &Pointer{Instance: &Array{Count: intNode{3}, Element: IntType}}
	clone := original.Copy().(*Pointer)

	clonedArr := clone.Instance.(*Array)
	clonedArr.Element = LongType

	origArr := original.Instance.(*Array)
	if origArr.Element != IntType {
		t.Error("mutating the clone's element type must not affect the original")
	}
}
