package report

import "testing"

func TestAnyErrorsTracksCompileError(t *testing.T) {
	rep.m.Lock()
	rep.isErr = false
	rep.m.Unlock()

	if AnyErrors() {
		t.Fatal("expected AnyErrors to be false before any CompileError")
	}

	CompileError(Synthetic, "something went wrong")

	if !AnyErrors() {
		t.Error("expected AnyErrors to be true after CompileError")
	}
}

func TestCompileErrorAcceptsNilSpan(t *testing.T) {
	CompileError(Synthetic, "synthetic diagnostic: %d", 42)
}

func TestCompileErrorAcceptsRealSpan(t *testing.T) {
	span := &TextSpan{StartLine: 3, StartCol: 5, EndLine: 3, EndCol: 9}
	CompileError(span, "diagnostic at a real location")
}

func TestInitChangesLogLevel(t *testing.T) {
	prev := rep.logLevel
	defer Init(prev)

	Init(LogLevelSilent)
	rep.m.Lock()
	got := rep.logLevel
	rep.m.Unlock()

	if got != LogLevelSilent {
		t.Errorf("expected logLevel %d, got %d", LogLevelSilent, got)
	}
}

func TestExpectFatalCatchesFatal(t *testing.T) {
	triggered, code := ExpectFatal(func() {
		Fatal("a fatal condition")
	})

	if !triggered {
		t.Fatal("expected ExpectFatal to report that Fatal triggered")
	}
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestExpectFatalCatchesICE(t *testing.T) {
	triggered, code := ExpectFatal(func() {
		ICE("a broken invariant")
	})

	if !triggered {
		t.Fatal("expected ExpectFatal to report that ICE triggered")
	}
	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
}

func TestExpectFatalReportsFalseWhenNoExit(t *testing.T) {
	triggered, _ := ExpectFatal(func() {
		CompileError(Synthetic, "non-fatal, does not call exit")
	})

	if triggered {
		t.Error("expected ExpectFatal to report false when exit was never called")
	}
}
