package util

import "testing"

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b", "c"}, "b") {
		t.Error("expected Contains to find `b`")
	}

	if Contains([]string{"a", "b", "c"}, "z") {
		t.Error("expected Contains to not find `z`")
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(n int) int { return n * n })
	want := []int{1, 4, 9}

	for i, v := range want {
		if got[i] != v {
			t.Errorf("Map: expected %v, got %v", want, got)
			break
		}
	}
}

func TestAll(t *testing.T) {
	if !All([]int{2, 4, 6}, func(n int) bool { return n%2 == 0 }) {
		t.Error("expected All to report true for an all-even slice")
	}

	if All([]int{2, 3, 6}, func(n int) bool { return n%2 == 0 }) {
		t.Error("expected All to report false when one element is odd")
	}
}
