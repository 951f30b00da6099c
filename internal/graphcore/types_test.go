package graphcore

import "testing"

func TestIDSet_InsertionOrderAndDedup(t *testing.T) {
	s := NewIDSet()
	s.Add("b")
	s.Add("a")
	s.Add("b")
	want := []string{"b", "a"}
	got := s.Slice()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("at %d expected %s, got %s", i, want[i], got[i])
		}
	}
	if s.Len() != 2 {
		t.Errorf("expected len 2, got %d", s.Len())
	}
	if !s.Has("a") || s.Has("c") {
		t.Errorf("membership check failed")
	}
}

func TestIDSet_Difference(t *testing.T) {
	a := NewIDSet()
	a.Add("x")
	a.Add("y")
	a.Add("z")
	b := NewIDSet()
	b.Add("y")

	diff := a.Difference(b)
	got := diff.Slice()
	want := []string{"x", "z"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}
}
