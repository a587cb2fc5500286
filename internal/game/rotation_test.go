package game

import "testing"

func allConnected(string) bool { return true }

func TestRotationIsCircular(t *testing.T) {
	r := NewRotation([]string{"a", "b", "c"})

	order := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		id, err := r.Next(allConnected)
		if err != nil {
			t.Fatalf("should be able to advance: %v", err)
		}
		order = append(order, id)
	}

	want := []string{"a", "b", "c", "a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestRotationSkipsDisconnected(t *testing.T) {
	r := NewRotation([]string{"a", "b", "c"})
	down := map[string]bool{"b": true}
	connected := func(id string) bool { return !down[id] }

	if id, _ := r.Next(connected); id != "a" {
		t.Fatalf("expected a, got %s", id)
	}
	if id, _ := r.Next(connected); id != "c" {
		t.Fatalf("expected b to be skipped, got %s", id)
	}

	// b comes back and is eligible again from the next evaluation
	delete(down, "b")
	if id, _ := r.Next(connected); id != "a" {
		t.Fatalf("expected a, got %s", id)
	}
	if id, _ := r.Next(connected); id != "b" {
		t.Fatalf("expected b after reconnect, got %s", id)
	}
}

func TestRotationFailsWhenNobodyConnected(t *testing.T) {
	r := NewRotation([]string{"a", "b"})
	nobody := func(string) bool { return false }

	if _, err := r.Next(nobody); err != ErrNoEligibleJudge {
		t.Fatalf("expected ErrNoEligibleJudge, got %v", err)
	}
}

func TestRotationEmptySeating(t *testing.T) {
	r := NewRotation(nil)
	if _, err := r.Next(allConnected); err != ErrNoEligibleJudge {
		t.Fatalf("expected ErrNoEligibleJudge, got %v", err)
	}
}
