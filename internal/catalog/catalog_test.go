package catalog

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.PromptCount() == 0 {
		t.Fatal("default catalog should contain prompt cards")
	}
	if c.ResponseCount() == 0 {
		t.Fatal("default catalog should contain response cards")
	}

	// enough responses for a full table: hand size 7 times 8 players
	if c.ResponseCount() < 7*8 {
		t.Fatalf("default catalog too small for a full table: %d responses", c.ResponseCount())
	}

	card, ok := c.Get("slight-1")
	if !ok {
		t.Fatal("should be able to look up slight-1")
	}
	if card.Kind != KindPrompt {
		t.Fatalf("expected kind %s, got %s", KindPrompt, card.Kind)
	}
	if card.Text == "" {
		t.Fatal("card text should not be empty")
	}

	card, ok = c.Get("curse-1")
	if !ok {
		t.Fatal("should be able to look up curse-1")
	}
	if card.Kind != KindResponse {
		t.Fatalf("expected kind %s, got %s", KindResponse, card.Kind)
	}
}

func TestNewRejectsEmptyLists(t *testing.T) {
	if _, err := New(nil, []string{"a"}); err != ErrEmptyCatalog {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
	if _, err := New([]string{"a"}, nil); err != ErrEmptyCatalog {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestIDsAreStable(t *testing.T) {
	c1, err := New([]string{"p1", "p2"}, []string{"r1", "r2", "r3"})
	if err != nil {
		t.Fatalf("should be able to build catalog: %v", err)
	}
	c2, err := New([]string{"p1", "p2"}, []string{"r1", "r2", "r3"})
	if err != nil {
		t.Fatalf("should be able to build catalog: %v", err)
	}

	for _, id := range c1.ResponseIDs() {
		a, _ := c1.Get(id)
		b, ok := c2.Get(id)
		if !ok || a.Text != b.Text {
			t.Fatalf("id %s should map to the same card across builds", id)
		}
	}
}
