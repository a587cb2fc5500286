package game

import (
	"testing"

	"slights/internal/catalog"
)

func testCatalog(t *testing.T, prompts, responses int) *catalog.Catalog {
	t.Helper()
	p := make([]string, prompts)
	for i := range p {
		p[i] = "prompt text"
	}
	r := make([]string, responses)
	for i := range r {
		r[i] = "response text"
	}
	c, err := catalog.New(p, r)
	if err != nil {
		t.Fatalf("should be able to build catalog: %v", err)
	}
	return c
}

func TestDrawAssignsUniqueCards(t *testing.T) {
	d := NewDeck(catalog.Default())

	seen := make(map[string]bool)
	for _, player := range []string{"p1", "p2", "p3"} {
		cards, err := d.Draw(player, 7)
		if err != nil {
			t.Fatalf("should be able to draw: %v", err)
		}
		if len(cards) != 7 {
			t.Fatalf("expected 7 cards, got %d", len(cards))
		}
		for _, id := range cards {
			if seen[id] {
				t.Fatalf("card %s dealt twice", id)
			}
			seen[id] = true
			holder, ok := d.Holder(id)
			if !ok || holder != player {
				t.Fatalf("card %s should be held by %s", id, player)
			}
		}
	}
	if d.HeldCount() != 21 {
		t.Fatalf("expected 21 held cards, got %d", d.HeldCount())
	}
}

func TestDiscardedCardsAreReshuffled(t *testing.T) {
	d := NewDeck(testCatalog(t, 1, 10))

	cards, err := d.Draw("p1", 10)
	if err != nil {
		t.Fatalf("should be able to draw the whole pool: %v", err)
	}

	// pool is empty now, drawing must fail
	if _, err := d.Draw("p2", 1); err != ErrDeckExhausted {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}

	// returning cards makes them drawable again
	d.Discard(cards[0])
	d.Discard(cards[1])
	redrawn, err := d.Draw("p2", 2)
	if err != nil {
		t.Fatalf("should be able to draw after discard: %v", err)
	}
	if len(redrawn) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(redrawn))
	}
	for _, id := range redrawn {
		if holder, _ := d.Holder(id); holder != "p2" {
			t.Fatalf("redrawn card %s should be held by p2", id)
		}
	}
}

func TestDrawPromptRefillsFromCatalog(t *testing.T) {
	d := NewDeck(testCatalog(t, 2, 5))

	// more draws than the catalog has prompts; repeats are accepted
	for i := 0; i < 7; i++ {
		if id := d.DrawPrompt(); id == "" {
			t.Fatalf("draw %d should yield a prompt", i)
		}
	}
}
