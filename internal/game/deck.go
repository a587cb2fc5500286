package game

import (
	"math/rand"

	"slights/internal/catalog"
)

// Deck is the per-session draw state over the shared immutable catalog. It
// keeps two pools of undrawn card ids plus a discard set of response cards
// already played. A response card id is always in exactly one of: the
// response pool, the discard set, or some player's hand.
type Deck struct {
	catalog   *catalog.Catalog
	prompts   []string          // undrawn prompt ids
	responses []string          // undrawn response ids
	discard   []string          // played response ids, eligible for reshuffle
	held      map[string]string // response card id -> holding player id
}

// NewDeck builds a deck with freshly shuffled pools.
func NewDeck(c *catalog.Catalog) *Deck {
	d := &Deck{
		catalog: c,
		held:    make(map[string]string),
	}
	d.prompts = shuffled(c.PromptIDs())
	d.responses = shuffled(c.ResponseIDs())
	return d
}

func shuffled(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// DrawPrompt pops one prompt card. When the prompt pool runs dry it is
// rebuilt from the full prompt catalog, so prompts may repeat late in a
// long session.
func (d *Deck) DrawPrompt() string {
	if len(d.prompts) == 0 {
		d.prompts = shuffled(d.catalog.PromptIDs())
	}
	id := d.prompts[0]
	d.prompts = d.prompts[1:]
	return id
}

// Draw removes n response cards from the pool and assigns them to the given
// player. The discard set is reshuffled into the pool first if the pool is
// short. Fails with ErrDeckExhausted only when the catalog itself cannot
// supply enough unique cards.
func (d *Deck) Draw(playerID string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	if len(d.responses) < n {
		d.refillResponses()
	}
	if len(d.responses) < n {
		return nil, ErrDeckExhausted
	}
	drawn := d.responses[:n]
	d.responses = d.responses[n:]
	out := make([]string, n)
	copy(out, drawn)
	for _, id := range out {
		d.held[id] = playerID
	}
	return out, nil
}

// Discard returns a played response card to the eligible-for-reshuffle set.
func (d *Deck) Discard(cardID string) {
	delete(d.held, cardID)
	d.discard = append(d.discard, cardID)
}

// Holder returns the player currently holding a dealt response card.
func (d *Deck) Holder(cardID string) (string, bool) {
	playerID, ok := d.held[cardID]
	return playerID, ok
}

// HeldCount returns the number of response cards currently dealt out.
func (d *Deck) HeldCount() int {
	return len(d.held)
}

// refillResponses shuffles the discard set back into the response pool.
// Every response card not in a hand lives in either the pool or the discard
// set, so this is equivalent to refilling from the catalog minus held cards.
func (d *Deck) refillResponses() {
	if len(d.discard) == 0 {
		return
	}
	d.responses = append(d.responses, d.discard...)
	d.discard = nil
	rand.Shuffle(len(d.responses), func(i, j int) {
		d.responses[i], d.responses[j] = d.responses[j], d.responses[i]
	})
}
