package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Kind distinguishes the two card types.
type Kind string

const (
	KindPrompt   Kind = "prompt"   // a "slight", judged against
	KindResponse Kind = "response" // a "curse", submitted by players
)

// Card is a single immutable catalog entry.
type Card struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

var ErrEmptyCatalog = errors.New("catalog must contain at least one prompt and one response card")

// Catalog is the immutable set of cards a server draws from. It is loaded
// once at startup and shared read-only across all sessions.
type Catalog struct {
	prompts   []Card
	responses []Card
	byID      map[string]Card
}

// New builds a catalog from raw prompt and response texts, assigning stable
// ids by position.
func New(promptTexts, responseTexts []string) (*Catalog, error) {
	if len(promptTexts) == 0 || len(responseTexts) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{byID: make(map[string]Card, len(promptTexts)+len(responseTexts))}
	for i, text := range promptTexts {
		card := Card{ID: fmt.Sprintf("slight-%d", i+1), Kind: KindPrompt, Text: text}
		c.prompts = append(c.prompts, card)
		c.byID[card.ID] = card
	}
	for i, text := range responseTexts {
		card := Card{ID: fmt.Sprintf("curse-%d", i+1), Kind: KindResponse, Text: text}
		c.responses = append(c.responses, card)
		c.byID[card.ID] = card
	}
	return c, nil
}

// Default returns the catalog built from the embedded card texts.
func Default() *Catalog {
	c, err := New(defaultSlights, defaultCurses)
	if err != nil {
		// the embedded lists are non-empty
		panic(err)
	}
	return c
}

type cardFile struct {
	Slights []string `json:"slights"`
	Curses  []string `json:"curses"`
}

// LoadFile reads a catalog from a JSON file of the form
// {"slights": [...], "curses": [...]}.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cards file: %w", err)
	}
	var f cardFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse cards file: %w", err)
	}
	return New(f.Slights, f.Curses)
}

// Get looks up a card by id.
func (c *Catalog) Get(id string) (Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// PromptIDs returns the ids of all prompt cards, in catalog order.
func (c *Catalog) PromptIDs() []string {
	ids := make([]string, len(c.prompts))
	for i, card := range c.prompts {
		ids[i] = card.ID
	}
	return ids
}

// ResponseIDs returns the ids of all response cards, in catalog order.
func (c *Catalog) ResponseIDs() []string {
	ids := make([]string, len(c.responses))
	for i, card := range c.responses {
		ids[i] = card.ID
	}
	return ids
}

// PromptCount returns the number of prompt cards.
func (c *Catalog) PromptCount() int { return len(c.prompts) }

// ResponseCount returns the number of response cards.
func (c *Catalog) ResponseCount() int { return len(c.responses) }
