package tokenizer

import "sync"

// Cached remembers the output for the most recent line so callers that
// re-render on every playback tick only tokenize when the line changes.
type Cached struct {
	tok *Tokenizer

	mu    sync.Mutex
	valid bool
	text  string
	items []Item
	hits  int
}

func NewCached(tok *Tokenizer) *Cached {
	return &Cached{tok: tok}
}

// TokenizeLine returns the same items as the wrapped tokenizer. The returned
// items, element records included, are copies and may be modified by the
// caller.
func (c *Cached) TokenizeLine(text string) []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.text == text {
		c.hits++
	} else {
		c.items = c.tok.TokenizeLine(text)
		c.text = text
		c.valid = true
	}
	return cloneItems(c.items)
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		if it.Element != nil {
			e := *it.Element
			it.Element = &e
		}
		out[i] = it
	}
	return out
}

// Hits returns how many calls were served from the cache.
func (c *Cached) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}
