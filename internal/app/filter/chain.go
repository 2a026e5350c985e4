package filter

import "context"

// Chain runs admission filters in order until one rejects the song.
type Chain struct {
	filters []Filter
}

// NewChain creates an empty chain.
func NewChain() *Chain {
	return &Chain{}
}

// Add appends a filter. Filters run in the order they were added.
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Execute checks the song against every filter that covers its source.
// The first rejection wins and is tagged with the filter's name.
func (c *Chain) Execute(ctx context.Context, req SongRequest) Result {
	for _, f := range c.filters {
		if !f.AppliesTo(req.Source) {
			continue
		}
		if result := f.Check(ctx, req); !result.Accepted {
			result.Filter = f.Name()
			return result
		}
	}
	return Accept()
}

// Filters returns the filters in run order.
func (c *Chain) Filters() []Filter {
	return c.filters
}
