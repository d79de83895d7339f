package award

import "github.com/warp/award-engine/pay"

// =============================================================================
// CATALOG - Immutable, explicitly-passed award lookup
// =============================================================================

// Catalog holds a fixed set of award definitions. Build it once at startup
// and pass it to whoever needs it; it is safe for concurrent readers and is
// never a mutable global.
type Catalog struct {
	awards map[string]*Definition
	order  []string
}

// NewCatalog builds a catalog from definitions. Each classification's rate
// schedule is sorted so date resolution can rely on the ordering.
func NewCatalog(defs ...*Definition) *Catalog {
	c := &Catalog{awards: make(map[string]*Definition, len(defs))}
	for _, d := range defs {
		for i := range d.Classifications {
			d.Classifications[i].SortSchedule()
		}
		if _, dup := c.awards[d.ID]; !dup {
			c.order = append(c.order, d.ID)
		}
		c.awards[d.ID] = d
	}
	return c
}

// AwardByID looks up an award definition.
func (c *Catalog) AwardByID(id string) (*Definition, bool) {
	d, ok := c.awards[id]
	return d, ok
}

// MustAward looks up an award definition, returning a typed error when absent.
func (c *Catalog) MustAward(id string) (*Definition, error) {
	d, ok := c.awards[id]
	if !ok {
		return nil, &pay.AwardNotFoundError{AwardID: id}
	}
	return d, nil
}

// Awards returns all definitions in registration order.
func (c *Catalog) Awards() []*Definition {
	out := make([]*Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.awards[id])
	}
	return out
}

// Len returns the number of awards in the catalog.
func (c *Catalog) Len() int { return len(c.awards) }
