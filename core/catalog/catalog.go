package catalog

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("game not found")

// Catalog is the read-only inventory offered by the store. It is built once
// at startup and never mutated afterwards.
type Catalog struct {
	used  []Game
	fresh []Game
	byID  map[string]Game
}

// New builds a catalog from the used and new listings. Game IDs must be
// unique across both lists and prices must not be negative.
func New(used, fresh []Game) (*Catalog, error) {
	c := &Catalog{
		used:  make([]Game, 0, len(used)),
		fresh: make([]Game, 0, len(fresh)),
		byID:  make(map[string]Game, len(used)+len(fresh)),
	}

	add := func(g Game, kind Kind) error {
		if g.ID == "" {
			return fmt.Errorf("game %q has no id", g.Title)
		}
		if _, ok := c.byID[g.ID]; ok {
			return fmt.Errorf("duplicate game id[%s]", g.ID)
		}
		if g.Price.IsNegative() {
			return fmt.Errorf("game[%s] has a negative price", g.ID)
		}
		if g.Cover == nil {
			return fmt.Errorf("game[%s] has no cover", g.ID)
		}

		g.Kind = kind
		c.byID[g.ID] = g
		if kind == KindUsed {
			c.used = append(c.used, g)
		} else {
			c.fresh = append(c.fresh, g)
		}
		return nil
	}

	for _, g := range used {
		if err := add(g, KindUsed); err != nil {
			return nil, err
		}
	}
	for _, g := range fresh {
		if err := add(g, KindNew); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Default returns the catalog shipped with the store.
func Default() *Catalog {
	c, err := New(usedGames, newGames)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in catalog: %v", err))
	}
	return c
}

// List returns a copy of the listing for kind.
func (c *Catalog) List(kind Kind) ([]Game, error) {
	var src []Game
	switch kind {
	case KindUsed:
		src = c.used
	case KindNew:
		src = c.fresh
	default:
		return nil, fmt.Errorf("unknown listing %q", kind)
	}

	out := make([]Game, len(src))
	copy(out, src)
	return out, nil
}

func (c *Catalog) Find(id string) (Game, error) {
	g, ok := c.byID[id]
	if !ok {
		return Game{}, fmt.Errorf("game[%s]: %w", id, ErrNotFound)
	}
	return g, nil
}
