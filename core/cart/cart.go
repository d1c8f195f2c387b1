package cart

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/passandplay/gamestore/core/catalog"
	"github.com/shopspring/decimal"
)

// Item is a cart line: a game and how many copies of it are wanted.
// Quantity is always at least 1 while the item is in a cart.
type Item struct {
	catalog.Game
	Quantity int `json:"quantity"`
}

func (it Item) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Cart holds the line items of one session in insertion order, with at
// most one item per game ID.
//
// A Cart is not safe for concurrent use. The zero value is an empty cart.
type Cart struct {
	items []Item
}

func (c *Cart) index(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Add puts one more copy of g in the cart. A game already in the cart keeps
// its position.
func (c *Cart) Add(g catalog.Game) {
	if i := c.index(g.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, Item{Game: g, Quantity: 1})
}

func (c *Cart) Remove(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Decrease takes one copy out. The last copy removes the item.
func (c *Cart) Decrease(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	if c.items[i].Quantity > 1 {
		c.items[i].Quantity--
		return
	}
	c.Remove(id)
}

func (c *Cart) Increase(id string) {
	if i := c.index(id); i >= 0 {
		c.items[i].Quantity++
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Total is the sum of price times quantity over all items.
func (c *Cart) Total() decimal.Decimal {
	tot := decimal.Zero
	for _, it := range c.items {
		tot = tot.Add(it.LineTotal())
	}
	return tot
}

// Count is the number of copies in the cart, not the number of lines.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) Empty() bool { return len(c.items) == 0 }

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c Cart) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(c.items); err != nil {
		return nil, fmt.Errorf("encoding cart items: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Cart) GobDecode(b []byte) error {
	var items []Item
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&items); err != nil {
		return fmt.Errorf("decoding cart items: %w", err)
	}
	c.items = items
	return nil
}
