package cart

import (
	"strconv"
	"strings"

	"github.com/wichananm65/restaurant-shop-backend/internal/menu"
)

// Line is one (item, quantity) pair in the cart.
type Line struct {
	Item     menu.Item `json:"item"`
	Quantity int       `json:"quantity"`
}

// Subtotal returns the line price, recomputed on every call.
func (l Line) Subtotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// Cart aggregates lines keyed by menu item id. It is the sole mutation entry
// point for its lines, and all totals are derived from current state rather
// than cached. Iteration order is insertion order so the UI renders a stable
// list.
//
// A Cart has exactly one logical owner (the session) and is not safe for
// concurrent use on its own; the session store serializes access.
type Cart struct {
	lines map[int]*Line
	order []int
}

func New() *Cart {
	return &Cart{lines: make(map[int]*Line)}
}

// AddItem puts qty units of the item into the cart, merging with an existing
// line for the same id. qty is expected to be positive; a new line is inserted
// with the given quantity verbatim (only UpdateQuantity validates).
func (c *Cart) AddItem(item menu.Item, qty int) {
	if line, ok := c.lines[item.ID]; ok {
		line.Quantity += qty
		return
	}
	c.lines[item.ID] = &Line{Item: item, Quantity: qty}
	c.order = append(c.order, item.ID)
}

// RemoveItem deletes the line and reports whether a removal occurred.
func (c *Cart) RemoveItem(id int) bool {
	if _, ok := c.lines[id]; !ok {
		return false
	}
	delete(c.lines, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// UpdateQuantity sets the quantity on an existing line. A quantity of zero or
// below removes the line instead; this is the single entry point enforcing the
// quantity >= 1 invariant.
func (c *Cart) UpdateQuantity(id, qty int) bool {
	if qty <= 0 {
		return c.RemoveItem(id)
	}
	line, ok := c.lines[id]
	if !ok {
		return false
	}
	line.Quantity = qty
	return true
}

// IncrementItem bumps the line quantity by one. Absent ids are ignored.
func (c *Cart) IncrementItem(id int) {
	if line, ok := c.lines[id]; ok {
		c.UpdateQuantity(id, line.Quantity+1)
	}
}

// DecrementItem lowers the line quantity by one; reaching zero removes the
// line. Absent ids are ignored.
func (c *Cart) DecrementItem(id int) {
	if line, ok := c.lines[id]; ok {
		c.UpdateQuantity(id, line.Quantity-1)
	}
}

func (c *Cart) Clear() {
	c.lines = make(map[int]*Line)
	c.order = nil
}

// Total sums unit price times quantity across all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// ItemCount sums quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a snapshot of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// OrderDescription joins "<name> x<qty>" for every line with ", ". An empty
// cart yields the empty string.
func (c *Cart) OrderDescription() string {
	parts := make([]string, 0, len(c.order))
	for _, id := range c.order {
		line := c.lines[id]
		parts = append(parts, line.Item.Name+" x"+strconv.Itoa(line.Quantity))
	}
	return strings.Join(parts, ", ")
}
