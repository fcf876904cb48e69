package cart

import (
	"encoding/json"

	"dropfit/pkg/logger"
)

// StorageKey is the fixed key the serialized line items live under for the
// lifetime of one browser session.
const StorageKey = "dropfit_cart"

// Item is one (product, size) line. Two adds sharing the key merge into a
// single line.
type Item struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Size      string `json:"size"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Cart is the checkout working state: an ordered list of line items plus the
// drawer-open flag. Every mutation is written through to the session store.
type Cart struct {
	items []Item
	open  bool
	store Store
}

// New loads a cart from the store. A missing key or malformed payload yields
// an empty cart, never an error.
func New(store Store) *Cart {
	c := &Cart{store: store}

	data, err := store.Load(StorageKey)
	if err != nil || len(data) == 0 {
		return c
	}

	if err := json.Unmarshal(data, &c.items); err != nil {
		logger.Warn("Discarding unreadable cart payload: %v", err)
		c.items = nil
	}

	return c
}

// Add merges into an existing (product, size) line or appends a new one, and
// opens the drawer either way.
func (c *Cart) Add(item Item) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for i := range c.items {
		if c.items[i].ProductID == item.ProductID && c.items[i].Size == item.Size {
			c.items[i].Quantity += item.Quantity
			c.open = true
			c.persist()
			return
		}
	}

	c.items = append(c.items, item)
	c.open = true
	c.persist()
}

// Remove deletes the matching line. No-op if absent.
func (c *Cart) Remove(productID, size string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID == productID && item.Size == size {
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	c.persist()
}

// UpdateQuantity overwrites the quantity of the matching line. A quantity of
// zero removes the line.
func (c *Cart) UpdateQuantity(productID, size string, quantity int) {
	if quantity == 0 {
		c.Remove(productID, size)
		return
	}

	for i := range c.items {
		if c.items[i].ProductID == productID && c.items[i].Size == size {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.persist()
}

// Clear empties the cart, used after a successful order placement.
func (c *Cart) Clear() {
	c.items = nil
	c.persist()
}

func (c *Cart) Open()   { c.open = true }
func (c *Cart) Close()  { c.open = false }
func (c *Cart) Toggle() { c.open = !c.open }

func (c *Cart) IsOpen() bool { return c.open }

func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// ItemCount is the sum of line quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of price times quantity across lines.
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, item := range c.items {
		subtotal += item.Price * int64(item.Quantity)
	}
	return subtotal
}

// persist writes the line items under StorageKey, or deletes the key when the
// cart is empty.
func (c *Cart) persist() {
	if c.store == nil {
		return
	}

	if len(c.items) == 0 {
		if err := c.store.Delete(StorageKey); err != nil {
			logger.Warn("Failed to clear cart storage: %v", err)
		}
		return
	}

	data, err := json.Marshal(c.items)
	if err != nil {
		logger.Warn("Failed to serialize cart: %v", err)
		return
	}

	if err := c.store.Save(StorageKey, data); err != nil {
		logger.Warn("Failed to save cart: %v", err)
	}
}
