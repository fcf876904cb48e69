package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testItem(productID, size string, price int64, qty int) Item {
	return Item{
		ProductID: productID,
		Title:     "Test Tee",
		Size:      size,
		Price:     price,
		Quantity:  qty,
	}
}

func TestAddMergesSameProductAndSize(t *testing.T) {
	c := New(NewMemoryStore())

	c.Add(testItem("p1", "M", 900, 1))
	c.Add(testItem("p1", "M", 900, 2))

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, c.ItemCount())
}

func TestAddKeepsDifferentSizesSeparate(t *testing.T) {
	c := New(NewMemoryStore())

	c.Add(testItem("p1", "M", 900, 1))
	c.Add(testItem("p1", "L", 900, 1))

	assert.Len(t, c.Items(), 2)
}

func TestAddOpensDrawer(t *testing.T) {
	c := New(NewMemoryStore())
	assert.False(t, c.IsOpen())

	c.Add(testItem("p1", "M", 900, 1))
	assert.True(t, c.IsOpen())

	c.Close()
	c.Add(testItem("p1", "M", 900, 1))
	assert.True(t, c.IsOpen())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New(NewMemoryStore())

	c.Add(testItem("p1", "M", 900, 2))
	c.UpdateQuantity("p1", "M", 0)

	assert.Empty(t, c.Items())
}

func TestSubtotal(t *testing.T) {
	c := New(NewMemoryStore())

	c.Add(testItem("p1", "M", 900, 2))
	c.Add(testItem("p2", "L", 1200, 1))

	assert.Equal(t, int64(3000), c.Subtotal())
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	c := New(store)
	c.Add(testItem("p1", "M", 900, 2))

	reloaded := New(store)
	items := reloaded.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestEmptyCartDeletesStorageKey(t *testing.T) {
	store := NewMemoryStore()

	c := New(store)
	c.Add(testItem("p1", "M", 900, 1))

	data, _ := store.Load(StorageKey)
	assert.NotEmpty(t, data)

	c.Remove("p1", "M")

	data, _ = store.Load(StorageKey)
	assert.Empty(t, data)
}

func TestClearEmptiesCart(t *testing.T) {
	store := NewMemoryStore()

	c := New(store)
	c.Add(testItem("p1", "M", 900, 1))
	c.Add(testItem("p2", "L", 1200, 3))
	c.Clear()

	assert.Empty(t, c.Items())
	data, _ := store.Load(StorageKey)
	assert.Empty(t, data)
}

func TestMalformedPayloadYieldsEmptyCart(t *testing.T) {
	store := NewMemoryStore()
	store.Save(StorageKey, []byte("not json"))

	c := New(store)
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.ItemCount())
}

func TestAddNormalizesQuantity(t *testing.T) {
	c := New(NewMemoryStore())

	c.Add(testItem("p1", "M", 900, 0))

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}
