package csvutil

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID    string `csv:"order_id"`
	Items string `csv:"items"`
	Total int64  `csv:"total"`
}

func TestMarshalWritesHeaderAndQuotes(t *testing.T) {
	data, err := Marshal([]row{
		{ID: "o1", Items: `Akira Tee (M) x1; Hoodie "Black" x2`, Total: 2300},
		{ID: "o2", Items: "Plain, simple", Total: 900},
	})

	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "order_id,items,total", lines[0])
	assert.Contains(t, lines[1], `"Akira Tee (M) x1; Hoodie ""Black"" x2"`)
	assert.Contains(t, lines[2], `"Plain, simple"`)
}

func TestMarshalEmptySlice(t *testing.T) {
	data, err := Marshal([]row{})

	assert.NoError(t, err)
	assert.Equal(t, "order_id,items,total", strings.TrimSpace(string(data)))
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 29, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, "orders_2026-08-29.csv", Filename("orders", now))
	assert.Equal(t, "users_2026-08-29.csv", Filename("users", now))
}
