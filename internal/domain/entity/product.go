package entity

import (
	"time"
)

// Collection is the closed set of product lines in the shop.
type Collection string

const (
	CollectionAnime   Collection = "anime"
	CollectionSeries  Collection = "series"
	CollectionMinimal Collection = "minimal"
)

func (c Collection) Valid() bool {
	switch c {
	case CollectionAnime, CollectionSeries, CollectionMinimal:
		return true
	}
	return false
}

type Product struct {
	ID          string     `json:"id" firestore:"id"`
	Title       string     `json:"title" firestore:"title"`
	Description string     `json:"description" firestore:"description"`
	Price       int64      `json:"price" firestore:"price"`
	Collection  Collection `json:"collection" firestore:"collection"`
	Images      []string   `json:"images" firestore:"images"`
	Sizes       []string   `json:"sizes" firestore:"sizes"`
	Stock       int        `json:"stock" firestore:"stock"`
	IsDrop      bool       `json:"is_drop" firestore:"isDrop"`
	DropID      string     `json:"drop_id,omitempty" firestore:"dropId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// StockStatus labels a stock level for the storefront badge.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in-stock"
	StockStatusLowStock   StockStatus = "low-stock"
	StockStatusOutOfStock StockStatus = "out-of-stock"
)

const lowStockThreshold = 5

func (p *Product) StockStatus() StockStatus {
	if p.Stock == 0 {
		return StockStatusOutOfStock
	}
	if p.Stock <= lowStockThreshold {
		return StockStatusLowStock
	}
	return StockStatusInStock
}
