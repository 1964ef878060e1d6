package models

import "time"

type Product struct {
	ID             string
	Name           string
	Description    string
	Category       string
	Price          *float64
	ImageURL       *string
	Images         []string
	Features       []string
	Ingredients    string
	Specifications map[string]string
	StockQuantity  int
	InStock        bool
	Featured       bool
	IsActive       bool
	CreatedBy      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProductUpdate carries a partial product mutation. Nil fields are left
// untouched by the repository.
type ProductUpdate struct {
	Name           *string
	Description    *string
	Category       *string
	Price          *float64
	ImageURL       *string
	Images         []string
	Features       []string
	Ingredients    *string
	Specifications map[string]string
	StockQuantity  *int
	InStock        *bool
	Featured       *bool
	IsActive       *bool
}

// Empty reports whether the update would touch no columns.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Category == nil &&
		u.Price == nil && u.ImageURL == nil && u.Images == nil &&
		u.Features == nil && u.Ingredients == nil && u.Specifications == nil &&
		u.StockQuantity == nil && u.InStock == nil && u.Featured == nil &&
		u.IsActive == nil
}

// ProductFilter narrows a catalog listing. Zero-value fields are ignored;
// all set fields are combined with AND.
type ProductFilter struct {
	Category string
	Featured *bool
	InStock  *bool
	Search   string
	MinPrice *float64
	MaxPrice *float64
}

type Category struct {
	ID       string
	Name     string
	IsActive bool
}
