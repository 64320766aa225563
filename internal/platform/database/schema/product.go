// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package schema

// RefProductTable represents the 'products' table.
type RefProductTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Category    string
	Collection  string
	Features    string
	Colors      string
	Images      string
	CreatedAt   string
	UpdatedAt   string
}

// RefProduct is the schema definition for products.
var RefProduct = RefProductTable{
	Table:       "products",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Category:    "category",
	Collection:  "product_collection",
	Features:    "features",
	Colors:      "colors",
	Images:      "images",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t RefProductTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.Category, t.Collection, t.Features, t.Colors, t.Images, t.CreatedAt, t.UpdatedAt}
}
