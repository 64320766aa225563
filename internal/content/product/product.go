// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package product manages the catalogue shown on the marketing site.
//
// Products reference their images by public blob URL. List fields (features,
// colors, images) are replaced whole on update: callers always submit the
// complete desired value, never a patch.
package product

import "time"

// Product is a single catalogue entry.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Collection  string    `json:"collection"`
	Features    []string  `json:"features"`
	Colors      []string  `json:"colors"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Input is the payload accepted by create and update operations.
//
// RemovedImages lists blob URLs the dashboard dropped while editing; they are
// deleted from storage before the document write.
type Input struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Collection    string   `json:"collection"`
	Features      []string `json:"features"`
	Colors        []string `json:"colors"`
	Images        []string `json:"images"`
	RemovedImages []string `json:"removedImages,omitempty"`
}

// Field names for validation.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldImages      = "images"
)
