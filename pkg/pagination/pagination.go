// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package pagination parses page/limit query parameters for list endpoints
// and builds the metadata block the dashboard renders its pagers from.
//
// All list endpoints share the same contract: 1-indexed "page", "limit"
// capped at [MaxLimit], and a meta object carrying the total row count so
// the client can compute page controls without a second request.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the page size used when the client sends none.
	DefaultLimit = 20
	// MaxLimit caps the page size a client may request.
	MaxLimit = 100
	// DefaultPage is the first page. Pages are 1-indexed.
	DefaultPage = 1
)

// Params is a sanitized page window parsed from a request.
type Params struct {
	Page  int
	Limit int
}

// Offset converts the 1-indexed page into a SQL OFFSET.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination block embedded in list response envelopes.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta derives response metadata from the request window and the total
// row count reported by the store.
func NewMeta(page, limit, total int) Meta {
	meta := Meta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = (total + limit - 1) / limit
	}
	return meta
}

// FromRequest reads "page" and "limit" from the query string. Missing,
// malformed, or out-of-range values fall back to the defaults rather than
// failing the request.
func FromRequest(r *http.Request) Params {
	params := Params{Page: DefaultPage, Limit: DefaultLimit}

	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && n >= 1 {
		params.Page = n
	}
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n >= 1 && n <= MaxLimit {
		params.Limit = n
	}

	return params
}
