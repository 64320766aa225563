// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package heromedia manages the rotating media items on the marketing site's
// hero section.
//
// Hero media is append-and-delete only: there is no update operation. The
// dashboard replaces an item by deleting it and creating a new one, which
// keeps the blob lifecycle trivial (every blob belongs to exactly one item
// for its whole life).
package heromedia

import "time"

// Media types.
const (
	TypeImage = "image"
	TypeVideo = "video"
)

// MediaItem is one entry in the hero rotation.
//
// Src is the primary asset URL. For videos, Poster is the still shown before
// playback, WebmSrc an alternative encoding and LowResSrc a reduced variant
// for slow connections. All of them may be managed blob URLs or external.
type MediaItem struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Src       string    `json:"src"`
	Alt       string    `json:"alt,omitempty"`
	Poster    string    `json:"poster,omitempty"`
	Preload   bool      `json:"preload,omitempty"`
	WebmSrc   string    `json:"webmSrc,omitempty"`
	LowResSrc string    `json:"lowResSrc,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Input is the payload accepted by the create operation.
type Input struct {
	Type      string `json:"type"`
	Src       string `json:"src"`
	Alt       string `json:"alt"`
	Poster    string `json:"poster"`
	Preload   bool   `json:"preload"`
	WebmSrc   string `json:"webmSrc"`
	LowResSrc string `json:"lowResSrc"`
}

// assetURLs returns every URL the item references, for blob cleanup.
func (m *MediaItem) assetURLs() []string {
	urls := make([]string, 0, 4)
	for _, u := range []string{m.Src, m.Poster, m.WebmSrc, m.LowResSrc} {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// Field names for validation.
const (
	FieldType = "type"
	FieldSrc  = "src"
)
