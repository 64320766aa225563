// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package schema

// RefHeroMediaTable represents the 'hero_media' table.
type RefHeroMediaTable struct {
	Table     string
	ID        string
	Type      string
	Src       string
	Alt       string
	Poster    string
	Preload   string
	WebmSrc   string
	LowResSrc string
	CreatedAt string
}

// RefHeroMedia is the schema definition for hero_media.
var RefHeroMedia = RefHeroMediaTable{
	Table:     "hero_media",
	ID:        "id",
	Type:      "media_type",
	Src:       "src",
	Alt:       "alt",
	Poster:    "poster",
	Preload:   "preload",
	WebmSrc:   "webm_src",
	LowResSrc: "low_res_src",
	CreatedAt: "created_at",
}

func (t RefHeroMediaTable) Columns() []string {
	return []string{t.ID, t.Type, t.Src, t.Alt, t.Poster, t.Preload, t.WebmSrc, t.LowResSrc, t.CreatedAt}
}
