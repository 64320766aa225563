// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitrinehq/vitrine/pkg/slug"
)

func TestFrom(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hero-banner", "hero-banner"},
		{"accents_stripped", "Héro Visual (final)", "hero-visual-final"},
		{"punctuation_collapsed", "a__b!!c", "a-b-c"},
		{"edges_trimmed", "--team photo--", "team-photo"},
		{"uppercase", "PRODUCT Shot 01", "product-shot-01"},
		{"nothing_survives", "(((!!!)))", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.From(tc.in))
		})
	}
}

func TestFrom_CapsLength(t *testing.T) {
	out := slug.From(strings.Repeat("portfolio ", 30))

	assert.LessOrEqual(t, len(out), 64)
	assert.False(t, strings.HasSuffix(out, "-"))
}
