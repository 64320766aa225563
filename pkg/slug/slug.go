// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package slug turns arbitrary Unicode strings into ASCII URL slugs.
//
// Uploaded file names become blob object keys, so they must survive URLs,
// S3 keys, and CDN caches unescaped: "Héro Visual (final).jpg" slugs to
// "hero-visual-final".
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxLen bounds slug length so object keys stay manageable even when a
// client uploads a file with an essay for a name.
const maxLen = 64

// hyphenRuns collapses consecutive hyphens left by stripped characters.
var hyphenRuns = regexp.MustCompile(`-{2,}`)

// stripMarks decomposes accented characters and drops the combining marks,
// so é becomes a plain e.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// From converts s into a lowercase ASCII slug. Accents are removed rather
// than escaped, and anything that is not a letter or digit becomes a
// hyphen. The empty string is returned when nothing survives.
func From(s string) string {
	ascii, _, err := transform.String(stripMarks, s)
	if err != nil {
		ascii = s
	}

	var b strings.Builder
	b.Grow(len(ascii))
	for _, r := range strings.ToLower(ascii) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}

	out := hyphenRuns.ReplaceAllString(b.String(), "-")
	out = strings.Trim(out, "-")
	if len(out) > maxLen {
		out = strings.TrimRight(out[:maxLen], "-")
	}
	return out
}
