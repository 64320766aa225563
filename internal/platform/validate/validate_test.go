// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinehq/vitrine/internal/platform/apperr"
	"github.com/vitrinehq/vitrine/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Vitrine", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_URL checks that media source URLs must be absolute http(s).
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"https_url", "https://cdn.example.com/assets/hero.jpg", true},
		{"http_url", "http://example.com/a.png", true},
		{"relative_path", "/assets/hero.jpg", false},
		{"missing_scheme", "cdn.example.com/hero.jpg", false},
		{"ftp_scheme", "ftp://example.com/hero.jpg", false},
		{"empty", "", false},
		{"garbage", "ht tp://bad url", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("src", tt.value)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_OptionalURL verifies that empty optional URLs pass untouched.
*/
func TestValidator_OptionalURL(t *testing.T) {
	v := &validate.Validator{}
	v.OptionalURL("poster", "")
	assert.False(t, v.HasErrors())

	v.OptionalURL("poster", "not-a-url")
	assert.True(t, v.HasErrors())
}

/*
TestValidator_OneOf checks set membership validation (media types, sections).
*/
func TestValidator_OneOf(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"image", "image", true},
		{"video", "video", true},
		{"audio", "audio", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.OneOf("type", tt.value, "image", "video")

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("name", "Atlas Chair").
		MinLen("name", "Atlas Chair", 3).
		MaxLen("name", "Atlas Chair", 120).
		URL("thumbnail", "https://cdn.example.com/p/atlas.jpg").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").          // Fails
		MinLen("description", "a", 5). // Fails
		URL("thumbnail", "nope").      // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
