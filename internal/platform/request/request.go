// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package requestutil extracts data from incoming HTTP requests: route
// parameters, JSON bodies, and the content-type sniffing the dual-format
// dashboard endpoints rely on.
package requestutil

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vitrinehq/vitrine/internal/platform/validate"
)

// DecodeJSON decodes the request body into target. A malformed body maps
// to validate.ErrInvalidJSON so handlers return the standard 400 envelope.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// ID returns the named chi route parameter.
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// IsJSON reports whether the request carries a JSON body. The legacy
// dashboard submits either application/json or multipart form data to the
// same endpoint, so handlers inspect the content type before parsing.
func IsJSON(request *http.Request) bool {
	return strings.Contains(request.Header.Get("Content-Type"), "application/json")
}
