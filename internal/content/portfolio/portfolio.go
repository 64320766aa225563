// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package portfolio manages the case-study projects shown on the marketing
// site.
//
// A project is a single document: narrative fields, a tag list, one thumbnail
// and an ordered gallery of image URLs, plus an optional client testimonial.
// Gallery and tags are replaced whole on update.
package portfolio

import "time"

// Project is one portfolio case study.
type Project struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Challenge   string       `json:"challenge,omitempty"`
	Solution    string       `json:"solution,omitempty"`
	Impact      string       `json:"impact,omitempty"`
	Tags        []string     `json:"tags"`
	Thumbnail   string       `json:"thumbnail,omitempty"`
	Gallery     []string     `json:"gallery"`
	Testimonial *Testimonial `json:"testimonial,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Testimonial is a client quote attached to a project. A testimonial without
// a quote is treated as absent.
type Testimonial struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Position string `json:"position"`
}

// Input is the payload accepted by create and update operations.
//
// The testimonial arrives as flat fields because the dashboard form submits
// it that way. ThumbnailRemoved and RemovedGalleryUrls describe blobs dropped
// while editing; they are deleted from storage before the document write.
type Input struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Challenge           string   `json:"challenge"`
	Solution            string   `json:"solution"`
	Impact              string   `json:"impact"`
	Tags                []string `json:"tags"`
	Thumbnail           string   `json:"thumbnail"`
	Gallery             []string `json:"gallery"`
	TestimonialQuote    string   `json:"testimonial_quote"`
	TestimonialAuthor   string   `json:"testimonial_author"`
	TestimonialPosition string   `json:"testimonial_position"`
	ThumbnailRemoved    bool     `json:"thumbnailRemoved,omitempty"`
	RemovedGalleryUrls  []string `json:"removedGalleryUrls,omitempty"`
}

// testimonial folds the flat form fields into a Testimonial, or nil when the
// quote is empty.
func (input Input) testimonial() *Testimonial {
	if input.TestimonialQuote == "" {
		return nil
	}
	return &Testimonial{
		Quote:    input.TestimonialQuote,
		Author:   input.TestimonialAuthor,
		Position: input.TestimonialPosition,
	}
}

// Field names for validation.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldThumbnail   = "thumbnail"
	FieldGallery     = "gallery"
)
