// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package company manages the singleton company profile shown on the
// marketing site.
//
// The profile is one document split into three independently editable
// sections: basic contact fields, social links, and the team roster. The
// dashboard always submits one whole section at a time; list sections are
// replaced verbatim, never merged.
package company

import "time"

// Section selects which part of the profile an update targets.
type Section string

const (
	SectionBasic  Section = "basic"
	SectionSocial Section = "social"
	SectionTeam   Section = "team"
)

// ParseSection maps the wire value to a Section. ok is false for anything
// outside the three known sections.
func ParseSection(raw string) (Section, bool) {
	switch Section(raw) {
	case SectionBasic, SectionSocial, SectionTeam:
		return Section(raw), true
	}
	return "", false
}

// Info is the complete company profile document.
type Info struct {
	Name        string       `json:"name"`
	Tagline     string       `json:"tagline,omitempty"`
	Description string       `json:"description,omitempty"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Address     string       `json:"address,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks"`
	TeamMembers []TeamMember `json:"teamMembers"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// BasicInfo carries the contact fields of the profile.
type BasicInfo struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// SocialLink is one outbound profile link.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// TeamMember is one entry in the team roster. Image is a blob or external URL.
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image,omitempty"`
}

// Field names for validation.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPlatform = "platform"
	FieldURL      = "url"
	FieldRole     = "role"
	FieldImage    = "image"
)
