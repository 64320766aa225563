// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package schema centralizes table and column identifiers for the document
// store so that repository queries never embed raw string literals.
package schema

// RefCompanyInfoTable represents the 'company_info' singleton table.
type RefCompanyInfoTable struct {
	Table       string
	ID          string
	Name        string
	Tagline     string
	Description string
	Email       string
	Phone       string
	Address     string
	SocialLinks string
	TeamMembers string
	CreatedAt   string
	UpdatedAt   string
}

// RefCompanyInfo is the schema definition for company_info.
var RefCompanyInfo = RefCompanyInfoTable{
	Table:       "company_info",
	ID:          "id",
	Name:        "name",
	Tagline:     "tagline",
	Description: "description",
	Email:       "email",
	Phone:       "phone",
	Address:     "address",
	SocialLinks: "social_links",
	TeamMembers: "team_members",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t RefCompanyInfoTable) Columns() []string {
	return []string{t.ID, t.Name, t.Tagline, t.Description, t.Email, t.Phone, t.Address, t.SocialLinks, t.TeamMembers, t.CreatedAt, t.UpdatedAt}
}
