// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package schema

// RefPortfolioProjectTable represents the 'portfolio_projects' table.
type RefPortfolioProjectTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	Challenge   string
	Solution    string
	Impact      string
	Tags        string
	Thumbnail   string
	Gallery     string
	Testimonial string
	CreatedAt   string
	UpdatedAt   string
}

// RefPortfolioProject is the schema definition for portfolio_projects.
var RefPortfolioProject = RefPortfolioProjectTable{
	Table:       "portfolio_projects",
	ID:          "id",
	Title:       "title",
	Description: "description",
	Challenge:   "challenge",
	Solution:    "solution",
	Impact:      "impact",
	Tags:        "tags",
	Thumbnail:   "thumbnail",
	Gallery:     "gallery",
	Testimonial: "testimonial",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t RefPortfolioProjectTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.Challenge, t.Solution, t.Impact, t.Tags, t.Thumbnail, t.Gallery, t.Testimonial, t.CreatedAt, t.UpdatedAt}
}
