// Package models defines the data structures used throughout the application
package models

import (
	"fmt"
)

// ModSummary represents a single row of the site's search results
type ModSummary struct {
	ID          int    `json:"id"`          // Numeric project id from the result link
	Slug        string `json:"slug"`        // URL path segment identifying the project
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Summary text, whitespace-trimmed
	Author      string `json:"author"`      // Owner display name
}

// String returns the label shown when choosing a mod
func (m ModSummary) String() string {
	return fmt.Sprintf("%s by %s (%d)", m.Name, m.Author, m.ID)
}
