package models

import "time"

// DefaultCategory is applied when a record is created without a category.
const DefaultCategory = "other"

// Categories recognized by the UI. The category field is free text; values
// outside this list still filter and count normally.
var Categories = []string{"social", "finance", "email", "shopping", "work", "wifi", "apps", "other"}

// CredentialRecord is one stored credential entry in the vault.
type CredentialRecord struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	WebsiteURL string    `json:"website_url"`
	Category   string    `json:"category"`
	Notes      string    `json:"notes"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RecordInput is the payload for creating a record. Missing optional fields
// take their defaults; title and password are required.
type RecordInput struct {
	Title      string `json:"title"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	WebsiteURL string `json:"website_url"`
	Category   string `json:"category"`
	Notes      string `json:"notes"`
	IsFavorite bool   `json:"is_favorite"`
}

// RecordPatch is a partial update. Nil fields are left untouched on the
// stored record.
type RecordPatch struct {
	Title      *string `json:"title"`
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	WebsiteURL *string `json:"website_url"`
	Category   *string `json:"category"`
	Notes      *string `json:"notes"`
	IsFavorite *bool   `json:"is_favorite"`
}

// ListFilter narrows a vault listing. Zero values disable each predicate;
// the predicates combine with AND.
type ListFilter struct {
	Category      string // exact match; "" or "all" disables
	Search        string // case-insensitive substring over title, username, email, website_url
	FavoritesOnly bool
}
