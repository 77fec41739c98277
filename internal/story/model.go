package story

import "time"

// Story is a flat per-tenant list item: a title and an image shown on
// the storefront, no hierarchy.
type Story struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Patch struct {
	Title *string
	Image *string
}

type StoryResponse struct {
	Story Story `json:"story"`
}

type StoriesResponse struct {
	Stories []Story `json:"stories"`
}
