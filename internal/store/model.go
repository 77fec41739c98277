package store

import "time"

// Store is the tenant/owner record: the platform conflates the store
// and its owner's credentials into a single document, created once at
// signup.
type Store struct {
	ID           string    `json:"id"`
	StoreID      string    `json:"storeId"`
	Title        string    `json:"title"`
	PhoneNumber  string    `json:"phoneNumber"`
	PasswordHash []byte    `json:"-"`
	RepoURL      string    `json:"repoUrl"`
	DeployURL    string    `json:"deployUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Patch carries an explicit partial update: nil means "leave the field
// untouched", a non-nil pointer overwrites even with an empty value.
type Patch struct {
	Title       *string
	PhoneNumber *string
}

type StoreResponse struct {
	Store Store `json:"store"`
}
