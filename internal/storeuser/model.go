package storeuser

import "time"

// StoreUser is a storefront customer of a tenant. Records are written
// by the deployed storefront; the admin panel reads and curates them.
type StoreUser struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"storeId"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Patch struct {
	Name        *string
	PhoneNumber *string
	Email       *string
}

type StoreUserResponse struct {
	StoreUser StoreUser `json:"storeUser"`
}

type StoreUsersResponse struct {
	StoreUsers []StoreUser `json:"storeUsers"`
}
