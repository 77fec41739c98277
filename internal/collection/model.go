package collection

import (
	"time"

	"github.com/arminmzh/storeforge-backend/internal/product"
)

// Collection is a curated set of product references shown together on
// the storefront.
type Collection struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"storeId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ProductIDs  []string  `json:"productIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Patch struct {
	Name        *string
	Description *string
	ProductIDs  *[]string
}

// View resolves the referenced products inline for single-item reads.
type View struct {
	Collection
	Products []product.View `json:"products"`
}

type CollectionResponse struct {
	Collection View `json:"collection"`
}

type CollectionsResponse struct {
	Collections []Collection `json:"collections"`
}
