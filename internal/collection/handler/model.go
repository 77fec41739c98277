package handler

import "github.com/arminmzh/storeforge-backend/internal/collection"

type CollectionRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	ProductIDs  []string `json:"productIds"`
}

func (r *CollectionRequest) ToDomain(storeID string) collection.Collection {
	productIDs := r.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}

	return collection.Collection{
		StoreID:     storeID,
		Name:        r.Name,
		Description: r.Description,
		ProductIDs:  productIDs,
	}
}

type CollectionPatchRequest struct {
	Name        *string   `json:"name" validate:"omitempty,max=200"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	ProductIDs  *[]string `json:"productIds"`
}

func (r *CollectionPatchRequest) ToPatch() collection.Patch {
	return collection.Patch{
		Name:        r.Name,
		Description: r.Description,
		ProductIDs:  r.ProductIDs,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
