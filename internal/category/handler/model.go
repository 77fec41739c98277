package handler

import "github.com/arminmzh/storeforge-backend/internal/category"

type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type CategoryPatchRequest struct {
	Name *string `json:"name" validate:"omitempty,max=200"`
}

func (r *CategoryPatchRequest) ToPatch() category.Patch {
	return category.Patch{
		Name: r.Name,
	}
}

type AttachChildRequest struct {
	ChildID string `json:"childId" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
