package handler

import "github.com/arminmzh/storeforge-backend/internal/store"

// ProfileRequest uses pointers so a caller can distinguish "leave
// unchanged" (absent) from "set to this value" (present, possibly empty).
type ProfileRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,min=5,max=20"`
}

func (pr *ProfileRequest) ToPatch() store.Patch {
	return store.Patch{
		Title:       pr.Title,
		PhoneNumber: pr.PhoneNumber,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
