package handler

import "github.com/arminmzh/storeforge-backend/internal/storeuser"

type StoreUserPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,min=5,max=20"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

func (r *StoreUserPatchRequest) ToPatch() storeuser.Patch {
	return storeuser.Patch{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
