package handler

import "github.com/arminmzh/storeforge-backend/internal/story"

type StoryRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Image string `json:"image" validate:"required"`
}

type StoryPatchRequest struct {
	Title *string `json:"title" validate:"omitempty,max=200"`
	Image *string `json:"image"`
}

func (r *StoryPatchRequest) ToPatch() story.Patch {
	return story.Patch{
		Title: r.Title,
		Image: r.Image,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
