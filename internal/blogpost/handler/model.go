package handler

import "github.com/arminmzh/storeforge-backend/internal/blogpost"

type BlogPostRequest struct {
	Title            string `json:"title" validate:"required,max=300"`
	SEOTitle         string `json:"seoTitle" validate:"max=300"`
	ShortDescription string `json:"shortDescription" validate:"max=1000"`
	Body             string `json:"body" validate:"required"`
}

func (r *BlogPostRequest) ToDomain(storeID, authorID string) blogpost.BlogPost {
	return blogpost.BlogPost{
		StoreID:          storeID,
		Title:            r.Title,
		SEOTitle:         r.SEOTitle,
		ShortDescription: r.ShortDescription,
		Body:             r.Body,
		AuthorID:         authorID,
	}
}

type BlogPostPatchRequest struct {
	Title            *string `json:"title" validate:"omitempty,max=300"`
	SEOTitle         *string `json:"seoTitle" validate:"omitempty,max=300"`
	ShortDescription *string `json:"shortDescription" validate:"omitempty,max=1000"`
	Body             *string `json:"body"`
}

func (r *BlogPostPatchRequest) ToPatch() blogpost.Patch {
	return blogpost.Patch{
		Title:            r.Title,
		SEOTitle:         r.SEOTitle,
		ShortDescription: r.ShortDescription,
		Body:             r.Body,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
