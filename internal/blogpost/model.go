package blogpost

import "time"

type BlogPost struct {
	ID               string    `json:"id"`
	StoreID          string    `json:"storeId"`
	Title            string    `json:"title"`
	SEOTitle         string    `json:"seoTitle"`
	ShortDescription string    `json:"shortDescription"`
	Body             string    `json:"body"`
	AuthorID         string    `json:"authorId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type Patch struct {
	Title            *string
	SEOTitle         *string
	ShortDescription *string
	Body             *string
}

type BlogPostResponse struct {
	BlogPost BlogPost `json:"blogPost"`
}

type BlogPostsResponse struct {
	BlogPosts []BlogPost `json:"blogPosts"`
}
