package category

import "time"

// Category is a node in the per-tenant category tree. The tree is held
// as a children id list on each node; membership changes only through
// the attach/detach endpoints so the server can keep the graph acyclic.
type Category struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Name      string    `json:"name"`
	Children  []string  `json:"children"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsLeaf reports whether the category can be assigned to products.
func (c *Category) IsLeaf() bool {
	return len(c.Children) == 0
}

type Patch struct {
	Name *string
}

type CategoryResponse struct {
	Category Category `json:"category"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}
