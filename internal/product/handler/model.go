package handler

import "github.com/arminmzh/storeforge-backend/internal/product"

type PropertyRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Value string `json:"value" validate:"required,max=500"`
}

type ColorVariantRequest struct {
	Color    string `json:"color" validate:"required,max=100"`
	Quantity string `json:"quantity" validate:"required,number"`
}

type ProductRequest struct {
	Name          string                `json:"name" validate:"required,max=200"`
	Description   string                `json:"description" validate:"max=5000"`
	Price         string                `json:"price" validate:"required,number"`
	Discount      int                   `json:"discount" validate:"min=0,max=100"`
	Status        string                `json:"status" validate:"required,oneof=available unavailable"`
	CategoryID    string                `json:"categoryId" validate:"required"`
	Properties    []PropertyRequest     `json:"properties" validate:"dive"`
	ColorVariants []ColorVariantRequest `json:"colorVariants" validate:"dive"`
	Image         string                `json:"image"`
}

func (r *ProductRequest) ToDomain(storeID string) product.Product {
	properties := make([]product.Property, 0, len(r.Properties))
	for _, p := range r.Properties {
		properties = append(properties, product.Property{Name: p.Name, Value: p.Value})
	}

	variants := make([]product.ColorVariant, 0, len(r.ColorVariants))
	for _, v := range r.ColorVariants {
		variants = append(variants, product.ColorVariant{Color: v.Color, Quantity: v.Quantity})
	}

	return product.Product{
		StoreID:       storeID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Discount:      r.Discount,
		Status:        r.Status,
		CategoryID:    r.CategoryID,
		Properties:    properties,
		ColorVariants: variants,
		Image:         r.Image,
	}
}

type ProductPatchRequest struct {
	Name          *string                `json:"name" validate:"omitempty,max=200"`
	Description   *string                `json:"description" validate:"omitempty,max=5000"`
	Price         *string                `json:"price" validate:"omitempty,number"`
	Discount      *int                   `json:"discount" validate:"omitempty,min=0,max=100"`
	Status        *string                `json:"status" validate:"omitempty,oneof=available unavailable"`
	CategoryID    *string                `json:"categoryId"`
	Properties    *[]PropertyRequest     `json:"properties" validate:"omitempty,dive"`
	ColorVariants *[]ColorVariantRequest `json:"colorVariants" validate:"omitempty,dive"`
	Image         *string                `json:"image"`
}

func (r *ProductPatchRequest) ToPatch() product.Patch {
	patch := product.Patch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Discount:    r.Discount,
		Status:      r.Status,
		CategoryID:  r.CategoryID,
		Image:       r.Image,
	}

	if r.Properties != nil {
		properties := make([]product.Property, 0, len(*r.Properties))
		for _, p := range *r.Properties {
			properties = append(properties, product.Property{Name: p.Name, Value: p.Value})
		}
		patch.Properties = &properties
	}

	if r.ColorVariants != nil {
		variants := make([]product.ColorVariant, 0, len(*r.ColorVariants))
		for _, v := range *r.ColorVariants {
			variants = append(variants, product.ColorVariant{Color: v.Color, Quantity: v.Quantity})
		}
		patch.ColorVariants = &variants
	}

	return patch
}

type MessageResponse struct {
	Message string `json:"message"`
}
