package product

import (
	"strconv"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/category"
)

const (
	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
)

type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ColorVariant keeps the quantity as a string the way the dashboard
// submits it; writes reject anything that does not parse as an integer.
type ColorVariant struct {
	Color    string `json:"color"`
	Quantity string `json:"quantity"`
}

type Product struct {
	ID            string         `json:"id"`
	StoreID       string         `json:"storeId"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         string         `json:"price"`
	Discount      int            `json:"discount"`
	Status        string         `json:"status"`
	CategoryID    string         `json:"categoryId"`
	Properties    []Property     `json:"properties"`
	ColorVariants []ColorVariant `json:"colorVariants"`
	Image         string         `json:"image"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// TotalInventory derives the stock level as the sum of variant
// quantities. Quantities are validated on write, so an unparsable
// value here counts as zero instead of poisoning the sum.
func (p *Product) TotalInventory() int {
	var total int
	for _, variant := range p.ColorVariants {
		quantity, err := strconv.Atoi(variant.Quantity)
		if err != nil {
			continue
		}
		total += quantity
	}

	return total
}

// DiscountedPrice derives the effective price from the stored decimal
// string and the discount percentage.
func (p *Product) DiscountedPrice() float64 {
	price, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		return 0
	}

	return price * float64(100-p.Discount) / 100
}

type Patch struct {
	Name          *string
	Description   *string
	Price         *string
	Discount      *int
	Status        *string
	CategoryID    *string
	Properties    *[]Property
	ColorVariants *[]ColorVariant
	Image         *string
}

// View is the API shape of a product: the stored fields plus the
// derived numbers and the category resolved inline.
type View struct {
	Product
	TotalInventory  int                `json:"totalInventory"`
	DiscountedPrice float64            `json:"discountedPrice"`
	Category        *category.Category `json:"category,omitempty"`
}

func NewView(p Product, c *category.Category) View {
	return View{
		Product:         p,
		TotalInventory:  p.TotalInventory(),
		DiscountedPrice: p.DiscountedPrice(),
		Category:        c,
	}
}

type ProductResponse struct {
	Product View `json:"product"`
}

type ProductsResponse struct {
	Products []View `json:"products"`
}
