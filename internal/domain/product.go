package domain

// CategoryID is the store identifier of a category. The read side dispatches on it.
type CategoryID int64

const (
	CategoryClothes CategoryID = 2
	CategoryTech    CategoryID = 3
)

// Product is a catalog entry with a category-specific attribute payload.
// Variants are ClothesProduct and TechProduct; both are immutable once built.
type Product interface {
	Info() ProductInfo
	Attributes() map[string]any
	product()
}

// ProductInfo holds the fields shared by every variant. Category is the category name.
type ProductInfo struct {
	ID          int64
	Name        string
	Description string
	Category    string
}

// ProductDetails is the external representation of a product, identical in shape for every variant.
type ProductDetails struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Attributes  map[string]any `json:"attributes"`
}

// Details renders any Product variant.
func Details(p Product) ProductDetails {
	info := p.Info()
	return ProductDetails{
		ID:          info.ID,
		Name:        info.Name,
		Description: info.Description,
		Category:    info.Category,
		Attributes:  p.Attributes(),
	}
}

type ClothesProduct struct {
	info  ProductInfo
	attrs ClothesAttributes
}

func NewClothesProduct(info ProductInfo, attrs ClothesAttributes) ClothesProduct {
	return ClothesProduct{info: info, attrs: attrs}
}

func (p ClothesProduct) Info() ProductInfo                  { return p.info }
func (p ClothesProduct) AttributeDetail() ClothesAttributes { return p.attrs }
func (p ClothesProduct) Attributes() map[string]any         { return p.attrs.Details() }
func (ClothesProduct) product()                             {}

type TechProduct struct {
	info  ProductInfo
	attrs TechAttributes
}

func NewTechProduct(info ProductInfo, attrs TechAttributes) TechProduct {
	return TechProduct{info: info, attrs: attrs}
}

func (p TechProduct) Info() ProductInfo               { return p.info }
func (p TechProduct) AttributeDetail() TechAttributes { return p.attrs }
func (p TechProduct) Attributes() map[string]any      { return p.attrs.Details() }
func (TechProduct) product()                          {}

// ProductRow is the flat projection of a product joined with its category name.
type ProductRow struct {
	ID           int64
	Name         string
	Description  string
	CategoryID   CategoryID
	CategoryName string
}

// Info returns the shared product fields carried by the row.
func (r ProductRow) Info() ProductInfo {
	return ProductInfo{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.CategoryName,
	}
}
