package domain

// AttributeDetail is the fixed, category-specific key/value bundle shown with a product.
// The variant set is closed: ClothesAttributes and TechAttributes.
type AttributeDetail interface {
	Details() map[string]any
	attributeDetail()
}

type ClothesAttributes struct {
	size  string
	color string
}

func NewClothesAttributes(size, color string) ClothesAttributes {
	return ClothesAttributes{size: size, color: color}
}

func (a ClothesAttributes) Size() string  { return a.size }
func (a ClothesAttributes) Color() string { return a.color }

func (a ClothesAttributes) Details() map[string]any {
	return map[string]any{
		"size":  a.size,
		"color": a.color,
	}
}

func (ClothesAttributes) attributeDetail() {}

type TechAttributes struct {
	brand          string
	specifications string
}

func NewTechAttributes(brand, specifications string) TechAttributes {
	return TechAttributes{brand: brand, specifications: specifications}
}

func (a TechAttributes) Brand() string          { return a.brand }
func (a TechAttributes) Specifications() string { return a.specifications }

func (a TechAttributes) Details() map[string]any {
	return map[string]any{
		"brand":          a.brand,
		"specifications": a.specifications,
	}
}

func (TechAttributes) attributeDetail() {}
