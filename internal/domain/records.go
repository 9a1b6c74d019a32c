package domain

// ProductRecord is the products row written during ingestion. The ID comes from the document.
type ProductRecord struct {
	ID          int64
	Name        string
	InStock     bool
	Description string
	CategoryID  int64
	Brand       string
}

type Price struct {
	ProductID      int64
	Amount         float64
	CurrencyLabel  string
	CurrencySymbol string
}

// Attribute is a selectable product option such as "Size". It is unrelated to AttributeDetail.
type Attribute struct {
	ID        int64
	ProductID int64
	Name      string
	Type      string
}

type AttributeItem struct {
	AttributeID  int64
	DisplayValue string
	Value        string
}

type GalleryImage struct {
	ProductID int64
	URL       string
}
