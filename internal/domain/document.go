package domain

// Document is the nested catalog export consumed by the importer.
type Document struct {
	Categories []CategoryInput `json:"categories"`
	Products   []ProductInput  `json:"products"`
}

type CategoryInput struct {
	Name string `json:"name"`
}

type ProductInput struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	InStock     bool             `json:"inStock"`
	Description string           `json:"description"`
	Category    int64            `json:"category"`
	Brand       string           `json:"brand"`
	Prices      []PriceInput     `json:"prices"`
	Attributes  []AttributeInput `json:"attributes"`
	Gallery     []string         `json:"gallery"`
}

type PriceInput struct {
	Amount   float64       `json:"amount"`
	Currency CurrencyInput `json:"currency"`
}

type CurrencyInput struct {
	Label  string `json:"label"`
	Symbol string `json:"symbol"`
}

type AttributeInput struct {
	Name  string               `json:"name"`
	Type  string               `json:"type"`
	Items []AttributeItemInput `json:"items"`
}

type AttributeItemInput struct {
	DisplayValue string `json:"displayValue"`
	Value        string `json:"value"`
}

// Record converts the input into the products row, keeping the document id.
func (p ProductInput) Record() ProductRecord {
	return ProductRecord{
		ID:          p.ID,
		Name:        p.Name,
		InStock:     p.InStock,
		Description: p.Description,
		CategoryID:  p.Category,
		Brand:       p.Brand,
	}
}
