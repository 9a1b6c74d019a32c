package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog/internal/domain"
)

func TestDecode_BareDocument(t *testing.T) {
	doc, err := Decode(strings.NewReader(phoneDocument))
	require.NoError(t, err)

	require.Len(t, doc.Categories, 1)
	assert.Equal(t, "Tech", doc.Categories[0].Name)
	require.Len(t, doc.Products, 1)

	p := doc.Products[0]
	assert.Equal(t, int64(1), p.ID)
	assert.True(t, p.InStock)
	assert.Equal(t, int64(3), p.Category)
	assert.Equal(t, []domain.PriceInput{{Amount: 100, Currency: domain.CurrencyInput{Label: "USD", Symbol: "$"}}}, p.Prices)
	assert.Equal(t, []domain.AttributeItemInput{{DisplayValue: "64GB", Value: "64"}}, p.Attributes[0].Items)
	assert.Equal(t, []string{"img1.png"}, p.Gallery)
}

func TestDecode_DataEnvelope(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"data": {"categories": [{"name": "all"}, {"name": "clothes"}], "products": []}}`))
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryInput{{Name: "all"}, {Name: "clothes"}}, doc.Categories)
	assert.Empty(t, doc.Products)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"categories": [`))
	var decodeErr *domain.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecode_WrongFieldType(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"products": [{"id": "not-a-number"}]}`))
	var decodeErr *domain.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
