package importer

import (
	"encoding/json"
	"io"

	"product-catalog/internal/domain"
)

// envelope matches exports that nest the catalog under a top-level "data" key.
type envelope struct {
	Data *domain.Document `json:"data"`
	domain.Document
}

// Decode reads a whole catalog document from r. Both the bare document and the
// {"data": {...}} envelope are accepted.
func Decode(r io.Reader) (domain.Document, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return domain.Document{}, &domain.DecodeError{Err: err}
	}
	if env.Data != nil {
		return *env.Data, nil
	}
	return env.Document, nil
}
