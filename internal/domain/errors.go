package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedCategory marks a product row whose category has no registered variant.
	ErrUnsupportedCategory = errors.New("unsupported category")
)

// StoreError is a query, prepare or execute failure reported by the store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// DecodeError reports a malformed ingestion document.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode document: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
