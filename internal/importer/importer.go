package importer

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"product-catalog/internal/db"
	"product-catalog/internal/domain"
	"product-catalog/internal/logging"
	categoryrepo "product-catalog/internal/repository/category"
	productrepo "product-catalog/internal/repository/product"
)

// Result counts the rows created by a load.
type Result struct {
	InsertedCategories int `json:"insertedCategories"`
	InsertedProducts   int `json:"insertedProducts"`
}

// Loader writes a catalog document into the relational store.
type Loader struct {
	db     db.TxBeginner
	logger logrus.FieldLogger
}

func NewLoader(conn db.TxBeginner, logger logrus.FieldLogger) *Loader {
	return &Loader{db: conn, logger: logging.OrDiscard(logger).WithField("component", "catalog_loader")}
}

// Load inserts categories first, then every product with its prices, attributes
// (and their items) and gallery, in document order. Each product is written in its own
// transaction; products committed before a failure are kept. Loading the same
// document twice duplicates the category rows.
func (l *Loader) Load(ctx context.Context, doc domain.Document) (Result, error) {
	var res Result

	categories := categoryrepo.NewPostgres(l.db, l.logger)
	for _, c := range doc.Categories {
		if _, err := categories.Insert(ctx, c.Name); err != nil {
			return res, fmt.Errorf("category %q: %w", c.Name, err)
		}
		res.InsertedCategories++
	}

	for _, p := range doc.Products {
		if err := l.loadProduct(ctx, p); err != nil {
			l.logger.WithError(err).WithFields(logrus.Fields{
				"product_id": p.ID,
				"inserted":   res.InsertedProducts,
			}).Error("catalog load aborted")
			return res, fmt.Errorf("product %d: %w", p.ID, err)
		}
		res.InsertedProducts++
	}

	l.logger.WithFields(logrus.Fields{
		"categories": res.InsertedCategories,
		"products":   res.InsertedProducts,
	}).Info("catalog loaded")
	return res, nil
}

func (l *Loader) loadProduct(ctx context.Context, p domain.ProductInput) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return &domain.StoreError{Op: "begin transaction", Err: err}
	}

	if err := writeProduct(ctx, productrepo.NewPostgres(tx, l.logger), p); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			l.logger.WithError(rbErr).WithField("product_id", p.ID).Warn("rollback failed")
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &domain.StoreError{Op: "commit transaction", Err: err}
	}
	return nil
}

// writeProduct issues the inserts of one product. Every child row references the
// document-provided product id; attribute items reference the attribute inserted
// just before them.
func writeProduct(ctx context.Context, w productrepo.Writer, p domain.ProductInput) error {
	if err := w.Insert(ctx, p.Record()); err != nil {
		return err
	}
	productID := p.ID

	for _, price := range p.Prices {
		err := w.InsertPrice(ctx, domain.Price{
			ProductID:      productID,
			Amount:         price.Amount,
			CurrencyLabel:  price.Currency.Label,
			CurrencySymbol: price.Currency.Symbol,
		})
		if err != nil {
			return err
		}
	}

	for _, attr := range p.Attributes {
		attributeID, err := w.InsertAttribute(ctx, domain.Attribute{
			ProductID: productID,
			Name:      attr.Name,
			Type:      attr.Type,
		})
		if err != nil {
			return err
		}
		for _, item := range attr.Items {
			err := w.InsertAttributeItem(ctx, domain.AttributeItem{
				AttributeID:  attributeID,
				DisplayValue: item.DisplayValue,
				Value:        item.Value,
			})
			if err != nil {
				return err
			}
		}
	}

	for _, url := range p.Gallery {
		if err := w.InsertGalleryImage(ctx, domain.GalleryImage{ProductID: productID, URL: url}); err != nil {
			return err
		}
	}
	return nil
}
