package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"product-catalog/internal/db"
	"product-catalog/internal/domain"
	"product-catalog/internal/importer"
)

type ProductService interface {
	List(ctx context.Context) ([]domain.ProductDetails, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type CatalogLoader interface {
	Load(ctx context.Context, doc domain.Document) (importer.Result, error)
}

// Deps groups the services behind the routes.
type Deps struct {
	ProductSvc  ProductService
	CategorySvc CategoryService
	Loader      CatalogLoader
}

// buildRouter wires routes for the API.
func buildRouter(logger *logrus.Logger, pinger db.Pinger, deps Deps, allowedOrigins []string) (*gin.Engine, error) {
	if deps.ProductSvc == nil || deps.CategorySvc == nil || deps.Loader == nil {
		return nil, errors.New("httpserver: product service, category service and loader are required")
	}
	if logger == nil {
		return nil, errors.New("httpserver: logger is required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.New(corsConfig(allowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(pinger))

	h := &handlers{deps: deps, logger: logger.WithField("component", "http")}
	router.GET("/products", h.listProducts)
	router.GET("/categories", h.listCategories)
	router.POST("/populate", h.populate)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

type handlers struct {
	deps   Deps
	logger logrus.FieldLogger
}

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.ProductSvc.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("list products")
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.CategorySvc.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("list categories")
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

// populate loads the catalog document in the request body.
func (h *handlers) populate(c *gin.Context) {
	doc, err := importer.Decode(c.Request.Body)
	if err != nil {
		writeError(c, statusFor(err), err)
		return
	}

	res, err := h.deps.Loader.Load(c.Request.Context(), doc)
	if err != nil {
		h.logger.WithError(err).WithField("inserted_products", res.InsertedProducts).Error("populate")
		writeError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data inserted successfully!"})
}

func statusFor(err error) int {
	var decodeErr *domain.DecodeError
	if errors.As(err, &decodeErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}
