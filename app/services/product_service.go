package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/app/repositories"
	"github.com/craftline/storefront/pkg/cache"
	"github.com/craftline/storefront/pkg/logger"
	"github.com/craftline/storefront/pkg/ws"
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 5 * time.Minute
)

func productCacheKey(id uint) string {
	return fmt.Sprintf("catalog:product:%d", id)
}

// ProductService manages the catalog. Reads go through the Redis cache;
// every mutation invalidates it and pushes an event to websocket
// subscribers.
type ProductService struct {
	products *repositories.ProductRepository
	hub      *ws.Hub
}

func NewProductService(products *repositories.ProductRepository, hub *ws.Hub) *ProductService {
	return &ProductService{products: products, hub: hub}
}

// ProductInput is the payload for catalog creation and full updates.
type ProductInput struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Image             string  `json:"image"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	Quantity          int     `json:"quantity"`
	InternalReference string  `json:"internal_reference"`
	ShellID           int     `json:"shell_id"`
	InventoryStatus   string  `json:"inventory_status"`
	Rating            float64 `json:"rating"`
}

// ProductPatch is the payload for partial updates. Absent fields keep
// their current value.
type ProductPatch struct {
	Code              *string  `json:"code"`
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Image             *string  `json:"image"`
	Category          *string  `json:"category"`
	Price             *float64 `json:"price"`
	Quantity          *int     `json:"quantity"`
	InternalReference *string  `json:"internal_reference"`
	ShellID           *int     `json:"shell_id"`
	InventoryStatus   *string  `json:"inventory_status"`
	Rating            *float64 `json:"rating"`
}

// List returns the full catalog, served from cache when warm.
func (s *ProductService) List() ([]models.Product, error) {
	var cached []models.Product
	if cache.Get(catalogCacheKey, &cached) {
		return cached, nil
	}

	products, err := s.products.List()
	if err != nil {
		return nil, err
	}

	if err := cache.Set(catalogCacheKey, products, catalogCacheTTL); err != nil {
		logger.Warn("catalog cache set failed", "error", err)
	}
	return products, nil
}

// Find returns one product or ErrProductNotFound.
func (s *ProductService) Find(id uint) (models.Product, error) {
	var cached models.Product
	if cache.Get(productCacheKey(id), &cached) {
		return cached, nil
	}

	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}

	if err := cache.Set(productCacheKey(id), product, catalogCacheTTL); err != nil {
		logger.Warn("catalog cache set failed", "error", err)
	}
	return product, nil
}

// Create validates and stores a new product.
func (s *ProductService) Create(in ProductInput) (models.Product, error) {
	product := models.Product{
		Code:              strings.TrimSpace(in.Code),
		Name:              strings.TrimSpace(in.Name),
		Description:       in.Description,
		Image:             in.Image,
		Category:          in.Category,
		Price:             in.Price,
		Quantity:          in.Quantity,
		InternalReference: in.InternalReference,
		ShellID:           in.ShellID,
		InventoryStatus:   models.InventoryStatus(in.InventoryStatus),
		Rating:            in.Rating,
	}

	if errs := validateProduct(&product); len(errs) > 0 {
		return models.Product{}, ValidationErrors(errs)
	}

	if err := s.products.Create(&product); err != nil {
		return models.Product{}, err
	}

	s.invalidate()
	s.publish("product.created", product)
	logger.Info("product created", "product_id", product.ID, "name", product.Name)
	return product, nil
}

// Update applies a partial patch to an existing product.
func (s *ProductService) Update(id uint, patch ProductPatch) (models.Product, error) {
	product, err := s.Find(id)
	if err != nil {
		return models.Product{}, err
	}

	applyPatch(&product, patch)

	if errs := validateProduct(&product); len(errs) > 0 {
		return models.Product{}, ValidationErrors(errs)
	}

	if err := s.products.Save(&product); err != nil {
		return models.Product{}, err
	}

	s.invalidate(id)
	s.publish("product.updated", product)
	return product, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(id uint) error {
	if err := s.products.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	s.invalidate(id)
	s.publish("product.deleted", map[string]uint{"id": id})
	logger.Info("product deleted", "product_id", id)
	return nil
}

func (s *ProductService) invalidate(ids ...uint) {
	keys := []string{catalogCacheKey}
	for _, id := range ids {
		keys = append(keys, productCacheKey(id))
	}
	if err := cache.Del(keys...); err != nil {
		logger.Warn("catalog cache invalidation failed", "error", err)
	}
}

func (s *ProductService) publish(event string, payload interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(ws.Event{Type: event, Payload: payload})
}

func applyPatch(p *models.Product, patch ProductPatch) {
	if patch.Code != nil {
		p.Code = strings.TrimSpace(*patch.Code)
	}
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.InternalReference != nil {
		p.InternalReference = *patch.InternalReference
	}
	if patch.ShellID != nil {
		p.ShellID = *patch.ShellID
	}
	if patch.InventoryStatus != nil {
		p.InventoryStatus = models.InventoryStatus(*patch.InventoryStatus)
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
}

// validateProduct enforces catalog model constraints. An empty
// inventory status defaults to INSTOCK.
func validateProduct(p *models.Product) map[string]string {
	errs := map[string]string{}

	if p.Name == "" {
		errs["name"] = "The name field is required."
	}
	if len(p.Name) > 255 {
		errs["name"] = "The name must not exceed 255 characters."
	}
	if p.Price < 0 {
		errs["price"] = "The price must be greater than or equal to 0."
	}
	if p.Quantity < 0 {
		errs["quantity"] = "The quantity must be greater than or equal to 0."
	}
	if p.Rating < 0 || p.Rating > 5 {
		errs["rating"] = "The rating must be between 0 and 5."
	}

	if p.InventoryStatus == "" {
		p.InventoryStatus = models.InStock
	} else if !p.InventoryStatus.Valid() {
		errs["inventory_status"] = fmt.Sprintf(
			"The inventory_status must be one of %s, %s or %s.",
			models.InStock, models.LowStock, models.OutOfStock,
		)
	}

	return errs
}
