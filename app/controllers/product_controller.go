package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/craftline/storefront/app/services"
	"github.com/craftline/storefront/pkg/response"
	"github.com/craftline/storefront/pkg/storage"
)

// maxImageBytes caps product image uploads at 8 MB.
const maxImageBytes = 8 << 20

// ProductController serves the catalog endpoints. Reads are public;
// mutation routes are mounted behind the admin role check.
type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// Index handles GET /api/products.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.List()
	if err != nil {
		serverError(w, r, err)
		return
	}
	response.Success(w, products)
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Product not found")
		return
	}

	product, err := c.products.Find(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		serverError(w, r, err)
		return
	}

	response.Success(w, product)
}

// Store handles POST /api/products.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := c.products.Create(in)
	if err != nil {
		var verrs services.ValidationErrors
		if errors.As(err, &verrs) {
			response.UnprocessableErrors(w, verrs)
			return
		}
		serverError(w, r, err)
		return
	}

	response.Created(w, product)
}

// Update handles PATCH /api/products/{id}.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Product not found")
		return
	}

	var patch services.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := c.products.Update(id, patch)
	if err != nil {
		var verrs services.ValidationErrors
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			response.NotFound(w, "Product not found")
		case errors.As(err, &verrs):
			response.UnprocessableErrors(w, verrs)
		default:
			serverError(w, r, err)
		}
		return
	}

	response.Success(w, product)
}

// Destroy handles DELETE /api/products/{id}.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Product not found")
		return
	}

	if err := c.products.Delete(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		serverError(w, r, err)
		return
	}

	response.Message(w, "Product deleted", nil)
}

// UploadImage handles POST /api/products/{id}/image. The multipart
// "image" file is written to the storage disk and its public URL saved
// on the product.
func (c *ProductController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Product not found")
		return
	}

	if _, err := c.products.Find(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		serverError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		response.Unprocessable(w, "Unsupported image type")
		return
	}

	disk := storage.Default()
	path := fmt.Sprintf("products/%d/%d%s", id, time.Now().UnixNano(), ext)
	if err := disk.Put(path, file); err != nil {
		serverError(w, r, err)
		return
	}

	url := disk.URL(path)
	product, err := c.products.Update(id, services.ProductPatch{Image: &url})
	if err != nil {
		serverError(w, r, err)
		return
	}

	response.Success(w, product)
}
