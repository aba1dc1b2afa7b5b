package repositories

import (
	"gorm.io/gorm"

	"github.com/craftline/storefront/app/models"
)

// ProductRepository wraps catalog persistence.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns the full catalog ordered by creation time.
func (r *ProductRepository) List() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("id ASC").Find(&products).Error
	return products, err
}

// ListByCategory returns products in the given category.
func (r *ProductRepository) ListByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("category = ?", category).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	return product, err
}

func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepository) Save(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes a product. Returns gorm.ErrRecordNotFound when no row
// was deleted.
func (r *ProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProductRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
