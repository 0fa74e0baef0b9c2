package store

import (
	"net/url"

	"github.com/ytayachi/magasin-api/models"
)

var productFilters = map[string]string{
	"reference": "reference",
	"name":      "name",
	"category":  "category",
}

func (s *Store) CreateProduct(product *models.Product) error {
	return s.db.Create(product).Error
}

func (s *Store) Products(params url.Values) ([]models.Product, error) {
	var products []models.Product
	query := applyFilter(s.db, productFilters, params)
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) ProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) ProductByRef(reference string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("reference = ?", reference).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) SaveProduct(product *models.Product) error {
	return s.db.Save(product).Error
}

func (s *Store) DeleteProduct(id uint) error {
	return s.db.Delete(&models.Product{}, id).Error
}
