package store

import (
	"net/url"

	"github.com/ytayachi/magasin-api/models"
)

var reclamationFilters = map[string]string{
	"status":         "status",
	"order_id":       "order_id",
	"customer_fb_id": "customer_fb_id",
}

func (s *Store) CreateReclamation(reclamation *models.Reclamation) error {
	return s.db.Create(reclamation).Error
}

func (s *Store) Reclamations(params url.Values) ([]models.Reclamation, error) {
	var reclamations []models.Reclamation
	query := applyFilter(s.db, reclamationFilters, params)
	if err := query.Find(&reclamations).Error; err != nil {
		return nil, err
	}
	return reclamations, nil
}

func (s *Store) ReclamationByID(id uint) (*models.Reclamation, error) {
	var reclamation models.Reclamation
	if err := s.db.First(&reclamation, id).Error; err != nil {
		return nil, err
	}
	return &reclamation, nil
}

func (s *Store) SaveReclamation(reclamation *models.Reclamation) error {
	return s.db.Save(reclamation).Error
}

func (s *Store) DeleteReclamation(id uint) error {
	return s.db.Delete(&models.Reclamation{}, id).Error
}
