package services

import (
	"bagatelle/internal/domain"
	"bagatelle/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) Search(f domain.Filter) ([]domain.Product, error) {
	return s.Prods.Search(f)
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

// DeleteProduct checks existence first so a missing id surfaces as not-found
// rather than a generic failure.
func (s *CatalogService) DeleteProduct(id string) error {
	if _, err := s.Prods.Get(id); err != nil {
		return err
	}
	return s.Prods.Delete(id)
}

func (s *CatalogService) ListAll() ([]domain.Product, error) {
	return s.Prods.ListAll()
}
