package service

import (
	"fmt"
	"strings"

	"kitchen-pos/internal/domain"
)

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(product *domain.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return ErrInvalidName
	}
	if product.Price < 0 {
		return ErrInvalidPrice
	}

	exists, err := s.repo.ProductNameExists(product.Name)
	if err != nil {
		return fmt.Errorf("failed to check product name: %w", err)
	}
	if exists {
		return ErrDuplicateName
	}

	return s.repo.CreateProduct(product)
}

func (s *ProductService) List() ([]domain.Product, error) {
	return s.repo.ListProducts()
}

var _ ProductServiceInterface = (*ProductService)(nil)
