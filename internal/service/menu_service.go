package service

import (
	"context"
	"fmt"
	"log"

	"kitchen-pos/internal/domain"
)

type MenuGroupService struct {
	repo MenuGroupRepository
}

func NewMenuGroupService(repo MenuGroupRepository) *MenuGroupService {
	return &MenuGroupService{repo: repo}
}

func (s *MenuGroupService) Create(group *domain.MenuGroup) error {
	return s.repo.CreateMenuGroup(group)
}

func (s *MenuGroupService) List() ([]domain.MenuGroup, error) {
	return s.repo.ListMenuGroups()
}

var _ MenuGroupServiceInterface = (*MenuGroupService)(nil)

type MenuService struct {
	repo     MenuRepository
	groups   MenuGroupRepository
	products ProductRepository
	cache    MenuCache
}

func NewMenuService(repo MenuRepository, groups MenuGroupRepository, products ProductRepository, cache MenuCache) *MenuService {
	return &MenuService{
		repo:     repo,
		groups:   groups,
		products: products,
		cache:    cache,
	}
}

// Create validates the menu against its menu group and constituent
// products and persists it with the lines bound to resolved products.
// A menu may not cost more than the sum of its lines.
func (s *MenuService) Create(ctx context.Context, menu *domain.Menu) error {
	if menu.Price < 0 {
		return ErrInvalidPrice
	}

	exists, err := s.groups.MenuGroupExists(menu.MenuGroupID)
	if err != nil {
		return fmt.Errorf("failed to check menu group: %w", err)
	}
	if !exists {
		return ErrMenuGroupNotFound
	}

	if len(menu.Products) == 0 {
		return ErrNoMenuProducts
	}

	productIDs := make([]int, 0, len(menu.Products))
	for _, line := range menu.Products {
		if line.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		productIDs = append(productIDs, line.ProductID)
	}

	products, err := s.products.GetProductsByIDs(productIDs)
	if err != nil {
		return fmt.Errorf("failed to resolve products: %w", err)
	}

	var total float64
	for i, line := range menu.Products {
		product, ok := products[line.ProductID]
		if !ok {
			return ErrProductNotFound
		}
		menu.Products[i].ProductName = product.Name
		menu.Products[i].ProductPrice = product.Price
		total += product.Price * float64(line.Quantity)
	}
	if menu.Price > total {
		return ErrInvalidPrice
	}

	if err := s.repo.CreateMenu(menu); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateMenus(ctx); err != nil {
			log.Printf("Warning: failed to invalidate menu cache: %v", err)
		}
	}

	return nil
}

func (s *MenuService) List(ctx context.Context) ([]domain.Menu, error) {
	if s.cache != nil {
		if menus, ok := s.cache.GetMenus(ctx); ok {
			return menus, nil
		}
	}

	menus, err := s.repo.ListMenus()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetMenus(ctx, menus); err != nil {
			log.Printf("Warning: failed to cache menus: %v", err)
		}
	}

	return menus, nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
