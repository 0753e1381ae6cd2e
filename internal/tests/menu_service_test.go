package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/mocks"
	"kitchen-pos/internal/service"
)

func TestMenuService_Create(t *testing.T) {
	friedChicken := domain.Product{ID: 1, Name: "Fried Chicken", Price: 19000}

	tests := []struct {
		name          string
		menu          *domain.Menu
		prepareMocks  func(repo *mocks.MenuRepository, groups *mocks.MenuGroupRepository, products *mocks.ProductRepository, cache *mocks.MenuCache)
		expectedError error
	}{
		{
			name: "success",
			menu: &domain.Menu{
				Name:        "Two Fried Chickens",
				Price:       37000,
				MenuGroupID: 1,
				Products:    []domain.MenuProduct{{ProductID: 1, Quantity: 2}},
			},
			prepareMocks: func(repo *mocks.MenuRepository, groups *mocks.MenuGroupRepository, products *mocks.ProductRepository, cache *mocks.MenuCache) {
				groups.On("MenuGroupExists", 1).Return(true, nil).Once()
				products.On("GetProductsByIDs", []int{1}).Return(map[int]domain.Product{1: friedChicken}, nil).Once()
				repo.On("CreateMenu", mock.Anything).Return(nil).Once()
				cache.On("InvalidateMenus", mock.Anything).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "negative_price",
			menu: &domain.Menu{
				Name:        "Two Fried Chickens",
				Price:       -1000,
				MenuGroupID: 1,
				Products:    []domain.MenuProduct{{ProductID: 1, Quantity: 2}},
			},
			prepareMocks: func(repo *mocks.MenuRepository, groups *mocks.MenuGroupRepository, products *mocks.ProductRepository, cache *mocks.MenuCache) {
			},
			expectedError: service.ErrInvalidPrice,
		},
		{
			name: "unknown_menu_group",
			menu: &domain.Menu{
				Name:        "Two Fried Chickens",
				Price:       37000,
				MenuGroupID: 42,
				Products:    []domain.MenuProduct{{ProductID: 1, Quantity: 2}},
			},
			prepareMocks: func(repo *mocks.MenuRepository, groups *mocks.MenuGroupRepository, products *mocks.ProductRepository, cache *mocks.MenuCache) {
				groups.On("MenuGroupExists", 42).Return(false, nil).Once()
			},
			expectedError: service.ErrMenuGroupNotFound,
		},
		{
			name: "no_menu_products",
			menu: &domain.Menu{
				Name:        "Empty Set",
				Price:       0,
				MenuGroupID: 1,
			},
			prepareMocks: func(repo *mocks.MenuRepository, groups *mocks.MenuGroupRepository, products *mocks.ProductRepository, cache *mocks.MenuCache) {
				groups.On("MenuGroupExists", 1).Return(true, nil).Once()
			},
			expectedError: service.ErrNoMenuProducts,
		},
		{
			name: "zero_quantity",
			menu: &domain.Menu{
				Name:        "Two Fried Chickens",
				Price:       37000,
				MenuGroupID: 1,
				Products:    []domain.MenuProduct{{ProductID: 1, Quantity: 0}},
			},
			prepareMocks: func(repo *mocks.MenuRepository, groups *mocks.MenuGroupRepository, products *mocks.ProductRepository, cache *mocks.MenuCache) {
				groups.On("MenuGroupExists", 1).Return(true, nil).Once()
			},
			expectedError: service.ErrInvalidQuantity,
		},
		{
			name: "unknown_product",
			menu: &domain.Menu{
				Name:        "Two Fried Chickens",
				Price:       37000,
				MenuGroupID: 1,
				Products:    []domain.MenuProduct{{ProductID: 99, Quantity: 2}},
			},
			prepareMocks: func(repo *mocks.MenuRepository, groups *mocks.MenuGroupRepository, products *mocks.ProductRepository, cache *mocks.MenuCache) {
				groups.On("MenuGroupExists", 1).Return(true, nil).Once()
				products.On("GetProductsByIDs", []int{99}).Return(map[int]domain.Product{}, nil).Once()
			},
			expectedError: service.ErrProductNotFound,
		},
		{
			name: "price_above_product_total",
			menu: &domain.Menu{
				Name:        "Two Fried Chickens",
				Price:       40000,
				MenuGroupID: 1,
				Products:    []domain.MenuProduct{{ProductID: 1, Quantity: 2}},
			},
			prepareMocks: func(repo *mocks.MenuRepository, groups *mocks.MenuGroupRepository, products *mocks.ProductRepository, cache *mocks.MenuCache) {
				groups.On("MenuGroupExists", 1).Return(true, nil).Once()
				products.On("GetProductsByIDs", []int{1}).Return(map[int]domain.Product{1: friedChicken}, nil).Once()
			},
			expectedError: service.ErrInvalidPrice,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMenuRepository(t)
			groups := mocks.NewMenuGroupRepository(t)
			products := mocks.NewProductRepository(t)
			cache := mocks.NewMenuCache(t)
			testCase.prepareMocks(repo, groups, products, cache)

			svc := service.NewMenuService(repo, groups, products, cache)
			err := svc.Create(context.Background(), testCase.menu)

			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestMenuService_Create_BindsProductDetails(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	groups := mocks.NewMenuGroupRepository(t)
	products := mocks.NewProductRepository(t)
	cache := mocks.NewMenuCache(t)

	groups.On("MenuGroupExists", 1).Return(true, nil).Once()
	products.On("GetProductsByIDs", []int{1}).Return(map[int]domain.Product{
		1: {ID: 1, Name: "Fried Chicken", Price: 19000},
	}, nil).Once()
	repo.On("CreateMenu", mock.Anything).Return(nil).Once()
	cache.On("InvalidateMenus", mock.Anything).Return(nil).Once()

	menu := &domain.Menu{
		Name:        "Two Fried Chickens",
		Price:       38000,
		MenuGroupID: 1,
		Products:    []domain.MenuProduct{{ProductID: 1, Quantity: 2}},
	}

	svc := service.NewMenuService(repo, groups, products, cache)
	err := svc.Create(context.Background(), menu)

	assert.NoError(t, err)
	assert.Equal(t, "Fried Chicken", menu.Products[0].ProductName)
	assert.Equal(t, 19000.0, menu.Products[0].ProductPrice)
}

func TestMenuService_List(t *testing.T) {
	cachedMenus := []domain.Menu{{ID: 1, Name: "Two Fried Chickens", Price: 37000}}

	tests := []struct {
		name          string
		prepareMocks  func(repo *mocks.MenuRepository, cache *mocks.MenuCache)
		expectedMenus []domain.Menu
	}{
		{
			name: "cache_hit_skips_repository",
			prepareMocks: func(repo *mocks.MenuRepository, cache *mocks.MenuCache) {
				cache.On("GetMenus", mock.Anything).Return(cachedMenus, true).Once()
			},
			expectedMenus: cachedMenus,
		},
		{
			name: "cache_miss_loads_and_caches",
			prepareMocks: func(repo *mocks.MenuRepository, cache *mocks.MenuCache) {
				cache.On("GetMenus", mock.Anything).Return(nil, false).Once()
				repo.On("ListMenus").Return(cachedMenus, nil).Once()
				cache.On("SetMenus", mock.Anything, cachedMenus).Return(nil).Once()
			},
			expectedMenus: cachedMenus,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMenuRepository(t)
			groups := mocks.NewMenuGroupRepository(t)
			products := mocks.NewProductRepository(t)
			cache := mocks.NewMenuCache(t)
			testCase.prepareMocks(repo, cache)

			svc := service.NewMenuService(repo, groups, products, cache)
			menus, err := svc.List(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, testCase.expectedMenus, menus)
		})
	}
}
