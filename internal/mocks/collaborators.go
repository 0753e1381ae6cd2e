package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kitchen-pos/internal/domain"
)

type MenuCache struct {
	mock.Mock
}

func NewMenuCache(t constructorTestingT) *MenuCache {
	m := &MenuCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuCache) GetMenus(ctx context.Context) ([]domain.Menu, bool) {
	args := m.Called(ctx)
	var menus []domain.Menu
	if args.Get(0) != nil {
		menus = args.Get(0).([]domain.Menu)
	}
	return menus, args.Bool(1)
}

func (m *MenuCache) SetMenus(ctx context.Context, menus []domain.Menu) error {
	return m.Called(ctx, menus).Error(0)
}

func (m *MenuCache) InvalidateMenus(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type OrderEventPublisher struct {
	mock.Mock
}

func NewOrderEventPublisher(t constructorTestingT) *OrderEventPublisher {
	m := &OrderEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t constructorTestingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(tableID int) ([]byte, error) {
	args := m.Called(tableID)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}
