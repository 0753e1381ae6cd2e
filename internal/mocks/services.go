package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kitchen-pos/internal/domain"
)

type ProductServiceInterface struct {
	mock.Mock
}

func NewProductServiceInterface(t constructorTestingT) *ProductServiceInterface {
	m := &ProductServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProductServiceInterface) Create(product *domain.Product) error {
	return m.Called(product).Error(0)
}

func (m *ProductServiceInterface) List() ([]domain.Product, error) {
	args := m.Called()
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Error(1)
}

type MenuGroupServiceInterface struct {
	mock.Mock
}

func NewMenuGroupServiceInterface(t constructorTestingT) *MenuGroupServiceInterface {
	m := &MenuGroupServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuGroupServiceInterface) Create(group *domain.MenuGroup) error {
	return m.Called(group).Error(0)
}

func (m *MenuGroupServiceInterface) List() ([]domain.MenuGroup, error) {
	args := m.Called()
	var groups []domain.MenuGroup
	if args.Get(0) != nil {
		groups = args.Get(0).([]domain.MenuGroup)
	}
	return groups, args.Error(1)
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t constructorTestingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuServiceInterface) Create(ctx context.Context, menu *domain.Menu) error {
	return m.Called(ctx, menu).Error(0)
}

func (m *MenuServiceInterface) List(ctx context.Context) ([]domain.Menu, error) {
	args := m.Called(ctx)
	var menus []domain.Menu
	if args.Get(0) != nil {
		menus = args.Get(0).([]domain.Menu)
	}
	return menus, args.Error(1)
}

type TableServiceInterface struct {
	mock.Mock
}

func NewTableServiceInterface(t constructorTestingT) *TableServiceInterface {
	m := &TableServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableServiceInterface) Create(table *domain.OrderTable) error {
	return m.Called(table).Error(0)
}

func (m *TableServiceInterface) List() ([]domain.OrderTable, error) {
	args := m.Called()
	var tables []domain.OrderTable
	if args.Get(0) != nil {
		tables = args.Get(0).([]domain.OrderTable)
	}
	return tables, args.Error(1)
}

func (m *TableServiceInterface) ChangeEmpty(tableID int, empty bool) (*domain.OrderTable, error) {
	args := m.Called(tableID, empty)
	var table *domain.OrderTable
	if args.Get(0) != nil {
		table = args.Get(0).(*domain.OrderTable)
	}
	return table, args.Error(1)
}

func (m *TableServiceInterface) ChangeNumberOfGuests(tableID, guests int) (*domain.OrderTable, error) {
	args := m.Called(tableID, guests)
	var table *domain.OrderTable
	if args.Get(0) != nil {
		table = args.Get(0).(*domain.OrderTable)
	}
	return table, args.Error(1)
}

func (m *TableServiceInterface) QRCode(tableID int) ([]byte, error) {
	args := m.Called(tableID)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}

type TableGroupServiceInterface struct {
	mock.Mock
}

func NewTableGroupServiceInterface(t constructorTestingT) *TableGroupServiceInterface {
	m := &TableGroupServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableGroupServiceInterface) Create(tableIDs []int) (*domain.TableGroup, error) {
	args := m.Called(tableIDs)
	var group *domain.TableGroup
	if args.Get(0) != nil {
		group = args.Get(0).(*domain.TableGroup)
	}
	return group, args.Error(1)
}

func (m *TableGroupServiceInterface) Ungroup(groupID int) error {
	return m.Called(groupID).Error(0)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t constructorTestingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) Create(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderServiceInterface) List() ([]domain.Order, error) {
	args := m.Called()
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) ChangeStatus(ctx context.Context, orderID int, status string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, status)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}
