package mocks

import (
	"database/sql"

	"github.com/stretchr/testify/mock"

	"kitchen-pos/internal/domain"
)

type constructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

type ProductRepository struct {
	mock.Mock
}

func NewProductRepository(t constructorTestingT) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProductRepository) CreateProduct(product *domain.Product) error {
	return m.Called(product).Error(0)
}

func (m *ProductRepository) ListProducts() ([]domain.Product, error) {
	args := m.Called()
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *ProductRepository) ProductNameExists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *ProductRepository) GetProductsByIDs(ids []int) (map[int]domain.Product, error) {
	args := m.Called(ids)
	var products map[int]domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).(map[int]domain.Product)
	}
	return products, args.Error(1)
}

type MenuGroupRepository struct {
	mock.Mock
}

func NewMenuGroupRepository(t constructorTestingT) *MenuGroupRepository {
	m := &MenuGroupRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuGroupRepository) CreateMenuGroup(group *domain.MenuGroup) error {
	return m.Called(group).Error(0)
}

func (m *MenuGroupRepository) ListMenuGroups() ([]domain.MenuGroup, error) {
	args := m.Called()
	var groups []domain.MenuGroup
	if args.Get(0) != nil {
		groups = args.Get(0).([]domain.MenuGroup)
	}
	return groups, args.Error(1)
}

func (m *MenuGroupRepository) MenuGroupExists(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t constructorTestingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) CreateMenu(menu *domain.Menu) error {
	return m.Called(menu).Error(0)
}

func (m *MenuRepository) ListMenus() ([]domain.Menu, error) {
	args := m.Called()
	var menus []domain.Menu
	if args.Get(0) != nil {
		menus = args.Get(0).([]domain.Menu)
	}
	return menus, args.Error(1)
}

func (m *MenuRepository) CountMenusByIDs(tx *sql.Tx, ids []int) (int, error) {
	args := m.Called(tx, ids)
	return args.Int(0), args.Error(1)
}

type TableRepository struct {
	mock.Mock
}

func NewTableRepository(t constructorTestingT) *TableRepository {
	m := &TableRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// WithinTx runs the unit directly; the nil tx is only ever handed back
// to other mocked methods.
func (m *TableRepository) WithinTx(fn func(tx *sql.Tx) error) error {
	return fn(nil)
}

func (m *TableRepository) CreateTable(table *domain.OrderTable) error {
	return m.Called(table).Error(0)
}

func (m *TableRepository) ListTables() ([]domain.OrderTable, error) {
	args := m.Called()
	var tables []domain.OrderTable
	if args.Get(0) != nil {
		tables = args.Get(0).([]domain.OrderTable)
	}
	return tables, args.Error(1)
}

func (m *TableRepository) GetTable(id int) (*domain.OrderTable, error) {
	args := m.Called(id)
	var table *domain.OrderTable
	if args.Get(0) != nil {
		table = args.Get(0).(*domain.OrderTable)
	}
	return table, args.Error(1)
}

func (m *TableRepository) GetTableForUpdate(tx *sql.Tx, id int) (*domain.OrderTable, error) {
	args := m.Called(tx, id)
	var table *domain.OrderTable
	if args.Get(0) != nil {
		table = args.Get(0).(*domain.OrderTable)
	}
	return table, args.Error(1)
}

func (m *TableRepository) UpdateTableEmpty(tx *sql.Tx, id int, empty bool) error {
	return m.Called(tx, id, empty).Error(0)
}

func (m *TableRepository) UpdateTableGuests(tx *sql.Tx, id int, guests int) error {
	return m.Called(tx, id, guests).Error(0)
}

func (m *TableRepository) FindGroupableTables(tx *sql.Tx, ids []int) ([]domain.OrderTable, error) {
	args := m.Called(tx, ids)
	var tables []domain.OrderTable
	if args.Get(0) != nil {
		tables = args.Get(0).([]domain.OrderTable)
	}
	return tables, args.Error(1)
}

func (m *TableRepository) LockTablesByGroup(tx *sql.Tx, groupID int) ([]domain.OrderTable, error) {
	args := m.Called(tx, groupID)
	var tables []domain.OrderTable
	if args.Get(0) != nil {
		tables = args.Get(0).([]domain.OrderTable)
	}
	return tables, args.Error(1)
}

func (m *TableRepository) SaveTableQRCode(id int, qr []byte) error {
	return m.Called(id, qr).Error(0)
}

func (m *TableRepository) GetTableQRCode(id int) ([]byte, error) {
	args := m.Called(id)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}

type TableGroupRepository struct {
	mock.Mock
}

func NewTableGroupRepository(t constructorTestingT) *TableGroupRepository {
	m := &TableGroupRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableGroupRepository) WithinTx(fn func(tx *sql.Tx) error) error {
	return fn(nil)
}

func (m *TableGroupRepository) CreateTableGroup(tx *sql.Tx, group *domain.TableGroup) error {
	return m.Called(tx, group).Error(0)
}

func (m *TableGroupRepository) ReleaseTables(tx *sql.Tx, groupID int) error {
	return m.Called(tx, groupID).Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t constructorTestingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) WithinTx(fn func(tx *sql.Tx) error) error {
	return fn(nil)
}

func (m *OrderRepository) CreateOrder(tx *sql.Tx, order *domain.Order) error {
	return m.Called(tx, order).Error(0)
}

func (m *OrderRepository) GetOrderForUpdate(tx *sql.Tx, id int) (*domain.Order, error) {
	args := m.Called(tx, id)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderRepository) ListOrders() ([]domain.Order, error) {
	args := m.Called()
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(tx *sql.Tx, id int, status domain.OrderStatus) error {
	return m.Called(tx, id, status).Error(0)
}

func (m *OrderRepository) HasActiveOrderForTable(tx *sql.Tx, tableID int) (bool, error) {
	args := m.Called(tx, tableID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) HasActiveOrderForTables(tx *sql.Tx, tableIDs []int) (bool, error) {
	args := m.Called(tx, tableIDs)
	return args.Bool(0), args.Error(1)
}
