package service

import (
	"context"
	"database/sql"

	"kitchen-pos/internal/domain"
)

type ProductRepository interface {
	CreateProduct(product *domain.Product) error
	ListProducts() ([]domain.Product, error)
	ProductNameExists(name string) (bool, error)
	GetProductsByIDs(ids []int) (map[int]domain.Product, error)
}

type MenuGroupRepository interface {
	CreateMenuGroup(group *domain.MenuGroup) error
	ListMenuGroups() ([]domain.MenuGroup, error)
	MenuGroupExists(id int) (bool, error)
}

type MenuRepository interface {
	CreateMenu(menu *domain.Menu) error
	ListMenus() ([]domain.Menu, error)
	CountMenusByIDs(tx *sql.Tx, ids []int) (int, error)
}

// Tx-taking methods run inside a transaction started by WithinTx. The
// ForUpdate and Lock variants hold row locks until the transaction ends
// so the state they read cannot change under the eventual write.
type TableRepository interface {
	WithinTx(fn func(tx *sql.Tx) error) error
	CreateTable(table *domain.OrderTable) error
	ListTables() ([]domain.OrderTable, error)
	GetTable(id int) (*domain.OrderTable, error)
	GetTableForUpdate(tx *sql.Tx, id int) (*domain.OrderTable, error)
	UpdateTableEmpty(tx *sql.Tx, id int, empty bool) error
	UpdateTableGuests(tx *sql.Tx, id int, guests int) error
	FindGroupableTables(tx *sql.Tx, ids []int) ([]domain.OrderTable, error)
	LockTablesByGroup(tx *sql.Tx, groupID int) ([]domain.OrderTable, error)
	SaveTableQRCode(id int, qr []byte) error
	GetTableQRCode(id int) ([]byte, error)
}

type TableGroupRepository interface {
	WithinTx(fn func(tx *sql.Tx) error) error
	CreateTableGroup(tx *sql.Tx, group *domain.TableGroup) error
	ReleaseTables(tx *sql.Tx, groupID int) error
}

type OrderRepository interface {
	WithinTx(fn func(tx *sql.Tx) error) error
	CreateOrder(tx *sql.Tx, order *domain.Order) error
	GetOrderForUpdate(tx *sql.Tx, id int) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	UpdateOrderStatus(tx *sql.Tx, id int, status domain.OrderStatus) error
	HasActiveOrderForTable(tx *sql.Tx, tableID int) (bool, error)
	HasActiveOrderForTables(tx *sql.Tx, tableIDs []int) (bool, error)
}

type MenuCache interface {
	GetMenus(ctx context.Context) ([]domain.Menu, bool)
	SetMenus(ctx context.Context, menus []domain.Menu) error
	InvalidateMenus(ctx context.Context) error
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type ProductServiceInterface interface {
	Create(product *domain.Product) error
	List() ([]domain.Product, error)
}

type MenuGroupServiceInterface interface {
	Create(group *domain.MenuGroup) error
	List() ([]domain.MenuGroup, error)
}

type MenuServiceInterface interface {
	Create(ctx context.Context, menu *domain.Menu) error
	List(ctx context.Context) ([]domain.Menu, error)
}

type TableServiceInterface interface {
	Create(table *domain.OrderTable) error
	List() ([]domain.OrderTable, error)
	ChangeEmpty(tableID int, empty bool) (*domain.OrderTable, error)
	ChangeNumberOfGuests(tableID, guests int) (*domain.OrderTable, error)
	QRCode(tableID int) ([]byte, error)
}

type TableGroupServiceInterface interface {
	Create(tableIDs []int) (*domain.TableGroup, error)
	Ungroup(groupID int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	List() ([]domain.Order, error)
	ChangeStatus(ctx context.Context, orderID int, status string) (*domain.Order, error)
}
