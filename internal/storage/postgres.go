package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"kitchen-pos/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

var activeOrderStatuses = []string{
	string(domain.OrderStatusCooking),
	string(domain.OrderStatusMeal),
}

// WithinTx runs fn inside one transaction and commits when fn returns
// nil. Row locks taken by the ForUpdate reads are held until commit.
func (r *PostgresRepository) WithinTx(fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresRepository) CreateProduct(product *domain.Product) error {
	return r.DB.QueryRow(
		"INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id, created_at",
		product.Name, product.Price,
	).Scan(&product.ID, &product.CreatedAt)
}

func (r *PostgresRepository) ListProducts() ([]domain.Product, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price, created_at
		FROM products
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.CreatedAt); err != nil {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *PostgresRepository) ProductNameExists(name string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM products WHERE name = $1)", name,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) GetProductsByIDs(ids []int) (map[int]domain.Product, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price, created_at
		FROM products
		WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make(map[int]domain.Product, len(ids))
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.CreatedAt); err != nil {
			continue
		}
		products[product.ID] = product
	}
	return products, nil
}

func (r *PostgresRepository) CreateMenuGroup(group *domain.MenuGroup) error {
	return r.DB.QueryRow(
		"INSERT INTO menu_groups (name) VALUES ($1) RETURNING id, created_at",
		group.Name,
	).Scan(&group.ID, &group.CreatedAt)
}

func (r *PostgresRepository) ListMenuGroups() ([]domain.MenuGroup, error) {
	rows, err := r.DB.Query("SELECT id, name, created_at FROM menu_groups ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.MenuGroup
	for rows.Next() {
		var group domain.MenuGroup
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt); err != nil {
			continue
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (r *PostgresRepository) MenuGroupExists(id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM menu_groups WHERE id = $1)", id,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) CreateMenu(menu *domain.Menu) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO menus (name, price, menu_group_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, menu.Name, menu.Price, menu.MenuGroupID).Scan(&menu.ID, &menu.CreatedAt); err != nil {
		return err
	}

	for i, line := range menu.Products {
		if err := tx.QueryRow(`
			INSERT INTO menu_products (menu_id, product_id, quantity)
			VALUES ($1, $2, $3)
			RETURNING seq
		`, menu.ID, line.ProductID, line.Quantity).Scan(&menu.Products[i].Seq); err != nil {
			return err
		}
		menu.Products[i].MenuID = menu.ID
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListMenus() ([]domain.Menu, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price, menu_group_id, created_at
		FROM menus
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []domain.Menu
	for rows.Next() {
		var menu domain.Menu
		if err := rows.Scan(&menu.ID, &menu.Name, &menu.Price, &menu.MenuGroupID, &menu.CreatedAt); err != nil {
			continue
		}
		menus = append(menus, menu)
	}

	for i := range menus {
		lines, err := r.menuProducts(menus[i].ID)
		if err != nil {
			return menus, err
		}
		menus[i].Products = lines
	}
	return menus, nil
}

func (r *PostgresRepository) menuProducts(menuID int) ([]domain.MenuProduct, error) {
	rows, err := r.DB.Query(`
		SELECT mp.seq, mp.menu_id, mp.product_id, p.name, p.price, mp.quantity
		FROM menu_products mp
		JOIN products p ON mp.product_id = p.id
		WHERE mp.menu_id = $1
		ORDER BY mp.seq`, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.MenuProduct
	for rows.Next() {
		var line domain.MenuProduct
		if err := rows.Scan(&line.Seq, &line.MenuID, &line.ProductID, &line.ProductName, &line.ProductPrice, &line.Quantity); err != nil {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *PostgresRepository) CountMenusByIDs(tx *sql.Tx, ids []int) (int, error) {
	var count int
	err := tx.QueryRow(
		"SELECT COUNT(*) FROM menus WHERE id = ANY($1)", pq.Array(ids),
	).Scan(&count)
	return count, err
}

func (r *PostgresRepository) CreateTable(table *domain.OrderTable) error {
	return r.DB.QueryRow(
		"INSERT INTO order_tables (number_of_guests, empty) VALUES ($1, $2) RETURNING id, created_at",
		table.NumberOfGuests, table.Empty,
	).Scan(&table.ID, &table.CreatedAt)
}

func (r *PostgresRepository) ListTables() ([]domain.OrderTable, error) {
	rows, err := r.DB.Query(`
		SELECT id, number_of_guests, empty, COALESCE(table_group_id, 0), created_at
		FROM order_tables
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTables(rows)
}

func (r *PostgresRepository) GetTable(id int) (*domain.OrderTable, error) {
	var table domain.OrderTable
	err := r.DB.QueryRow(`
		SELECT id, number_of_guests, empty, COALESCE(table_group_id, 0), created_at
		FROM order_tables
		WHERE id = $1`, id).
		Scan(&table.ID, &table.NumberOfGuests, &table.Empty, &table.TableGroupID, &table.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *PostgresRepository) GetTableForUpdate(tx *sql.Tx, id int) (*domain.OrderTable, error) {
	var table domain.OrderTable
	err := tx.QueryRow(`
		SELECT id, number_of_guests, empty, COALESCE(table_group_id, 0), created_at
		FROM order_tables
		WHERE id = $1
		FOR UPDATE`, id).
		Scan(&table.ID, &table.NumberOfGuests, &table.Empty, &table.TableGroupID, &table.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *PostgresRepository) UpdateTableEmpty(tx *sql.Tx, id int, empty bool) error {
	_, err := tx.Exec("UPDATE order_tables SET empty = $1 WHERE id = $2", empty, id)
	return err
}

func (r *PostgresRepository) UpdateTableGuests(tx *sql.Tx, id int, guests int) error {
	_, err := tx.Exec("UPDATE order_tables SET number_of_guests = $1 WHERE id = $2", guests, id)
	return err
}

func (r *PostgresRepository) FindGroupableTables(tx *sql.Tx, ids []int) ([]domain.OrderTable, error) {
	rows, err := tx.Query(`
		SELECT id, number_of_guests, empty, COALESCE(table_group_id, 0), created_at
		FROM order_tables
		WHERE id = ANY($1) AND empty = TRUE AND table_group_id IS NULL
		ORDER BY id
		FOR UPDATE`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTables(rows)
}

func (r *PostgresRepository) LockTablesByGroup(tx *sql.Tx, groupID int) ([]domain.OrderTable, error) {
	rows, err := tx.Query(`
		SELECT id, number_of_guests, empty, COALESCE(table_group_id, 0), created_at
		FROM order_tables
		WHERE table_group_id = $1
		ORDER BY id
		FOR UPDATE`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTables(rows)
}

func scanTables(rows *sql.Rows) ([]domain.OrderTable, error) {
	var tables []domain.OrderTable
	for rows.Next() {
		var table domain.OrderTable
		if err := rows.Scan(&table.ID, &table.NumberOfGuests, &table.Empty, &table.TableGroupID, &table.CreatedAt); err != nil {
			continue
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func (r *PostgresRepository) SaveTableQRCode(id int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE order_tables SET qr_code = $1 WHERE id = $2", qr, id)
	return err
}

func (r *PostgresRepository) GetTableQRCode(id int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM order_tables WHERE id = $1", id).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) CreateTableGroup(tx *sql.Tx, group *domain.TableGroup) error {
	if err := tx.QueryRow(
		"INSERT INTO table_groups (created_date) VALUES ($1) RETURNING id",
		group.CreatedDate,
	).Scan(&group.ID); err != nil {
		return err
	}

	tableIDs := make([]int, 0, len(group.Tables))
	for _, table := range group.Tables {
		tableIDs = append(tableIDs, table.ID)
	}

	result, err := tx.Exec(`
		UPDATE order_tables
		SET table_group_id = $1
		WHERE id = ANY($2) AND empty = TRUE AND table_group_id IS NULL
	`, group.ID, pq.Array(tableIDs))
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected != int64(len(tableIDs)) {
		return fmt.Errorf("grouped %d of %d tables", affected, len(tableIDs))
	}

	return nil
}

func (r *PostgresRepository) ReleaseTables(tx *sql.Tx, groupID int) error {
	if _, err := tx.Exec(
		"UPDATE order_tables SET table_group_id = NULL WHERE table_group_id = $1", groupID,
	); err != nil {
		return err
	}
	_, err := tx.Exec("DELETE FROM table_groups WHERE id = $1", groupID)
	return err
}

func (r *PostgresRepository) CreateOrder(tx *sql.Tx, order *domain.Order) error {
	if err := tx.QueryRow(`
		INSERT INTO orders (order_table_id, order_status, ordered_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`, order.OrderTableID, string(order.OrderStatus), order.OrderedTime).Scan(&order.ID); err != nil {
		return err
	}

	for i, item := range order.LineItems {
		if err := tx.QueryRow(`
			INSERT INTO order_line_items (order_id, menu_id, quantity)
			VALUES ($1, $2, $3)
			RETURNING seq
		`, order.ID, item.MenuID, item.Quantity).Scan(&order.LineItems[i].Seq); err != nil {
			return err
		}
		order.LineItems[i].OrderID = order.ID
	}

	return nil
}

func (r *PostgresRepository) GetOrderForUpdate(tx *sql.Tx, id int) (*domain.Order, error) {
	var order domain.Order
	var status string
	if err := tx.QueryRow(`
		SELECT id, order_table_id, order_status, ordered_time
		FROM orders WHERE id = $1
		FOR UPDATE
	`, id).Scan(&order.ID, &order.OrderTableID, &status, &order.OrderedTime); err != nil {
		return nil, err
	}
	order.OrderStatus = domain.OrderStatus(status)

	items, err := orderLineItems(tx, order.ID)
	if err != nil {
		return &order, err
	}
	order.LineItems = items
	return &order, nil
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_table_id, order_status, ordered_time
		FROM orders
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var status string
		if err := rows.Scan(&order.ID, &order.OrderTableID, &status, &order.OrderedTime); err != nil {
			continue
		}
		order.OrderStatus = domain.OrderStatus(status)
		orders = append(orders, order)
	}

	for i := range orders {
		items, err := orderLineItems(r.DB, orders[i].ID)
		if err != nil {
			return orders, err
		}
		orders[i].LineItems = items
	}
	return orders, nil
}

func orderLineItems(q querier, orderID int) ([]domain.OrderLineItem, error) {
	rows, err := q.Query(`
		SELECT seq, order_id, menu_id, quantity
		FROM order_line_items
		WHERE order_id = $1
		ORDER BY seq`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderLineItem
	for rows.Next() {
		var item domain.OrderLineItem
		if err := rows.Scan(&item.Seq, &item.OrderID, &item.MenuID, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) UpdateOrderStatus(tx *sql.Tx, id int, status domain.OrderStatus) error {
	_, err := tx.Exec("UPDATE orders SET order_status = $1 WHERE id = $2", string(status), id)
	return err
}

func (r *PostgresRepository) HasActiveOrderForTable(tx *sql.Tx, tableID int) (bool, error) {
	var exists bool
	err := tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM orders
			WHERE order_table_id = $1 AND order_status = ANY($2)
		)
	`, tableID, pq.Array(activeOrderStatuses)).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) HasActiveOrderForTables(tx *sql.Tx, tableIDs []int) (bool, error) {
	var exists bool
	err := tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM orders
			WHERE order_table_id = ANY($1) AND order_status = ANY($2)
		)
	`, pq.Array(tableIDs), pq.Array(activeOrderStatuses)).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC(19, 2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_groups (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menus (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC(19, 2) NOT NULL,
			menu_group_id INTEGER NOT NULL REFERENCES menu_groups(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_products (
			seq SERIAL PRIMARY KEY,
			menu_id INTEGER NOT NULL REFERENCES menus(id),
			product_id INTEGER NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS table_groups (
			id SERIAL PRIMARY KEY,
			created_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_tables (
			id SERIAL PRIMARY KEY,
			number_of_guests INTEGER NOT NULL DEFAULT 0,
			empty BOOLEAN NOT NULL DEFAULT TRUE,
			table_group_id INTEGER REFERENCES table_groups(id),
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			order_table_id INTEGER NOT NULL REFERENCES order_tables(id),
			order_status TEXT NOT NULL,
			ordered_time TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_line_items (
			seq SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id),
			menu_id INTEGER NOT NULL REFERENCES menus(id),
			quantity INTEGER NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
