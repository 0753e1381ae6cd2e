package domain

import "time"

type OrderStatus string

const (
	OrderStatusCooking    OrderStatus = "COOKING"
	OrderStatusMeal       OrderStatus = "MEAL"
	OrderStatusCompletion OrderStatus = "COMPLETION"
)

// ParseOrderStatus maps a wire value to a known status.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	switch OrderStatus(value) {
	case OrderStatusCooking, OrderStatusMeal, OrderStatusCompletion:
		return OrderStatus(value), true
	default:
		return "", false
	}
}

type Product struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuGroup struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Menu struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	MenuGroupID int           `json:"menu_group_id"`
	Products    []MenuProduct `json:"menu_products"`
	CreatedAt   time.Time     `json:"created_at"`
}

// MenuProduct is one line of a menu. ProductName and ProductPrice are
// resolved from the referenced product when the menu is created.
type MenuProduct struct {
	Seq          int     `json:"seq"`
	MenuID       int     `json:"menu_id"`
	ProductID    int     `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
}

// OrderTable is a dining table. TableGroupID is 0 while the table is
// ungrouped; Empty=true blocks new orders against the table.
type OrderTable struct {
	ID             int       `json:"id"`
	NumberOfGuests int       `json:"number_of_guests"`
	Empty          bool      `json:"empty"`
	TableGroupID   int       `json:"table_group_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type TableGroup struct {
	ID          int          `json:"id"`
	CreatedDate time.Time    `json:"created_date"`
	Tables      []OrderTable `json:"order_tables"`
}

type Order struct {
	ID           int             `json:"id"`
	OrderTableID int             `json:"order_table_id"`
	OrderStatus  OrderStatus     `json:"order_status"`
	OrderedTime  time.Time       `json:"ordered_time"`
	LineItems    []OrderLineItem `json:"order_line_items"`
}

type OrderLineItem struct {
	Seq      int `json:"seq"`
	OrderID  int `json:"order_id"`
	MenuID   int `json:"menu_id"`
	Quantity int `json:"quantity"`
}

// OrderEvent is published to Kafka on order creation and status changes.
type OrderEvent struct {
	Type      string      `json:"type"`
	OrderID   int         `json:"order_id"`
	TableID   int         `json:"table_id"`
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}
