package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"kitchen-pos/internal/domain"
)

type OrderService struct {
	repo      OrderRepository
	menus     MenuRepository
	tables    TableRepository
	publisher OrderEventPublisher
}

func NewOrderService(repo OrderRepository, menus MenuRepository, tables TableRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		repo:      repo,
		menus:     menus,
		tables:    tables,
		publisher: publisher,
	}
}

// Create places an order against a table. Every line must reference an
// existing menu and the table must exist and not be marked empty. The
// lookups and the insert share one transaction with the table row
// locked, so the table cannot be emptied or ungrouped mid-flight.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if len(order.LineItems) == 0 {
		return ErrEmptyOrder
	}

	menuIDs := make([]int, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		menuIDs = append(menuIDs, item.MenuID)
	}
	uniqueIDs := dedupe(menuIDs)

	err := s.repo.WithinTx(func(tx *sql.Tx) error {
		count, err := s.menus.CountMenusByIDs(tx, uniqueIDs)
		if err != nil {
			return fmt.Errorf("failed to count menus: %w", err)
		}
		if count != len(uniqueIDs) {
			return ErrUnknownMenu
		}

		table, err := s.tables.GetTableForUpdate(tx, order.OrderTableID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUnknownTable
			}
			return fmt.Errorf("failed to load table: %w", err)
		}
		if table.Empty {
			return ErrTableEmpty
		}

		order.OrderStatus = domain.OrderStatusCooking
		order.OrderedTime = time.Now()
		return s.repo.CreateOrder(tx, order)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, "order_created", order)
	return nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repo.ListOrders()
}

// ChangeStatus moves the order to the given status. A completed order is
// terminal and refuses any further change; the order row is locked from
// the terminal check to the update.
func (s *OrderService) ChangeStatus(ctx context.Context, orderID int, status string) (*domain.Order, error) {
	newStatus, ok := domain.ParseOrderStatus(status)
	if !ok {
		return nil, ErrInvalidOrderStatus
	}

	var order *domain.Order
	err := s.repo.WithinTx(func(tx *sql.Tx) error {
		var err error
		order, err = s.repo.GetOrderForUpdate(tx, orderID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUnknownOrder
			}
			return fmt.Errorf("failed to load order: %w", err)
		}
		if order.OrderStatus == domain.OrderStatusCompletion {
			return ErrOrderCompleted
		}

		return s.repo.UpdateOrderStatus(tx, orderID, newStatus)
	})
	if err != nil {
		return nil, err
	}
	order.OrderStatus = newStatus

	s.publish(ctx, "order_status_changed", order)
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		Type:      eventType,
		OrderID:   order.ID,
		TableID:   order.OrderTableID,
		Status:    order.OrderStatus,
		Timestamp: time.Now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s event for order %d: %v", eventType, order.ID, err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
