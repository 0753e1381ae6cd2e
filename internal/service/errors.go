package service

import "errors"

var (
	ErrInvalidName   = errors.New("name must not be blank")
	ErrInvalidPrice  = errors.New("price must be zero or positive")
	ErrDuplicateName = errors.New("product with this name already exists")

	ErrMenuGroupNotFound = errors.New("menu group does not exist")
	ErrProductNotFound   = errors.New("product does not exist")
	ErrNoMenuProducts    = errors.New("menu must contain at least one product")
	ErrInvalidQuantity   = errors.New("quantity must be positive")

	ErrUnknownTable        = errors.New("order table does not exist")
	ErrTableGrouped        = errors.New("table belongs to a table group")
	ErrTableHasActiveOrder = errors.New("table has an order that is not completed")
	ErrTableEmpty          = errors.New("table is marked empty")
	ErrInvalidGuestCount   = errors.New("number of guests must be zero or positive")

	ErrNotEnoughTables     = errors.New("table group requires at least two tables")
	ErrTablesNotGroupable  = errors.New("some tables are missing, occupied or already grouped")
	ErrUnknownTableGroup   = errors.New("table group has no tables")
	ErrGroupHasActiveOrder = errors.New("grouped tables have orders that are not completed")

	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrUnknownMenu        = errors.New("order references an unknown menu")
	ErrUnknownOrder       = errors.New("order does not exist")
	ErrOrderCompleted     = errors.New("completed order cannot change status")
	ErrInvalidOrderStatus = errors.New("unknown order status")
)
