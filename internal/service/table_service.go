package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"kitchen-pos/internal/domain"
)

type TableService struct {
	repo      TableRepository
	orders    OrderRepository
	qrEncoder QRGenerator
}

func NewTableService(repo TableRepository, orders OrderRepository, qr QRGenerator) *TableService {
	return &TableService{repo: repo, orders: orders, qrEncoder: qr}
}

func (s *TableService) Create(table *domain.OrderTable) error {
	if err := s.repo.CreateTable(table); err != nil {
		return err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(table.ID); err == nil {
			_ = s.repo.SaveTableQRCode(table.ID, qr)
		}
	}

	return nil
}

func (s *TableService) List() ([]domain.OrderTable, error) {
	return s.repo.ListTables()
}

// ChangeEmpty flips the table's availability flag. A table cannot change
// while it belongs to a table group or still has an uncompleted order.
// The table row stays locked from the check to the update so a
// concurrent order cannot slip in between.
func (s *TableService) ChangeEmpty(tableID int, empty bool) (*domain.OrderTable, error) {
	var table *domain.OrderTable
	err := s.repo.WithinTx(func(tx *sql.Tx) error {
		var err error
		table, err = s.repo.GetTableForUpdate(tx, tableID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUnknownTable
			}
			return fmt.Errorf("failed to load table: %w", err)
		}
		if table.TableGroupID != 0 {
			return ErrTableGrouped
		}

		active, err := s.orders.HasActiveOrderForTable(tx, tableID)
		if err != nil {
			return fmt.Errorf("failed to check table orders: %w", err)
		}
		if active {
			return ErrTableHasActiveOrder
		}

		return s.repo.UpdateTableEmpty(tx, tableID, empty)
	})
	if err != nil {
		return nil, err
	}

	table.Empty = empty
	return table, nil
}

func (s *TableService) ChangeNumberOfGuests(tableID, guests int) (*domain.OrderTable, error) {
	if guests < 0 {
		return nil, ErrInvalidGuestCount
	}

	var table *domain.OrderTable
	err := s.repo.WithinTx(func(tx *sql.Tx) error {
		var err error
		table, err = s.repo.GetTableForUpdate(tx, tableID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUnknownTable
			}
			return fmt.Errorf("failed to load table: %w", err)
		}
		if table.Empty {
			return ErrTableEmpty
		}

		return s.repo.UpdateTableGuests(tx, tableID, guests)
	})
	if err != nil {
		return nil, err
	}

	table.NumberOfGuests = guests
	return table, nil
}

func (s *TableService) QRCode(tableID int) ([]byte, error) {
	if _, err := s.repo.GetTable(tableID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnknownTable
		}
		return nil, fmt.Errorf("failed to load table: %w", err)
	}

	qr, err := s.repo.GetTableQRCode(tableID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(tableID); err == nil {
			if err := s.repo.SaveTableQRCode(tableID, regenerated); err != nil {
				log.Printf("Warning: failed to save regenerated QR code for table %d: %v", tableID, err)
			}
			return regenerated, nil
		}
	}
	return qr, nil
}

var _ TableServiceInterface = (*TableService)(nil)
