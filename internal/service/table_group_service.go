package service

import (
	"database/sql"
	"fmt"
	"time"

	"kitchen-pos/internal/domain"
)

const minimumTableGroupSize = 2

type TableGroupService struct {
	repo   TableGroupRepository
	tables TableRepository
	orders OrderRepository
}

func NewTableGroupService(repo TableGroupRepository, tables TableRepository, orders OrderRepository) *TableGroupService {
	return &TableGroupService{repo: repo, tables: tables, orders: orders}
}

// Create merges the given tables into one group. Every requested table
// must exist, be marked empty and not already belong to a group; either
// all tables join the group or none do. The groupable lookup locks the
// candidate rows, so their state holds until the group is written.
func (s *TableGroupService) Create(tableIDs []int) (*domain.TableGroup, error) {
	uniqueIDs := dedupe(tableIDs)
	if len(uniqueIDs) < minimumTableGroupSize {
		return nil, ErrNotEnoughTables
	}

	var group *domain.TableGroup
	err := s.repo.WithinTx(func(tx *sql.Tx) error {
		groupable, err := s.tables.FindGroupableTables(tx, uniqueIDs)
		if err != nil {
			return fmt.Errorf("failed to look up tables: %w", err)
		}
		if len(groupable) != len(uniqueIDs) {
			return ErrTablesNotGroupable
		}

		group = &domain.TableGroup{
			CreatedDate: time.Now(),
			Tables:      groupable,
		}
		return s.repo.CreateTableGroup(tx, group)
	})
	if err != nil {
		return nil, err
	}

	for i := range group.Tables {
		group.Tables[i].TableGroupID = group.ID
	}
	return group, nil
}

// Ungroup dissolves the group and clears membership on every table.
// Refused while any member table has an uncompleted order. The member
// rows are locked before the order check so an order placed against
// them cannot commit until the ungroup either finishes or aborts.
func (s *TableGroupService) Ungroup(groupID int) error {
	return s.repo.WithinTx(func(tx *sql.Tx) error {
		tables, err := s.tables.LockTablesByGroup(tx, groupID)
		if err != nil {
			return fmt.Errorf("failed to look up grouped tables: %w", err)
		}
		if len(tables) == 0 {
			return ErrUnknownTableGroup
		}

		tableIDs := make([]int, 0, len(tables))
		for _, table := range tables {
			tableIDs = append(tableIDs, table.ID)
		}

		active, err := s.orders.HasActiveOrderForTables(tx, tableIDs)
		if err != nil {
			return fmt.Errorf("failed to check grouped table orders: %w", err)
		}
		if active {
			return ErrGroupHasActiveOrder
		}

		return s.repo.ReleaseTables(tx, groupID)
	})
}

func dedupe(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	result := make([]int, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

var _ TableGroupServiceInterface = (*TableGroupService)(nil)
