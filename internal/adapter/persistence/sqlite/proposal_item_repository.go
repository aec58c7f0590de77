package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"
)

type ProposalItemRepository struct {
	db *sql.DB
}

var _ interfaces.IProposalItemRepository = (*ProposalItemRepository)(nil)

func NewProposalItemRepository(db *sql.DB) *ProposalItemRepository {
	return &ProposalItemRepository{db: db}
}

func (r *ProposalItemRepository) Add(ctx context.Context, item entities.ProposalItem) (entities.ProposalItem, error) {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO proposal_items (id, proposal_id, service_plan_id, created_at) VALUES (?, ?, ?, ?)",
		item.ID, item.ProposalID, item.ServicePlanID, formatTime(item.CreatedAt),
	)
	if err != nil {
		if mapped := mapConstraint(err); mapped == interfaces.ErrDuplicateRecord {
			return entities.ProposalItem{}, mapped
		}
		return entities.ProposalItem{}, fmt.Errorf("failed to insert proposal item: %w", err)
	}
	return item, nil
}

func (r *ProposalItemRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, proposal_id, service_plan_id, created_at FROM proposal_items WHERE proposal_id = ? ORDER BY created_at, id",
		proposalID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposal items: %w", err)
	}
	defer rows.Close()

	out := []entities.ProposalItem{}
	for rows.Next() {
		var it entities.ProposalItem
		var createdAt string
		if err := rows.Scan(&it.ID, &it.ProposalID, &it.ServicePlanID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan proposal item: %w", err)
		}
		it.CreatedAt = parseTime(createdAt)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *ProposalItemRepository) DeleteByPlan(ctx context.Context, proposalID, planID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM proposal_items WHERE proposal_id = ? AND service_plan_id = ?",
		proposalID, planID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete proposal item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProposalItemRepository) DeleteByProposalID(ctx context.Context, proposalID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM proposal_items WHERE proposal_id = ?", proposalID); err != nil {
		return fmt.Errorf("failed to delete proposal items: %w", err)
	}
	return nil
}
