package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"
)

type ProposalRepository struct {
	db *sql.DB
}

var _ interfaces.IProposalRepository = (*ProposalRepository)(nil)

func NewProposalRepository(db *sql.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

const proposalColumns = "id, client_id, user_id, status, total_monthly, total_setup, discount_value, observations, created_at, updated_at, version"

func (r *ProposalRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	if p.Version == 0 {
		p.Version = 1
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO proposals ("+proposalColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.ID, nullable(p.ClientID), p.UserID, string(p.Status),
		p.TotalMonthly, p.TotalSetup, p.DiscountValue, p.Observations,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt), p.Version,
	)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to insert proposal: %w", mapConstraint(err))
	}
	return p, nil
}

func (r *ProposalRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	return getProposal(ctx, r.db, id)
}

func (r *ProposalRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+proposalColumns+" FROM proposals ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	out := []entities.Proposal{}
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update writes the patch, bumps the version and reads the row back in one
// transaction.
func (r *ProposalRepository) Update(ctx context.Context, id string, patch entities.ProposalPatch, expectedVersion *int) (entities.Proposal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args := buildProposalUpdate(id, patch, expectedVersion, time.Now())
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to update proposal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Proposal{}, err
	}

	current, err := getProposal(ctx, tx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if n == 0 {
		if current.ID != "" && expectedVersion != nil {
			return entities.Proposal{}, interfaces.ErrVersionMismatch
		}
		return entities.Proposal{}, nil
	}

	if err := tx.Commit(); err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return current, nil
}

func (r *ProposalRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM proposals WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete proposal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func buildProposalUpdate(id string, patch entities.ProposalPatch, expectedVersion *int, now time.Time) (string, []any) {
	sets := []string{"version = version + 1", "updated_at = ?"}
	args := []any{formatTime(now)}

	if patch.ClientID != nil {
		sets = append(sets, "client_id = ?")
		args = append(args, nullable(*patch.ClientID))
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.TotalMonthly != nil {
		sets = append(sets, "total_monthly = ?")
		args = append(args, *patch.TotalMonthly)
	}
	if patch.TotalSetup != nil {
		sets = append(sets, "total_setup = ?")
		args = append(args, *patch.TotalSetup)
	}
	if patch.DiscountValue != nil {
		sets = append(sets, "discount_value = ?")
		args = append(args, *patch.DiscountValue)
	}
	if patch.Observations != nil {
		sets = append(sets, "observations = ?")
		args = append(args, *patch.Observations)
	}

	query := "UPDATE proposals SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)
	if expectedVersion != nil {
		query += " AND version = ?"
		args = append(args, *expectedVersion)
	}
	return query, args
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getProposal(ctx context.Context, q queryRower, id string) (entities.Proposal, error) {
	p, err := scanProposal(q.QueryRowContext(ctx, "SELECT "+proposalColumns+" FROM proposals WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Proposal{}, nil
	}
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to get proposal: %w", err)
	}
	return p, nil
}

func scanProposal(s scanner) (entities.Proposal, error) {
	var (
		p                    entities.Proposal
		clientID             sql.NullString
		status               string
		createdAt, updatedAt string
	)
	err := s.Scan(&p.ID, &clientID, &p.UserID, &status,
		&p.TotalMonthly, &p.TotalSetup, &p.DiscountValue, &p.Observations,
		&createdAt, &updatedAt, &p.Version)
	if err != nil {
		return entities.Proposal{}, err
	}
	p.ClientID = clientID.String
	p.Status = entities.ProposalStatus(status)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}
