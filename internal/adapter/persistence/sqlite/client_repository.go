package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"
)

type ClientRepository struct {
	db *sql.DB
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = "id, name, email, phone, company, created_at"

func (r *ClientRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO clients ("+clientColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		c.ID, c.Name, c.Email, c.Phone, c.Company, formatTime(c.CreatedAt),
	)
	if err != nil {
		return entities.Client{}, fmt.Errorf("failed to insert client: %w", mapConstraint(err))
	}
	return c, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx, "SELECT "+clientColumns+" FROM clients WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]entities.Client, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+clientColumns+" FROM clients ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	out := []entities.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanClient(s scanner) (entities.Client, error) {
	var c entities.Client
	var createdAt string
	if err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &createdAt); err != nil {
		return entities.Client{}, err
	}
	c.CreatedAt = parseTime(createdAt)
	return c, nil
}
