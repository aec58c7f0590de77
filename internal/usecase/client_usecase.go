package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ttacon/libphonenumber"
)

const phoneRegion = "BR"

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientName  = errors.New("client name is required")
	ErrInvalidClientEmail = errors.New("invalid client email")
	ErrInvalidClientPhone = errors.New("invalid client phone")
)

// IClientUseCase exposes client registration and lookup.
type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo     interfaces.IClientRepository
	validate *validator.Validate
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, validate: validator.New()}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Company = strings.TrimSpace(c.Company)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if err := u.validate.Var(c.Email, "omitempty,email"); err != nil {
		return entities.Client{}, ErrInvalidClientEmail
	}
	phone, err := NormalizePhone(c.Phone)
	if err != nil {
		return entities.Client{}, err
	}
	c.Phone = phone

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	slog.Info("[client][usecase] client created", "client_id", created.ID)
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

// NormalizePhone formats a phone number in international notation,
// assuming a Brazilian number when no country code is given. An empty
// input stays empty.
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	num, err := libphonenumber.Parse(raw, phoneRegion)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return "", ErrInvalidClientPhone
	}
	return libphonenumber.Format(num, libphonenumber.INTERNATIONAL), nil
}
