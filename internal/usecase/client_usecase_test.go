package usecase

import (
	"context"
	"errors"
	"testing"

	"propostas_api/internal/domain/entities"
	mock_interfaces "propostas_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Client{Name: "   "})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Client{Name: "Maria", Email: "not-an-email"})
		if !errors.Is(err, ErrInvalidClientEmail) {
			t.Fatalf("expected ErrInvalidClientEmail, got %v", err)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Client{Name: "Maria", Phone: "abc"})
		if !errors.Is(err, ErrInvalidClientPhone) {
			t.Fatalf("expected ErrInvalidClientPhone, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, errors.New("db"))

		_, err := uc.Create(context.Background(), entities.Client{Name: "Maria"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success normalises fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamp: %+v", c)
				}
				if c.Name != "Maria Souza" || c.Company != "Padaria Central" || c.Email != "maria@padaria.com" {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.Phone != "+55 11 98765-4321" {
					t.Fatalf("unexpected phone: %q", c.Phone)
				}
				return c, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.Client{
			Name:    " Maria Souza ",
			Company: " Padaria Central",
			Email:   "maria@padaria.com ",
			Phone:   "(11) 98765-4321",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{}, nil)

		_, err := uc.GetByID(context.Background(), "c1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1", Name: "Maria"}, nil)

		c, err := uc.GetByID(context.Background(), " c1 ")
		if err != nil || c.ID != "c1" {
			t.Fatalf("unexpected result: %+v %v", c, err)
		}
	})
}

func TestNormalizePhone(t *testing.T) {
	if v, err := NormalizePhone(""); err != nil || v != "" {
		t.Fatalf("expected empty phone to pass through, got %q %v", v, err)
	}
	if _, err := NormalizePhone("123"); !errors.Is(err, ErrInvalidClientPhone) {
		t.Fatalf("expected ErrInvalidClientPhone, got %v", err)
	}
	v, err := NormalizePhone("+55 11 98765 4321")
	if err != nil || v != "+55 11 98765-4321" {
		t.Fatalf("unexpected normalisation: %q %v", v, err)
	}
}
