package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"content-site-api/internal/domain"
	"content-site-api/internal/mocks"
	"content-site-api/internal/service"
	"content-site-api/internal/validator"
)

func validContact() *domain.Contact {
	return &domain.Contact{Name: "Ada Lovelace", Email: "ada@example.com", Message: "Hello there"}
}

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores then notifies", func(t *testing.T) {
		repo := mocks.NewMockContactRepository(t)
		notifier := mocks.NewMockNotifier(t)
		svc := service.NewContactService(repo, notifier, validator.NewValidator(), "site@example.com", "owner@example.com")

		contact := validContact()
		stored := repo.On("Create", mock.Anything, contact).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Contact).ID = "c-1"
		}).Return(nil)
		notifier.On("Send", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
			return n.From == "site@example.com" &&
				n.To == "owner@example.com" &&
				n.Subject == "New Contact Form Submission from Ada Lovelace" &&
				containsAll(n.Body, "Ada Lovelace", "ada@example.com", "Hello there")
		})).Return(nil).NotBefore(stored)

		require.NoError(t, svc.Submit(ctx, contact))
		assert.Equal(t, "c-1", contact.ID)
	})

	t.Run("invalid input never reaches the store", func(t *testing.T) {
		repo := mocks.NewMockContactRepository(t)
		notifier := mocks.NewMockNotifier(t)
		svc := service.NewContactService(repo, notifier, validator.NewValidator(), "site@example.com", "owner@example.com")

		contact := validContact()
		contact.Email = "not-an-email"

		err := svc.Submit(ctx, contact)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("store failure skips notification", func(t *testing.T) {
		repo := mocks.NewMockContactRepository(t)
		notifier := mocks.NewMockNotifier(t)
		svc := service.NewContactService(repo, notifier, validator.NewValidator(), "site@example.com", "owner@example.com")

		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		err := svc.Submit(ctx, validContact())
		require.Error(t, err)
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("delivery failure surfaces after persisting", func(t *testing.T) {
		repo := mocks.NewMockContactRepository(t)
		notifier := mocks.NewMockNotifier(t)
		svc := service.NewContactService(repo, notifier, validator.NewValidator(), "site@example.com", "owner@example.com")

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		notifier.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp: 554"))

		err := svc.Submit(ctx, validContact())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "smtp: 554")
		repo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("no recipient skips notification", func(t *testing.T) {
		repo := mocks.NewMockContactRepository(t)
		notifier := mocks.NewMockNotifier(t)
		svc := service.NewContactService(repo, notifier, validator.NewValidator(), "site@example.com", "")

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, svc.Submit(ctx, validContact()))
		notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestContactService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("nil from store becomes empty list", func(t *testing.T) {
		repo := mocks.NewMockContactRepository(t)
		svc := service.NewContactService(repo, mocks.NewMockNotifier(t), validator.NewValidator(), "", "")

		repo.On("List", mock.Anything).Return(nil, nil)

		contacts, err := svc.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, contacts)
		assert.Empty(t, contacts)
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		repo := mocks.NewMockContactRepository(t)
		svc := service.NewContactService(repo, mocks.NewMockNotifier(t), validator.NewValidator(), "", "")

		repo.On("List", mock.Anything).Return(nil, errors.New("boom"))

		_, err := svc.List(ctx)
		assert.ErrorContains(t, err, "boom")
	})
}

func TestContactService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockContactRepository(t)
	svc := service.NewContactService(repo, mocks.NewMockNotifier(t), validator.NewValidator(), "", "")

	err := svc.Delete(ctx, "not-a-uuid")
	assert.True(t, validator.IsValidationError(err))

	id := "7b1c2a9e-0d3f-4c55-9a53-2f0f3b7c1e11"
	repo.On("Delete", mock.Anything, id).Return(domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, id), domain.ErrNotFound)
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
