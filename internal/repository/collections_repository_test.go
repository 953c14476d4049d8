package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-site-api/internal/domain"
	"content-site-api/internal/repository"
)

func TestPostgresContactRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresContactRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("list returns newest first", func(t *testing.T) {
		testDB.TruncateTables(t, "contacts")

		base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		for i, name := range []string{"first", "second", "third"} {
			c := &domain.Contact{
				Name:      name,
				Email:     name + "@example.com",
				Message:   "hi",
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			}
			require.NoError(t, repo.Create(ctx, c))
		}

		contacts, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 3)
		assert.Equal(t, "third", contacts[0].Name)
		for i := 1; i < len(contacts); i++ {
			assert.False(t, contacts[i].CreatedAt.After(contacts[i-1].CreatedAt))
		}
	})

	t.Run("delete missing contact returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, "contacts")

		assert.ErrorIs(t, repo.Delete(ctx, uuid.New().String()), domain.ErrNotFound)
	})
}

func TestPostgresProductRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresProductRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("list returns newest first", func(t *testing.T) {
		testDB.TruncateTables(t, "products")

		base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Create(ctx, &domain.Product{Name: "old", CreatedAt: base}))
		require.NoError(t, repo.Create(ctx, &domain.Product{Name: "new", CreatedAt: base.Add(time.Hour)}))

		products, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "new", products[0].Name)
		assert.Equal(t, "old", products[1].Name)
	})

	t.Run("update without image preserves stored image", func(t *testing.T) {
		testDB.TruncateTables(t, "products")

		product := &domain.Product{Name: "Chair", Image: "https://cdn.example.com/chair.png"}
		require.NoError(t, repo.Create(ctx, product))

		update := &domain.Product{ID: product.ID, Name: "Armchair", Category: "Furniture"}
		require.NoError(t, repo.Update(ctx, update))
		assert.Equal(t, "https://cdn.example.com/chair.png", update.Image)
		assert.Equal(t, "Armchair", update.Name)

		update.Image = "https://cdn.example.com/armchair.png"
		require.NoError(t, repo.Update(ctx, update))
		assert.Equal(t, "https://cdn.example.com/armchair.png", update.Image)
	})

	t.Run("update missing product returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, "products")

		err := repo.Update(ctx, &domain.Product{ID: uuid.New().String(), Name: "ghost"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete product", func(t *testing.T) {
		testDB.TruncateTables(t, "products")

		product := &domain.Product{Name: "Lamp"}
		require.NoError(t, repo.Create(ctx, product))
		require.NoError(t, repo.Delete(ctx, product.ID))

		products, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestPostgresChatRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresChatRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("list returns oldest first", func(t *testing.T) {
		testDB.TruncateTables(t, "chat_messages")

		base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Create(ctx, &domain.ChatMessage{From: "bot", Text: "later", Timestamp: base.Add(time.Minute)}))
		require.NoError(t, repo.Create(ctx, &domain.ChatMessage{From: "user", Text: "earlier", Timestamp: base}))
		require.NoError(t, repo.Create(ctx, &domain.ChatMessage{From: "admin", Text: "now"}))

		messages, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "earlier", messages[0].Text)
		for i := 1; i < len(messages); i++ {
			assert.False(t, messages[i].Timestamp.Before(messages[i-1].Timestamp))
		}
	})

	t.Run("unknown sender is rejected by the store", func(t *testing.T) {
		testDB.TruncateTables(t, "chat_messages")

		assert.Error(t, repo.Create(ctx, &domain.ChatMessage{From: "system", Text: "x"}))
	})

	t.Run("delete message", func(t *testing.T) {
		testDB.TruncateTables(t, "chat_messages")

		msg := &domain.ChatMessage{From: "user", Text: "bye"}
		require.NoError(t, repo.Create(ctx, msg))
		require.NoError(t, repo.Delete(ctx, msg.ID))
		assert.ErrorIs(t, repo.Delete(ctx, msg.ID), domain.ErrNotFound)
	})
}
