package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"content-site-api/internal/domain"
)

func TestChatHandler(t *testing.T) {
	t.Run("list oldest first", func(t *testing.T) {
		api := newTestAPI(t)
		base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		api.chat.On("List", mock.Anything).Return([]domain.ChatMessage{
			{ID: "1", From: "user", Text: "hi", Timestamp: base},
			{ID: "2", From: "bot", Text: "hello", Timestamp: base.Add(time.Second)},
		}, nil)

		w := api.do(httptest.NewRequest(http.MethodGet, "/api/chat", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var msgs []domain.ChatMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msgs))
		for i := 1; i < len(msgs); i++ {
			assert.False(t, msgs[i].Timestamp.Before(msgs[i-1].Timestamp))
		}
	})

	t.Run("create", func(t *testing.T) {
		api := newTestAPI(t)
		api.chat.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.ChatMessage) bool {
			return m.From == "admin" && m.Text == "welcome"
		})).Return(nil)

		w := api.do(jsonRequest(t, http.MethodPost, "/api/chat", map[string]string{"from": "admin", "text": "welcome"}))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"from":"admin"`)
	})

	t.Run("invalid sender is 400", func(t *testing.T) {
		api := newTestAPI(t)
		api.chat.On("Create", mock.Anything, mock.Anything).Return(validationErr())

		w := api.do(jsonRequest(t, http.MethodPost, "/api/chat", map[string]string{"from": "robot", "text": "x"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		api := newTestAPI(t)
		api.chat.On("Delete", mock.Anything, testID).Return(nil)

		w := api.do(httptest.NewRequest(http.MethodDelete, "/api/chat/"+testID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
