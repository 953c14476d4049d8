package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-site-api/internal/domain"
	"content-site-api/internal/service"
)

// ChatHandler handles the chat log.
type ChatHandler struct {
	chatService service.ChatServiceInterface
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatServiceInterface) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatRequest struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// List handles GET /api/chat - oldest first.
func (h *ChatHandler) List(c *gin.Context) {
	msgs, err := h.chatService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Chat message")
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// Create handles POST /api/chat
func (h *ChatHandler) Create(c *gin.Context) {
	var req chatRequest
	if isJSONRequest(c) {
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err, "Chat message")
			return
		}
	} else {
		req = chatRequest{From: c.PostForm("from"), Text: c.PostForm("text")}
	}

	msg := &domain.ChatMessage{From: req.From, Text: req.Text}
	if err := h.chatService.Create(c.Request.Context(), msg); err != nil {
		respondError(c, err, "Chat message")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// Delete handles DELETE /api/chat/:id
func (h *ChatHandler) Delete(c *gin.Context) {
	if err := h.chatService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Chat message")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Chat message deleted successfully"})
}
