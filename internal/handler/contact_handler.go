package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-site-api/internal/domain"
	"content-site-api/internal/service"
)

// ContactHandler handles contact-form requests.
type ContactHandler struct {
	contactService service.ContactServiceInterface
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse acknowledges a stored submission.
type ContactResponse struct {
	Message string          `json:"message"`
	Contact *domain.Contact `json:"contact"`
}

// Create handles POST /api/contact
func (h *ContactHandler) Create(c *gin.Context) {
	var req contactRequest
	if isJSONRequest(c) {
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err, "Contact")
			return
		}
	} else {
		req = contactRequest{
			Name:    c.PostForm("name"),
			Email:   c.PostForm("email"),
			Message: c.PostForm("message"),
		}
	}

	contact := &domain.Contact{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := h.contactService.Submit(c.Request.Context(), contact); err != nil {
		respondError(c, err, "Contact")
		return
	}

	c.JSON(http.StatusOK, ContactResponse{
		Message: "Contact form submitted successfully",
		Contact: contact,
	})
}

// List handles GET /api/contact
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Contact")
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// Delete handles DELETE /api/contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Contact")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Contact deleted successfully"})
}
