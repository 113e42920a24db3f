package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/request"
	"github.com/samlamare/cafechill-api/internal/presentation/http/dto/response"
	"github.com/samlamare/cafechill-api/pkg/email"
)

// ContactHandler handles the public contact form
type ContactHandler struct {
	emailService *email.EmailService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(emailService *email.EmailService) *ContactHandler {
	return &ContactHandler{emailService: emailService}
}

// Submit forwards a contact form message to the shop inbox. The form
// always reports success to the visitor; delivery problems are a shop
// operations issue, not theirs.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if h.emailService.IsConfigured() {
		err := h.emailService.SendContactFormEmail(email.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			log.Printf("Warning: failed to forward contact message from %s: %v", req.Email, err)
		}
	}

	response.OK(c, "Message received. We'll get back to you soon.", nil)
}
