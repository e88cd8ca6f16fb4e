package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/service"
)

// InquiryHandler handles contact-form submissions.
type InquiryHandler struct {
	inquiries *service.InquiryService
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(inquiries *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// HandleSubmit processes the contact form.
// POST /contact with fields name, email, message.
// Responds with a confirmation; there is no delivery behind it.
func (h *InquiryHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	email := r.FormValue("email")
	message := r.FormValue("message")

	if _, err := h.inquiries.Submit(r.Context(), name, email, message); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, "Name, email, and message are all required.")
			return
		}
		slog.Error("submit inquiry", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"status": "received",
	})
}
