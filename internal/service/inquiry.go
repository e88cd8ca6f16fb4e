package service

import (
	"context"
	"fmt"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
)

// InquiryService accepts contact-form submissions.
type InquiryService struct {
	inquiries domain.InquiryRepository
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(inquiries domain.InquiryRepository) *InquiryService {
	return &InquiryService{inquiries: inquiries}
}

// Submit stores a contact inquiry. All three fields are required; nothing
// is persisted when validation fails. There is no email-format check and
// no delivery; the stored row is the only side effect.
func (s *InquiryService) Submit(ctx context.Context, name, email, message string) (*domain.Inquiry, error) {
	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("%w: name, email, and message are required", domain.ErrInvalidInput)
	}

	inquiry := &domain.Inquiry{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return inquiry, nil
}
