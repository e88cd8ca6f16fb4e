package domain

import (
	"context"
	"time"
)

// Inquiry is a contact-form submission. It has no relation to any other
// entity and is never read back by the application itself.
type Inquiry struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// InquiryRepository defines persistence operations for inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
}
