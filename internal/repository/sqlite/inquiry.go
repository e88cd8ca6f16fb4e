package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
)

// InquiryRepository implements domain.InquiryRepository using SQLite.
type InquiryRepository struct {
	db *sql.DB
}

// NewInquiryRepository creates a new SQLite-backed InquiryRepository.
func NewInquiryRepository(db *DB) *InquiryRepository {
	return &InquiryRepository{db: db.SqlDB}
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO inquiries (name, email, message, created_at)
		 VALUES (?, ?, ?, ?)`,
		inquiry.Name, inquiry.Email, inquiry.Message, now,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	inquiry.ID = id
	inquiry.CreatedAt = now
	return nil
}
