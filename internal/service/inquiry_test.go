package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/service"
)

func TestInquiryService_Submit(t *testing.T) {
	db := newTestDB(t)
	inquiries := service.NewInquiryService(db.Inquiries())
	ctx := context.Background()

	inq, err := inquiries.Submit(ctx, "carol", "carol@example.com", "I cannot log in.")
	require.NoError(t, err)
	assert.NotZero(t, inq.ID)
}

func TestInquiryService_Submit_MissingField(t *testing.T) {
	db := newTestDB(t)
	inquiries := service.NewInquiryService(db.Inquiries())
	ctx := context.Background()

	cases := []struct {
		name    string
		n, e, m string
	}{
		{"empty name", "", "carol@example.com", "help"},
		{"empty email", "carol", "", "help"},
		{"empty message", "carol", "carol@example.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := inquiries.Submit(ctx, tc.n, tc.e, tc.m)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Nothing was persisted by any of the failed submissions.
	var count int
	require.NoError(t, db.SqlDB.QueryRow("SELECT COUNT(*) FROM inquiries").Scan(&count))
	assert.Zero(t, count)
}
