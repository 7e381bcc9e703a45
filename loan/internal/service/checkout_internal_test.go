package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookhaven/loan-service/loan/internal/errs"
	"github.com/bookhaven/loan-service/loan/internal/model"
)

func Test_classifyStock(t *testing.T) {
	tests := []struct {
		available int
		wantType  model.NotificationType
		wantAlert bool
	}{
		{available: 0, wantType: model.AlertOutOfStock, wantAlert: true},
		{available: 1, wantType: model.AlertLowStock, wantAlert: true},
		{available: 3, wantType: model.AlertLowStock, wantAlert: true},
		{available: 4, wantAlert: false},
		{available: 100, wantAlert: false},
	}
	for _, tt := range tests {
		typ, ok := classifyStock(tt.available)
		require.Equal(t, tt.wantAlert, ok, "available=%d", tt.available)
		require.Equal(t, tt.wantType, typ, "available=%d", tt.available)
	}
}

func Test_checkoutOutcome(t *testing.T) {
	require.Equal(t, "insufficient_stock", checkoutOutcome(&errs.InsufficientStockError{ItemUid: "b1"}))
	require.Equal(t, "limit_exceeded", checkoutOutcome(&errs.LimitExceededError{}))
	require.Equal(t, "duplicate_active_loan", checkoutOutcome(&errs.DuplicateActiveLoanError{ItemUid: "b1"}))
	require.Equal(t, "not_found", checkoutOutcome(errs.ErrMemberNotFound))
	require.Equal(t, "infra_failure", checkoutOutcome(errs.ErrNotFound))
}
