package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookhaven/loan-service/loan/internal/errs"
	"github.com/bookhaven/loan-service/loan/internal/model"
)

func Test_verifyPolicy(t *testing.T) {
	basic := model.PolicyFor(model.TierBasic) // limit 10

	tests := []struct {
		name    string
		active  []activeLoan
		policy  model.Policy
		cart    []model.CartLine
		wantErr error
	}{
		{
			name:   "cart fits under the limit",
			active: []activeLoan{{ItemUid: "b1", Category: "fiction", Quantity: 4}},
			policy: basic,
			cart:   []model.CartLine{{ID: "b2", Quantity: 2}},
		},
		{
			name:   "active plus requested at the limit exactly",
			active: []activeLoan{{ItemUid: "b1", Category: "fiction", Quantity: 8}},
			policy: basic,
			cart:   []model.CartLine{{ID: "b2", Quantity: 2}},
		},
		{
			name: "one over the limit is rejected",
			active: []activeLoan{
				{ItemUid: "b1", Category: "fiction", Quantity: 5},
				{ItemUid: "b2", Category: "science", Quantity: 4},
			},
			policy:  basic,
			cart:    []model.CartLine{{ID: "b3", Quantity: 2}},
			wantErr: &errs.LimitExceededError{Active: 9, Requested: 2, Limit: 10},
		},
		{
			name: "membership pseudo-item does not count toward the limit",
			active: []activeLoan{
				{ItemUid: "b1", Category: "fiction", Quantity: 9},
				{ItemUid: "sub1", Category: model.CategoryMembership, Quantity: 1},
			},
			policy: basic,
			cart:   []model.CartLine{{ID: "b2", Quantity: 1}},
		},
		{
			name:    "cart line repeating an active loan is rejected",
			active:  []activeLoan{{ItemUid: "b1", Category: "fiction", Quantity: 1}},
			policy:  basic,
			cart:    []model.CartLine{{ID: "b1", Quantity: 1}},
			wantErr: &errs.DuplicateActiveLoanError{ItemUid: "b1"},
		},
		{
			name:    "membership pseudo-item still blocks a duplicate",
			active:  []activeLoan{{ItemUid: "sub1", Category: model.CategoryMembership, Quantity: 1}},
			policy:  basic,
			cart:    []model.CartLine{{ID: "sub1", Quantity: 1}},
			wantErr: &errs.DuplicateActiveLoanError{ItemUid: "sub1"},
		},
		{
			name: "limit check runs before the duplicate check",
			active: []activeLoan{
				{ItemUid: "b1", Category: "fiction", Quantity: 10},
			},
			policy:  basic,
			cart:    []model.CartLine{{ID: "b1", Quantity: 1}},
			wantErr: &errs.LimitExceededError{Active: 10, Requested: 1, Limit: 10},
		},
		{
			name:   "empty active set on the regular policy",
			policy: model.PolicyFor(model.TierRegular),
			cart:   []model.CartLine{{ID: "b1", Quantity: 5}},
		},
		{
			name:    "regular policy rejects six",
			policy:  model.PolicyFor(model.TierRegular),
			cart:    []model.CartLine{{ID: "b1", Quantity: 6}},
			wantErr: &errs.LimitExceededError{Active: 0, Requested: 6, Limit: 5},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := verifyPolicy(tt.active, tt.policy, tt.cart)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, tt.wantErr, err)
			require.Equal(t, tt.wantErr.Error(), err.Error())
		})
	}
}
