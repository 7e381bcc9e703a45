package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		want Policy
	}{
		{name: "regular", tier: TierRegular, want: Policy{MonthlyLimit: 5, DurationDays: 7}},
		{name: "basic", tier: TierBasic, want: Policy{MonthlyLimit: 10, DurationDays: 7}},
		{name: "premium", tier: TierPremium, want: Policy{MonthlyLimit: 15, DurationDays: 14}},
		{name: "elite", tier: TierElite, want: Policy{MonthlyLimit: 20, DurationDays: 30}},
		{name: "unknown tier falls back to regular", tier: Tier("GOLD"), want: Policy{MonthlyLimit: 5, DurationDays: 7}},
		{name: "empty tier falls back to regular", tier: Tier(""), want: Policy{MonthlyLimit: 5, DurationDays: 7}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PolicyFor(tt.tier))
		})
	}
}

func TestLoanStatus_Active(t *testing.T) {
	require.True(t, StatusIssued.Active())
	require.True(t, StatusRenewed.Active())
	require.False(t, StatusReturned.Active())
}

func TestReleaseResult_Replenished(t *testing.T) {
	require.True(t, ReleaseResult{Prev: 0, Available: 1}.Replenished())
	require.False(t, ReleaseResult{Prev: 1, Available: 2}.Replenished())
	require.False(t, ReleaseResult{Prev: 0, Available: 0}.Replenished())
}
