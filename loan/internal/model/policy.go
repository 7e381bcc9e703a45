package model

// Policy is the per-tier borrowing policy.
type Policy struct {
	MonthlyLimit int
	DurationDays int
}

var policies = map[Tier]Policy{
	TierRegular: {MonthlyLimit: 5, DurationDays: 7},
	TierBasic:   {MonthlyLimit: 10, DurationDays: 7},
	TierPremium: {MonthlyLimit: 15, DurationDays: 14},
	TierElite:   {MonthlyLimit: 20, DurationDays: 30},
}

// PolicyFor resolves the borrowing policy for a tier. Unknown or empty tiers
// fall back to the regular policy.
func PolicyFor(tier Tier) Policy {
	if p, ok := policies[tier]; ok {
		return p
	}
	return policies[TierRegular]
}
