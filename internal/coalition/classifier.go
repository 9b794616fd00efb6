package coalition

import "strings"

// ApproachPolicy holds the classification thresholds and category keyword
// buckets. Thresholds are in billions of dollars, calibrated against the
// baseline federal budget. The keyword lists must stay disjoint across
// buckets; a category name is summed into every bucket whose keywords it
// contains.
type ApproachPolicy struct {
	DefenseCutBelow      float64
	DefenseIncreaseAbove float64

	EntitlementCutBelow      float64
	EntitlementIncreaseAbove float64

	RevenueCutBelow      float64
	RevenueIncreaseAbove float64

	DefenseKeywords     []string
	EntitlementKeywords []string
}

// DefaultPolicy returns the thresholds the simulator ships with.
func DefaultPolicy() ApproachPolicy {
	return ApproachPolicy{
		DefenseCutBelow:      750,
		DefenseIncreaseAbove: 850,

		EntitlementCutBelow:      2000,
		EntitlementIncreaseAbove: 2500,

		RevenueCutBelow:      4000,
		RevenueIncreaseAbove: 5000,

		DefenseKeywords:     []string{"defense", "military", "army", "navy", "air_force"},
		EntitlementKeywords: []string{"social_security", "medicare", "medicaid"},
	}
}

// bucketSum totals the categories whose lowercase name contains any of the
// keywords. A category matching multiple keywords in the same bucket is
// counted once.
func bucketSum(spending map[string]float64, keywords []string) float64 {
	var sum float64
	for category, amount := range spending {
		name := strings.ToLower(category)
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				sum += amount
				break
			}
		}
	}
	return sum
}

func classifySum(sum, cutBelow, increaseAbove float64) Approach {
	switch {
	case sum < cutBelow:
		return Cut
	case sum > increaseAbove:
		return Increase
	default:
		return Maintain
	}
}

// Classify derives the three-way approach classification from a session's
// spending by category and total revenue. Boundary values classify as
// maintain: the cut/increase branches use strict inequalities.
func Classify(spending map[string]float64, totalRevenue float64, p ApproachPolicy) Approaches {
	defense := bucketSum(spending, p.DefenseKeywords)
	entitlement := bucketSum(spending, p.EntitlementKeywords)

	return Approaches{
		Defense:     classifySum(defense, p.DefenseCutBelow, p.DefenseIncreaseAbove),
		Entitlement: classifySum(entitlement, p.EntitlementCutBelow, p.EntitlementIncreaseAbove),
		Tax:         classifySum(totalRevenue, p.RevenueCutBelow, p.RevenueIncreaseAbove),
	}
}
