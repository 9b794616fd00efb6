package coalition

import "errors"

var ErrNoProfiles = errors.New("no coalition profiles configured")

// Partial-match weights. Tax carries the extra point so the three sum
// to 100 in integer arithmetic.
const (
	defenseWeight     = 33
	entitlementWeight = 33
	taxWeight         = 34
)

// MatchResult pairs the selected profile with how closely it fit.
type MatchResult struct {
	Profile Profile `json:"profile"`
	Score   int     `json:"score"`
}

// Match finds the best coalition for a set of approaches. A full
// three-field match scores 100 and wins immediately; otherwise profiles
// are scored per matching field and the strictly highest score wins, with
// ties going to the first profile in the given order. Callers pass
// profiles in stable sort order so the tie-break is deterministic.
func Match(a Approaches, profiles []Profile) (MatchResult, error) {
	if len(profiles) == 0 {
		return MatchResult{}, ErrNoProfiles
	}

	for _, p := range profiles {
		if p.DefenseApproach == a.Defense &&
			p.EntitlementApproach == a.Entitlement &&
			p.TaxApproach == a.Tax {
			return MatchResult{Profile: p, Score: 100}, nil
		}
	}

	best := MatchResult{Profile: profiles[0], Score: -1}
	for _, p := range profiles {
		score := 0
		if p.DefenseApproach == a.Defense {
			score += defenseWeight
		}
		if p.EntitlementApproach == a.Entitlement {
			score += entitlementWeight
		}
		if p.TaxApproach == a.Tax {
			score += taxWeight
		}
		if score > best.Score {
			best = MatchResult{Profile: p, Score: score}
		}
	}

	return best, nil
}
