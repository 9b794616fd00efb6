package coalition

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Approach is a policy stance relative to the baseline budget.
type Approach string

const (
	Cut      Approach = "cut"
	Maintain Approach = "maintain"
	Increase Approach = "increase"
)

// Approaches is the three-way classification of a budget session.
type Approaches struct {
	Defense     Approach `json:"defense_approach"`
	Entitlement Approach `json:"entitlement_approach"`
	Tax         Approach `json:"tax_approach"`
}

// Profile is a predefined coalition users are clustered into. The stance
// triple should be unique across the seeded set; this is not enforced at
// the schema level, matching moves on the first profile in sort order.
type Profile struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name                string         `gorm:"uniqueIndex;not null" json:"name"`
	Description         string         `json:"description"`
	DefenseApproach     Approach       `gorm:"not null" json:"defense_approach"`
	EntitlementApproach Approach       `gorm:"not null" json:"entitlement_approach"`
	TaxApproach         Approach       `gorm:"not null" json:"tax_approach"`
	Priorities          pq.StringArray `gorm:"type:text[]" json:"priorities"`
	MemberCount         int            `gorm:"default:0" json:"member_count"`
	SortOrder           int            `gorm:"default:0" json:"sort_order"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// Assignment links a budget session to its matched coalition. One row per
// session; re-analyzing a session overwrites it.
type Assignment struct {
	SessionID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"session_id"`
	ClusterID  uuid.UUID `gorm:"type:uuid;not null;index" json:"cluster_id"`
	MatchScore int       `json:"match_score"`
	AssignedAt time.Time `json:"assigned_at"`
}

func (Profile) TableName() string {
	return "coalition.profiles"
}

func (Assignment) TableName() string {
	return "coalition.assignments"
}
