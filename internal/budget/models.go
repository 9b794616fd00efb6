package budget

import (
	"time"

	"github.com/google/uuid"
)

// Adjustment kinds.
const (
	KindSpending = "spending"
	KindRevenue  = "revenue"
)

// Session is one run through the budget simulator. Sessions may be
// anonymous; UserID is set when a logged-in user saves their work.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	Status    string    `gorm:"not null;default:'active'" json:"status"` // active, completed
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Adjustments []Adjustment `gorm:"foreignKey:SessionID" json:"adjustments,omitempty"`
}

// Adjustment is a single slider value: the session's chosen amount for one
// spending category or revenue source, in billions. One row per
// session+category; resubmitting replaces the amount.
type Adjustment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index:idx_adjustment_session_category,unique" json:"session_id"`
	Category  string    `gorm:"not null;index:idx_adjustment_session_category,unique" json:"category"`
	Kind      string    `gorm:"not null;default:'spending'" json:"kind"`
	Amount    float64   `gorm:"not null" json:"amount"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Session) TableName() string {
	return "budget.sessions"
}

func (Adjustment) TableName() string {
	return "budget.adjustments"
}
