package districts

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Entry sources.
const (
	SourceExternalAPI = "external_api"
	SourceManual      = "manual"
)

// ZipDistrict is a cached postal-code → congressional-district mapping.
// Entries are effectively permanent: district boundaries change once per
// decade, so there is no TTL and refreshes replace in place.
type ZipDistrict struct {
	Zip         string    `gorm:"primaryKey;size:10" json:"zip"`
	State       string    `gorm:"size:2;not null" json:"state"`
	District    *string   `gorm:"size:4" json:"district"` // nil = at-large / state-level only
	Lat         *float64  `json:"lat,omitempty"`
	Lng         *float64  `json:"lng,omitempty"`
	Source      string    `gorm:"not null;default:'external_api'" json:"source"`
	LastFetched time.Time `json:"last_fetched"`
}

type Representative struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ExternalID     int            `gorm:"uniqueIndex" json:"external_id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Party          string         `json:"party"`
	State          string         `gorm:"size:2;index:idx_rep_state_district" json:"state"`
	District       string         `gorm:"size:4;index:idx_rep_state_district" json:"district"`
	EmailAddresses pq.StringArray `gorm:"type:text[]" json:"email_addresses"`
	URLs           pq.StringArray `gorm:"type:text[]" json:"urls"`
	WebFormURL     string         `json:"web_form_url"`
	PhotoOriginURL string         `json:"photo_origin_url"`

	// Provenance / syncing
	Source     string    `json:"source"` // "civic"
	LastSynced time.Time `json:"last_synced"`
}

func (ZipDistrict) TableName() string {
	return "districts.zip_districts"
}

func (Representative) TableName() string {
	return "districts.representatives"
}
