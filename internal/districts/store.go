package districts

import (
	"context"
	"errors"
	"time"

	"github.com/nfmontgomery220/federal-budget-sub001/internal/db"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/districts/civic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCache is the Postgres-backed ZIP district cache.
type GormCache struct{}

func (GormCache) Get(ctx context.Context, zip string) (*ZipDistrict, error) {
	var entry ZipDistrict
	err := db.DB.WithContext(ctx).Where("zip = ?", zip).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (GormCache) Put(ctx context.Context, entry *ZipDistrict) error {
	return db.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "zip"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"state", "district", "lat", "lng", "source", "last_fetched",
		}),
	}).Create(entry).Error
}

// GormReps persists and serves representative records.
type GormReps struct{}

func (GormReps) UpsertOfficials(ctx context.Context, officials []civic.Official, state, district string) error {
	now := time.Now()
	for _, off := range officials {
		webForm := ""
		if off.WebFormURL != nil {
			webForm = *off.WebFormURL
		}
		rep := Representative{
			ExternalID:     off.OfficialID,
			FirstName:      off.FirstName,
			LastName:       off.LastName,
			Party:          off.Party,
			State:          state,
			District:       district,
			EmailAddresses: off.EmailAddresses,
			URLs:           off.Urls,
			WebFormURL:     webForm,
			PhotoOriginURL: off.PhotoOriginURL,
			Source:         "civic",
			LastSynced:     now,
		}
		if err := db.DB.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_name", "last_name", "party", "state", "district",
				"email_addresses", "urls", "web_form_url", "photo_origin_url",
				"source", "last_synced",
			}),
		}).Create(&rep).Error; err != nil {
			return err
		}
	}
	return nil
}

func (GormReps) ListByDistrict(ctx context.Context, state, district string) ([]Representative, error) {
	var reps []Representative
	err := db.DB.WithContext(ctx).
		Where("state = ? AND district = ?", state, district).
		Order("last_name, first_name").
		Find(&reps).Error
	if err != nil {
		return nil, err
	}
	return reps, nil
}
