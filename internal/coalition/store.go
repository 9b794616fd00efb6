package coalition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrStorageUnavailable = errors.New("coalition storage unavailable")
	ErrProfileNotFound    = errors.New("coalition profile not found")
)

// LoadProfiles returns all coalition profiles in stable order. Match relies
// on this ordering for its first-seen tie-break.
func LoadProfiles(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	err := db.DB.WithContext(ctx).Order("sort_order, id").Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return profiles, nil
}

// RecordAssignment upserts the session's coalition assignment and refreshes
// member counts inside one transaction. Counting and writing in the same tx
// replaces the read-count-then-write pattern that could undercount under
// concurrent assignments.
func RecordAssignment(ctx context.Context, sessionID, profileID uuid.UUID, score int) error {
	now := time.Now()

	err := db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The assignments table carries no foreign key, so an unknown
		// profile would otherwise leave a ghost row behind.
		var profile Profile
		if err := tx.Select("id").First(&profile, "id = ?", profileID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}

		var prev Assignment
		prevErr := tx.First(&prev, "session_id = ?", sessionID).Error
		if prevErr != nil && !errors.Is(prevErr, gorm.ErrRecordNotFound) {
			return prevErr
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"cluster_id", "match_score", "assigned_at",
			}),
		}).Create(&Assignment{
			SessionID:  sessionID,
			ClusterID:  profileID,
			MatchScore: score,
			AssignedAt: now,
		}).Error; err != nil {
			return err
		}

		if err := refreshMemberCount(tx, profileID, now); err != nil {
			return err
		}
		// A reassignment shrinks the previous coalition too.
		if prevErr == nil && prev.ClusterID != profileID {
			if err := refreshMemberCount(tx, prev.ClusterID, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func refreshMemberCount(tx *gorm.DB, profileID uuid.UUID, now time.Time) error {
	var count int64
	if err := tx.Model(&Assignment{}).Where("cluster_id = ?", profileID).Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&Profile{}).Where("id = ?", profileID).Updates(map[string]interface{}{
		"member_count": count,
		"updated_at":   now,
	}).Error
}
