package coalition_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/coalition"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/db"
)

// dbAvailable tracks whether the database connection was established.
var dbAvailable bool

func TestMain(m *testing.M) {
	// Load .env.local relative to the repo root (two directories up from internal/coalition/).
	_ = godotenv.Load("../../.env.local")

	if os.Getenv("DATABASE_URL") == "" {
		// No database available — skip all integration tests gracefully.
		os.Exit(m.Run())
	}

	db.Connect()
	dbAvailable = true
	coalition.Init()

	os.Exit(m.Run())
}

// createTestProfile inserts a throwaway profile and registers cleanup for it
// and any assignments that point at it.
func createTestProfile(t *testing.T) coalition.Profile {
	t.Helper()
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	profile := coalition.Profile{
		ID:                  uuid.New(),
		Name:                fmt.Sprintf("test_profile_%s", uuid.New().String()[:8]),
		DefenseApproach:     coalition.Cut,
		EntitlementApproach: coalition.Maintain,
		TaxApproach:         coalition.Increase,
	}
	if err := db.DB.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	t.Cleanup(func() {
		db.DB.Where("cluster_id = ?", profile.ID).Delete(&coalition.Assignment{})
		db.DB.Delete(&coalition.Profile{}, "id = ?", profile.ID)
	})
	return profile
}

// TestRecordAssignment_UpsertsSingleRow verifies re-running an assignment
// for the same session replaces the row instead of duplicating it.
func TestRecordAssignment_UpsertsSingleRow(t *testing.T) {
	profile := createTestProfile(t)
	sessionID := uuid.New()
	ctx := context.Background()

	if err := coalition.RecordAssignment(ctx, sessionID, profile.ID, 67); err != nil {
		t.Fatalf("first RecordAssignment failed: %v", err)
	}
	if err := coalition.RecordAssignment(ctx, sessionID, profile.ID, 100); err != nil {
		t.Fatalf("second RecordAssignment failed: %v", err)
	}

	var count int64
	if err := db.DB.Model(&coalition.Assignment{}).
		Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 assignment row, got %d", count)
	}

	var assignment coalition.Assignment
	if err := db.DB.First(&assignment, "session_id = ?", sessionID).Error; err != nil {
		t.Fatalf("assignment fetch failed: %v", err)
	}
	if assignment.MatchScore != 100 {
		t.Errorf("expected match_score replaced with 100, got %d", assignment.MatchScore)
	}
}

// TestRecordAssignment_MemberCount verifies the count reflects N distinct
// sessions assigned to the same profile.
func TestRecordAssignment_MemberCount(t *testing.T) {
	profile := createTestProfile(t)
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		if err := coalition.RecordAssignment(ctx, uuid.New(), profile.ID, 100); err != nil {
			t.Fatalf("RecordAssignment %d failed: %v", i, err)
		}
	}

	var refreshed coalition.Profile
	if err := db.DB.First(&refreshed, "id = ?", profile.ID).Error; err != nil {
		t.Fatalf("profile fetch failed: %v", err)
	}
	if refreshed.MemberCount != n {
		t.Errorf("expected member_count %d, got %d", n, refreshed.MemberCount)
	}
}

// TestRecordAssignment_UnknownProfile verifies assigning to a profile that
// does not exist fails with ErrProfileNotFound and writes no assignment row.
func TestRecordAssignment_UnknownProfile(t *testing.T) {
	createTestProfile(t) // gates on DATABASE_URL
	sessionID := uuid.New()
	missingProfileID := uuid.New()

	err := coalition.RecordAssignment(context.Background(), sessionID, missingProfileID, 100)
	if !errors.Is(err, coalition.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	var count int64
	if err := db.DB.Model(&coalition.Assignment{}).
		Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no assignment row for unknown profile, got %d", count)
	}
}

// TestRecordAssignment_ReassignmentShrinksOldCoalition verifies both
// profiles' counts are refreshed when a session moves between coalitions.
func TestRecordAssignment_ReassignmentShrinksOldCoalition(t *testing.T) {
	first := createTestProfile(t)
	second := createTestProfile(t)
	sessionID := uuid.New()
	ctx := context.Background()

	if err := coalition.RecordAssignment(ctx, sessionID, first.ID, 100); err != nil {
		t.Fatalf("initial assignment failed: %v", err)
	}
	if err := coalition.RecordAssignment(ctx, sessionID, second.ID, 67); err != nil {
		t.Fatalf("reassignment failed: %v", err)
	}

	var oldProfile, newProfile coalition.Profile
	if err := db.DB.First(&oldProfile, "id = ?", first.ID).Error; err != nil {
		t.Fatalf("old profile fetch failed: %v", err)
	}
	if err := db.DB.First(&newProfile, "id = ?", second.ID).Error; err != nil {
		t.Fatalf("new profile fetch failed: %v", err)
	}

	if oldProfile.MemberCount != 0 {
		t.Errorf("expected old coalition member_count 0, got %d", oldProfile.MemberCount)
	}
	if newProfile.MemberCount != 1 {
		t.Errorf("expected new coalition member_count 1, got %d", newProfile.MemberCount)
	}
}
