package coalition

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/db"
	"gorm.io/gorm"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// ListProfiles returns all coalition profiles.
func ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := LoadProfiles(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch profiles: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, profiles)
}

// GetProfile returns a single coalition profile by ID.
func GetProfile(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profile_id")

	var profile Profile
	if err := db.DB.First(&profile, "id = ?", profileID).Error; err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	writeJSON(w, profile)
}

// MatchHandler scores a set of approaches against the profile set without
// recording anything.
func MatchHandler(w http.ResponseWriter, r *http.Request) {
	var approaches Approaches
	if err := json.NewDecoder(r.Body).Decode(&approaches); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profiles, err := LoadProfiles(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch profiles: "+err.Error(), http.StatusInternalServerError)
		return
	}

	result, err := Match(approaches, profiles)
	if errors.Is(err, ErrNoProfiles) {
		// Empty reference data is a deploy defect, not a user error.
		http.Error(w, "No coalition profiles configured", http.StatusInternalServerError)
		return
	}

	writeJSON(w, result)
}

// AssignHandler records a session's coalition assignment.
func AssignHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		SessionID  uuid.UUID `json:"session_id"`
		ClusterID  uuid.UUID `json:"cluster_id"`
		MatchScore int       `json:"match_score"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if input.SessionID == uuid.Nil || input.ClusterID == uuid.Nil {
		http.Error(w, "session_id and cluster_id are required", http.StatusBadRequest)
		return
	}
	if input.MatchScore < 0 || input.MatchScore > 100 {
		http.Error(w, "match_score must be between 0 and 100", http.StatusBadRequest)
		return
	}

	if err := RecordAssignment(r.Context(), input.SessionID, input.ClusterID, input.MatchScore); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to record assignment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"status": "assigned"})
}

func validApproach(a Approach) bool {
	return a == Cut || a == Maintain || a == Increase
}

// CreateProfile adds a coalition profile (admin only).
func CreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if profile.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	for _, a := range []Approach{profile.DefenseApproach, profile.EntitlementApproach, profile.TaxApproach} {
		if !validApproach(a) {
			http.Error(w, "Approaches must be cut, maintain, or increase", http.StatusBadRequest)
			return
		}
	}

	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if err := db.DB.Create(&profile).Error; err != nil {
		http.Error(w, "Failed to create profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(profile)
}

// UpdateProfile updates an existing coalition profile (admin only).
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profile_id")

	var profile Profile
	if err := db.DB.First(&profile, "id = ?", profileID).Error; err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	var updates struct {
		Name                *string   `json:"name,omitempty"`
		Description         *string   `json:"description,omitempty"`
		DefenseApproach     *Approach `json:"defense_approach,omitempty"`
		EntitlementApproach *Approach `json:"entitlement_approach,omitempty"`
		TaxApproach         *Approach `json:"tax_approach,omitempty"`
		Priorities          *[]string `json:"priorities,omitempty"`
		SortOrder           *int      `json:"sort_order,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updateMap := make(map[string]interface{})
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.Description != nil {
		updateMap["description"] = *updates.Description
	}
	for column, approach := range map[string]*Approach{
		"defense_approach":     updates.DefenseApproach,
		"entitlement_approach": updates.EntitlementApproach,
		"tax_approach":         updates.TaxApproach,
	} {
		if approach == nil {
			continue
		}
		if !validApproach(*approach) {
			http.Error(w, "Approaches must be cut, maintain, or increase", http.StatusBadRequest)
			return
		}
		updateMap[column] = *approach
	}
	if updates.Priorities != nil {
		updateMap["priorities"] = pq.StringArray(*updates.Priorities)
	}
	if updates.SortOrder != nil {
		updateMap["sort_order"] = *updates.SortOrder
	}

	if err := db.DB.Model(&profile).Updates(updateMap).Error; err != nil {
		http.Error(w, "Failed to update profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"status": "updated"})
}

// DeleteProfile removes a profile and its assignments (admin only).
func DeleteProfile(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profile_id")

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Assignment{}, "cluster_id = ?", profileID).Error; err != nil {
			return err
		}
		return tx.Delete(&Profile{}, "id = ?", profileID).Error
	})
	if err != nil {
		http.Error(w, "Failed to delete profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
