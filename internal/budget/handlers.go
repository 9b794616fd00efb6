package budget

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/coalition"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/db"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/utils"
	"gorm.io/gorm/clause"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// helper: write JSON with a specific HTTP status code
func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// CreateSession starts a new simulator session. Logged-in users get the
// session tied to their account; anonymous sessions are fine too.
func CreateSession(w http.ResponseWriter, r *http.Request) {
	session := Session{}
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		session.UserID = &userID
	}

	if err := db.DB.Create(&session).Error; err != nil {
		http.Error(w, "Failed to create session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONStatus(w, http.StatusCreated, session)
}

// GetSession returns a session with its adjustments.
func GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	var session Session
	if err := db.DB.Preload("Adjustments").First(&session, "id = ?", sessionID).Error; err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	writeJSON(w, session)
}

// SubmitAdjustments batch-upserts slider values for a session. Each
// (session, category) pair holds one row; resubmitting a category replaces
// its amount.
func SubmitAdjustments(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	var session Session
	if err := db.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	var input []struct {
		Category string  `json:"category"`
		Kind     string  `json:"kind"`
		Amount   float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(input) == 0 {
		http.Error(w, "At least one adjustment is required", http.StatusBadRequest)
		return
	}

	now := time.Now()
	adjustments := make([]Adjustment, 0, len(input))
	for _, in := range input {
		if in.Category == "" {
			http.Error(w, "category is required", http.StatusBadRequest)
			return
		}
		kind := in.Kind
		if kind == "" {
			kind = KindSpending
		}
		if kind != KindSpending && kind != KindRevenue {
			http.Error(w, "kind must be spending or revenue", http.StatusBadRequest)
			return
		}
		adjustments = append(adjustments, Adjustment{
			SessionID: session.ID,
			Category:  in.Category,
			Kind:      kind,
			Amount:    in.Amount,
			UpdatedAt: now,
		})
	}

	// Postgres rejects an upsert batch that touches the same row twice, so
	// repeated categories are collapsed before the write.
	adjustments = dedupeByCategory(adjustments)

	if err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "amount", "updated_at"}),
	}).Create(&adjustments).Error; err != nil {
		http.Error(w, "Failed to save adjustments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{"status": "saved", "count": len(adjustments)})
}

// dedupeByCategory collapses repeated categories in a batch, keeping the
// last value submitted for each.
func dedupeByCategory(adjustments []Adjustment) []Adjustment {
	index := make(map[string]int, len(adjustments))
	out := make([]Adjustment, 0, len(adjustments))
	for _, adj := range adjustments {
		if i, ok := index[adj.Category]; ok {
			out[i] = adj
			continue
		}
		index[adj.Category] = len(out)
		out = append(out, adj)
	}
	return out
}

// GetSummary returns the session's aggregated totals.
func GetSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	var adjustments []Adjustment
	if err := db.DB.Where("session_id = ?", sessionID).Find(&adjustments).Error; err != nil {
		http.Error(w, "Failed to fetch adjustments: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(adjustments) == 0 {
		http.Error(w, "No adjustments for session", http.StatusNotFound)
		return
	}

	writeJSON(w, Summarize(adjustments))
}

// AnalyzeResponse is what the frontend renders after analysis.
type AnalyzeResponse struct {
	Approaches coalition.Approaches `json:"approaches"`
	Profile    coalition.Profile    `json:"profile"`
	Score      int                  `json:"match_score"`
}

// Analyze runs the classify → match → record pipeline for a session.
// Re-running replaces the session's prior assignment.
func Analyze(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		http.Error(w, "Invalid session_id", http.StatusBadRequest)
		return
	}

	var session Session
	if err := db.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	var adjustments []Adjustment
	if err := db.DB.Where("session_id = ?", sessionID).Find(&adjustments).Error; err != nil {
		http.Error(w, "Failed to fetch adjustments: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(adjustments) == 0 {
		http.Error(w, "No adjustments for session", http.StatusBadRequest)
		return
	}

	spending, revenue := SpendingByCategory(adjustments)
	approaches := coalition.Classify(spending, revenue, coalition.DefaultPolicy())

	profiles, err := coalition.LoadProfiles(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch profiles: "+err.Error(), http.StatusInternalServerError)
		return
	}

	result, err := coalition.Match(approaches, profiles)
	if errors.Is(err, coalition.ErrNoProfiles) {
		http.Error(w, "No coalition profiles configured", http.StatusInternalServerError)
		return
	}

	if err := coalition.RecordAssignment(r.Context(), sessionID, result.Profile.ID, result.Score); err != nil {
		http.Error(w, "Failed to record assignment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := db.DB.Model(&session).Update("status", "completed").Error; err != nil {
		log.Printf("[Analyze] session=%s status update failed: %v", sessionID, err)
	}

	writeJSON(w, AnalyzeResponse{
		Approaches: approaches,
		Profile:    result.Profile,
		Score:      result.Score,
	})
}
