package coalition

import (
	"github.com/nfmontgomery220/federal-budget-sub001/internal/auth"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/db"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/utils"
)

// SessionInfo implements middleware.SessionFetcher for the admin routes.
type SessionInfo struct{}

func (SessionInfo) FindSessionByID(id string) (utils.SessionData, error) {
	var session auth.Session
	err := db.DB.First(&session, "session_id = ?", id).Error
	if err != nil {
		return utils.SessionData{}, err
	}
	return utils.SessionData{
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
