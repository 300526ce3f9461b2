package database

import (
	"fmt"

	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
)

type pauseRepo struct {
	db dbConn
}

func newPauseRepo(db dbConn) contract.PauseRepo {
	return &pauseRepo{db: db}
}

// Add registers a pause entry. Adding an already-paused user is a no-op.
func (r *pauseRepo) Add(channelID int64, slackUserID string) error {
	query := `
		INSERT OR IGNORE INTO paused_users (channel_id, slack_user_id)
		VALUES (?, ?)
	`

	_, err := r.db.Exec(query, channelID, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to pause user: %w", err)
	}

	return nil
}

// Remove deletes a pause entry. Removing an entry that does not exist
// is a no-op.
func (r *pauseRepo) Remove(channelID int64, slackUserID string) error {
	query := `DELETE FROM paused_users WHERE channel_id = ? AND slack_user_id = ?`

	_, err := r.db.Exec(query, channelID, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to resume user: %w", err)
	}

	return nil
}

func (r *pauseRepo) ListByChannel(channelID int64) ([]string, error) {
	query := `SELECT slack_user_id FROM paused_users WHERE channel_id = ?`

	rows, err := r.db.Query(query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get paused users: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan paused user: %w", err)
		}
		userIDs = append(userIDs, userID)
	}

	return userIDs, nil
}
