package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dwitvliet/coffee-chats/internal/domain"
	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
	"github.com/dwitvliet/coffee-chats/internal/domain/entity"
	sqlite3 "github.com/mattn/go-sqlite3"
)

type roundRepo struct {
	db dbConn
}

func newRoundRepo(db dbConn) contract.RoundRepo {
	return &roundRepo{db: db}
}

// Create inserts a round with its groups and members. A UNIQUE
// constraint on (channel_id, round_date) rejects a second round for the
// same channel and day, surfaced as domain.ErrDuplicateRound.
func (r *roundRepo) Create(round *entity.Round) error {
	query := `
		INSERT INTO rounds (channel_id, round_date, is_active, question_id)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		round.ChannelID,
		formatDate(round.RoundDate),
		round.IsActive,
		round.QuestionID,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrDuplicateRound
		}
		return fmt.Errorf("failed to create round: %w", err)
	}

	roundID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	round.ID = roundID

	for _, group := range round.Groups {
		groupResult, err := r.db.Exec(
			`INSERT INTO round_groups (round_id, group_channel_id, met) VALUES (?, ?, ?)`,
			roundID, group.GroupChannelID, group.Met,
		)
		if err != nil {
			return fmt.Errorf("failed to create round group: %w", err)
		}

		groupID, err := groupResult.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		group.ID = groupID
		group.RoundID = roundID

		for position, userID := range group.Members {
			_, err := r.db.Exec(
				`INSERT INTO round_group_members (group_id, slack_user_id, position) VALUES (?, ?, ?)`,
				groupID, userID, position,
			)
			if err != nil {
				return fmt.Errorf("failed to create group member: %w", err)
			}
		}
	}

	return nil
}

func (r *roundRepo) GetActiveByChannel(channelID int64) (*entity.Round, error) {
	query := `
		SELECT id, channel_id, round_date, is_active, question_id, created_at
		FROM rounds
		WHERE is_active = 1 AND channel_id = ?
	`

	round, err := r.scanRound(r.db.QueryRow(query, channelID))
	if err != nil || round == nil {
		return nil, err
	}

	if err := r.loadGroups(round); err != nil {
		return nil, err
	}

	return round, nil
}

// GetRecentByChannel returns the most recent rounds for a channel,
// newest first.
func (r *roundRepo) GetRecentByChannel(channelID int64, limit int) ([]*entity.Round, error) {
	query := `
		SELECT id, channel_id, round_date, is_active, question_id, created_at
		FROM rounds
		WHERE channel_id = ?
		ORDER BY round_date DESC
		LIMIT ?
	`

	return r.queryRounds(query, channelID, limit)
}

func (r *roundRepo) queryRounds(query string, args ...interface{}) ([]*entity.Round, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get rounds: %w", err)
	}
	defer rows.Close()

	var rounds []*entity.Round
	for rows.Next() {
		round, err := r.scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		rounds = append(rounds, round)
	}

	for _, round := range rounds {
		if err := r.loadGroups(round); err != nil {
			return nil, err
		}
	}

	return rounds, nil
}

func (r *roundRepo) scanRound(row rowScanner) (*entity.Round, error) {
	round := &entity.Round{}
	var roundDate string

	err := row.Scan(
		&round.ID,
		&round.ChannelID,
		&roundDate,
		&round.IsActive,
		&round.QuestionID,
		&round.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	if round.RoundDate, err = parseDate(roundDate); err != nil {
		return nil, err
	}

	return round, nil
}

func (r *roundRepo) loadGroups(round *entity.Round) error {
	query := `
		SELECT g.id, g.group_channel_id, g.met, m.slack_user_id
		FROM round_groups g
		JOIN round_group_members m ON m.group_id = g.id
		WHERE g.round_id = ?
		ORDER BY g.id, m.position
	`

	rows, err := r.db.Query(query, round.ID)
	if err != nil {
		return fmt.Errorf("failed to get round groups: %w", err)
	}
	defer rows.Close()

	groupsByID := make(map[int64]*entity.Group)
	for rows.Next() {
		var groupID int64
		var groupChannelID, userID string
		var met bool

		if err := rows.Scan(&groupID, &groupChannelID, &met, &userID); err != nil {
			return fmt.Errorf("failed to scan round group: %w", err)
		}

		group, ok := groupsByID[groupID]
		if !ok {
			group = &entity.Group{
				ID:             groupID,
				RoundID:        round.ID,
				GroupChannelID: groupChannelID,
				Met:            met,
			}
			groupsByID[groupID] = group
			round.Groups = append(round.Groups, group)
		}
		group.Members = append(group.Members, userID)
	}

	return nil
}

func (r *roundRepo) Deactivate(roundID int64) error {
	_, err := r.db.Exec(`UPDATE rounds SET is_active = 0 WHERE id = ?`, roundID)
	if err != nil {
		return fmt.Errorf("failed to deactivate round: %w", err)
	}

	return nil
}

// SetGroupMet records a meeting outcome, last write wins. Returns false
// when the channel's round is no longer active or the group is unknown.
func (r *roundRepo) SetGroupMet(roundID int64, groupChannelID string, met bool) (bool, error) {
	query := `
		UPDATE round_groups SET met = ?
		WHERE round_id = ? AND group_channel_id = ?
	`

	result, err := r.db.Exec(query, met, roundID, groupChannelID)
	if err != nil {
		return false, fmt.Errorf("failed to set group met: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected > 0, nil
}

// ExpireOlderThan force-expires rounds still active with a round date
// strictly before cutoff. Returns the number of rounds expired.
func (r *roundRepo) ExpireOlderThan(cutoff time.Time) (int64, error) {
	query := `UPDATE rounds SET is_active = 0 WHERE is_active = 1 AND round_date < ?`

	result, err := r.db.Exec(query, formatDate(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to expire rounds: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}
