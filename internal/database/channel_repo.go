package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
	"github.com/dwitvliet/coffee-chats/internal/domain/entity"
)

type channelRepo struct {
	db dbConn
}

func newChannelRepo(db dbConn) contract.ChannelRepo {
	return &channelRepo{db: db}
}

func (r *channelRepo) Create(channel *entity.Channel) error {
	query := `
		INSERT INTO channels (slack_channel_id, slack_team_id, frequency, is_active, added_date)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		channel.SlackChannelID,
		channel.SlackTeamID,
		channel.Frequency,
		channel.IsActive,
		formatDate(channel.AddedDate),
	)
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	channel.ID = id
	return nil
}

func (r *channelRepo) GetBySlackID(slackChannelID string) (*entity.Channel, error) {
	query := `
		SELECT id, slack_channel_id, slack_team_id, frequency, is_active,
			added_date, last_round_date, last_survey_date, created_at, updated_at
		FROM channels
		WHERE slack_channel_id = ?
	`

	return r.scanChannel(r.db.QueryRow(query, slackChannelID))
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *channelRepo) scanChannel(row rowScanner) (*entity.Channel, error) {
	channel := &entity.Channel{}
	var addedDate string
	var lastRoundDate, lastSurveyDate sql.NullString

	err := row.Scan(
		&channel.ID,
		&channel.SlackChannelID,
		&channel.SlackTeamID,
		&channel.Frequency,
		&channel.IsActive,
		&addedDate,
		&lastRoundDate,
		&lastSurveyDate,
		&channel.CreatedAt,
		&channel.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	if channel.AddedDate, err = parseDate(addedDate); err != nil {
		return nil, err
	}
	if channel.LastRoundDate, err = parseNullDate(lastRoundDate); err != nil {
		return nil, err
	}
	if channel.LastSurveyDate, err = parseNullDate(lastSurveyDate); err != nil {
		return nil, err
	}

	return channel, nil
}

func (r *channelRepo) Update(channel *entity.Channel) error {
	query := `
		UPDATE channels SET
			frequency = ?,
			is_active = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		channel.Frequency,
		channel.IsActive,
		time.Now(),
		channel.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update channel: %w", err)
	}

	return nil
}

func (r *channelRepo) SetLastRoundDate(channelID int64, date time.Time) error {
	query := `
		UPDATE channels SET
			last_round_date = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, formatDate(date), time.Now(), channelID)
	if err != nil {
		return fmt.Errorf("failed to set last round date: %w", err)
	}

	return nil
}

func (r *channelRepo) SetLastSurveyDate(channelID int64, date time.Time) error {
	query := `
		UPDATE channels SET
			last_survey_date = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, formatDate(date), time.Now(), channelID)
	if err != nil {
		return fmt.Errorf("failed to set last survey date: %w", err)
	}

	return nil
}

func (r *channelRepo) GetActiveChannels() ([]*entity.Channel, error) {
	query := `
		SELECT id, slack_channel_id, slack_team_id, frequency, is_active,
			added_date, last_round_date, last_survey_date, created_at, updated_at
		FROM channels
		WHERE is_active = 1
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active channels: %w", err)
	}
	defer rows.Close()

	var channels []*entity.Channel
	for rows.Next() {
		channel, err := r.scanChannel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		channels = append(channels, channel)
	}

	return channels, nil
}
