package entity

import "time"

// Channel holds the pairing policy for one Slack channel the bot is a
// member of. Channels are never deleted, only deactivated.
type Channel struct {
	ID             int64      `json:"id" db:"id"`
	SlackChannelID string     `json:"slack_channel_id" db:"slack_channel_id"`
	SlackTeamID    string     `json:"slack_team_id" db:"slack_team_id"`
	Frequency      string     `json:"frequency" db:"frequency"` // biweekly or triweekly
	IsActive       bool       `json:"is_active" db:"is_active"`
	AddedDate      time.Time  `json:"added_date" db:"added_date"`
	LastRoundDate  *time.Time `json:"last_round_date" db:"last_round_date"`
	LastSurveyDate *time.Time `json:"last_survey_date" db:"last_survey_date"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// Round is one cycle of pairings for a channel. At most one round per
// channel is active at any time.
type Round struct {
	ID         int64     `json:"id" db:"id"`
	ChannelID  int64     `json:"channel_id" db:"channel_id"`
	RoundDate  time.Time `json:"round_date" db:"round_date"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	QuestionID int64     `json:"question_id" db:"question_id"`
	Groups     []*Group  `json:"groups"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Group is a 2-4 person subset of a round, mapped 1:1 to a Slack group
// conversation. Member order is the order the grouping returned.
type Group struct {
	ID             int64    `json:"id" db:"id"`
	RoundID        int64    `json:"round_id" db:"round_id"`
	GroupChannelID string   `json:"group_channel_id" db:"group_channel_id"`
	Met            bool     `json:"met" db:"met"`
	Members        []string `json:"members"`
}

// Question is a rotating icebreaker attached to each round.
type Question struct {
	ID        int64  `json:"id" db:"id"`
	Text      string `json:"question_text" db:"question_text"`
	IsActive  bool   `json:"is_active" db:"is_active"`
	TimesUsed int64  `json:"times_used" db:"times_used"`
}

// RoundStats summarizes the most recent round for the channel summary
// message.
type RoundStats struct {
	IntrosCount   int `json:"intros_count"`
	MeetingsCount int `json:"meetings_count"`
}

// CompletionPercent is MeetingsCount/IntrosCount rounded to a whole
// percentage.
func (s *RoundStats) CompletionPercent() int {
	if s == nil || s.IntrosCount == 0 {
		return 0
	}
	return int(float64(s.MeetingsCount)/float64(s.IntrosCount)*100 + 0.5)
}
