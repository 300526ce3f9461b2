package contract

import (
	"context"
	"time"

	"github.com/dwitvliet/coffee-chats/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Channel() ChannelRepo
	Round() RoundRepo
	Pause() PauseRepo
	Question() QuestionRepo
}

// ChannelRepo defines the contract for the channel policy repository
type ChannelRepo interface {
	Create(channel *entity.Channel) error
	GetBySlackID(slackChannelID string) (*entity.Channel, error)
	Update(channel *entity.Channel) error
	SetLastRoundDate(channelID int64, date time.Time) error
	SetLastSurveyDate(channelID int64, date time.Time) error
	GetActiveChannels() ([]*entity.Channel, error)
}

// RoundRepo defines the contract for the round repository
type RoundRepo interface {
	Create(round *entity.Round) error
	GetActiveByChannel(channelID int64) (*entity.Round, error)
	GetRecentByChannel(channelID int64, limit int) ([]*entity.Round, error)
	Deactivate(roundID int64) error
	SetGroupMet(roundID int64, groupChannelID string, met bool) (bool, error)
	ExpireOlderThan(cutoff time.Time) (int64, error)
}

// PauseRepo defines the contract for the pause registry
type PauseRepo interface {
	Add(channelID int64, slackUserID string) error
	Remove(channelID int64, slackUserID string) error
	ListByChannel(channelID int64) ([]string, error)
}

// QuestionRepo defines the contract for icebreaker questions
type QuestionRepo interface {
	Create(question *entity.Question) error
	GetLeastUsedActive() (*entity.Question, error)
	IncrementTimesUsed(questionID int64) error
}
