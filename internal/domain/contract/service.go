package contract

import "time"

// CoffeeService is the surface consumed by the HTTP handlers.
type CoffeeService interface {
	PauseUser(slackChannelID, slackUserID string) error
	ResumeUser(slackChannelID, slackUserID string) error
	SetFrequency(slackChannelID, frequency string) error
	RecordOutcome(slackChannelID, groupChannelID string, met bool) error
}

// SchedulerService is the surface consumed by the daily ticker.
type SchedulerService interface {
	RunTick(today time.Time) error
}
