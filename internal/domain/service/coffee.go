package service

import (
	"fmt"
	"time"

	"github.com/dwitvliet/coffee-chats/internal/domain"
	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
	"github.com/dwitvliet/coffee-chats/internal/domain/entity"
)

type coffeeService struct {
	dm     contract.DataManager
	teamID string
}

func newCoffee(dm contract.DataManager, teamID string) *coffeeService {
	return &coffeeService{
		dm:     dm,
		teamID: teamID,
	}
}

// ensureChannel returns the channel's policy row, creating one with
// default settings the first time the channel is seen.
func ensureChannel(dm contract.DataManager, slackChannelID, teamID string, today time.Time) (*entity.Channel, error) {
	channel, err := dm.Channel().GetBySlackID(slackChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to check channel: %w", err)
	}

	if channel != nil {
		return channel, nil
	}

	channel = &entity.Channel{
		SlackChannelID: slackChannelID,
		SlackTeamID:    teamID,
		Frequency:      domain.DefaultFrequency,
		IsActive:       true,
		AddedDate:      dateOnly(today),
	}

	if err := dm.Channel().Create(channel); err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	return channel, nil
}

// PauseUser excludes a user from future pairings in a channel until
// they resume.
func (s *coffeeService) PauseUser(slackChannelID, slackUserID string) error {
	channel, err := ensureChannel(s.dm, slackChannelID, s.teamID, time.Now())
	if err != nil {
		return err
	}

	return s.dm.Pause().Add(channel.ID, slackUserID)
}

// ResumeUser includes a previously paused user in the next pairing.
func (s *coffeeService) ResumeUser(slackChannelID, slackUserID string) error {
	channel, err := ensureChannel(s.dm, slackChannelID, s.teamID, time.Now())
	if err != nil {
		return err
	}

	return s.dm.Pause().Remove(channel.ID, slackUserID)
}

// SetFrequency changes a channel's pairing cadence.
func (s *coffeeService) SetFrequency(slackChannelID, frequency string) error {
	if !domain.ValidFrequency(frequency) {
		return fmt.Errorf("invalid frequency %q, must be %s or %s",
			frequency, domain.FrequencyBiweekly, domain.FrequencyTriweekly)
	}

	channel, err := ensureChannel(s.dm, slackChannelID, s.teamID, time.Now())
	if err != nil {
		return err
	}

	channel.Frequency = frequency
	if err := s.dm.Channel().Update(channel); err != nil {
		return fmt.Errorf("failed to update channel: %w", err)
	}

	return nil
}

// RecordOutcome stores whether a group met. Returns
// domain.ErrRoundExpired when the channel no longer has an active round
// or the group does not belong to it; repeated calls are last-write-wins.
func (s *coffeeService) RecordOutcome(slackChannelID, groupChannelID string, met bool) error {
	channel, err := s.dm.Channel().GetBySlackID(slackChannelID)
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}
	if channel == nil {
		return domain.ErrRoundExpired
	}

	round, err := s.dm.Round().GetActiveByChannel(channel.ID)
	if err != nil {
		return fmt.Errorf("failed to get active round: %w", err)
	}
	if round == nil {
		return domain.ErrRoundExpired
	}

	updated, err := s.dm.Round().SetGroupMet(round.ID, groupChannelID, met)
	if err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}
	if !updated {
		return domain.ErrRoundExpired
	}

	return nil
}
