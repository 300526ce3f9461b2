package service

import (
	"fmt"
	"log"
	"time"

	"github.com/dwitvliet/coffee-chats/internal/domain"
	"github.com/dwitvliet/coffee-chats/internal/domain/entity"
	slackmsg "github.com/dwitvliet/coffee-chats/internal/slack"
)

// previousRoundStats summarizes the channel's most recent round for the
// pairing announcement. Returns nil when the channel has no prior round
// or the round was already closed.
func (s *schedulerService) previousRoundStats(channelID int64) (*entity.RoundStats, error) {
	rounds, err := s.dm.Round().GetRecentByChannel(channelID, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent rounds: %w", err)
	}
	if len(rounds) == 0 || !rounds[0].IsActive {
		return nil, nil
	}

	stats := &entity.RoundStats{IntrosCount: len(rounds[0].Groups)}
	for _, group := range rounds[0].Groups {
		if group.Met {
			stats.MeetingsCount++
		}
	}

	return stats, nil
}

// applyInactivityPolicy pauses users who sat in non-met groups in each
// of the last rounds and removes them from the eligible set. Misses are
// recomputed from round history on every pairing; nothing is carried
// between ticks.
func (s *schedulerService) applyInactivityPolicy(channel *entity.Channel, eligible []string) ([]string, error) {
	rounds, err := s.dm.Round().GetRecentByChannel(channel.ID, domain.InactivityLookbackRounds)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent rounds: %w", err)
	}

	missed := make(map[string]int)
	for _, round := range rounds {
		for _, group := range round.Groups {
			if group.Met {
				continue
			}
			for _, user := range group.Members {
				missed[user]++
			}
		}
	}

	var kept []string
	for _, user := range eligible {
		if missed[user] < domain.MissedRoundsBeforePause {
			kept = append(kept, user)
			continue
		}

		if err := s.dm.Pause().Add(channel.ID, user); err != nil {
			return nil, fmt.Errorf("failed to auto-pause user: %w", err)
		}
		if _, _, err := s.slackAPI.PostMessage(user, slackmsg.AutoPauseMessage(channel.SlackChannelID)); err != nil {
			log.Printf("Failed to notify auto-paused user %s: %v", user, err)
		}
		log.Printf("Auto-paused user %s in channel %s after %d missed rounds",
			user, channel.SlackChannelID, missed[user])
	}

	return kept, nil
}

// expireStaleRounds force-closes rounds that have been active longer
// than the staleness threshold, survey outcome or not.
func (s *schedulerService) expireStaleRounds(today time.Time) error {
	cutoff := today.AddDate(0, 0, -domain.RoundStalenessDays)

	expired, err := s.dm.Round().ExpireOlderThan(cutoff)
	if err != nil {
		return err
	}
	if expired > 0 {
		log.Printf("Expired %d stale rounds", expired)
	}

	return nil
}
