package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dwitvliet/coffee-chats/internal/domain"
	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
	"github.com/dwitvliet/coffee-chats/internal/domain/entity"
	slackmsg "github.com/dwitvliet/coffee-chats/internal/slack"
)

type schedulerService struct {
	dm       contract.DataManager
	slackAPI contract.SlackAPI
	teamID   string
}

func newScheduler(dm contract.DataManager, slackAPI contract.SlackAPI, teamID string) *schedulerService {
	return &schedulerService{
		dm:       dm,
		slackAPI: slackAPI,
		teamID:   teamID,
	}
}

// RunTick runs one scheduling pass: for every channel the bot is a
// member of, pair users if today is the channel's pairing day, or send
// the engagement survey if today is its survey day. A failure in one
// channel never aborts the others; every mutation is keyed by channel
// and date, so a rerun of the same tick is harmless.
func (s *schedulerService) RunTick(today time.Time) error {
	today = dateOnly(today)

	if err := s.expireStaleRounds(today); err != nil {
		log.Printf("Failed to expire stale rounds: %v", err)
	}

	channelIDs, err := s.slackAPI.ListMemberChannels()
	if err != nil {
		return fmt.Errorf("failed to list member channels: %w", err)
	}

	// The icebreaker is selected once on the first paired channel and
	// reused for the rest of the pass.
	var question *entity.Question

	for _, slackChannelID := range channelIDs {
		channel, err := ensureChannel(s.dm, slackChannelID, s.teamID, today)
		if err != nil {
			log.Printf("Failed to load settings for channel %s: %v", slackChannelID, err)
			continue
		}

		if !channel.IsActive {
			log.Printf("Skipping inactive channel %s", slackChannelID)
			continue
		}

		switch {
		case today.Equal(nextPairingDate(channel, today)):
			if question == nil {
				question, err = s.nextQuestion()
				if err != nil {
					log.Printf("Failed to get icebreaker question: %v", err)
					question = &entity.Question{}
				}
			}
			if err := s.pairChannel(channel, question, today); err != nil {
				log.Printf("Failed to pair channel %s: %v", slackChannelID, err)
			}

		case today.Equal(nextSurveyDate(channel, today)):
			if err := s.surveyChannel(channel, today); err != nil {
				log.Printf("Failed to survey channel %s: %v", slackChannelID, err)
			}
		}
	}

	return nil
}

// pairChannel creates a new round for a channel: filters the eligible
// set, groups it, opens one conversation per group, persists the round
// and notifies everyone involved.
func (s *schedulerService) pairChannel(channel *entity.Channel, question *entity.Question, today time.Time) error {
	active, err := s.dm.Round().GetActiveByChannel(channel.ID)
	if err != nil {
		return fmt.Errorf("failed to get active round: %w", err)
	}
	if active != nil && active.RoundDate.Equal(today) {
		log.Printf("Skipping channel %s: intros were already sent today", channel.SlackChannelID)
		return nil
	}

	members, err := s.slackAPI.GetChannelMembers(channel.SlackChannelID)
	if err != nil {
		return fmt.Errorf("failed to get channel members: %w", err)
	}

	paused, err := s.dm.Pause().ListByChannel(channel.ID)
	if err != nil {
		return fmt.Errorf("failed to get paused users: %w", err)
	}
	eligible := exclude(members, paused)

	// Stats for the summary message, before this round replaces the
	// previous one.
	stats, err := s.previousRoundStats(channel.ID)
	if err != nil {
		return err
	}

	eligible, err = s.applyInactivityPolicy(channel, eligible)
	if err != nil {
		return err
	}

	log.Printf("%d users to pair in channel %s", len(eligible), channel.SlackChannelID)
	if len(eligible) < 2 {
		log.Printf("Too few users to pair in channel %s", channel.SlackChannelID)
		return nil
	}

	groups := splitIntoGroups(eligible)

	round := &entity.Round{
		ChannelID:  channel.ID,
		RoundDate:  today,
		IsActive:   true,
		QuestionID: question.ID,
	}
	for _, groupMembers := range groups {
		groupChannelID, err := s.slackAPI.OpenGroupConversation(groupMembers)
		if err != nil {
			return fmt.Errorf("failed to open group conversation: %w", err)
		}
		round.Groups = append(round.Groups, &entity.Group{
			GroupChannelID: groupChannelID,
			Members:        groupMembers,
		})
	}

	err = s.dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if active != nil {
			if err := tx.Round().Deactivate(active.ID); err != nil {
				return err
			}
		}
		if err := tx.Round().Create(round); err != nil {
			return err
		}
		return tx.Channel().SetLastRoundDate(channel.ID, today)
	})
	if errors.Is(err, domain.ErrDuplicateRound) {
		log.Printf("Skipping channel %s: round already exists for today", channel.SlackChannelID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	for _, group := range round.Groups {
		_, _, err := s.slackAPI.PostMessage(group.GroupChannelID,
			slackmsg.GroupIntroMessage(channel.SlackChannelID, len(group.Members), question.Text))
		if err != nil {
			log.Printf("Failed to message group %s: %v", group.GroupChannelID, err)
		}
	}

	_, _, err = s.slackAPI.PostMessage(channel.SlackChannelID,
		slackmsg.ChannelSummaryMessage(len(round.Groups), stats))
	if err != nil {
		log.Printf("Failed to send summary to channel %s: %v", channel.SlackChannelID, err)
	}

	log.Printf("Paired %d users into %d groups in channel %s",
		len(eligible), len(round.Groups), channel.SlackChannelID)
	return nil
}

// surveyChannel asks every group of the channel's active round whether
// their chat happened.
func (s *schedulerService) surveyChannel(channel *entity.Channel, today time.Time) error {
	round, err := s.dm.Round().GetActiveByChannel(channel.ID)
	if err != nil {
		return fmt.Errorf("failed to get active round: %w", err)
	}

	if round == nil {
		log.Printf("No active round to survey in channel %s", channel.SlackChannelID)
	} else {
		for _, group := range round.Groups {
			_, _, err := s.slackAPI.PostMessage(group.GroupChannelID,
				slackmsg.SurveyMessage(channel.SlackChannelID))
			if err != nil {
				log.Printf("Failed to survey group %s: %v", group.GroupChannelID, err)
			}
		}
	}

	// Recorded even when there was nothing to survey, so the date is
	// not retried every tick until the next pairing.
	if err := s.dm.Channel().SetLastSurveyDate(channel.ID, today); err != nil {
		return fmt.Errorf("failed to set last survey date: %w", err)
	}

	return nil
}

// nextQuestion fetches the least-used active icebreaker and bumps its
// usage counter. Returns an empty question when the pool is empty.
func (s *schedulerService) nextQuestion() (*entity.Question, error) {
	question, err := s.dm.Question().GetLeastUsedActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	if question == nil {
		return &entity.Question{}, nil
	}

	if err := s.dm.Question().IncrementTimesUsed(question.ID); err != nil {
		return nil, fmt.Errorf("failed to increment question usage: %w", err)
	}

	return question, nil
}

// exclude returns users minus everyone in excluded, preserving order.
func exclude(users []string, excluded []string) []string {
	excludedSet := make(map[string]bool, len(excluded))
	for _, user := range excluded {
		excludedSet[user] = true
	}

	var kept []string
	for _, user := range users {
		if !excludedSet[user] {
			kept = append(kept, user)
		}
	}
	return kept
}
