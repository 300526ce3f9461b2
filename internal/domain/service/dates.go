package service

import (
	"time"

	"github.com/dwitvliet/coffee-chats/internal/domain"
	"github.com/dwitvliet/coffee-chats/internal/domain/entity"
)

// dateOnly truncates a timestamp to a UTC calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// previousMonday rounds a date back to the preceding Monday. A Monday
// is returned unchanged.
func previousMonday(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// nextPairingDate computes the Monday on which the channel's next round
// is due. Inactive channels never pair (sentinel far-future date). A
// channel with a prior round pairs on its cadence from the last round;
// a brand-new channel pairs on the first Monday at least a week after
// it was added, but never sooner than six days from today.
func nextPairingDate(channel *entity.Channel, today time.Time) time.Time {
	if !channel.IsActive {
		return domain.FarFuture
	}

	var next time.Time
	if channel.LastRoundDate != nil {
		days, ok := domain.FrequencyDays[channel.Frequency]
		if !ok {
			days = domain.FrequencyDays[domain.DefaultFrequency]
		}
		next = channel.LastRoundDate.AddDate(0, 0, days)
	} else {
		next = channel.AddedDate.AddDate(0, 0, 7)
		if soonest := today.AddDate(0, 0, 6); soonest.After(next) {
			next = soonest
		}
	}

	return previousMonday(next)
}

// nextSurveyDate computes the date the engagement survey is due, one
// week before the next pairing. A survey already sent for this round is
// suppressed via the sentinel far-future date.
func nextSurveyDate(channel *entity.Channel, today time.Time) time.Time {
	next := nextPairingDate(channel, today)
	if next.Equal(domain.FarFuture) {
		return domain.FarFuture
	}

	surveyDate := next.AddDate(0, 0, -domain.SurveyLeadDays)
	if channel.LastSurveyDate != nil && surveyDate.Equal(*channel.LastSurveyDate) {
		return domain.FarFuture
	}

	return surveyDate
}
