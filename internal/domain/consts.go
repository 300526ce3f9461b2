package domain

import "time"

// Pairing frequencies supported per channel.
const (
	FrequencyBiweekly  = "biweekly"
	FrequencyTriweekly = "triweekly"
)

// DefaultFrequency is used when a channel is first seen by the bot.
const DefaultFrequency = FrequencyTriweekly

// FrequencyDays maps a frequency to the number of days between rounds.
var FrequencyDays = map[string]int{
	FrequencyBiweekly:  14,
	FrequencyTriweekly: 21,
}

// RoundStalenessDays is how long a round may stay active before the
// expiry sweep force-closes it, survey or no survey.
const RoundStalenessDays = 16

// MissedRoundsBeforePause is the number of non-met rounds a user can
// accumulate before being auto-paused.
const MissedRoundsBeforePause = 2

// InactivityLookbackRounds is how many recent rounds the inactivity
// policy scans when counting misses.
const InactivityLookbackRounds = 2

// SurveyLeadDays is how many days before the next pairing the
// engagement survey goes out.
const SurveyLeadDays = 7

// FarFuture is the sentinel date used for "never" (inactive channels,
// already-surveyed rounds).
var FarFuture = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// ValidFrequency reports whether value is a supported frequency.
func ValidFrequency(value string) bool {
	_, ok := FrequencyDays[value]
	return ok
}
