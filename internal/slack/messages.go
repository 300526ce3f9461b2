package slack

import (
	"fmt"

	"github.com/dwitvliet/coffee-chats/internal/domain/entity"
	api "github.com/slack-go/slack"
)

// Block action IDs for the engagement survey buttons.
const (
	ActionMeetingHappened     = "meeting_happened"
	ActionMeetingDidNotHappen = "meeting_did_not_happen"
	ActionMeetingWillHappen   = "meeting_will_happen"

	surveyBlockID = "meeting_outcome"
)

// GroupIntroMessage is the DM sent to a freshly paired group.
func GroupIntroMessage(slackChannelID string, groupSize int, question string) api.MsgOption {
	number := "two"
	if groupSize > 2 {
		number = "three"
	}

	text := fmt.Sprintf(
		"Hi! You %s have been paired this week in <#%s>! Please set up a calendar invite to have a fun chat!",
		number, slackChannelID,
	)
	if question != "" {
		text += fmt.Sprintf("\n\nIn case you need an icebreaker: %s", question)
	}

	return api.MsgOptionText(text, false)
}

// ChannelSummaryMessage announces a new round in the channel, with the
// previous round's completion rate when one exists.
func ChannelSummaryMessage(introCount int, stats *entity.RoundStats) api.MsgOption {
	text := fmt.Sprintf(
		"Hi, %d intros have just been sent out! Don't forget to set up calendar invites to have a fun chat!",
		introCount,
	)
	if stats != nil && stats.IntrosCount > 0 {
		text += fmt.Sprintf(
			"\n\nLast round, %d%% of the groups met. Let's beat that this time!",
			stats.CompletionPercent(),
		)
	}

	return api.MsgOptionText(text, false)
}

// AutoPauseMessage is DM'd to a user paused by the inactivity policy.
func AutoPauseMessage(slackChannelID string) api.MsgOption {
	return api.MsgOptionText(fmt.Sprintf(
		"Intros have been paused for you in <#%s> due to inactivity (missing your last two intros). "+
			"To be included in the next round of intros, run `/coffee_chat resume` in the channel at any time.",
		slackChannelID,
	), false)
}

// SurveyMessage asks a group whether their chat happened. The source
// channel ID rides along as the button value so the click handler can
// find the round.
func SurveyMessage(slackChannelID string) api.MsgOption {
	prompt := api.NewSectionBlock(
		api.NewTextBlockObject(api.MarkdownType,
			fmt.Sprintf("Did your coffee chat from <#%s> happen?", slackChannelID),
			false, false),
		nil, nil,
	)

	buttons := api.NewActionBlock(surveyBlockID,
		api.NewButtonBlockElement(ActionMeetingHappened, slackChannelID,
			api.NewTextBlockObject(api.PlainTextType, "We met", false, false)),
		api.NewButtonBlockElement(ActionMeetingWillHappen, slackChannelID,
			api.NewTextBlockObject(api.PlainTextType, "It's scheduled", false, false)),
		api.NewButtonBlockElement(ActionMeetingDidNotHappen, slackChannelID,
			api.NewTextBlockObject(api.PlainTextType, "We haven't met", false, false)),
	)

	return api.MsgOptionBlocks(prompt, buttons)
}

// OutcomeResponseText is the in-channel confirmation for a survey
// button click.
func OutcomeResponseText(actionID, slackUserID string) string {
	switch actionID {
	case ActionMeetingHappened:
		return fmt.Sprintf("<@%s> said that *you met*. Awesome!", slackUserID)
	case ActionMeetingDidNotHappen:
		return fmt.Sprintf("<@%s> said that *you haven't met yet*.", slackUserID)
	case ActionMeetingWillHappen:
		return fmt.Sprintf("<@%s> said that you haven't met yet, but *it's scheduled to happen*. That's great!", slackUserID)
	}
	return ""
}
