package contract

import "github.com/slack-go/slack"

// SlackAPI defines the Slack operations the core needs.
// This allows mocking in tests while keeping the real implementation simple
type SlackAPI interface {
	// ListMemberChannels returns the IDs of all channels the bot is a
	// member of, archived channels excluded.
	ListMemberChannels() ([]string, error)

	// GetChannelMembers returns the non-bot member user IDs of a channel.
	GetChannelMembers(channelID string) ([]string, error)

	// OpenGroupConversation opens (or re-derives) the group conversation
	// for the given users and returns its channel ID.
	OpenGroupConversation(userIDs []string) (string, error)

	// GetChannelInfo retrieves conversation metadata, including whether
	// the bot is a member and whether it is a multi-party IM.
	GetChannelInfo(channelID string) (*slack.Channel, error)

	// PostMessage sends a message to a channel, group conversation or
	// user DM.
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
