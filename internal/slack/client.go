package slack

import (
	"fmt"

	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
	api "github.com/slack-go/slack"
)

// Client implements contract.SlackAPI on top of the Slack Web API.
type Client struct {
	api *api.Client
}

func NewClient(apiClient *api.Client) contract.SlackAPI {
	return &Client{api: apiClient}
}

// ListMemberChannels returns the IDs of all non-archived channels the
// bot has been added to.
func (c *Client) ListMemberChannels() ([]string, error) {
	var channelIDs []string
	cursor := ""

	for {
		channels, nextCursor, err := c.api.GetConversationsForUser(&api.GetConversationsForUserParameters{
			Types:           []string{"public_channel", "private_channel"},
			ExcludeArchived: true,
			Limit:           999,
			Cursor:          cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list member channels: %w", err)
		}

		for _, channel := range channels {
			if channel.IsChannel {
				channelIDs = append(channelIDs, channel.ID)
			}
		}

		if nextCursor == "" {
			return channelIDs, nil
		}
		cursor = nextCursor
	}
}

// GetChannelMembers returns the channel's member user IDs with bot
// users filtered out.
func (c *Client) GetChannelMembers(channelID string) ([]string, error) {
	var memberIDs []string
	cursor := ""

	for {
		ids, nextCursor, err := c.api.GetUsersInConversation(&api.GetUsersInConversationParameters{
			ChannelID: channelID,
			Limit:     999,
			Cursor:    cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get channel members: %w", err)
		}

		memberIDs = append(memberIDs, ids...)

		if nextCursor == "" {
			break
		}
		cursor = nextCursor
	}

	var userIDs []string
	for _, memberID := range memberIDs {
		userInfo, err := c.api.GetUserInfo(memberID)
		if err != nil {
			return nil, fmt.Errorf("failed to get user info for %s: %w", memberID, err)
		}
		if userInfo.IsBot {
			continue
		}
		userIDs = append(userIDs, memberID)
	}

	return userIDs, nil
}

// OpenGroupConversation opens the group conversation for the given
// users. Slack re-derives the same conversation for the same user set.
func (c *Client) OpenGroupConversation(userIDs []string) (string, error) {
	channel, _, _, err := c.api.OpenConversation(&api.OpenConversationParameters{
		Users: userIDs,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open group conversation: %w", err)
	}

	return channel.ID, nil
}

func (c *Client) GetChannelInfo(channelID string) (*api.Channel, error) {
	channel, err := c.api.GetConversationInfo(&api.GetConversationInfoInput{
		ChannelID: channelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get channel info: %w", err)
	}

	return channel, nil
}

func (c *Client) PostMessage(channelID string, options ...api.MsgOption) (string, string, error) {
	return c.api.PostMessage(channelID, options...)
}
