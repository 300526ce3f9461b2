package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dwitvliet/coffee-chats/internal/handlers"
	"github.com/dwitvliet/coffee-chats/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret = "test-signing-secret"
	TeamID        = "T123456789"
)

type ServiceMocks struct {
	CoffeeServiceMock *mocks.MockCoffeeService
	SlackAPIMock      *mocks.MockSlackAPI
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		CoffeeServiceMock: mocks.NewMockCoffeeService(ctrl),
		SlackAPIMock:      mocks.NewMockSlackAPI(ctrl),
	}

	handler = handlers.New(m.SlackAPIMock, m.CoffeeServiceMock, SigningSecret, TeamID)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID, teamID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"test-channel"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	return signedFormRequest(t, "/slack/commands", form.Encode(), signingSecret)
}

// CreateInteractionRequest creates a properly signed block-action
// interaction request, the payload Slack sends on a survey button click.
func CreateInteractionRequest(t *testing.T, actionID, value, groupChannelID, userID, teamID, signingSecret string) *http.Request {
	t.Helper()

	payload := fmt.Sprintf(`{
		"type": "block_actions",
		"team": {"id": %q},
		"user": {"id": %q},
		"channel": {"id": %q},
		"actions": [
			{
				"type": "button",
				"block_id": "meeting_outcome",
				"action_id": %q,
				"value": %q
			}
		]
	}`, teamID, userID, groupChannelID, actionID, value)

	form := url.Values{"payload": {payload}}

	return signedFormRequest(t, "/slack/interactions", form.Encode(), signingSecret)
}

func signedFormRequest(t *testing.T, path, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
