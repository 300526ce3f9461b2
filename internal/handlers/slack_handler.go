package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dwitvliet/coffee-chats/internal/domain"
	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
	slackcmd "github.com/dwitvliet/coffee-chats/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackAPI      contract.SlackAPI
	coffeeService contract.CoffeeService
	signingSecret string
	teamID        string
}

func New(slackAPI contract.SlackAPI, coffeeService contract.CoffeeService, signingSecret, teamID string) *SlackHandler {
	return &SlackHandler{
		slackAPI:      slackAPI,
		coffeeService: coffeeService,
		signingSecret: signingSecret,
		teamID:        teamID,
	}
}

// verifyRequest checks the Slack signature over timestamp+body and
// restores the request body for downstream parsing. No core logic runs
// when verification fails.
func (h *SlackHandler) verifyRequest(w http.ResponseWriter, r *http.Request) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}

	return true
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if !h.verifyRequest(w, r) {
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if h.teamID != "" && s.TeamID != h.teamID {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse("Unknown command. Must be either `/coffee_chat pause` or `/coffee_chat resume`."))
		return
	}

	h.respond(w, h.handleCommand(cmd, &s))
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	// Commands only make sense in real channels the bot has joined.
	if cmd.Type != slackcmd.CmdHelp {
		channelInfo, err := h.slackAPI.GetChannelInfo(slashCmd.ChannelID)
		if err != nil {
			return h.createErrorResponse("Failed to look up this channel.")
		}
		if channelInfo.IsMpIM || !channelInfo.IsMember {
			return &slack.Msg{
				ResponseType: slack.ResponseTypeEphemeral,
				Text:         fmt.Sprintf("%s only works in channels that I have been added to!", slashCmd.Command),
			}
		}
	}

	switch cmd.Type {
	case slackcmd.CmdPause:
		return h.handlePause(slashCmd)
	case slackcmd.CmdResume:
		return h.handleResume(slashCmd)
	case slackcmd.CmdSet:
		return h.handleSet(cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command. Must be either `/coffee_chat pause` or `/coffee_chat resume`.")
	}
}

func (h *SlackHandler) handlePause(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.coffeeService.PauseUser(slashCmd.ChannelID, slashCmd.UserID); err != nil {
		return h.createErrorResponse("Failed to pause intros.")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("Intros have been paused for you in <#%s>. "+
			"To be included in intros again, you can run `/coffee_chat resume` here at any time.",
			slashCmd.ChannelID),
	}
}

func (h *SlackHandler) handleResume(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.coffeeService.ResumeUser(slashCmd.ChannelID, slashCmd.UserID); err != nil {
		return h.createErrorResponse("Failed to resume intros.")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("Intros have been resumed for you in <#%s>. "+
			"You will be included in the next round of intros!", slashCmd.ChannelID),
	}
}

func (h *SlackHandler) handleSet(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/coffee_chat set biweekly` or `/coffee_chat set triweekly`")
	}

	frequency := cmd.Args[0]
	if err := h.coffeeService.SetFrequency(slashCmd.ChannelID, frequency); err != nil {
		return h.createErrorResponse("Use: `/coffee_chat set biweekly` or `/coffee_chat set triweekly`")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("Intros in <#%s> has been set to %s.", slashCmd.ChannelID, frequency),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// HandleInteraction processes survey button clicks.
func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	if !h.verifyRequest(w, r) {
		return
	}

	payload := r.FormValue("payload")
	if payload == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &callback); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if h.teamID != "" && callback.Team.ID != h.teamID {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	if len(callback.ActionCallback.BlockActions) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	action := callback.ActionCallback.BlockActions[0]
	slackChannelID := action.Value
	groupChannelID := callback.Channel.ID

	met := action.ActionID == slackcmd.ActionMeetingHappened ||
		action.ActionID == slackcmd.ActionMeetingWillHappen

	err := h.coffeeService.RecordOutcome(slackChannelID, groupChannelID, met)
	if errors.Is(err, domain.ErrRoundExpired) {
		h.respond(w, &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "Response button expired.",
		})
		return
	}
	if err != nil {
		h.respond(w, h.createErrorResponse("Failed to record your response."))
		return
	}

	h.respond(w, &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         slackcmd.OutcomeResponseText(action.ActionID, callback.User.ID),
	})
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, response *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
