package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdPause  CommandType = "pause"
	CmdResume CommandType = "resume"
	CmdSet    CommandType = "set"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "set":
		cmd.Type = CmdSet
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Participation:*
• ` + "`/coffee_chat pause`" + ` - Pause intros for you in this channel
• ` + "`/coffee_chat resume`" + ` - Resume intros for you in this channel

*Channel settings:*
• ` + "`/coffee_chat set biweekly`" + ` - Pair every two weeks
• ` + "`/coffee_chat set triweekly`" + ` - Pair every three weeks`
}
