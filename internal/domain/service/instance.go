package service

import (
	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
)

type Services struct {
	Coffee    *coffeeService
	Scheduler *schedulerService
}

func New(dm contract.DataManager, slackAPI contract.SlackAPI, teamID string) *Services {
	return &Services{
		Coffee:    newCoffee(dm, teamID),
		Scheduler: newScheduler(dm, slackAPI, teamID),
	}
}
