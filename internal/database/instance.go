package database

import (
	"context"
	"fmt"

	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	channelRepo  contract.ChannelRepo
	roundRepo    contract.RoundRepo
	pauseRepo    contract.PauseRepo
	questionRepo contract.QuestionRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.repoInstances()
	return i
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.channelRepo = newChannelRepo(i.db.conn)
	i.roundRepo = newRoundRepo(i.db.conn)
	i.pauseRepo = newPauseRepo(i.db.conn)
	i.questionRepo = newQuestionRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		channelRepo:  newChannelRepo(db),
		roundRepo:    newRoundRepo(db),
		pauseRepo:    newPauseRepo(db),
		questionRepo: newQuestionRepo(db),
	}
}

// Channel returns the channel policy repository
func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}

// Round returns the round repository
func (i *instance) Round() contract.RoundRepo {
	return i.roundRepo
}

// Pause returns the pause registry repository
func (i *instance) Pause() contract.PauseRepo {
	return i.pauseRepo
}

// Question returns the icebreaker question repository
func (i *instance) Question() contract.QuestionRepo {
	return i.questionRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
