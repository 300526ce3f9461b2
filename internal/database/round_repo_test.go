package database

import (
	"context"
	"testing"
	"time"

	"github.com/dwitvliet/coffee-chats/internal/domain"
	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
	"github.com/dwitvliet/coffee-chats/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestChannel(t *testing.T, db *DB, slackChannelID string) *entity.Channel {
	t.Helper()

	channel := testChannel(slackChannelID)
	err := newChannelRepo(db.conn).Create(channel)
	require.NoError(t, err, "Failed to create test channel")

	return channel
}

func testRound(channelID int64, roundDate time.Time) *entity.Round {
	return &entity.Round{
		ChannelID: channelID,
		RoundDate: roundDate,
		IsActive:  true,
		Groups: []*entity.Group{
			{GroupChannelID: "G101", Members: []string{"U1", "U2", "U3"}},
			{GroupChannelID: "G102", Members: []string{"U4", "U5"}},
		},
	}
}

func TestRoundRepository_CreateAndGetActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123456789")
	repo := newRoundRepo(db.conn)

	roundDate := time.Date(2023, time.January, 16, 0, 0, 0, 0, time.UTC)
	round := testRound(channel.ID, roundDate)

	err := repo.Create(round)
	require.NoError(t, err, "Failed to create round")
	assert.NotZero(t, round.ID, "Expected round ID to be set after creation")

	found, err := repo.GetActiveByChannel(channel.ID)
	require.NoError(t, err, "Failed to get active round")
	require.NotNil(t, found, "Expected to find the active round")

	assert.Equal(t, round.ID, found.ID)
	assert.True(t, roundDate.Equal(found.RoundDate))
	assert.True(t, found.IsActive)
	require.Len(t, found.Groups, 2)

	// Member order within a group is preserved.
	assert.Equal(t, "G101", found.Groups[0].GroupChannelID)
	assert.Equal(t, []string{"U1", "U2", "U3"}, found.Groups[0].Members)
	assert.Equal(t, "G102", found.Groups[1].GroupChannelID)
	assert.Equal(t, []string{"U4", "U5"}, found.Groups[1].Members)
}

func TestRoundRepository_GetActiveByChannel_NotFound(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123456789")
	repo := newRoundRepo(db.conn)

	found, err := repo.GetActiveByChannel(channel.ID)
	require.NoError(t, err, "Unexpected error when no round exists")
	assert.Nil(t, found, "Expected nil when no round exists")
}

func TestRoundRepository_Create_RejectsDuplicateDate(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123456789")
	repo := newRoundRepo(db.conn)

	roundDate := time.Date(2023, time.January, 16, 0, 0, 0, 0, time.UTC)

	first := testRound(channel.ID, roundDate)
	err := repo.Create(first)
	require.NoError(t, err, "Failed to create first round")

	duplicate := testRound(channel.ID, roundDate)
	err = repo.Create(duplicate)
	require.ErrorIs(t, err, domain.ErrDuplicateRound)

	// The first round is untouched.
	found, err := repo.GetActiveByChannel(channel.ID)
	require.NoError(t, err, "Failed to get active round")
	require.NotNil(t, found, "Expected first round to still be active")
	assert.Equal(t, first.ID, found.ID)
	assert.Len(t, found.Groups, 2)
}

func TestRoundRepository_GetRecentByChannel(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123456789")
	repo := newRoundRepo(db.conn)

	dates := []time.Time{
		time.Date(2022, time.December, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2022, time.December, 26, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.January, 16, 0, 0, 0, 0, time.UTC),
	}

	for i, roundDate := range dates {
		round := testRound(channel.ID, roundDate)
		round.IsActive = i == len(dates)-1

		err := repo.Create(round)
		require.NoError(t, err, "Failed to create test round")
	}

	recent, err := repo.GetRecentByChannel(channel.ID, 2)
	require.NoError(t, err, "Failed to get recent rounds")
	require.Len(t, recent, 2, "Expected the two most recent rounds")

	// Newest first.
	assert.True(t, dates[2].Equal(recent[0].RoundDate))
	assert.True(t, dates[1].Equal(recent[1].RoundDate))
	assert.Len(t, recent[0].Groups, 2, "Expected groups to be loaded")
}

func TestRoundRepository_SetGroupMet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123456789")
	repo := newRoundRepo(db.conn)

	round := testRound(channel.ID, time.Date(2023, time.January, 16, 0, 0, 0, 0, time.UTC))
	err := repo.Create(round)
	require.NoError(t, err, "Failed to create test round")

	updated, err := repo.SetGroupMet(round.ID, "G101", true)
	require.NoError(t, err, "Failed to set group met")
	assert.True(t, updated, "Expected the group to be updated")

	found, err := repo.GetActiveByChannel(channel.ID)
	require.NoError(t, err)
	assert.True(t, found.Groups[0].Met)
	assert.False(t, found.Groups[1].Met)

	// Last write wins.
	updated, err = repo.SetGroupMet(round.ID, "G101", false)
	require.NoError(t, err, "Failed to overwrite group met")
	assert.True(t, updated)

	found, err = repo.GetActiveByChannel(channel.ID)
	require.NoError(t, err)
	assert.False(t, found.Groups[0].Met)

	// Unknown group conversation.
	updated, err = repo.SetGroupMet(round.ID, "G999", true)
	require.NoError(t, err, "Unexpected error for unknown group")
	assert.False(t, updated, "Expected no update for unknown group")
}

func TestRoundRepository_Deactivate(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123456789")
	repo := newRoundRepo(db.conn)

	round := testRound(channel.ID, time.Date(2023, time.January, 16, 0, 0, 0, 0, time.UTC))
	err := repo.Create(round)
	require.NoError(t, err, "Failed to create test round")

	err = repo.Deactivate(round.ID)
	require.NoError(t, err, "Failed to deactivate round")

	found, err := repo.GetActiveByChannel(channel.ID)
	require.NoError(t, err)
	assert.Nil(t, found, "Expected no active round after deactivation")
}

func TestRoundRepository_ExpireOlderThan(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	staleChannel := createTestChannel(t, db, "C111111111")
	freshChannel := createTestChannel(t, db, "C222222222")
	repo := newRoundRepo(db.conn)

	stale := testRound(staleChannel.ID, time.Date(2022, time.December, 26, 0, 0, 0, 0, time.UTC))
	err := repo.Create(stale)
	require.NoError(t, err, "Failed to create stale round")

	fresh := testRound(freshChannel.ID, time.Date(2023, time.January, 9, 0, 0, 0, 0, time.UTC))
	err = repo.Create(fresh)
	require.NoError(t, err, "Failed to create fresh round")

	expired, err := repo.ExpireOlderThan(time.Date(2022, time.December, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err, "Failed to expire stale rounds")
	assert.Equal(t, int64(1), expired, "Expected only the stale round to expire")

	found, err := repo.GetActiveByChannel(staleChannel.ID)
	require.NoError(t, err)
	assert.Nil(t, found, "Expected stale round to be inactive")

	found, err = repo.GetActiveByChannel(freshChannel.ID)
	require.NoError(t, err)
	require.NotNil(t, found, "Expected fresh round to stay active")
	assert.Equal(t, fresh.ID, found.ID)
}

func TestInstance_WithTransaction_RoundTransition(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123456789")
	dm := NewInstance(db)

	oldDate := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	newDate := time.Date(2023, time.January, 16, 0, 0, 0, 0, time.UTC)

	oldRound := testRound(channel.ID, oldDate)
	err := dm.Round().Create(oldRound)
	require.NoError(t, err, "Failed to create old round")

	newRound := testRound(channel.ID, newDate)

	err = dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Round().Deactivate(oldRound.ID); err != nil {
			return err
		}
		if err := tx.Round().Create(newRound); err != nil {
			return err
		}
		return tx.Channel().SetLastRoundDate(channel.ID, newDate)
	})
	require.NoError(t, err, "Failed to run round transition transaction")

	// The new round is the only active one.
	active, err := dm.Round().GetActiveByChannel(channel.ID)
	require.NoError(t, err)
	require.NotNil(t, active, "Expected an active round")
	assert.Equal(t, newRound.ID, active.ID)

	updated, err := dm.Channel().GetBySlackID("C123456789")
	require.NoError(t, err)
	require.NotNil(t, updated.LastRoundDate)
	assert.True(t, newDate.Equal(*updated.LastRoundDate))
}

func TestInstance_WithTransaction_RollsBackOnError(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123456789")
	dm := NewInstance(db)

	roundDate := time.Date(2023, time.January, 16, 0, 0, 0, 0, time.UTC)

	round := testRound(channel.ID, roundDate)
	err := dm.Round().Create(round)
	require.NoError(t, err, "Failed to create round")

	// A duplicate inside a transaction rolls back the deactivation too.
	err = dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Round().Deactivate(round.ID); err != nil {
			return err
		}
		return tx.Round().Create(testRound(channel.ID, roundDate))
	})
	require.ErrorIs(t, err, domain.ErrDuplicateRound)

	active, err := dm.Round().GetActiveByChannel(channel.ID)
	require.NoError(t, err)
	require.NotNil(t, active, "Expected original round to still be active after rollback")
	assert.Equal(t, round.ID, active.ID)
}
