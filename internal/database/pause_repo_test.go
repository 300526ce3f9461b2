package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauseRepository_AddAndList(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123456789")
	repo := newPauseRepo(db.conn)

	err := repo.Add(channel.ID, "U111")
	require.NoError(t, err, "Failed to pause user")

	err = repo.Add(channel.ID, "U222")
	require.NoError(t, err, "Failed to pause second user")

	// Pausing an already paused user is a no-op.
	err = repo.Add(channel.ID, "U111")
	require.NoError(t, err, "Re-pausing a user should not fail")

	paused, err := repo.ListByChannel(channel.ID)
	require.NoError(t, err, "Failed to list paused users")
	assert.ElementsMatch(t, []string{"U111", "U222"}, paused)
}

func TestPauseRepository_Remove(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123456789")
	repo := newPauseRepo(db.conn)

	err := repo.Add(channel.ID, "U111")
	require.NoError(t, err, "Failed to pause user")

	err = repo.Remove(channel.ID, "U111")
	require.NoError(t, err, "Failed to resume user")

	// Resuming a user who was never paused is a no-op.
	err = repo.Remove(channel.ID, "U999")
	require.NoError(t, err, "Resuming an unpaused user should not fail")

	paused, err := repo.ListByChannel(channel.ID)
	require.NoError(t, err, "Failed to list paused users")
	assert.Empty(t, paused)
}

func TestPauseRepository_PausesAreScopedPerChannel(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel1 := createTestChannel(t, db, "C111111111")
	channel2 := createTestChannel(t, db, "C222222222")
	repo := newPauseRepo(db.conn)

	err := repo.Add(channel1.ID, "U111")
	require.NoError(t, err, "Failed to pause user")

	paused, err := repo.ListByChannel(channel2.ID)
	require.NoError(t, err, "Failed to list paused users")
	assert.Empty(t, paused, "Expected pause in one channel to not affect another")
}
