package service

import (
	"context"
	"testing"

	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
	"github.com/dwitvliet/coffee-chats/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockChannelRepo  *mocks.MockChannelRepo
	mockRoundRepo    *mocks.MockRoundRepo
	mockPauseRepo    *mocks.MockPauseRepo
	mockQuestionRepo *mocks.MockQuestionRepo
	mockSlackAPI     *mocks.MockSlackAPI
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	roundRepo := mocks.NewMockRoundRepo(ctrl)
	dm.EXPECT().Round().Return(roundRepo).AnyTimes()

	pauseRepo := mocks.NewMockPauseRepo(ctrl)
	dm.EXPECT().Pause().Return(pauseRepo).AnyTimes()

	questionRepo := mocks.NewMockQuestionRepo(ctrl)
	dm.EXPECT().Question().Return(questionRepo).AnyTimes()

	slackAPI := mocks.NewMockSlackAPI(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockChannelRepo:  channelRepo,
		mockRoundRepo:    roundRepo,
		mockPauseRepo:    pauseRepo,
		mockQuestionRepo: questionRepo,
		mockSlackAPI:     slackAPI,
	}

	// validate service creation
	coffeeService := newCoffee(dm, "T123456789")
	require.NotNil(t, coffeeService)

	return
}

// expectTransaction makes WithTransaction run its callback against the
// same mocked repositories as direct calls.
func expectTransaction(m allMocks) {
	m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(dm contract.DataManager) error) error {
			return fn(m.mockDataManager)
		}).Times(1)
}
