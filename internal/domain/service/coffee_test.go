package service

import (
	"testing"

	"github.com/dwitvliet/coffee-chats/internal/domain"
	"github.com/dwitvliet/coffee-chats/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_coffeeService_PauseUser(t *testing.T) {
	type args struct {
		slackChannelID string
		slackUserID    string
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(mocks allMocks, args args)
		wantErr   bool
	}{
		{
			name: "Should pause user in existing channel",
			args: args{
				slackChannelID: "C123456789",
				slackUserID:    "U123456789",
			},
			buildMock: func(mocks allMocks, args args) {
				channel := &entity.Channel{
					ID:             1,
					SlackChannelID: args.slackChannelID,
					IsActive:       true,
				}

				mocks.mockChannelRepo.EXPECT().
					GetBySlackID(args.slackChannelID).
					Return(channel, nil).Times(1)

				mocks.mockPauseRepo.EXPECT().
					Add(int64(1), args.slackUserID).
					Return(nil).Times(1)
			},
		},
		{
			name: "Should create channel settings on first contact",
			args: args{
				slackChannelID: "C123456789",
				slackUserID:    "U123456789",
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockChannelRepo.EXPECT().
					GetBySlackID(args.slackChannelID).
					Return(nil, nil).Times(1)

				mocks.mockChannelRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(channel *entity.Channel) error {
						channel.ID = 7
						require.Equal(t, args.slackChannelID, channel.SlackChannelID)
						require.Equal(t, "T123456789", channel.SlackTeamID)
						require.Equal(t, domain.DefaultFrequency, channel.Frequency)
						require.True(t, channel.IsActive)
						require.False(t, channel.AddedDate.IsZero())
						return nil
					}).Times(1)

				mocks.mockPauseRepo.EXPECT().
					Add(int64(7), args.slackUserID).
					Return(nil).Times(1)
			},
		},
		{
			name: "Should return error when channel lookup fails",
			args: args{
				slackChannelID: "C123456789",
				slackUserID:    "U123456789",
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockChannelRepo.EXPECT().
					GetBySlackID(args.slackChannelID).
					Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newCoffee(m.mockDataManager, "T123456789")

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			err := s.PauseUser(tt.args.slackChannelID, tt.args.slackUserID)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_coffeeService_ResumeUser(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newCoffee(m.mockDataManager, "T123456789")

	channel := &entity.Channel{ID: 1, SlackChannelID: "C123456789", IsActive: true}

	m.mockChannelRepo.EXPECT().
		GetBySlackID("C123456789").
		Return(channel, nil).Times(1)

	m.mockPauseRepo.EXPECT().
		Remove(int64(1), "U123456789").
		Return(nil).Times(1)

	err := s.ResumeUser("C123456789", "U123456789")
	require.NoError(t, err)
}

func Test_coffeeService_SetFrequency(t *testing.T) {
	type args struct {
		slackChannelID string
		frequency      string
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(mocks allMocks, args args)
		wantErr   bool
	}{
		{
			name: "Should set biweekly frequency",
			args: args{
				slackChannelID: "C123456789",
				frequency:      domain.FrequencyBiweekly,
			},
			buildMock: func(mocks allMocks, args args) {
				channel := &entity.Channel{
					ID:             1,
					SlackChannelID: args.slackChannelID,
					Frequency:      domain.FrequencyTriweekly,
					IsActive:       true,
				}

				mocks.mockChannelRepo.EXPECT().
					GetBySlackID(args.slackChannelID).
					Return(channel, nil).Times(1)

				mocks.mockChannelRepo.EXPECT().
					Update(gomock.Any()).
					DoAndReturn(func(updated *entity.Channel) error {
						require.Equal(t, domain.FrequencyBiweekly, updated.Frequency)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should reject an unknown frequency without touching the database",
			args: args{
				slackChannelID: "C123456789",
				frequency:      "daily",
			},
			wantErr: true,
		},
		{
			name: "Should return error when update fails",
			args: args{
				slackChannelID: "C123456789",
				frequency:      domain.FrequencyTriweekly,
			},
			buildMock: func(mocks allMocks, args args) {
				channel := &entity.Channel{ID: 1, SlackChannelID: args.slackChannelID, IsActive: true}

				mocks.mockChannelRepo.EXPECT().
					GetBySlackID(args.slackChannelID).
					Return(channel, nil).Times(1)

				mocks.mockChannelRepo.EXPECT().
					Update(gomock.Any()).
					Return(assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newCoffee(m.mockDataManager, "T123456789")

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			err := s.SetFrequency(tt.args.slackChannelID, tt.args.frequency)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_coffeeService_RecordOutcome(t *testing.T) {
	type args struct {
		slackChannelID string
		groupChannelID string
		met            bool
	}
	tests := []struct {
		name        string
		args        args
		buildMock   func(mocks allMocks, args args)
		wantErr     bool
		wantExpired bool
	}{
		{
			name: "Should record that a group met",
			args: args{
				slackChannelID: "C123456789",
				groupChannelID: "G111",
				met:            true,
			},
			buildMock: func(mocks allMocks, args args) {
				channel := &entity.Channel{ID: 1, SlackChannelID: args.slackChannelID, IsActive: true}
				round := &entity.Round{ID: 10, ChannelID: 1, IsActive: true}

				mocks.mockChannelRepo.EXPECT().
					GetBySlackID(args.slackChannelID).
					Return(channel, nil).Times(1)

				mocks.mockRoundRepo.EXPECT().
					GetActiveByChannel(int64(1)).
					Return(round, nil).Times(1)

				mocks.mockRoundRepo.EXPECT().
					SetGroupMet(int64(10), args.groupChannelID, true).
					Return(true, nil).Times(1)
			},
		},
		{
			name: "Should report an expired round for an unknown channel",
			args: args{
				slackChannelID: "C123456789",
				groupChannelID: "G111",
				met:            true,
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockChannelRepo.EXPECT().
					GetBySlackID(args.slackChannelID).
					Return(nil, nil).Times(1)
			},
			wantErr:     true,
			wantExpired: true,
		},
		{
			name: "Should report an expired round when no round is active",
			args: args{
				slackChannelID: "C123456789",
				groupChannelID: "G111",
				met:            false,
			},
			buildMock: func(mocks allMocks, args args) {
				channel := &entity.Channel{ID: 1, SlackChannelID: args.slackChannelID, IsActive: true}

				mocks.mockChannelRepo.EXPECT().
					GetBySlackID(args.slackChannelID).
					Return(channel, nil).Times(1)

				mocks.mockRoundRepo.EXPECT().
					GetActiveByChannel(int64(1)).
					Return(nil, nil).Times(1)
			},
			wantErr:     true,
			wantExpired: true,
		},
		{
			name: "Should report an expired round when the group belongs to an older round",
			args: args{
				slackChannelID: "C123456789",
				groupChannelID: "G999",
				met:            true,
			},
			buildMock: func(mocks allMocks, args args) {
				channel := &entity.Channel{ID: 1, SlackChannelID: args.slackChannelID, IsActive: true}
				round := &entity.Round{ID: 10, ChannelID: 1, IsActive: true}

				mocks.mockChannelRepo.EXPECT().
					GetBySlackID(args.slackChannelID).
					Return(channel, nil).Times(1)

				mocks.mockRoundRepo.EXPECT().
					GetActiveByChannel(int64(1)).
					Return(round, nil).Times(1)

				mocks.mockRoundRepo.EXPECT().
					SetGroupMet(int64(10), args.groupChannelID, true).
					Return(false, nil).Times(1)
			},
			wantErr:     true,
			wantExpired: true,
		},
		{
			name: "Should return error when the update fails",
			args: args{
				slackChannelID: "C123456789",
				groupChannelID: "G111",
				met:            true,
			},
			buildMock: func(mocks allMocks, args args) {
				channel := &entity.Channel{ID: 1, SlackChannelID: args.slackChannelID, IsActive: true}
				round := &entity.Round{ID: 10, ChannelID: 1, IsActive: true}

				mocks.mockChannelRepo.EXPECT().
					GetBySlackID(args.slackChannelID).
					Return(channel, nil).Times(1)

				mocks.mockRoundRepo.EXPECT().
					GetActiveByChannel(int64(1)).
					Return(round, nil).Times(1)

				mocks.mockRoundRepo.EXPECT().
					SetGroupMet(int64(10), args.groupChannelID, true).
					Return(false, assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newCoffee(m.mockDataManager, "T123456789")

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			err := s.RecordOutcome(tt.args.slackChannelID, tt.args.groupChannelID, tt.args.met)

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantExpired {
					assert.ErrorIs(t, err, domain.ErrRoundExpired)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}
