package command_test

import (
	"context"
	"errors"
	"testing"

	"bitbucket.org/sotavant/ikettle-skill/internal/command"
	"bitbucket.org/sotavant/ikettle-skill/internal/command/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		intent   string
		expected []command.Command
	}{
		{intent: "BoilIntent", expected: []command.Command{command.Boil}},
		{intent: "BoilAndKeepWarmIntent", expected: []command.Command{command.Boil, command.KeepWarm}},
		{intent: "KeepWarmIntent", expected: []command.Command{command.KeepWarm}},
		{intent: "OffIntent", expected: []command.Command{command.Off}},
	}

	for _, tc := range testCases {
		t.Run(tc.intent, func(t *testing.T) {
			cmds, err := command.Resolve(tc.intent)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cmds)
		})
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	cmds, err := command.Resolve("BoilAndKeepWarmIntent")
	require.NoError(t, err)
	cmds[0] = command.Off

	again, err := command.Resolve("BoilAndKeepWarmIntent")
	require.NoError(t, err)
	assert.Equal(t, []command.Command{command.Boil, command.KeepWarm}, again)
}

func TestDispatchUnknownIntent(t *testing.T) {
	for _, intent := range []string{"", "DanceIntent", "boilintent", "AMAZON.StopIntent"} {
		t.Run(intent, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := mock.NewMockSink(ctrl)
			s.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

			sent, err := command.Dispatch(context.Background(), s, intent)
			assert.ErrorIs(t, err, command.ErrUnknownIntent)
			assert.Empty(t, sent)

			var uerr *command.UnknownIntentError
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, intent, uerr.Intent)
		})
	}
}

func TestDispatchInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockSink(ctrl)

	gomock.InOrder(
		s.EXPECT().Send(gomock.Any(), command.Boil).Return(nil),
		s.EXPECT().Send(gomock.Any(), command.KeepWarm).Return(nil),
	)

	sent, err := command.Dispatch(context.Background(), s, "BoilAndKeepWarmIntent")
	require.NoError(t, err)
	assert.Equal(t, []command.Command{command.Boil, command.KeepWarm}, sent)
}

func TestDispatchStopsOnFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockSink(ctrl)

	s.EXPECT().Send(gomock.Any(), command.Boil).Return(errors.New("queue unavailable"))
	s.EXPECT().Send(gomock.Any(), command.KeepWarm).Times(0)

	sent, err := command.Dispatch(context.Background(), s, "BoilAndKeepWarmIntent")
	assert.ErrorIs(t, err, command.ErrCommandDelivery)
	assert.Empty(t, sent)
	assert.EqualError(t, err, "queue unavailable")
}

func TestDispatchPartialDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockSink(ctrl)

	gomock.InOrder(
		s.EXPECT().Send(gomock.Any(), command.Boil).Return(nil),
		s.EXPECT().Send(gomock.Any(), command.KeepWarm).Return(errors.New("throttled")),
	)

	sent, err := command.Dispatch(context.Background(), s, "BoilAndKeepWarmIntent")
	assert.Equal(t, []command.Command{command.Boil}, sent)

	var derr *command.DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, command.KeepWarm, derr.Command)
	assert.Equal(t, "throttled", derr.Reason())
}
