package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxRelayer struct{ mock.Mock }

func (m *MockOutboxRelayer) Handle(ctx context.Context, command commands.RelayOutboxCommand) (int, error) {
	args := m.Called(ctx, command)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOutboxRelayJob_RunOnce_DrainsUntilShortBatch(t *testing.T) {
	relayer := new(MockOutboxRelayer)
	job := NewOutboxRelayJob(relayer, "", 10, discardLogger())

	mock.InOrder(
		relayer.On("Handle", mock.Anything, mock.Anything).Return(10, nil).Twice(),
		relayer.On("Handle", mock.Anything, mock.Anything).Return(3, nil).Once(),
	)

	n, err := job.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 23, n)
	relayer.AssertNumberOfCalls(t, "Handle", 3)
}

func TestOutboxRelayJob_RunOnce_StopsAtTickLimit(t *testing.T) {
	relayer := new(MockOutboxRelayer)
	job := NewOutboxRelayJob(relayer, "", 5, discardLogger())

	relayer.On("Handle", mock.Anything, mock.Anything).Return(5, nil)

	n, err := job.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5*maxBatchesPerTick, n)
	relayer.AssertNumberOfCalls(t, "Handle", maxBatchesPerTick)
}

func TestOutboxRelayJob_RunOnce_ReturnsHandlerError(t *testing.T) {
	relayer := new(MockOutboxRelayer)
	job := NewOutboxRelayJob(relayer, "", 5, discardLogger())
	broker := errors.New("broker unavailable")

	mock.InOrder(
		relayer.On("Handle", mock.Anything, mock.Anything).Return(5, nil).Once(),
		relayer.On("Handle", mock.Anything, mock.Anything).Return(0, broker).Once(),
	)

	n, err := job.RunOnce(context.Background())

	require.ErrorIs(t, err, broker)
	assert.Equal(t, 5, n)
}

func TestOutboxRelayJob_PassesBatchSize(t *testing.T) {
	relayer := new(MockOutboxRelayer)
	job := NewOutboxRelayJob(relayer, "", 0, discardLogger())

	relayer.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.RelayOutboxCommand) bool {
		return c.BatchSize() == DefaultOutboxRelayBatch
	})).Return(0, nil).Once()

	_, err := job.RunOnce(context.Background())

	require.NoError(t, err)
	relayer.AssertExpectations(t)
}

func TestOutboxRelayJob_Start_InvalidSchedule(t *testing.T) {
	job := NewOutboxRelayJob(new(MockOutboxRelayer), "every now and then", 10, discardLogger())

	assert.Error(t, job.Start())
}

func TestOutboxRelayJob_StartStop(t *testing.T) {
	relayer := new(MockOutboxRelayer)
	relayer.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()
	job := NewOutboxRelayJob(relayer, "@every 1h", 10, discardLogger())

	require.NoError(t, job.Start())
	job.Stop()
}
