package streams_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CanTransitionTo_ScheduledStream(t *testing.T) {
	assert.True(t, StreamStatusScheduled.CanTransitionTo(StreamStatusLive))
	assert.True(t, StreamStatusScheduled.CanTransitionTo(StreamStatusCompleted))
	assert.True(t, StreamStatusScheduled.CanTransitionTo(StreamStatusCancelled))
	assert.False(t, StreamStatusScheduled.CanTransitionTo(StreamStatusScheduled))
}

func Test_CanTransitionTo_LiveStream(t *testing.T) {
	assert.True(t, StreamStatusLive.CanTransitionTo(StreamStatusCompleted))
	assert.False(t, StreamStatusLive.CanTransitionTo(StreamStatusCancelled))
	assert.False(t, StreamStatusLive.CanTransitionTo(StreamStatusScheduled))
	assert.False(t, StreamStatusLive.CanTransitionTo(StreamStatusLive))
}

func Test_CanTransitionTo_TerminalStatesRejectEverything(t *testing.T) {
	targets := []StreamStatus{
		StreamStatusScheduled, StreamStatusLive, StreamStatusCompleted, StreamStatusCancelled,
	}

	for _, target := range targets {
		assert.False(t, StreamStatusCompleted.CanTransitionTo(target),
			"completed must not transition to %s", target)
		assert.False(t, StreamStatusCancelled.CanTransitionTo(target),
			"cancelled must not transition to %s", target)
	}
}

func Test_Validate_RequiresTitleAndParsableTimes(t *testing.T) {
	event := StreamEvent{
		Title:     "Finals Day 1",
		Date:      "2026-09-05",
		StartTime: "18:00",
		Status:    StreamStatusScheduled,
	}
	require.NoError(t, event.Validate())

	event.Title = ""
	assert.Error(t, event.Validate())

	event.Title = "Finals Day 1"
	event.StartTime = "6pm"
	assert.Error(t, event.Validate())
}

func Test_StartsAt_CombinesDateAndTime(t *testing.T) {
	event := StreamEvent{Date: "2026-09-05", StartTime: "18:30"}

	startsAt, err := event.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, 2026, startsAt.Year())
	assert.Equal(t, 18, startsAt.Hour())
	assert.Equal(t, 30, startsAt.Minute())
}
