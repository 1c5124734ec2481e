package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-review/events"
)

type recordingPublisher struct {
	topic  Topic
	events []Event
}

func (r *recordingPublisher) Publish(_ context.Context, topic Topic, event Event) error {
	r.topic = topic
	r.events = append(r.events, event)
	return nil
}

func (r *recordingPublisher) Close() {}

func TestPublishMovieAnalyzed(t *testing.T) {
	bus := &recordingPublisher{}
	publisher := NewAnalysisEventPublisher(bus, TopicAnalysisEvents)

	evt := events.MovieAnalyzedEvent{
		BaseEvent:    events.NewBaseEvent(events.MovieAnalyzed, "movie-review-backend"),
		MovieID:      27205,
		Title:        "Inception",
		TotalReviews: 10,
		Summary:      "positive",
		Positive:     6,
	}
	require.NoError(t, publisher.PublishMovieAnalyzed(context.Background(), evt))

	require.Len(t, bus.events, 1)
	assert.Equal(t, DefaultAnalysisTopic, bus.topic.Base())
	assert.Equal(t, evt.ID, bus.events[0].ID)
	assert.Equal(t, "movie.analyzed", bus.events[0].Type)

	decoded, err := DecodeJSON[events.MovieAnalyzedEvent](bus.events[0])
	require.NoError(t, err)
	assert.Equal(t, 27205, decoded.MovieID)
	assert.Equal(t, "positive", decoded.Summary)
	assert.Equal(t, events.MovieAnalyzed, decoded.Type)
}

func TestNewJSONEventGeneratesID(t *testing.T) {
	e, err := NewJSONEvent("", "movie.analyzed", map[string]int{"a": 1})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.JSONEq(t, `{"a":1}`, string(e.Payload))
}
