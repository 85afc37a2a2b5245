package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airpulse-io/airpulse/entity"
)

func receiveOne(t *testing.T, sub *Subscriber) entity.Alert {
	t.Helper()
	select {
	case message := <-sub.Send:
		var alert entity.Alert
		require.NoError(t, json.Unmarshal(message, &alert))
		return alert
	default:
		t.Fatal("expected a message on the subscriber channel")
		return entity.Alert{}
	}
}

func TestBroadcastReachesAreaAndCatchAll(t *testing.T) {
	hub := NewHub()

	areaSub := hub.Subscribe("gazi_baba")
	allSub := hub.Subscribe(CatchAllChannel)

	// The raw area name is normalized into the channel token.
	err := hub.Broadcast(entity.Alert{Area: "Gazi Baba", Metric: "pm10", Level: entity.LevelRed})
	require.NoError(t, err)

	assert.Equal(t, "Gazi Baba", receiveOne(t, areaSub).Area)
	assert.Equal(t, entity.LevelRed, receiveOne(t, allSub).Level)
}

func TestBroadcastSkipsOtherAreas(t *testing.T) {
	hub := NewHub()

	otherSub := hub.Subscribe("centar")
	require.NoError(t, hub.Broadcast(entity.Alert{Area: "gazi_baba", Level: entity.LevelRed}))

	select {
	case <-otherSub.Send:
		t.Fatal("subscriber for another area must not receive the alert")
	default:
	}
}

func TestUnsubscribeClosesSend(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe("centar")
	require.Equal(t, 1, hub.Subscribers("centar"))

	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.Subscribers("centar"))

	_, open := <-sub.Send
	assert.False(t, open)

	// Unsubscribing twice is harmless.
	hub.Unsubscribe(sub)
}

func TestSlowSubscriberDoesNotBlockFanOut(t *testing.T) {
	hub := NewHub()

	slow := hub.Subscribe(CatchAllChannel)
	for i := 0; i < subscriberBuffer*2; i++ {
		require.NoError(t, hub.Broadcast(entity.Alert{Area: "centar", Level: entity.LevelGreen}))
	}

	// The buffer is full; the overflow was dropped, not queued.
	assert.Equal(t, subscriberBuffer, len(slow.Send))
}
