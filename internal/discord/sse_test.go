package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/sse"
)

type recordingSender struct {
	mu     sync.Mutex
	embeds []*discordgo.MessageEmbed
	err    error
}

func (r *recordingSender) SendNotification(embed *discordgo.MessageEmbed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.embeds = append(r.embeds, embed)
	return nil
}

func (r *recordingSender) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.embeds)
}

func sseFrame(t *testing.T, eventType string, payload interface{}) string {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	data, err := json.Marshal(map[string]interface{}{
		"id":        "evt-1",
		"type":      eventType,
		"timestamp": time.Now().Unix(),
		"payload":   json.RawMessage(raw),
	})
	require.NoError(t, err)
	return fmt.Sprintf("id: evt-1\nevent: %s\ndata: %s\n\n", eventType, data)
}

func TestSSEClient_ReadEventsDispatchesByType(t *testing.T) {
	client := NewSSEClient("http://unused", "", nil)

	var got []SSEEvent
	client.OnEvent(SSEEventTypeNightBegan, func(e SSEEvent) error {
		got = append(got, e)
		return nil
	})
	client.OnEvent(sse.EventTypeKeepalive, func(e SSEEvent) error {
		t.Fatal("keepalive must not reach handlers")
		return nil
	})

	stream := sseFrame(t, sse.EventTypeConnected, sse.ConnectedPayload{ClientID: "c-1"}) +
		"event: keepalive\ndata: {}\n\n" +
		sseFrame(t, SSEEventTypeNightBegan, sse.WorldPayload{Day: 2, Phase: domain.PhaseNight}) +
		"data: not json\n\n"

	err := client.readEvents(strings.NewReader(stream))
	assert.EqualError(t, err, "stream closed")

	require.Len(t, got, 1)
	assert.Equal(t, "evt-1", got[0].ID)
	assert.Equal(t, SSEEventTypeNightBegan, got[0].Type)
}

func TestSSEClient_StreamURL(t *testing.T) {
	client := NewSSEClient("http://api", "", []string{SSEEventTypeNightBegan, SSEEventTypeDayAdvanced})
	assert.Equal(t, "http://api/api/v1/events?types=world.night_began%2Cworld.day_advanced", client.streamURL())

	assert.Equal(t, "http://api/api/v1/events", NewSSEClient("http://api", "", nil).streamURL())
}

func TestSSEClient_ConnectsAndNotifies(t *testing.T) {
	frame := sseFrame(t, SSEEventTypeDayAdvanced, sse.WorldPayload{Day: 4, Week: 1, RecipeName: "Rage Tonic"})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("X-API-Key"))
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = fmt.Fprint(w, frame)
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer server.Close()

	sender := &recordingSender{}
	notifier := NewSSENotifier(sender)
	client := NewSSEClient(server.URL, "key", notifier.EventTypes())
	notifier.RegisterHandlers(client)

	client.Start(context.Background())
	require.Eventually(t, func() bool { return sender.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, client.IsConnected())

	client.Stop()
	assert.False(t, client.IsConnected())

	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.Equal(t, "☀️ Day 4 of week 1", sender.embeds[0].Title)
	assert.Contains(t, sender.embeds[0].Description, "Rage Tonic")
}

func TestSSENotifier_NightBegan(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewSSENotifier(sender)

	raw, _ := json.Marshal(sse.WorldPayload{Day: 5, Phase: domain.PhaseNight, RecipeName: "Ghost Veil"})
	require.NoError(t, notifier.handleNightBegan(SSEEvent{Type: SSEEventTypeNightBegan, Payload: raw}))

	require.Equal(t, 1, sender.count())
	assert.Equal(t, "🌙 Night falls on day 5", sender.embeds[0].Title)
	assert.Equal(t, ColorNight, sender.embeds[0].Color)
}

func TestSSENotifier_Errors(t *testing.T) {
	sender := &recordingSender{err: errors.New("discord down")}
	notifier := NewSSENotifier(sender)

	assert.Error(t, notifier.handleDayAdvanced(SSEEvent{Type: SSEEventTypeDayAdvanced, Payload: json.RawMessage(`"bad"`)}))

	raw, _ := json.Marshal(sse.WorldPayload{Day: 1})
	assert.EqualError(t, notifier.handleDayAdvanced(SSEEvent{Type: SSEEventTypeDayAdvanced, Payload: raw}), "discord down")
}
