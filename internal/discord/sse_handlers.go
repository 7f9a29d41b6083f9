package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HexBrew_Go/internal/sse"
)

// notificationSender posts an embed to the notification channel
type notificationSender interface {
	SendNotification(embed *discordgo.MessageEmbed) error
}

// SSENotifier announces world clock changes in the notification channel
type SSENotifier struct {
	sender notificationSender
}

// NewSSENotifier creates a new SSE notifier
func NewSSENotifier(sender notificationSender) *SSENotifier {
	return &SSENotifier{sender: sender}
}

// RegisterHandlers registers the world event handlers with the client
func (n *SSENotifier) RegisterHandlers(client *SSEClient) {
	client.OnEvent(SSEEventTypeNightBegan, n.handleNightBegan)
	client.OnEvent(SSEEventTypeDayAdvanced, n.handleDayAdvanced)
}

// EventTypes lists the event types the notifier listens for
func (n *SSENotifier) EventTypes() []string {
	return []string{SSEEventTypeNightBegan, SSEEventTypeDayAdvanced}
}

func decodeWorldPayload(event SSEEvent) (*sse.WorldPayload, error) {
	var payload sse.WorldPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", event.Type, err)
	}
	return &payload, nil
}

func (n *SSENotifier) handleNightBegan(event SSEEvent) error {
	payload, err := decodeWorldPayload(event)
	if err != nil {
		return err
	}

	desc := "The shop doors are open. Customers are lining up for tonight's orders."
	if payload.RecipeName != "" {
		desc += fmt.Sprintf("\nMost of them want **%s**.", payload.RecipeName)
	}
	embed := createEmbed(fmt.Sprintf("🌙 Night falls on day %d", payload.Day), desc, ColorNight)
	return n.send(event.Type, embed)
}

func (n *SSENotifier) handleDayAdvanced(event SSEEvent) error {
	payload, err := decodeWorldPayload(event)
	if err != nil {
		return err
	}

	desc := "The sun is up. Time to forage and brew."
	if payload.RecipeName != "" {
		desc += fmt.Sprintf("\nToday's recipe is **%s**. Use `/recipe` for the ingredients.", payload.RecipeName)
	}
	embed := createEmbed(fmt.Sprintf("☀️ Day %d of week %d", payload.Day, payload.Week), desc, ColorDay)
	return n.send(event.Type, embed)
}

func (n *SSENotifier) send(eventType string, embed *discordgo.MessageEmbed) error {
	if err := n.sender.SendNotification(embed); err != nil {
		slog.Error(sseLogMsgNotificationError, "event_type", eventType, "error", err)
		return err
	}
	slog.Debug(sseLogMsgNotificationSent, "event_type", eventType)
	return nil
}
