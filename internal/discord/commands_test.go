package discord

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameCommands_UniqueNames(t *testing.T) {
	registry := NewCommandRegistry()
	registry.RegisterAll(GameCommands())

	want := []string{"recipe", "inventory", "forage", "brew", "collect", "orders", "sell", "clock"}
	assert.Len(t, registry.Commands, len(want))
	for _, name := range want {
		assert.Contains(t, registry.Commands, name)
		assert.Contains(t, registry.Handlers, name)
	}
}

func TestCommandRegistry_Handle(t *testing.T) {
	registry := NewCommandRegistry()
	called := 0
	registry.Register(&discordgo.ApplicationCommand{Name: "ping"}, func(*discordgo.Session, *discordgo.InteractionCreate, *APIClient) {
		called++
	})

	registry.Handle(nil, newCommandInteraction("ping"), nil)
	registry.Handle(nil, newCommandInteraction("unknown"), nil)

	autocomplete := newCommandInteraction("ping")
	autocomplete.Type = discordgo.InteractionApplicationCommandAutocomplete
	registry.Handle(nil, autocomplete, nil)

	assert.Equal(t, 1, called)
}

func TestCommandsEqual(t *testing.T) {
	base := func() []*discordgo.ApplicationCommand {
		return []*discordgo.ApplicationCommand{
			{Name: "forage", Description: "d", Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "zone", Description: "z", Required: true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{{Name: "Swamp", Value: "Swamp"}}},
			}},
			{Name: "clock", Description: "c"},
		}
	}

	assert.True(t, commandsEqual(base(), base()))

	reordered := base()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	assert.True(t, commandsEqual(base(), reordered))

	changedDesc := base()
	changedDesc[1].Description = "other"
	assert.False(t, commandsEqual(base(), changedDesc))

	changedChoice := base()
	changedChoice[0].Options[0].Choices[0].Value = "Forest"
	assert.False(t, commandsEqual(base(), changedChoice))

	assert.False(t, commandsEqual(base(), base()[:1]))
}

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		prefix string
		detail bool
	}{
		{"cooldown", &APIError{StatusCode: http.StatusTooManyRequests, Message: "wait 5s"}, MsgCooldownActive, true},
		{"not found", &APIError{StatusCode: http.StatusNotFound, Message: "order not found"}, MsgNotFound, true},
		{"conflict", &APIError{StatusCode: http.StatusConflict, Message: "shop is closed"}, MsgNotAllowed, true},
		{"forbidden", &APIError{StatusCode: http.StatusForbidden, Message: "locked"}, MsgNotAllowed, true},
		{"bad input", &APIError{StatusCode: http.StatusBadRequest, Message: "unknown zone"}, MsgBadInput, true},
		{"unauthorized", &APIError{StatusCode: http.StatusUnauthorized, Message: "bad key"}, MsgServerDown, false},
		{"server", &APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}, MsgGenericError, false},
		{"transport", errors.New("connection refused"), MsgServerDown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatFriendlyError(tt.err)
			assert.Contains(t, got, tt.prefix)

			var apiErr *APIError
			if errors.As(tt.err, &apiErr) && tt.detail {
				assert.Contains(t, got, apiErr.Message)
			} else if apiErr != nil {
				assert.NotContains(t, got, apiErr.Message)
			}
		})
	}
}

func TestGetInteractionUser(t *testing.T) {
	guild := newCommandInteraction("clock")
	assert.Equal(t, "Morgana", getInteractionUser(guild).Username)

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{User: &discordgo.User{Username: "Hex"}}}
	assert.Equal(t, "Hex", getInteractionUser(dm).Username)

	empty := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}
	require.NotNil(t, getInteractionUser(empty))
}
