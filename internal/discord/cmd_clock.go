package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// ClockCommand shows the world day, phase and time left
func ClockCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "clock",
		Description: "Check the day and how long until the phase changes",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, false, func(ctx context.Context, _ *domain.Player) (*discordgo.MessageEmbed, error) {
			snap, err := client.GetWorld(ctx)
			if err != nil {
				return nil, err
			}

			icon, color, next := "☀️", ColorDay, domain.PhaseNight
			if snap.Phase == domain.PhaseNight {
				icon, color, next = "🌙", ColorNight, domain.PhaseDay
			}

			desc := fmt.Sprintf("Day **%d** of week **%d**\n%s falls in **%s**\nToday's recipe: **%s**",
				snap.Day, snap.Week, next, snap.TimeRemaining, snap.RecipeName)
			if snap.ShopOpen {
				desc += "\nThe shop is open."
			}
			return createEmbed(fmt.Sprintf("%s %s", icon, snap.Phase), desc, color), nil
		})
	}

	return cmd, handler
}
