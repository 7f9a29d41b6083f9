package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "View your gold, ingredients and potions",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, true, func(ctx context.Context, player *domain.Player) (*discordgo.MessageEmbed, error) {
			inv, err := client.GetInventory(ctx, player.ID)
			if err != nil {
				return nil, err
			}
			return createEmbed(fmt.Sprintf("%s's Satchel", player.Username), formatInventory(inv), ColorInventory), nil
		})
	}

	return cmd, handler
}
