package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// BrewCommand starts a brew. Without a recipe today's recipe is brewed.
func BrewCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "brew",
		Description: "Start brewing a potion in your cauldron",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionRecipe,
				Description: "Recipe id, e.g. recipe_day_2 (default: today's recipe)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		recipeID := ""
		if opt, ok := getOptions(i)[OptionRecipe]; ok {
			recipeID = opt.StringValue()
		}
		handleEmbedResponse(s, i, client, true, func(ctx context.Context, player *domain.Player) (*discordgo.MessageEmbed, error) {
			cauldron, err := client.StartBrew(ctx, player.ID, recipeID)
			if err != nil {
				return nil, err
			}
			desc := "The cauldron bubbles."
			if cauldron.BrewEndsAt != nil {
				desc = fmt.Sprintf("The cauldron bubbles. Ready %s, then use `/collect`.", discordRelativeTime(*cauldron.BrewEndsAt))
			}
			return createEmbed("🧪 Brewing started", desc, ColorBrew), nil
		})
	}

	return cmd, handler
}

// CollectCommand bottles a finished brew
func CollectCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "collect",
		Description: "Bottle the potion in your cauldron",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, client, true, func(ctx context.Context, player *domain.Player) (*discordgo.MessageEmbed, error) {
			res, err := client.FinishBrew(ctx, player.ID)
			if err != nil {
				return nil, err
			}
			desc := fmt.Sprintf("You bottled a **%s** of quality **%d**, worth **%d** gold.",
				potionName(res.Potion.Effect), res.Potion.Quality, res.Potion.Value)
			if res.GoldEarned > 0 {
				desc += fmt.Sprintf("\nYou also earned **%d** gold.", res.GoldEarned)
			}
			return createEmbed("⚗️ Potion ready", desc, ColorBrew), nil
		})
	}

	return cmd, handler
}
