package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/handler"
)

// RecipeCommand shows today's recipe, or the recipe of a given weekday
func RecipeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minDay := float64(1)
	cmd := &discordgo.ApplicationCommand{
		Name:        "recipe",
		Description: "Show today's potion recipe",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionDay,
				Description: "Day of the week (1-7)",
				Required:    false,
				MinValue:    &minDay,
				MaxValue:    domain.DaysPerWeek,
			},
		},
	}

	cmdHandler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		opts := getOptions(i)
		handleEmbedResponse(s, i, client, false, func(ctx context.Context, _ *domain.Player) (*discordgo.MessageEmbed, error) {
			var (
				view *handler.RecipeView
				err  error
			)
			if opt, ok := opts[OptionDay]; ok {
				view, err = client.GetRecipeForDay(ctx, int(opt.IntValue()))
			} else {
				view, err = client.GetTodayRecipe(ctx)
			}
			if err != nil {
				return nil, err
			}
			return createEmbed(fmt.Sprintf("📜 %s", view.Name), formatRecipe(view), ColorRecipe), nil
		})
	}

	return cmd, cmdHandler
}
