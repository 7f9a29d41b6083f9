package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// ForageCommand gathers ingredients in a zone
func ForageCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.AllZones))
	for _, z := range domain.AllZones {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  displayName(string(z)),
			Value: string(z),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "forage",
		Description: "Search a zone for ingredients",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionZone,
				Description: "Where to forage",
				Required:    true,
				Choices:     choices,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		zone := ""
		if opt, ok := getOptions(i)[OptionZone]; ok {
			zone = opt.StringValue()
		}
		handleEmbedResponse(s, i, client, true, func(ctx context.Context, player *domain.Player) (*discordgo.MessageEmbed, error) {
			res, err := client.Forage(ctx, player.ID, zone)
			if err != nil {
				return nil, err
			}
			title := fmt.Sprintf("🌿 Foraging in the %s", displayName(string(res.Zone)))
			return createEmbed(title, formatGathered(res.Gathered), ColorForage), nil
		})
	}

	return cmd, handler
}
