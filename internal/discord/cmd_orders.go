package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/handler"
)

// OrdersCommand lists tonight's customer orders
func OrdersCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "orders",
		Description: "See what your customers want",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionStatus,
				Description: "Which orders to show (default: open)",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Open", Value: handler.OrderStatusOpen},
					{Name: "Fulfilled", Value: handler.OrderStatusFulfilled},
					{Name: "All", Value: handler.OrderStatusAll},
				},
			},
		},
	}

	cmdHandler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		status := handler.OrderStatusOpen
		if opt, ok := getOptions(i)[OptionStatus]; ok {
			status = opt.StringValue()
		}
		handleEmbedResponse(s, i, client, true, func(ctx context.Context, player *domain.Player) (*discordgo.MessageEmbed, error) {
			orders, err := client.GetOrders(ctx, player.ID, status)
			if err != nil {
				return nil, err
			}
			embed := createEmbed("🏪 Customer orders", formatOrders(orders), ColorShop)
			if len(orders) > 0 {
				embed.Description += "\nSell with `/sell order:<id>`."
			}
			return embed, nil
		})
	}

	return cmd, cmdHandler
}

// SellCommand fulfils an order
func SellCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "sell",
		Description: "Sell a potion to a waiting customer",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionOrder,
				Description: "Order id from /orders",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		orderID := ""
		if opt, ok := getOptions(i)[OptionOrder]; ok {
			orderID = opt.StringValue()
		}
		handleEmbedResponse(s, i, client, true, func(ctx context.Context, player *domain.Player) (*discordgo.MessageEmbed, error) {
			sale, err := client.SellPotion(ctx, player.ID, orderID)
			if err != nil {
				return nil, err
			}
			desc := fmt.Sprintf("Sold for **%d** gold. You now have **%d** gold.", sale.GoldEarned, sale.Gold)
			return createEmbed("💰 Sale complete", desc, ColorShop), nil
		})
	}

	return cmd, handler
}
