package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HexBrew_Go/internal/database/generated"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// pgUniqueViolation is the SQLSTATE for unique_violation
const pgUniqueViolation = "23505"

// parseID binds an ID to a UUID column. Malformed IDs map to notFound
// since no row can carry them.
func parseID(id string, notFound error) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", notFound, id)
	}
	return parsed, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// ---- pgtype conversions ----

func toTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

// ptrToTimestamptz maps nil to SQL NULL
func ptrToTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return toTimestamptz(*t)
}

func timestamptzToPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// toText maps "" to SQL NULL
func toText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// ---- row mapping ----

func toDomainPlayer(p generated.Player) *domain.Player {
	return &domain.Player{
		ID:        p.PlayerID.String(),
		Username:  p.Username,
		Gold:      int(p.Gold),
		CreatedAt: p.CreatedAt.Time,
	}
}

func toDomainCauldron(c generated.Cauldron) domain.Cauldron {
	return domain.Cauldron{
		ID:          c.CauldronID,
		Owner:       c.PlayerID.String(),
		Quality:     int(c.Quality),
		RecipeID:    c.RecipeID.String,
		BrewStarted: timestamptzToPtr(c.BrewStartedAt),
		BrewEndsAt:  timestamptzToPtr(c.BrewEndsAt),
	}
}

func toDomainOrder(o generated.Order) domain.Order {
	return domain.Order{
		ID:            o.OrderID.String(),
		Owner:         o.PlayerID.String(),
		BuyerID:       o.BuyerID,
		RecipeID:      o.RecipeID,
		RecipeName:    o.RecipeName,
		RecipeDay:     int(o.RecipeDay),
		Faction:       domain.Faction(o.Faction),
		Price:         int(o.Price),
		Deadline:      o.Deadline.Time,
		Fulfilled:     o.Fulfilled,
		ReputationReq: int(o.ReputationReq),
		CreatedAt:     o.CreatedAt.Time,
	}
}

// beginTx starts a repository transaction on the pool
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (repository.Tx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	return &pgTx{tx: tx, q: q.WithTx(tx)}, nil
}

func listIngredients(ctx context.Context, q *generated.Queries, playerID uuid.UUID) ([]domain.IngredientItem, error) {
	rows, err := q.ListIngredients(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	items := make([]domain.IngredientItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.IngredientItem{
			Owner:          row.PlayerID.String(),
			Slot:           int(row.Slot),
			IngredientType: domain.IngredientType(row.IngredientType),
			Quantity:       int(row.Quantity),
		})
	}
	return items, nil
}

func listPotions(ctx context.Context, q *generated.Queries, playerID uuid.UUID) ([]domain.Potion, error) {
	rows, err := q.ListPotions(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query potions: %w", err)
	}
	potions := make([]domain.Potion, 0, len(rows))
	for _, row := range rows {
		potions = append(potions, domain.Potion{
			ID:        row.PotionID.String(),
			Owner:     row.PlayerID.String(),
			RecipeID:  row.RecipeID,
			Effect:    domain.PotionEffect(row.Effect),
			Quality:   int(row.Quality),
			Value:     int(row.Value),
			CreatedAt: row.CreatedAt.Time,
		})
	}
	return potions, nil
}

func listPlayerIDs(ctx context.Context, q *generated.Queries) ([]string, error) {
	ids, err := q.ListPlayerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out, nil
}
