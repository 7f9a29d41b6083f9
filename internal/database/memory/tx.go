package memory

import (
	"context"
	"fmt"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// memTx stages copies of every player it touches and publishes them on Commit
type memTx struct {
	store  *Store
	staged map[string]*playerData
	closed bool
}

func (t *memTx) data(playerID string) (*playerData, error) {
	if t.closed {
		return nil, repository.ErrTxClosed
	}
	if d, ok := t.staged[playerID]; ok {
		return d, nil
	}
	d, ok := t.store.players[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	c := d.clone()
	t.staged[playerID] = c
	return c, nil
}

// findOwner returns the staged or stored player holding a potion or order
func (t *memTx) findOwner(match func(*playerData) bool) (*playerData, error) {
	for _, d := range t.staged {
		if match(d) {
			return d, nil
		}
	}
	for id, d := range t.store.players {
		if _, ok := t.staged[id]; ok {
			continue
		}
		if match(d) {
			return t.data(id)
		}
	}
	return nil, nil
}

func (t *memTx) GetPlayerForUpdate(_ context.Context, playerID string) (*domain.Player, error) {
	d, err := t.data(playerID)
	if err != nil {
		return nil, err
	}
	p := d.player
	return &p, nil
}

func (t *memTx) AddGold(_ context.Context, playerID string, amount int) error {
	d, err := t.data(playerID)
	if err != nil {
		return err
	}
	if d.player.Gold+amount < 0 {
		return fmt.Errorf("%w: gold cannot go negative", domain.ErrInvalidInput)
	}
	d.player.Gold += amount
	return nil
}

func (t *memTx) GetIngredients(_ context.Context, playerID string) ([]domain.IngredientItem, error) {
	d, err := t.data(playerID)
	if err != nil {
		return nil, err
	}
	return append([]domain.IngredientItem{}, d.ingredients...), nil
}

func (t *memTx) ReplaceIngredients(_ context.Context, playerID string, items []domain.IngredientItem) error {
	d, err := t.data(playerID)
	if err != nil {
		return err
	}
	out := make([]domain.IngredientItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		item.Owner = playerID
		item.Slot = len(out)
		out = append(out, item)
	}
	d.ingredients = out
	return nil
}

func (t *memTx) GetCauldronForUpdate(_ context.Context, playerID, cauldronID string) (*domain.Cauldron, error) {
	d, err := t.data(playerID)
	if err != nil {
		if t.closed {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrCauldronNotFound, cauldronID)
	}
	for _, c := range d.cauldrons {
		if c.ID == cauldronID {
			out := cloneCauldron(c)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrCauldronNotFound, cauldronID)
}

func (t *memTx) UpdateCauldron(_ context.Context, cauldron domain.Cauldron) error {
	d, err := t.data(cauldron.Owner)
	if err != nil {
		if t.closed {
			return err
		}
		return fmt.Errorf("%w: %s", domain.ErrCauldronNotFound, cauldron.ID)
	}
	for i, c := range d.cauldrons {
		if c.ID == cauldron.ID {
			d.cauldrons[i] = cloneCauldron(cauldron)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrCauldronNotFound, cauldron.ID)
}

func (t *memTx) GetPotions(_ context.Context, playerID string) ([]domain.Potion, error) {
	d, err := t.data(playerID)
	if err != nil {
		return nil, err
	}
	return sortedPotions(d.potions), nil
}

func (t *memTx) InsertPotion(_ context.Context, potion domain.Potion) error {
	d, err := t.data(potion.Owner)
	if err != nil {
		return err
	}
	d.potions = append(d.potions, potion)
	return nil
}

func (t *memTx) DeletePotion(_ context.Context, potionID string) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	d, err := t.findOwner(func(d *playerData) bool {
		for _, p := range d.potions {
			if p.ID == potionID {
				return true
			}
		}
		return false
	})
	if err != nil || d == nil {
		return err
	}
	kept := d.potions[:0:0]
	for _, p := range d.potions {
		if p.ID != potionID {
			kept = append(kept, p)
		}
	}
	d.potions = kept
	return nil
}

func (t *memTx) GetOrderForUpdate(_ context.Context, playerID, orderID string) (*domain.Order, error) {
	d, err := t.data(playerID)
	if err != nil {
		if t.closed {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
	}
	for _, o := range d.orders {
		if o.ID == orderID {
			out := o
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
}

func (t *memTx) MarkOrderFulfilled(_ context.Context, orderID string) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	d, err := t.findOwner(func(d *playerData) bool {
		for _, o := range d.orders {
			if o.ID == orderID {
				return true
			}
		}
		return false
	})
	if err != nil || d == nil {
		return err
	}
	for i := range d.orders {
		if d.orders[i].ID == orderID {
			d.orders[i].Fulfilled = true
		}
	}
	return nil
}

func (t *memTx) DeleteUnfulfilledOrders(_ context.Context, playerID string) error {
	d, err := t.data(playerID)
	if err != nil {
		return err
	}
	kept := make([]domain.Order, 0, len(d.orders))
	for _, o := range d.orders {
		if o.Fulfilled {
			kept = append(kept, o)
		}
	}
	d.orders = kept
	return nil
}

func (t *memTx) InsertOrders(_ context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	// Batches are grouped per owner and stored ahead of older orders
	batches := make(map[string][]domain.Order)
	var owners []string
	for _, o := range orders {
		if _, ok := batches[o.Owner]; !ok {
			owners = append(owners, o.Owner)
		}
		batches[o.Owner] = append(batches[o.Owner], o)
	}
	for _, owner := range owners {
		d, err := t.data(owner)
		if err != nil {
			return err
		}
		d.orders = append(batches[owner], d.orders...)
	}
	return nil
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	if err := ctx.Err(); err != nil {
		t.finish()
		return err
	}
	for id, d := range t.staged {
		t.store.players[id] = d
	}
	t.finish()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *memTx) finish() {
	t.closed = true
	t.staged = nil
	t.store.mu.Unlock()
}
