package repository

import (
	"context"

	"github.com/rocketscienceinc/tenten/internal/entity"
)

type memoryGame struct {
	games map[string]entity.Game
}

// NewMemoryGameRepository keeps snapshots in process memory. Values are copied
// on the way in and out, so callers never share a board with the store.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.games[game.ID] = *game

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	game, ok := that.games[id]
	if !ok {
		return &entity.Game{}, ErrGameNotFound
	}

	return &game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	if _, ok := that.games[id]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}
