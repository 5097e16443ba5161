package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tenten/internal/apperror"
	"github.com/rocketscienceinc/tenten/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager drives one game session and mirrors its state to the repository
// while the session is alive.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	newID    func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, newID func() string) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		newID:    newID,
	}
}

func (that *GameManager) StartGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(that.newID())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "game_id", game.ID)

	return game, nil
}

// MakeTurn places the current player's piece. Rejected placements are ordinary
// results; the returned error is reserved for a finished game and storage failures.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, index int) (entity.Result, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", game.ID)

	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Result{}, fmt.Errorf("failed make turn: %w", err)
	}

	result := game.PlacePiece(index)
	if !result.Placed() {
		log.Debug("move rejected", "index", index, "reason", result.Kind.String())
		return result, nil
	}

	if result.Kind == entity.Win {
		log.Info("game won", "winner", result.Mark, "moves", game.Moves)
		that.deleteGame(ctx, game)

		return result, nil
	}

	if err := that.updateGame(ctx, game); err != nil {
		return result, fmt.Errorf("failed update game: %w", err)
	}

	return result, nil
}

// EndGame discards a session the player walked away from.
func (that *GameManager) EndGame(ctx context.Context, game *entity.Game) {
	that.logger.Info("game cancelled", "game_id", game.ID, "moves", game.Moves)
	that.deleteGame(ctx, game)
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame")

	err := that.gameRepo.DeleteByID(ctx, game.ID)
	if err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted", "game_id", game.ID)
}
