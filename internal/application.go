package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tenten/internal/config"
	"github.com/rocketscienceinc/tenten/internal/console"
	"github.com/rocketscienceinc/tenten/internal/pkg"
	"github.com/rocketscienceinc/tenten/internal/repository"
	"github.com/rocketscienceinc/tenten/internal/repository/storage"
	"github.com/rocketscienceinc/tenten/internal/usecase"
)

// RunApp - runs one interactive game on in/out.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	gameManager := usecase.NewGameManager(logger, gameRepo, pkg.GenerateGameID)
	renderer := console.NewRenderer(out, console.Options{
		Clear: !conf.NoClear,
		Color: !conf.NoColor,
	})

	log.Info("Starting game", "storage", conf.Storage)

	if err = console.NewLoop(logger, gameManager, renderer, in).Run(ctx); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	return nil
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage), closeFn, nil
}
