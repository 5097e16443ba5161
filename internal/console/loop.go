package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tenten/internal/entity"
)

type gameManager interface {
	StartGame(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, game *entity.Game, index int) (entity.Result, error)
	EndGame(ctx context.Context, game *entity.Game)
}

// Loop is the interactive session: it reads positions from the player,
// hands them to the game manager and redraws the board.
type Loop struct {
	logger   *slog.Logger
	manager  gameManager
	renderer *Renderer
	in       io.Reader
}

func NewLoop(logger *slog.Logger, manager gameManager, renderer *Renderer, in io.Reader) *Loop {
	return &Loop{
		logger:   logger.With("component", "console"),
		manager:  manager,
		renderer: renderer,
		in:       in,
	}
}

// Run plays one game until someone wins or the player leaves. Leaving via EOF,
// a quit word or ctx cancellation is not an error.
func (that *Loop) Run(ctx context.Context) error {
	lines := readLines(ctx, that.in)

	game, err := that.manager.StartGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.renderer.Intro()
	that.renderer.Println("Press Enter to start...")
	if _, ok := next(ctx, lines); !ok {
		return that.interrupt(ctx, game)
	}

	var status string

	for {
		that.renderer.Board(game)

		if status != "" {
			that.renderer.Println(status)
		}

		if game.IsEmpty() {
			that.renderer.Println("First move: place anywhere.")
		} else {
			that.renderer.Println("Next move: must be within 3 spaces of an existing piece.")
		}

		that.renderer.Prompt(game.Turn)

		text, ok := next(ctx, lines)
		if !ok {
			return that.interrupt(ctx, game)
		}

		parsed := ParseIndex(text)
		if parsed.Quit {
			return that.interrupt(ctx, game)
		}

		if parsed.Err != nil {
			that.logger.Debug("invalid input", "error", parsed.Err)
			that.renderer.Println("Invalid input. Please enter a number.")
			that.renderer.Println("Press Enter to continue...")

			if _, ok = next(ctx, lines); !ok {
				return that.interrupt(ctx, game)
			}

			status = ""
			continue
		}

		result, err := that.manager.MakeTurn(ctx, game, parsed.Index)
		if err != nil {
			that.logger.Warn("failed to make turn", "error", err)
		}

		status = "Result: " + result.Message()

		if result.Kind == entity.Win {
			that.renderer.Board(game)
			that.renderer.Println(status)
			that.renderer.Println("Game Over!")

			return nil
		}
	}
}

func (that *Loop) interrupt(ctx context.Context, game *entity.Game) error {
	that.renderer.Println("\nGame interrupted. Thanks for playing!")
	that.manager.EndGame(context.WithoutCancel(ctx), game)

	return nil
}

// readLines feeds input lines into a channel that is closed on EOF, so the
// loop can wait for input and cancellation at the same time.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}

func next(ctx context.Context, lines <-chan string) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-lines:
		return line, ok
	}
}
