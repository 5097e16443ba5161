package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tenten/internal/entity"
)

const intro = `# Welcome to 10x10!

Goal: get **5 in a row**, horizontally, vertically or diagonally.

- Enter position numbers (0–99) to play.
- The first move can go anywhere.
- Every later move must be within 3 spaces of an existing piece.
- Type ` + "`quit`" + ` or press Ctrl+C to leave.
`

var markColors = map[string]string{
	entity.PlayerX: "#f87171",
	entity.PlayerO: "#60a5fa",
}

type Options struct {
	Clear bool
	Color bool
}

// Renderer draws the game on a terminal.
type Renderer struct {
	out  *termenv.Output
	opts Options
}

func NewRenderer(w io.Writer, opts Options) *Renderer {
	profile := termenv.Ascii
	if opts.Color {
		profile = termenv.TrueColor
	}

	return &Renderer{
		out:  termenv.NewOutput(w, termenv.WithProfile(profile)),
		opts: opts,
	}
}

// Intro prints the rules, rendered from markdown.
func (that *Renderer) Intro() {
	style := styles.NoTTYStyle
	if that.opts.Color {
		style = styles.DarkStyle
	}

	text := intro

	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(80))
	if err == nil {
		if rendered, renderErr := r.Render(intro); renderErr == nil {
			text = rendered
		}
	}

	fmt.Fprint(that.out, text)
}

// Board clears the screen when enabled and draws the grid. Empty cells show
// their index, occupied cells their mark.
func (that *Renderer) Board(game *entity.Game) {
	if that.opts.Clear {
		that.out.ClearScreen()
	}

	var b strings.Builder

	b.WriteString("=== 10x10 (5-IN-A-ROW) ===\n")
	fmt.Fprintf(&b, "Player: %s\n\n", that.mark(game.Turn))

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			index := entity.Index(row, col)
			if mark, ok := game.CellAt(index); ok {
				b.WriteString(" " + that.mark(mark) + " ")
			} else {
				fmt.Fprintf(&b, "%3d", index)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprint(that.out, b.String())
}

func (that *Renderer) Println(a ...any) {
	fmt.Fprintln(that.out, a...)
}

func (that *Renderer) Prompt(mark string) {
	fmt.Fprintf(that.out, "%s's move (0–99): ", mark)
}

func (that *Renderer) mark(mark string) string {
	color, ok := markColors[mark]
	if !that.opts.Color || !ok {
		return mark
	}

	return that.out.String(mark).Foreground(that.out.Color(color)).Bold().String()
}
