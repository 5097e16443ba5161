package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tenten/internal/apperror"
)

var quitWords = map[string]struct{}{
	"q":    {},
	"quit": {},
	"exit": {},
}

// ParseResult is the outcome of reading one line of player input.
// Exactly one of Quit, Err or a valid Index is meaningful.
type ParseResult struct {
	Index int
	Quit  bool
	Err   error
}

func (r ParseResult) Ok() bool {
	return !r.Quit && r.Err == nil
}

// ParseIndex turns a line of input into a board index. Range checks are left
// to the engine; only the syntax is checked here.
func ParseIndex(text string) ParseResult {
	text = strings.TrimSpace(text)

	if _, ok := quitWords[strings.ToLower(text)]; ok {
		return ParseResult{Quit: true}
	}

	index, err := strconv.Atoi(text)
	if err != nil {
		return ParseResult{Err: fmt.Errorf("%w: %q", apperror.ErrInvalidInput, text)}
	}

	return ParseResult{Index: index}
}
