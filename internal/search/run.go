package search

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
)

var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

// Result describes a finished run.
type Result struct {
	Matches int
}

// Run reads cfg.Filename, searches it with the policy chosen by cfg.CaseSensitive and
// writes each matching line to w.
func Run(cfg config.Config, w io.Writer) (Result, error) {
	b, err := os.ReadFile(cfg.Filename)
	if err != nil {
		return Result{}, err
	}
	if !utf8.Valid(b) {
		return Result{}, fmt.Errorf("%s: %w", cfg.Filename, ErrInvalidText)
	}
	contents := string(b)

	var matches []string
	if cfg.CaseSensitive {
		matches = Search(cfg.Query, contents)
	} else {
		matches = SearchCaseInsensitive(cfg.Query, contents)
	}
	logging.Debug(fmt.Sprintf("%s: %d lines matched %q", cfg.Filename, len(matches), cfg.Query))

	bw := bufio.NewWriter(w)
	for _, line := range matches {
		if _, err := bw.WriteString(line); err != nil {
			return Result{}, fmt.Errorf("write output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return Result{}, fmt.Errorf("write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return Result{}, fmt.Errorf("write output: %w", err)
	}
	return Result{Matches: len(matches)}, nil
}
