package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/arcanaland/handrank/internal/hand"
)

// MaxLineLength is the longest line, in bytes after trimming, that is parsed as a hand
const MaxLineLength = 256

// ErrLineTooLong is recorded on entries whose line exceeds MaxLineLength
var ErrLineTooLong = errors.New("line too long")

// Entry is the outcome of classifying one input line
type Entry struct {
	Line  int // 1-based line number in the input
	Input string
	Hand  hand.Hand
	Rank  hand.Rank
	Err   error
}

// Results holds entries in input order
type Results struct {
	Entries []Entry
}

// Failed returns the entries that could not be classified
func (r Results) Failed() []Entry {
	var failed []Entry
	for _, e := range r.Entries {
		if e.Err != nil {
			failed = append(failed, e)
		}
	}
	return failed
}

// Summary counts classified entries per rank
func (r Results) Summary() map[hand.Rank]int {
	counts := make(map[hand.Rank]int)
	for _, e := range r.Entries {
		if e.Err == nil {
			counts[e.Rank]++
		}
	}
	return counts
}

// Classifier ranks many hands concurrently
type Classifier struct {
	logger  *log.Logger
	workers int
}

func NewClassifier(logger *log.Logger, workers int) *Classifier {
	if logger == nil {
		logger = log.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &Classifier{
		logger:  logger,
		workers: workers,
	}
}

// Classify reads one hand per line from r. Blank lines and lines starting
// with '#' are skipped. A hand that fails to parse, or a line longer than
// MaxLineLength, is recorded on its entry and does not stop the batch; only
// read errors and cancellation do.
func (c *Classifier) Classify(ctx context.Context, r io.Reader) (Results, error) {
	entries, err := readEntries(r)
	if err != nil {
		return Results{}, err
	}

	c.logger.Debug("classifying batch", "hands", len(entries), "workers", c.workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i := range entries {
		if gctx.Err() != nil {
			break
		}
		e := &entries[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.classify(e)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Results{}, err
	}
	if err := ctx.Err(); err != nil {
		return Results{}, err
	}

	return Results{Entries: entries}, nil
}

func (c *Classifier) classify(e *Entry) {
	if e.Err != nil {
		c.logger.Warn("skipping invalid line", "line", e.Line, "err", e.Err)
		return
	}
	h, err := hand.Parse(e.Input)
	if err != nil {
		e.Err = err
		c.logger.Warn("skipping invalid hand", "line", e.Line, "input", e.Input, "err", err)
		return
	}
	e.Hand = h
	e.Rank = h.Rank()
	c.logger.Debug("classified hand", "line", e.Line, "hand", h, "rank", e.Rank)
}

func readEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	reader := bufio.NewReader(r)
	line := 0
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("error reading hands: %w", err)
		}
		if raw == "" && err == io.EOF {
			break
		}
		line++

		text := strings.TrimSpace(raw)
		switch {
		case text == "" || strings.HasPrefix(text, "#"):
		case len(text) > MaxLineLength:
			entries = append(entries, Entry{
				Line:  line,
				Input: text[:MaxLineLength] + "...",
				Err:   fmt.Errorf("%w: %d bytes", ErrLineTooLong, len(text)),
			})
		default:
			entries = append(entries, Entry{Line: line, Input: text})
		}

		if err == io.EOF {
			break
		}
	}
	return entries, nil
}
