package cmd

import (
	"os"
	"slices"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/handrank/internal/card"
	"github.com/arcanaland/handrank/internal/config"
	"github.com/arcanaland/handrank/internal/hand"
)

// applyColorMode switches ANSI colours on or off for the whole process
func applyColorMode(mode string) {
	switch mode {
	case config.ColorAlways:
		colorize.NoColor = false
	case config.ColorNever:
		colorize.NoColor = true
	default:
		colorize.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// rankLabel colours a rank name by how strong the hand is
func rankLabel(r hand.Rank) string {
	switch {
	case r >= hand.FourOfAKind:
		return colorize.New(colorize.FgHiMagenta, colorize.Bold).Sprint(r)
	case r >= hand.Flush:
		return colorize.HiGreenString(r.String())
	case r >= hand.TwoPair:
		return colorize.CyanString(r.String())
	default:
		return colorize.HiWhiteString(r.String())
	}
}

// strongestFirst returns every rank ordered from strongest to weakest
func strongestFirst() []hand.Rank {
	ranks := slices.Clone(hand.Ranks[:])
	slices.SortFunc(ranks, func(a, b hand.Rank) int { return b.Compare(a) })
	return ranks
}

// getSuitSymbol returns the symbol for a suit
func getSuitSymbol(s card.Suit) string {
	switch s {
	case card.Clubs:
		return "♣"
	case card.Spades:
		return "♠"
	case card.Hearts:
		return "♥"
	case card.Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// cardLabel renders a card with its suit symbol, red for hearts and diamonds
func cardLabel(c card.Card) string {
	text := c.Face().Code() + getSuitSymbol(c.Suit())
	if c.Suit() == card.Hearts || c.Suit() == card.Diamonds {
		return colorize.RedString(text)
	}
	return colorize.HiWhiteString(text)
}
