package hand

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/handrank/internal/card"
)

// Size is the number of cards in a hand
const Size = 5

// ErrWrongCardCount is returned when hand text does not hold exactly five tokens
var ErrWrongCardCount = errors.New("wrong number of cards")

// Hand is an immutable set of five cards in the order they were given
type Hand struct {
	cards [Size]card.Card
}

// New builds a hand from already parsed cards
func New(cards [Size]card.Card) Hand {
	return Hand{cards: cards}
}

// Parse splits text on whitespace and parses each token as a card.
// The first invalid token aborts the parse.
func Parse(text string) (Hand, error) {
	tokens := strings.Fields(text)
	if len(tokens) != Size {
		return Hand{}, fmt.Errorf("%w: expected %d, got %d", ErrWrongCardCount, Size, len(tokens))
	}

	var cards [Size]card.Card
	for i, token := range tokens {
		c, err := card.Parse(token)
		if err != nil {
			return Hand{}, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards[i] = c
	}

	return Hand{cards: cards}, nil
}

// MustParse parses a hand and panics on error
func MustParse(text string) Hand {
	h, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", text, err))
	}
	return h
}

// Cards returns a copy of the hand's cards
func (h Hand) Cards() [Size]card.Card {
	return h.cards
}

// Faces returns the face of every card, duplicates included
func (h Hand) Faces() []card.Face {
	faces := make([]card.Face, 0, Size)
	for _, c := range h.cards {
		faces = append(faces, c.Face())
	}
	return faces
}

// Suits returns the suit of every card, duplicates included
func (h Hand) Suits() []card.Suit {
	suits := make([]card.Suit, 0, Size)
	for _, c := range h.cards {
		suits = append(suits, c.Suit())
	}
	return suits
}

func (h Hand) String() string {
	parts := make([]string, 0, Size)
	for _, c := range h.cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

// faceCounts maps each face present in the hand to its number of occurrences
func (h Hand) faceCounts() map[card.Face]int {
	counts := make(map[card.Face]int, Size)
	for _, c := range h.cards {
		counts[c.Face()]++
	}
	return counts
}

// numericFaces returns the high value of every face, plus a low Ace (1)
// when the hand holds at least one Ace.
func (h Hand) numericFaces() []int {
	values := make([]int, 0, Size+1)
	hasAce := false
	for _, c := range h.cards {
		values = append(values, c.Face().Value())
		if c.Face() == card.Ace {
			hasAce = true
		}
	}
	if hasAce {
		values = append(values, card.LowAce)
	}
	return values
}

func (h Hand) hasFace(f card.Face) bool {
	for _, c := range h.cards {
		if c.Face() == f {
			return true
		}
	}
	return false
}
