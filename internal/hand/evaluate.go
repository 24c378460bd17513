package hand

import (
	"errors"
	"fmt"

	"github.com/arcanaland/handrank/internal/card"
)

// ErrImpossiblePairCount signals more than two pairs in a hand, which five
// cards cannot hold.
var ErrImpossiblePairCount = errors.New("impossible pair count")

// check pairs a rank with the predicate that detects it
type check struct {
	rank Rank
	test func(Hand) bool
}

// checks run strongest first; the first match decides the rank
var checks = []check{
	{RoyalFlush, Hand.isRoyalFlush},
	{StraightFlush, Hand.isStraightFlush},
	{FourOfAKind, func(h Hand) bool { return h.isXOfAKind(4) }},
	{FullHouse, Hand.isFullHouse},
	{Flush, Hand.isFlush},
	{Straight, Hand.isStraight},
	{ThreeOfAKind, func(h Hand) bool { return h.isXOfAKind(3) }},
	{TwoPair, func(h Hand) bool { return h.mustCountPairs() == 2 }},
	{OnePair, func(h Hand) bool { return h.mustCountPairs() == 1 }},
}

// Rank classifies the hand
func (h Hand) Rank() Rank {
	for _, c := range checks {
		if c.test(h) {
			return c.rank
		}
	}
	return HighCard
}

// RankOf classifies h
func RankOf(h Hand) Rank {
	return h.Rank()
}

func (h Hand) isFlush() bool {
	suits := make(map[card.Suit]struct{}, Size)
	for _, s := range h.Suits() {
		suits[s] = struct{}{}
	}
	return len(suits) == 1
}

// isStraight looks for five consecutive values, trying every value present as
// the low end. Ace only counts as 14 or as the low Ace, never as a link from
// 14 back to 2.
func (h Hand) isStraight() bool {
	values := h.numericFaces()
	present := make(map[int]bool, len(values))
	for _, v := range values {
		present[v] = true
	}

	for _, low := range values {
		run := 1
		for next := low + 1; present[next] && run < Size; next++ {
			run++
		}
		if run == Size {
			return true
		}
	}
	return false
}

func (h Hand) isXOfAKind(n int) bool {
	for _, count := range h.faceCounts() {
		if count == n {
			return true
		}
	}
	return false
}

func (h Hand) countPairs() (int, error) {
	return countPairs(h.faceCounts())
}

func countPairs(counts map[card.Face]int) (int, error) {
	pairs := 0
	for _, count := range counts {
		if count == 2 {
			pairs++
		}
	}
	if pairs > 2 {
		return 0, fmt.Errorf("%w: %d", ErrImpossiblePairCount, pairs)
	}
	return pairs, nil
}

// mustCountPairs panics on an impossible count since a Hand always has five cards
func (h Hand) mustCountPairs() int {
	pairs, err := h.countPairs()
	if err != nil {
		panic(fmt.Sprintf("hand %s: %v", h, err))
	}
	return pairs
}

func (h Hand) isFullHouse() bool {
	return h.mustCountPairs() == 1 && h.isXOfAKind(3)
}

func (h Hand) isStraightFlush() bool {
	return h.isStraight() && h.isFlush()
}

// isRoyalFlush relies on straights never wrapping: a straight holding both
// a Ten and an Ace can only be 10-J-Q-K-A.
func (h Hand) isRoyalFlush() bool {
	return h.isStraightFlush() && h.hasFace(card.Ten) && h.hasFace(card.Ace)
}
