package hand

import (
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/handrank/internal/card"
)

var rankCases = []struct {
	name     string
	hand     string
	expected Rank
}{
	{"royal flush", "10h Jh Qh Kh Ah", RoyalFlush},
	{"royal flush shuffled", "As Ks 10s Qs Js", RoyalFlush},
	{"straight flush", "5h 6h 7h 8h 9h", StraightFlush},
	{"steel wheel", "Ad 2d 3d 4d 5d", StraightFlush},
	{"king high straight flush", "9c 10c Jc Qc Kc", StraightFlush},
	{"four of a kind", "9h 9d 9s 9c Kd", FourOfAKind},
	{"full house", "2h 2d 3s 3c 3h", FullHouse},
	{"full house aces over", "Ah Ad As Kc Kh", FullHouse},
	{"flush", "2h 7h 9h Jh Kh", Flush},
	{"ace high flush", "Ad 3d 7d 9d Qd", Flush},
	{"straight", "5h 6d 7s 8c 9h", Straight},
	{"broadway", "10h Jd Qs Kc Ah", Straight},
	{"wheel", "Ah 2d 3c 4s 5h", Straight},
	{"three of a kind", "Ah Qs 10c 10d 10s", ThreeOfAKind},
	{"two pair", "Ah As 10c 10d 2s", TwoPair},
	{"one pair", "Ah As 10c 9d 2s", OnePair},
	{"high card", "2h 3d 5s 9c Kd", HighCard},
	{"no wrap around ace", "Kh Ah 2d 3c 4s", HighCard},
	{"no wrap around ace suited", "Qs Ks As 2s 3s", Flush},
	{"four to a straight", "2h 3d 4s 5c 7h", HighCard},
}

func TestRank(t *testing.T) {
	for _, tt := range rankCases {
		t.Run(tt.name, func(t *testing.T) {
			h := MustParse(tt.hand)
			assert.Equal(t, tt.expected, h.Rank())
			assert.Equal(t, tt.expected, RankOf(h))
		})
	}
}

func TestThreeTensIsNotFullHouse(t *testing.T) {
	h, err := Parse("Ah Qs 10c 10d 10s")
	require.NoError(t, err)
	assert.Equal(t, "Three of a Kind", h.Rank().String())
}

func TestRankIsIdempotent(t *testing.T) {
	for _, tt := range rankCases {
		h := MustParse(tt.hand)
		assert.Equal(t, h.Rank(), h.Rank(), tt.name)
	}
}

func TestRankOrderIndependent(t *testing.T) {
	for _, tt := range rankCases {
		cards := MustParse(tt.hand).Cards()
		reversed := [Size]card.Card{cards[4], cards[3], cards[2], cards[1], cards[0]}
		assert.Equal(t, tt.expected, New(reversed).Rank(), tt.name)
	}
}

func TestPredicates(t *testing.T) {
	royal := MustParse("10h Jh Qh Kh Ah")
	assert.True(t, royal.isFlush())
	assert.True(t, royal.isStraight())
	assert.True(t, royal.isStraightFlush())
	assert.True(t, royal.isRoyalFlush())

	steelWheel := MustParse("Ad 2d 3d 4d 5d")
	assert.True(t, steelWheel.isStraightFlush())
	assert.False(t, steelWheel.isRoyalFlush())

	trips := MustParse("Ah Qs 10c 10d 10s")
	assert.True(t, trips.isXOfAKind(3))
	assert.False(t, trips.isXOfAKind(4))
	assert.False(t, trips.isXOfAKind(2))
	assert.False(t, trips.isFullHouse())

	fullHouse := MustParse("2h 2d 3s 3c 3h")
	assert.True(t, fullHouse.isFullHouse())
	assert.False(t, fullHouse.isFlush())
}

func TestCountPairs(t *testing.T) {
	tests := []struct {
		hand     string
		expected int
	}{
		{"2h 3d 5s 9c Kd", 0},
		{"2h 2d 5s 9c Kd", 1},
		{"2h 2d 5s 5c Kd", 2},
		{"2h 2d 2s 5c 5d", 1},
		{"2h 2d 2s 2c 5d", 0},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			pairs, err := MustParse(tt.hand).countPairs()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pairs)
		})
	}
}

func TestCountPairsImpossible(t *testing.T) {
	counts := map[card.Face]int{card.Two: 2, card.Three: 2, card.Four: 2}
	_, err := countPairs(counts)
	assert.ErrorIs(t, err, ErrImpossiblePairCount)
}

func TestRankString(t *testing.T) {
	expected := []string{
		"High Card", "One Pair", "Two Pair", "Three of a Kind", "Straight",
		"Flush", "Full House", "Four of a Kind", "Straight Flush", "Royal Flush",
	}
	require.Len(t, Ranks, len(expected))
	for i, r := range Ranks {
		assert.Equal(t, expected[i], r.String())
	}
	assert.Equal(t, "Unknown", Rank(42).String())
}

func TestRankCompare(t *testing.T) {
	assert.Equal(t, 1, RoyalFlush.Compare(StraightFlush))
	assert.Equal(t, -1, Flush.Compare(FullHouse))
	assert.Equal(t, 0, TwoPair.Compare(TwoPair))
}

// toOracle converts a hand into the third-party evaluator's card set.
// That library numbers ranks 1-13 with the Ace as 1.
func toOracle(t *testing.T, h Hand) *[Size]poker.Card {
	t.Helper()
	suits := map[card.Suit]poker.Suit{
		card.Clubs:    poker.Club,
		card.Diamonds: poker.Diamond,
		card.Hearts:   poker.Heart,
		card.Spades:   poker.Spade,
	}

	var out [Size]poker.Card
	for i, c := range h.Cards() {
		r := c.Face().Value()
		if c.Face() == card.Ace {
			r = card.LowAce
		}
		pc, err := poker.MakeCard(suits[c.Suit()], poker.Rank(r))
		require.NoError(t, err)
		out[i] = pc
	}
	return &out
}

// A stronger category must always score higher in an independent evaluator.
func TestRankAgreesWithOracle(t *testing.T) {
	for _, a := range rankCases {
		for _, b := range rankCases {
			ha, hb := MustParse(a.hand), MustParse(b.hand)
			if ha.Rank() <= hb.Rank() {
				continue
			}
			sa := poker.Eval5(toOracle(t, ha))
			sb := poker.Eval5(toOracle(t, hb))
			assert.Greater(t, sa, sb, "%s (%s) should beat %s (%s)", a.name, ha.Rank(), b.name, hb.Rank())
		}
	}
}
