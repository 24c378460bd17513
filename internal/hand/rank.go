package hand

// Rank is a poker hand category. Values are declared weakest first so a
// higher Rank is always a stronger hand.
type Rank int

const (
	HighCard Rank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Ranks lists every category from weakest to strongest
var Ranks = [...]Rank{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// String returns the readable name of the rank
func (r Rank) String() string {
	switch r {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Compare returns -1 if r is weaker, 0 if equal, 1 if r is stronger
func (r Rank) Compare(other Rank) int {
	if r < other {
		return -1
	} else if r > other {
		return 1
	}
	return 0
}
