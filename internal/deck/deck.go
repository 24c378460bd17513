package deck

import (
	"iter"

	"github.com/arcanaland/handrank/internal/card"
	"github.com/arcanaland/handrank/internal/hand"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents an ordered set of distinct playing cards
type Deck struct {
	cards []card.Card
}

// Standard returns the 52-card deck, grouped by suit then ordered by face
func Standard() *Deck {
	d := &Deck{cards: make([]card.Card, 0, Size)}
	for _, s := range card.Suits {
		for _, f := range card.Faces {
			c, err := card.New(s, f)
			if err != nil {
				// every declared suit and face is valid
				panic(err)
			}
			d.cards = append(d.cards, c)
		}
	}
	return d
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the deck's cards
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Hands yields every distinct five-card combination of the deck exactly once
func (d *Deck) Hands() iter.Seq[hand.Hand] {
	return func(yield func(hand.Hand) bool) {
		n := len(d.cards)
		var picked [hand.Size]card.Card
		for a := 0; a < n; a++ {
			picked[0] = d.cards[a]
			for b := a + 1; b < n; b++ {
				picked[1] = d.cards[b]
				for c := b + 1; c < n; c++ {
					picked[2] = d.cards[c]
					for e := c + 1; e < n; e++ {
						picked[3] = d.cards[e]
						for f := e + 1; f < n; f++ {
							picked[4] = d.cards[f]
							if !yield(hand.New(picked)) {
								return
							}
						}
					}
				}
			}
		}
	}
}

// Census counts how many of the deck's hands fall in each rank category
func (d *Deck) Census() map[hand.Rank]int {
	counts := make(map[hand.Rank]int, len(hand.Ranks))
	for h := range d.Hands() {
		counts[h.Rank()]++
	}
	return counts
}
