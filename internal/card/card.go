package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidCardFormat is returned when a token is not 2 or 3 characters long
	ErrInvalidCardFormat = errors.New("invalid card format")
	// ErrInvalidSuit is returned when the last character of a token is not a suit code
	ErrInvalidSuit = errors.New("invalid suit")
	// ErrInvalidFace is returned when the token prefix is not a face code
	ErrInvalidFace = errors.New("invalid face")
)

// Suit represents one of the four card groups
type Suit uint8

const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

// Suits lists every suit in declaration order
var Suits = [...]Suit{Clubs, Spades, Hearts, Diamonds}

var suitCodes = map[string]Suit{
	"c": Clubs,
	"s": Spades,
	"h": Hearts,
	"d": Diamonds,
}

// Code returns the lower-case suit code (c, s, h, d)
func (s Suit) Code() string {
	switch s {
	case Clubs:
		return "c"
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	}
	return "?"
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	}
	return "Unknown"
}

// Face is the rank symbol of a card. Its underlying value is the high
// numeric value of the face, so Jack is 11 and Ace is 14.
type Face uint8

const (
	Two   Face = 2
	Three Face = 3
	Four  Face = 4
	Five  Face = 5
	Six   Face = 6
	Seven Face = 7
	Eight Face = 8
	Nine  Face = 9
	Ten   Face = 10
	Jack  Face = 11
	Queen Face = 12
	King  Face = 13
	Ace   Face = 14
)

// LowAce is the numeric value an Ace takes at the bottom of a wheel straight
const LowAce = 1

// Faces lists every face from Two to Ace
var Faces = [...]Face{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var faceCodes = map[string]Face{
	"2":  Two,
	"3":  Three,
	"4":  Four,
	"5":  Five,
	"6":  Six,
	"7":  Seven,
	"8":  Eight,
	"9":  Nine,
	"10": Ten,
	"J":  Jack,
	"Q":  Queen,
	"K":  King,
	"A":  Ace,
}

// Value returns the high numeric value of the face (2-14)
func (f Face) Value() int {
	return int(f)
}

// Code returns the face code used in card tokens (2-10, J, Q, K, A)
func (f Face) Code() string {
	switch f {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if f >= Two && f <= Ten {
		return strconv.Itoa(int(f))
	}
	return "?"
}

func (f Face) String() string {
	switch f {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	return f.Code()
}

// Card represents a playing card
type Card struct {
	suit Suit
	face Face
}

// New builds a card from already validated values
func New(s Suit, f Face) (Card, error) {
	if s > Diamonds {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, s)
	}
	if f < Two || f > Ace {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidFace, f)
	}
	return Card{suit: s, face: f}, nil
}

// Parse parses a card token such as "Ah" or "10c". The last character is
// the suit code and everything before it is the face code, both
// case-insensitive.
func Parse(token string) (Card, error) {
	if len(token) < 2 || len(token) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardFormat, token)
	}

	suitCode := strings.ToLower(token[len(token)-1:])
	suit, ok := suitCodes[suitCode]
	if !ok {
		return Card{}, fmt.Errorf("%w %q: %q", ErrInvalidSuit, suitCode, token)
	}

	faceCode := strings.ToUpper(token[:len(token)-1])
	face, ok := faceCodes[faceCode]
	if !ok {
		return Card{}, fmt.Errorf("%w %q: %q", ErrInvalidFace, faceCode, token)
	}

	return Card{suit: suit, face: face}, nil
}

// mustParse parses a card and panics on error
func mustParse(token string) Card {
	c, err := Parse(token)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card '%s': %v", token, err))
	}
	return c
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Face() Face {
	return c.face
}

func (c Card) String() string {
	return c.face.Code() + c.suit.Code()
}
