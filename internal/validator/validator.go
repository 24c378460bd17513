package validator

import (
	"fmt"
	"strings"

	"github.com/arcanaland/handrank/internal/card"
	"github.com/arcanaland/handrank/internal/hand"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks that hand text describes a hand a single deck can deal
type Validator struct {
	Text    string
	Hand    hand.Hand
	Results ValidationResults
}

func NewValidator(text string) *Validator {
	return &Validator{
		Text:    text,
		Results: ValidationResults{},
	}
}

// Validate parses the hand and records problems that do not stop it from
// being ranked. A hand that fails to parse is returned as an error.
func (v *Validator) Validate() (ValidationResults, error) {
	h, err := hand.Parse(v.Text)
	if err != nil {
		return v.Results, err
	}
	v.Hand = h

	v.validateDuplicates()
	v.validateNotation()

	return v.Results, nil
}

// validateDuplicates flags cards that appear more than once
func (v *Validator) validateDuplicates() {
	seen := make(map[card.Card]int, hand.Size)
	var order []card.Card
	for _, c := range v.Hand.Cards() {
		if seen[c] == 0 {
			order = append(order, c)
		}
		seen[c]++
	}

	for _, c := range order {
		if n := seen[c]; n > 1 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("duplicate card: %s appears %d times", c, n))
		}
	}
}

// validateNotation warns about tokens that are valid but not in canonical form
func (v *Validator) validateNotation() {
	tokens := strings.Fields(v.Text)
	cards := v.Hand.Cards()
	for i, token := range tokens {
		if canonical := cards[i].String(); token != canonical {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("card %d: %q is usually written %q", i+1, token, canonical))
		}
	}
}
