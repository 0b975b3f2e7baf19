// Package payment simulates the card payment step. There is no gateway
// integration: fields are validated locally and the outcome is drawn at
// random with an 80% success rate, matching the demo flow.
package payment

import (
	"math/rand"
	"regexp"
	"strings"

	"dzbooking/internal/domain"
)

// SuccessRate of the simulated gateway.
const SuccessRate = 0.8

var (
	digitsOnly = regexp.MustCompile(`^\d+$`)
	expiryRe   = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// Card carries the card-like form fields.
type Card struct {
	Number string // digits, spaces allowed
	Holder string
	Expiry string // MM/YY
	CVV    string
}

// Simulator draws payment outcomes from src so tests can pin the result.
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator seeds the outcome source. Pass rand.NewSource(time.Now().UnixNano())
// in production paths.
func NewSimulator(src rand.Source) *Simulator {
	return &Simulator{rng: rand.New(src)}
}

// Validate checks the card fields locally. Errors are validation errors and
// never reach the network.
func Validate(c Card) error {
	number := strings.ReplaceAll(strings.TrimSpace(c.Number), " ", "")
	if len(number) != 16 || !digitsOnly.MatchString(number) {
		return domain.ValidationError{Field: "card_number", Msg: "must be 16 digits"}
	}
	if strings.TrimSpace(c.Holder) == "" {
		return domain.ValidationError{Field: "card_holder", Msg: "required"}
	}
	if !expiryRe.MatchString(strings.TrimSpace(c.Expiry)) {
		return domain.ValidationError{Field: "expiry", Msg: "must be MM/YY"}
	}
	cvv := strings.TrimSpace(c.CVV)
	if len(cvv) < 3 || len(cvv) > 4 || !digitsOnly.MatchString(cvv) {
		return domain.ValidationError{Field: "cvv", Msg: "must be 3 or 4 digits"}
	}
	return nil
}

// Charge validates the card and simulates the gateway call. It returns
// whether the simulated payment succeeded; a validation failure returns an
// error and no outcome is drawn.
func (s *Simulator) Charge(c Card) (bool, error) {
	if err := Validate(c); err != nil {
		return false, err
	}
	return s.rng.Float64() < SuccessRate, nil
}

// FormatCardNumber groups digits in blocks of four for display.
func FormatCardNumber(number string) string {
	digits := strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	var out strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			out.WriteByte(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}
