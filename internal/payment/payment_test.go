package payment

import (
	"math/rand"
	"testing"

	"dzbooking/internal/domain"
)

func validCard() Card {
	return Card{
		Number: "4111 1111 1111 1111",
		Holder: "Amine B",
		Expiry: "12/27",
		CVV:    "123",
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(validCard()); err != nil {
		t.Fatalf("valid card rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Card)
	}{
		{"short number", func(c *Card) { c.Number = "4111" }},
		{"letters in number", func(c *Card) { c.Number = "4111111111111abc" }},
		{"empty holder", func(c *Card) { c.Holder = "  " }},
		{"bad expiry month", func(c *Card) { c.Expiry = "13/27" }},
		{"bad expiry format", func(c *Card) { c.Expiry = "1227" }},
		{"short cvv", func(c *Card) { c.CVV = "12" }},
	}
	for _, tc := range cases {
		c := validCard()
		tc.mutate(&c)
		err := Validate(c)
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !domain.IsValidation(err) {
			t.Fatalf("%s: error is not a validation error: %v", tc.name, err)
		}
	}
}

func TestChargeDeterministicWithSeed(t *testing.T) {
	sim := NewSimulator(rand.NewSource(1))
	outcomes := make([]bool, 0, 5)
	for i := 0; i < 5; i++ {
		ok, err := sim.Charge(validCard())
		if err != nil {
			t.Fatalf("Charge: %v", err)
		}
		outcomes = append(outcomes, ok)
	}

	sim2 := NewSimulator(rand.NewSource(1))
	for i, want := range outcomes {
		got, _ := sim2.Charge(validCard())
		if got != want {
			t.Fatalf("outcome %d differs for identical seed: got %v want %v", i, got, want)
		}
	}
}

func TestChargeRejectsInvalidCardWithoutDrawing(t *testing.T) {
	sim := NewSimulator(rand.NewSource(7))
	bad := validCard()
	bad.CVV = "x"
	if _, err := sim.Charge(bad); err == nil {
		t.Fatalf("invalid card must not be charged")
	}
	// The rng must be untouched: next valid charge matches a fresh seed.
	got, _ := sim.Charge(validCard())
	want, _ := NewSimulator(rand.NewSource(7)).Charge(validCard())
	if got != want {
		t.Fatalf("validation failure consumed randomness")
	}
}

func TestFormatCardNumber(t *testing.T) {
	if got := FormatCardNumber("4111111111111111"); got != "4111 1111 1111 1111" {
		t.Fatalf("FormatCardNumber = %q", got)
	}
}
