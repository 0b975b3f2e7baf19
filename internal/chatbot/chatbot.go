// Package chatbot is the rule-based support widget backend: it maps a user
// message to a response category on simple keyword matching, in Arabic or
// English, and renders the localized reply. It never calls the network.
package chatbot

import (
	"strings"

	"dzbooking/internal/i18n"
)

// Response categories.
const (
	CategoryHotel   = "hotel"
	CategoryBooking = "booking"
	CategoryCancel  = "cancel"
	CategoryPayment = "payment"
	CategoryDefault = "default"
)

// Rules are checked in order; the first keyword hit wins.
var rules = []struct {
	category string
	keywords []string
}{
	{CategoryHotel, []string{"فندق", "hotel"}},
	{CategoryBooking, []string{"حجز", "booking"}},
	{CategoryCancel, []string{"إلغاء", "cancel"}},
	{CategoryPayment, []string{"دفع", "payment"}},
}

// Classify returns the response category for a user message.
func Classify(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return CategoryDefault
	}
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return r.category
			}
		}
	}
	return CategoryDefault
}

// Reply classifies message and returns the localized response text.
func Reply(lang, message string) string {
	return i18n.T(lang, "chatbot."+Classify(message))
}
