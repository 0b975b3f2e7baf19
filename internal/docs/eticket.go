// Package docs renders printable booking documents. Text is kept to the
// Latin-script locales because the core PDF fonts cannot shape Arabic.
package docs

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"dzbooking/internal/models"
	"dzbooking/internal/search"
	"dzbooking/internal/utils"
)

// BuildETicket renders the e-ticket for a bus booking and returns the PDF
// bytes with a suggested filename.
func BuildETicket(booking models.BusBooking, bundle models.TripBundle) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(29, 78, 216)
	pdf.Rect(0, 0, 210, 26, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(18, 7)
	pdf.CellFormat(120, 8, "DzSmartBooking", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(18, 16)
	pdf.CellFormat(120, 6, "Bus E-Ticket", "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(34)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(52, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	duration := search.DurationMinutes(bundle.Trip.DepartureTime, bundle.Trip.ArrivalTime)

	row("Booking", booking.ID)
	row("Status", strings.ToUpper(booking.Status))
	row("Company", bundle.Company.Name)
	row("Route", fmt.Sprintf("%s -> %s", titleCity(bundle.Route.OriginCity), titleCity(bundle.Route.DestinationCity)))
	row("Date", bundle.Trip.DepartureDate)
	row("Departure", bundle.Trip.DepartureTime)
	row("Arrival", fmt.Sprintf("%s (%s)", bundle.Trip.ArrivalTime, search.FormatDuration(duration)))
	row("Bus class", bundle.Trip.BusType)
	row("Seat", fmt.Sprintf("%d", booking.SeatNumber))
	row("Passenger", booking.PassengerName)
	row("Phone", booking.PassengerPhone)
	row("Price", utils.FormatDinar(booking.Price))

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.MultiCell(0, 4, "Present this ticket with a valid ID when boarding. Cancellations are accepted while the booking is pending or confirmed.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render e-ticket: %w", err)
	}
	filename := fmt.Sprintf("eticket_%s.pdf", booking.ID)
	return buf.Bytes(), filename, nil
}

func titleCity(code string) string {
	words := strings.Split(code, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
