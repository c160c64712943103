package report

import (
	"fmt"
	"io"
	"math"

	"concertPlanner/internal/models"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer renders money and event reports for one locale.
type Printer struct {
	p     *message.Printer
	color bool
}

// NewPrinter builds a Printer for a BCP 47 locale such as "en-US".
// With useColor false no escape sequences are written.
func NewPrinter(locale string, useColor bool) (*Printer, error) {
	const op = "report.NewPrinter"

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Printer{
		p:     message.NewPrinter(tag),
		color: useColor,
	}, nil
}

// Money formats v with cents and thousands separators, e.g. -$1,234.50.
func (pr *Printer) Money(v float64) string {
	return pr.money(v, 2)
}

// WholeMoney drops the cents, e.g. $12,000.
func (pr *Printer) WholeMoney(v float64) string {
	return pr.money(v, 0)
}

func (pr *Printer) money(v float64, places int) string {
	scale := math.Pow10(places)
	if math.Round(v*scale) == 0 {
		v = 0
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	return sign + "$" + pr.p.Sprintf(fmt.Sprintf("%%.%df", places), v)
}

// Percent renders a fraction such as 0.1 as 10.0%.
func (pr *Printer) Percent(f float64) string {
	return pr.p.Sprintf("%.1f", f*100) + "%"
}

func (pr *Printer) Count(n int) string {
	return pr.p.Sprintf("%d", n)
}

func (pr *Printer) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if !pr.color {
		c.DisableColor()
	}

	return c.Sprint(s)
}

// Profit colors the amount green when positive and red when negative.
func (pr *Printer) Profit(v float64) string {
	s := pr.Money(v)

	switch {
	case v > 0:
		return pr.paint(color.FgGreen, s)
	case v < 0:
		return pr.paint(color.FgRed, s)
	default:
		return s
	}
}

func (pr *Printer) Heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", pr.paint(color.Bold, "--- "+title+" ---"))
}

// Summary prints the financial breakdown shown after planning an event.
func (pr *Printer) Summary(w io.Writer, venue models.Venue, e models.Event) {
	pr.Heading(w, "Event Summary")
	fmt.Fprintf(w, "Venue: %s (capacity %s, rental %s)\n", venue.Name, pr.Count(venue.Capacity), pr.WholeMoney(venue.RentalCost))
	fmt.Fprintf(w, "Artist: %s on %s — expected attendance: %s\n", e.ArtistName, models.FormatDate(e.Date), pr.Count(e.ExpectedAttendance))
	fmt.Fprintf(w, "Ticket price: %s\n", pr.Money(e.TicketPrice))
	fmt.Fprintf(w, "Ticket gross: %s\n", pr.Money(e.TicketGross()))
	fmt.Fprintf(w, "Fees (%s): %s\n", pr.Percent(e.FeesPercent), pr.Money(e.FeesTotal()))
	fmt.Fprintf(w, "Merch gross: %s\n", pr.Money(e.MerchGross()))
	fmt.Fprintf(w, "Costs (artist + operational costs + rental + fees): %s\n", pr.Money(e.TotalCosts()))
	fmt.Fprintf(w, "Total revenue: %s\n", pr.Money(e.TotalRevenue()))
	fmt.Fprintf(w, "Profit: %s\n", pr.Profit(e.Profit()))
}

// EventLine is one row of the scheduled events listing. found is false when
// the event's venue is no longer in the catalog; capacity then shows as "?".
func (pr *Printer) EventLine(e models.Event, venue models.Venue, found bool) string {
	capacity := "?"
	if found {
		capacity = pr.Count(venue.Capacity)
	}

	return fmt.Sprintf("%s — %s — %s — %s/%s — price %s — profit %s",
		models.FormatDate(e.Date),
		e.VenueName,
		e.ArtistName,
		pr.Count(e.ExpectedAttendance),
		capacity,
		pr.Money(e.TicketPrice),
		pr.Profit(e.Profit()),
	)
}

// VenueMenu lists venues numbered from 1 in the order given.
func (pr *Printer) VenueMenu(w io.Writer, venues []models.Venue) {
	fmt.Fprintln(w, "\nAvailable Venues:")
	for i, v := range venues {
		fmt.Fprintf(w, "%d. %s — capacity %s — rental %s — %s\n",
			i+1, v.Name, pr.Count(v.Capacity), pr.WholeMoney(v.RentalCost), v.City)
	}
}
