package booking

import (
	"math"

	"cleanmaster/models"
)

// ComputeQuote aggregates line items into the session quote. Pure function:
// an empty cart yields a zero quote (rejecting it is the submission flow's
// job, not the calculator's).
//
// Monetary values are rounded to 2 decimal places at computation time; net
// and remaining are derived by subtraction so the identities
// net = base - discount and remaining = net - advance hold exactly.
func ComputeQuote(items []models.LineItem, method models.PaymentMethod, discountRate, advanceRate float64) models.Quote {
	var base float64
	for _, item := range items {
		base += item.LineTotal
	}

	quote := models.Quote{
		BasePrice:     base,
		PaymentMethod: method,
		NetPrice:      base,
	}
	if method != models.PaymentElectronic {
		return quote
	}

	quote.DiscountAmount = round2(base * discountRate)
	quote.NetPrice = base - quote.DiscountAmount
	quote.AdvancePayment = round2(quote.NetPrice * advanceRate)
	quote.RemainingBalance = quote.NetPrice - quote.AdvancePayment
	return quote
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
