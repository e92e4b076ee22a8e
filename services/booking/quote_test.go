package booking

import (
	"testing"

	"cleanmaster/models"
)

func items(totals ...float64) []models.LineItem {
	out := make([]models.LineItem, len(totals))
	for i, t := range totals {
		out[i] = models.LineItem{LineTotal: t}
	}
	return out
}

func TestComputeQuoteElectronic(t *testing.T) {
	// basePrice 1000, 10% discount, 25% advance
	q := ComputeQuote(items(1050, -50), models.PaymentElectronic, 0.10, 0.25)
	if q.BasePrice != 1000 {
		t.Fatalf("basePrice = %v, want 1000", q.BasePrice)
	}
	if q.DiscountAmount != 100 {
		t.Errorf("discountAmount = %v, want 100", q.DiscountAmount)
	}
	if q.NetPrice != 900 {
		t.Errorf("netPrice = %v, want 900", q.NetPrice)
	}
	if q.AdvancePayment != 225 {
		t.Errorf("advancePayment = %v, want 225", q.AdvancePayment)
	}
	if q.RemainingBalance != 675 {
		t.Errorf("remainingBalance = %v, want 675", q.RemainingBalance)
	}
}

func TestComputeQuoteCash(t *testing.T) {
	q := ComputeQuote(items(500), models.PaymentCash, 0.10, 0.25)
	if q.BasePrice != 500 || q.NetPrice != 500 {
		t.Fatalf("cash quote should keep base price: %+v", q)
	}
	if q.DiscountAmount != 0 || q.AdvancePayment != 0 {
		t.Errorf("cash quote must have no discount or advance: %+v", q)
	}
}

func TestComputeQuoteEmptyCartIsZero(t *testing.T) {
	q := ComputeQuote(nil, models.PaymentElectronic, 0.10, 0.25)
	if q.BasePrice != 0 || q.NetPrice != 0 || q.DiscountAmount != 0 || q.AdvancePayment != 0 {
		t.Fatalf("empty cart should produce a zero quote: %+v", q)
	}
}

func TestComputeQuoteIdentities(t *testing.T) {
	// Identities from the contract: net = base - discount,
	// remaining = net - advance, advance <= net.
	bases := [][]float64{{1000}, {150}, {7 * 150}, {333, 267}, {99.99}, {0.01}}
	for _, totals := range bases {
		q := ComputeQuote(items(totals...), models.PaymentElectronic, 0.10, 0.25)
		if got := q.BasePrice - q.DiscountAmount; q.NetPrice != got {
			t.Errorf("base %v: netPrice %v != base-discount %v", totals, q.NetPrice, got)
		}
		if got := q.NetPrice - q.AdvancePayment; q.RemainingBalance != got {
			t.Errorf("base %v: remaining %v != net-advance %v", totals, q.RemainingBalance, got)
		}
		if q.AdvancePayment > q.NetPrice {
			t.Errorf("base %v: advance %v exceeds net %v", totals, q.AdvancePayment, q.NetPrice)
		}
	}
}

func TestComputeQuoteRoundsToCents(t *testing.T) {
	// base 115 -> discount 11.5, net 103.5, raw advance 25.875 -> 25.88
	q := ComputeQuote(items(115), models.PaymentElectronic, 0.10, 0.25)
	if q.DiscountAmount != 11.5 {
		t.Errorf("discountAmount = %v, want 11.5", q.DiscountAmount)
	}
	if q.AdvancePayment != 25.88 {
		t.Errorf("advancePayment = %v, want 25.88", q.AdvancePayment)
	}
}
