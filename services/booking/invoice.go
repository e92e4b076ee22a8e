package booking

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"cleanmaster/models"
)

// InvoiceConfig carries the display-only values the renderer needs.
type InvoiceConfig struct {
	DiscountPercentage float64
	AdvancePercentage  float64
	WhatsAppNumber     string
}

// RenderInvoice formats a booking into the WhatsApp invoice text. Stateless
// and deterministic; the messaging hand-off itself is WhatsAppLink's job.
func RenderInvoice(b models.Booking, cfg InvoiceConfig) string {
	var sb strings.Builder

	sb.WriteString("✅ *تم تأكيد الحجز بنجاح!* - (عبر الموقع)\n\n")
	sb.WriteString("🧾 *فاتورة حجز تفصيلية*\n")
	sb.WriteString("------------------------\n")
	fmt.Fprintf(&sb, "*رقم الحجز:* #%s\n", b.Ref)
	fmt.Fprintf(&sb, "*العميل:* %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "*الهاتف:* %s\n", b.Phone)
	sb.WriteString("------------------------\n")
	sb.WriteString("*الخدمات المطلوبة:*\n")

	for _, item := range b.Services {
		fmt.Fprintf(&sb, "🔹 *%s*\n", item.Name)
		fmt.Fprintf(&sb, "   الكمية: %d %s × %s ج = %s جنيه\n",
			item.Quantity, item.Type.UnitLabel(), formatMoney(item.UnitPrice), formatMoney(item.LineTotal))
	}

	sb.WriteString("------------------------\n")
	sb.WriteString("💰 *الملخص المالي:*\n")
	fmt.Fprintf(&sb, "*الإجمالي:* %s جنيه\n", formatMoney(b.BasePrice))

	if b.PaymentMethod == models.PaymentElectronic {
		remaining := b.FinalPrice - b.AdvancePayment
		fmt.Fprintf(&sb, "*خصم الدفع الإلكتروني (%s%%):* -%s جنيه\n", formatMoney(cfg.DiscountPercentage), formatMoney(b.DiscountAmount))
		fmt.Fprintf(&sb, "*الصافي بعد الخصم:* %s جنيه\n", formatMoney(b.FinalPrice))
		fmt.Fprintf(&sb, "*العربون المحول (%s%%):* %s جنيه\n", formatMoney(cfg.AdvancePercentage), formatMoney(b.AdvancePayment))
		fmt.Fprintf(&sb, "*المتبقي (عند الاستلام):* %s جنيه\n", formatMoney(remaining))
	} else {
		fmt.Fprintf(&sb, "*المطلوب عند الاستلام:* %s جنيه\n", formatMoney(b.FinalPrice))
	}

	sb.WriteString("------------------------\n")
	fmt.Fprintf(&sb, "📍 *العنوان:* %s\n", b.Address)
	fmt.Fprintf(&sb, "📅 *الموعد:* %s | الساعة %s\n", b.Date, b.Time)
	if b.Notes != "" {
		fmt.Fprintf(&sb, "📝 *ملاحظات:* %s\n", b.Notes)
	}
	if b.Location != nil {
		fmt.Fprintf(&sb, "🗺️ *الموقع (GPS):* %s\n", b.Location.MapURL)
	}
	if b.PaymentProof != nil {
		fmt.Fprintf(&sb, "🧾 *إثبات الدفع:* %s\n", b.PaymentProof.URL)
	}

	return sb.String()
}

// WhatsAppLink wraps free text in a wa.me deep link that opens a chat
// composer pre-filled with it.
func WhatsAppLink(number, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}

// formatMoney renders a monetary value with thousands separators and no
// trailing zeros, e.g. 1050 -> "1,050", 74.5 -> "74.5".
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups[0:]...)
	out := strings.Join(groups, ",") + frac
	if neg {
		out = "-" + out
	}
	return out
}
