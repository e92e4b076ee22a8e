package booking

import (
	"fmt"
	"strconv"

	"cleanmaster/models"
)

// AddService validates a (service, quantity) selection against the catalog
// and the existing line items, and returns the priced line item. The catalog
// entry is copied into the item, so later catalog edits never alter it.
//
// Quantity resolution by pricing type:
//   - consultation: forced to 1, rawQuantity ignored
//   - meter: parsed as an integer (non-numeric counts as 0), must reach the
//     configured minimum area
//   - fixed: parsed the same way, must be at least 1
func AddService(catalog []models.Service, items []models.LineItem, serviceID, rawQuantity string, minimumArea int) (models.LineItem, error) {
	var svc *models.Service
	for i := range catalog {
		if catalog[i].ID == serviceID {
			svc = &catalog[i]
			break
		}
	}
	if svc == nil {
		return models.LineItem{}, newValidationError(CodeNotFound, "يرجى اختيار خدمة")
	}

	for _, item := range items {
		if item.ServiceID == serviceID {
			return models.LineItem{}, newValidationError(CodeDuplicateSelection, "هذه الخدمة مضافة بالفعل")
		}
	}

	var quantity int
	switch svc.Type {
	case models.PricingConsultation:
		quantity = 1
	case models.PricingPerMeter:
		quantity = parseQuantity(rawQuantity)
		if quantity < minimumArea {
			return models.LineItem{}, newValidationError(CodeBelowMinimum,
				fmt.Sprintf("الحد الأدنى للمساحة هو %d متر", minimumArea))
		}
	case models.PricingFixed:
		quantity = parseQuantity(rawQuantity)
		if quantity < 1 {
			return models.LineItem{}, newValidationError(CodeBelowMinimum, "الحد الأدنى للعدد هو 1")
		}
	default:
		// A catalog entry with a pricing type this code does not know must
		// not be priced as if it were fixed.
		return models.LineItem{}, fmt.Errorf("service %s has unknown pricing type %q", svc.ID, svc.Type)
	}

	return models.LineItem{
		ServiceID: svc.ID,
		Name:      svc.Name,
		Type:      svc.Type,
		UnitPrice: svc.Price,
		Quantity:  quantity,
		LineTotal: svc.Price * float64(quantity),
	}, nil
}

// RemoveService removes the item with the given service id. Removing an
// absent id is a no-op, not an error.
func RemoveService(items []models.LineItem, serviceID string) []models.LineItem {
	out := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		if item.ServiceID != serviceID {
			out = append(out, item)
		}
	}
	return out
}

// parseQuantity mirrors the form's `parseInt(x) || 0` behavior.
func parseQuantity(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
