package booking

import (
	"strings"
	"testing"

	"cleanmaster/models"
)

var testCatalog = []models.Service{
	{ID: "mosque_carpets", Name: "غسيل سجاد المساجد 🕌", Price: 7, Type: models.PricingPerMeter},
	{ID: "sofa_cleaning", Name: "تنظيف الانتريهات بالبخار 🛋️", Price: 350, Type: models.PricingFixed},
	{ID: "post_construction", Name: "نظافة ما بعد التشطيب 🧱", Price: 0, Type: models.PricingConsultation},
}

const testMinimumArea = 100

func TestAddServiceUnknownID(t *testing.T) {
	_, err := AddService(testCatalog, nil, "window_washing", "10", testMinimumArea)
	ve, ok := AsValidation(err)
	if !ok || ve.Code != CodeNotFound {
		t.Fatalf("expected %s, got %v", CodeNotFound, err)
	}
}

func TestAddServiceDuplicateRejectedRegardlessOfQuantity(t *testing.T) {
	items := []models.LineItem{{ServiceID: "mosque_carpets", Quantity: 150}}
	_, err := AddService(testCatalog, items, "mosque_carpets", "999", testMinimumArea)
	ve, ok := AsValidation(err)
	if !ok || ve.Code != CodeDuplicateSelection {
		t.Fatalf("expected %s, got %v", CodeDuplicateSelection, err)
	}
}

func TestAddServicePerMeterMinimum(t *testing.T) {
	cases := []struct {
		name     string
		quantity string
		wantErr  bool
	}{
		{"below minimum", "50", true},
		{"one under", "99", true},
		{"at minimum", "100", false},
		{"above minimum", "150", false},
		{"non-numeric counts as zero", "abc", true},
		{"empty counts as zero", "", true},
		{"negative counts as zero", "-5", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item, err := AddService(testCatalog, nil, "mosque_carpets", tc.quantity, testMinimumArea)
			if tc.wantErr {
				ve, ok := AsValidation(err)
				if !ok || ve.Code != CodeBelowMinimum {
					t.Fatalf("expected %s, got %v", CodeBelowMinimum, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.LineTotal != item.UnitPrice*float64(item.Quantity) {
				t.Errorf("lineTotal %v != unitPrice %v * quantity %d", item.LineTotal, item.UnitPrice, item.Quantity)
			}
		})
	}
}

func TestAddServiceMinimumMessageIncludesConfiguredMinimum(t *testing.T) {
	_, err := AddService(testCatalog, nil, "mosque_carpets", "50", 250)
	ve, ok := AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if want := "250"; !strings.Contains(ve.Message, want) {
		t.Errorf("minimum message %q should include %q", ve.Message, want)
	}
}

func TestAddServiceScenarioMosqueCarpets(t *testing.T) {
	// price 7 per meter, minimum 100
	if _, err := AddService(testCatalog, nil, "mosque_carpets", "50", testMinimumArea); err == nil {
		t.Fatal("quantity 50 should be rejected")
	}
	item, err := AddService(testCatalog, nil, "mosque_carpets", "150", testMinimumArea)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.LineTotal != 1050 {
		t.Errorf("expected lineTotal 1050, got %v", item.LineTotal)
	}
}

func TestAddServiceFixedMinimumOne(t *testing.T) {
	if _, err := AddService(testCatalog, nil, "sofa_cleaning", "0", testMinimumArea); err == nil {
		t.Fatal("quantity 0 should be rejected for fixed services")
	}
	item, err := AddService(testCatalog, nil, "sofa_cleaning", "2", testMinimumArea)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.LineTotal != 700 {
		t.Errorf("expected lineTotal 700, got %v", item.LineTotal)
	}
}

func TestAddServiceUnknownPricingTypeRejected(t *testing.T) {
	catalog := append([]models.Service{}, testCatalog...)
	catalog = append(catalog, models.Service{
		ID: "hourly_maid", Name: "عاملة بالساعة", Price: 60, Type: models.PricingType("hourly"),
	})

	_, err := AddService(catalog, nil, "hourly_maid", "3", testMinimumArea)
	if err == nil {
		t.Fatal("an unrecognized pricing type must not be priced as a flat fee")
	}
	if _, ok := AsValidation(err); ok {
		t.Fatalf("a bad catalog entry is not a customer input error, got %v", err)
	}
}

func TestAddServiceConsultationForcesQuantityOne(t *testing.T) {
	item, err := AddService(testCatalog, nil, "post_construction", "37", testMinimumArea)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity != 1 {
		t.Errorf("consultation quantity should be forced to 1, got %d", item.Quantity)
	}
	if item.LineTotal != 0 {
		t.Errorf("consultation line total should be 0, got %v", item.LineTotal)
	}
}

func TestRemoveServiceIdempotent(t *testing.T) {
	items := []models.LineItem{
		{ServiceID: "mosque_carpets"},
		{ServiceID: "sofa_cleaning"},
	}

	out := RemoveService(items, "sofa_cleaning")
	if len(out) != 1 || out[0].ServiceID != "mosque_carpets" {
		t.Fatalf("unexpected items after removal: %+v", out)
	}

	// Removing an absent id is a no-op.
	out = RemoveService(out, "sofa_cleaning")
	if len(out) != 1 {
		t.Fatalf("removal of absent id should leave items unchanged, got %+v", out)
	}
}
