package models

// PricingType determines how a catalog service is quantified and priced.
type PricingType string

const (
	PricingPerMeter     PricingType = "meter"        // priced per square meter, global minimum area applies
	PricingFixed        PricingType = "fixed"        // flat fee per piece, minimum count of 1
	PricingConsultation PricingType = "consultation" // price settled after an on-site assessment
)

// Service is one offerable catalog entry. The engine treats the catalog as
// immutable: line items embed a copy of these fields, so later price edits
// never alter an already-built selection.
type Service struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name_ar" json:"name_ar"`
	Price       float64     `bson:"price" json:"price"`
	Type        PricingType `bson:"type" json:"type"`
	Category    string      `bson:"category" json:"category"`
	Description string      `bson:"description_ar,omitempty" json:"description_ar,omitempty"`
	Icon        string      `bson:"icon,omitempty" json:"icon,omitempty"`
	Includes    []string    `bson:"includes,omitempty" json:"includes,omitempty"`
	VideoURL    string      `bson:"video_url,omitempty" json:"video_url,omitempty"`
}

// UnitLabel returns the Arabic unit label used on invoices.
func (t PricingType) UnitLabel() string {
	if t == PricingPerMeter {
		return "متر"
	}
	return "قطعة"
}
