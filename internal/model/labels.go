package model

// designFocusLabels maps design_focus form values to display labels.
var designFocusLabels = map[string]string{
	"ui-ux":        "UI/UX Design",
	"graphic":      "Graphic Design",
	"branding":     "Branding",
	"illustration": "Illustration",
	"web":          "Web Design",
	"mobile":       "Mobile App Design",
	"product":      "Product Design",
	"motion":       "Motion Graphics",
	"other":        "Other",
}

// opportunitiesLabels maps opportunities form values to display labels.
var opportunitiesLabels = map[string]string{
	"freelance":      "Freelance Projects",
	"full-time":      "Full-time Positions",
	"collaboration":  "Design Collaborations",
	"portfolio-flex": "Just Flexing My Portfolio",
	"feedback":       "Looking for Feedback",
	"networking":     "Networking & Community",
}

// DesignFocusLabel returns the display label for a design_focus value.
// Unrecognized values pass through verbatim.
func DesignFocusLabel(value string) string {
	if label, ok := designFocusLabels[value]; ok {
		return label
	}
	return value
}

// OpportunitiesLabel returns the display label for an opportunities value.
// Unrecognized values pass through verbatim.
func OpportunitiesLabel(value string) string {
	if label, ok := opportunitiesLabels[value]; ok {
		return label
	}
	return value
}

// DesignFocusValues returns the known design_focus form values.
func DesignFocusValues() []string {
	return []string{"ui-ux", "graphic", "branding", "illustration", "web", "mobile", "product", "motion", "other"}
}

// OpportunitiesValues returns the known opportunities form values.
func OpportunitiesValues() []string {
	return []string{"freelance", "full-time", "collaboration", "portfolio-flex", "feedback", "networking"}
}
