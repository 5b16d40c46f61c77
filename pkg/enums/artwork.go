package enums

import "fmt"

// ArtworkCategory maps to the artwork_category enum in Postgres.
type ArtworkCategory string

const (
	CategoryPainting     ArtworkCategory = "painting"
	CategorySculpture    ArtworkCategory = "sculpture"
	CategoryPhotography  ArtworkCategory = "photography"
	CategoryDigitalArt   ArtworkCategory = "digital-art"
	CategoryMixedMedia   ArtworkCategory = "mixed-media"
	CategoryStreetArt    ArtworkCategory = "street-art"
	CategoryAbstract     ArtworkCategory = "abstract"
	CategoryIllustration ArtworkCategory = "illustration"
	CategoryInstallation ArtworkCategory = "installation"
	CategoryGraphicArt   ArtworkCategory = "graphic-design"
)

var validArtworkCategories = []ArtworkCategory{
	CategoryPainting,
	CategorySculpture,
	CategoryPhotography,
	CategoryDigitalArt,
	CategoryMixedMedia,
	CategoryStreetArt,
	CategoryAbstract,
	CategoryIllustration,
	CategoryInstallation,
	CategoryGraphicArt,
}

// String implements fmt.Stringer.
func (c ArtworkCategory) String() string {
	return string(c)
}

// IsValid reports whether the value matches the canonical artwork_category enum.
func (c ArtworkCategory) IsValid() bool {
	for _, candidate := range validArtworkCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseArtworkCategory converts raw input into ArtworkCategory.
func ParseArtworkCategory(value string) (ArtworkCategory, error) {
	for _, candidate := range validArtworkCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid artwork category %q", value)
}

// ArtworkCondition maps to the artwork_condition enum in Postgres.
type ArtworkCondition string

const (
	ConditionMint      ArtworkCondition = "mint"
	ConditionExcellent ArtworkCondition = "excellent"
	ConditionGood      ArtworkCondition = "good"
	ConditionFair      ArtworkCondition = "fair"
	ConditionPoor      ArtworkCondition = "poor"
)

var validArtworkConditions = []ArtworkCondition{
	ConditionMint,
	ConditionExcellent,
	ConditionGood,
	ConditionFair,
	ConditionPoor,
}

// String implements fmt.Stringer.
func (c ArtworkCondition) String() string {
	return string(c)
}

// IsValid reports whether the value matches the canonical artwork_condition enum.
func (c ArtworkCondition) IsValid() bool {
	for _, candidate := range validArtworkConditions {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseArtworkCondition converts raw input into ArtworkCondition.
func ParseArtworkCondition(value string) (ArtworkCondition, error) {
	for _, candidate := range validArtworkConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid artwork condition %q", value)
}

// ArtworkStatus maps to the artwork_status enum in Postgres.
type ArtworkStatus string

const (
	StatusAvailable ArtworkStatus = "available"
	StatusOnLoan    ArtworkStatus = "on-loan"
	StatusReserved  ArtworkStatus = "reserved"
	StatusInStorage ArtworkStatus = "in-storage"
	StatusSold      ArtworkStatus = "sold"
)

var validArtworkStatuses = []ArtworkStatus{
	StatusAvailable,
	StatusOnLoan,
	StatusReserved,
	StatusInStorage,
	StatusSold,
}

// String implements fmt.Stringer.
func (s ArtworkStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches the canonical artwork_status enum.
func (s ArtworkStatus) IsValid() bool {
	for _, candidate := range validArtworkStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseArtworkStatus converts raw input into ArtworkStatus.
func ParseArtworkStatus(value string) (ArtworkStatus, error) {
	for _, candidate := range validArtworkStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid artwork status %q", value)
}
