package enums

import "fmt"

// CostType labels the extra cost lines recorded against a purchase.
type CostType string

const (
	CostTypeShipping   CostType = "shipping"
	CostTypeInsurance  CostType = "insurance"
	CostTypeRepair     CostType = "repair"
	CostTypeStorage    CostType = "storage"
	CostTypeInspection CostType = "inspection"
	CostTypeRecycling  CostType = "recycling"
	CostTypeOther      CostType = "other"
)

var validCostTypes = []CostType{
	CostTypeShipping,
	CostTypeInsurance,
	CostTypeRepair,
	CostTypeStorage,
	CostTypeInspection,
	CostTypeRecycling,
	CostTypeOther,
}

// String implements fmt.Stringer.
func (c CostType) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CostType.
func (c CostType) IsValid() bool {
	for _, candidate := range validCostTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCostType converts raw input into a CostType.
func ParseCostType(value string) (CostType, error) {
	for _, candidate := range validCostTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cost type %q", value)
}
