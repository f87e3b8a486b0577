package enum

// WarrantyTerm selects the contractual warranty duration. Stored and
// serialized as its string value.
type WarrantyTerm string

const (
	WarrantyStandard24 WarrantyTerm = "standard24"
	WarrantyExtended84 WarrantyTerm = "extended84"
)

// ParseWarrantyTerm maps a raw string to a known term. Unknown values fail
// closed to the standard term so a typo can never add the extended surcharge.
func ParseWarrantyTerm(s string) WarrantyTerm {
	if WarrantyTerm(s) == WarrantyExtended84 {
		return WarrantyExtended84
	}
	return WarrantyStandard24
}

// IsExtended reports whether the term carries the extended warranty surcharge.
func (t WarrantyTerm) IsExtended() bool {
	return t == WarrantyExtended84
}
