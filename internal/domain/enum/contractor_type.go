package enum

// ContractorType discriminates the two contractor variants on a contract.
type ContractorType string

const (
	ContractorNaturalPerson ContractorType = "naturalPerson"
	ContractorLegalEntity   ContractorType = "legalEntity"
)

// IsValid reports whether the value is one of the two known variants.
func (t ContractorType) IsValid() bool {
	return t == ContractorNaturalPerson || t == ContractorLegalEntity
}
