package enum

// AttachmentKind classifies a file attached to a defect report.
type AttachmentKind string

const (
	AttachmentPhoto        AttachmentKind = "photo"
	AttachmentRepairQuote  AttachmentKind = "repair_quote"
	AttachmentTransportDoc AttachmentKind = "transport_document"
)

// IsValid reports whether the kind is one of the known attachment types.
func (k AttachmentKind) IsValid() bool {
	switch k {
	case AttachmentPhoto, AttachmentRepairQuote, AttachmentTransportDoc:
		return true
	}
	return false
}
