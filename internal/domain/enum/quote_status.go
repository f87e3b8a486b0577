package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// QuoteStatus represents the lifecycle state of a quote
type QuoteStatus int

const (
	QuoteStatusPending   QuoteStatus = 0
	QuoteStatusConverted QuoteStatus = 1
	QuoteStatusRejected  QuoteStatus = 2
)

func (s QuoteStatus) String() string {
	names := [...]string{"Pending", "Converted", "Rejected"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Pending"
	}
	return names[s]
}

// CanTransitionTo reports whether the transition to target is allowed.
// Rejected is terminal; Converted may only be reverted back to Pending.
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	switch s {
	case QuoteStatusPending:
		return target == QuoteStatusConverted || target == QuoteStatusRejected
	case QuoteStatusConverted:
		return target == QuoteStatusPending
	default:
		return false
	}
}

func (s QuoteStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *QuoteStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = QuoteStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = QuoteStatusPending
	case "Converted":
		*s = QuoteStatusConverted
	case "Rejected":
		*s = QuoteStatusRejected
	}
	return nil
}

func (s QuoteStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *QuoteStatus) Scan(value interface{}) error {
	if value == nil {
		*s = QuoteStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = QuoteStatus(v)
	case int:
		*s = QuoteStatus(v)
	}
	return nil
}
