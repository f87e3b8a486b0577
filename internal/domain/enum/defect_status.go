package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DefectStatus represents the review state of a defect report
type DefectStatus int

const (
	DefectStatusOpen     DefectStatus = 0
	DefectStatusInReview DefectStatus = 1
	DefectStatusApproved DefectStatus = 2
	DefectStatusRejected DefectStatus = 3
	DefectStatusClosed   DefectStatus = 4
)

func (s DefectStatus) String() string {
	names := [...]string{"Open", "InReview", "Approved", "Rejected", "Closed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Open"
	}
	return names[s]
}

func (s DefectStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DefectStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DefectStatus(i)
		return nil
	}
	switch str {
	case "Open":
		*s = DefectStatusOpen
	case "InReview":
		*s = DefectStatusInReview
	case "Approved":
		*s = DefectStatusApproved
	case "Rejected":
		*s = DefectStatusRejected
	case "Closed":
		*s = DefectStatusClosed
	}
	return nil
}

func (s DefectStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DefectStatus) Scan(value interface{}) error {
	if value == nil {
		*s = DefectStatusOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DefectStatus(v)
	case int:
		*s = DefectStatus(v)
	}
	return nil
}
