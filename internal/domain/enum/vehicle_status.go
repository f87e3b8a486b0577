package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// VehicleStatus represents the availability of a vehicle in stock
type VehicleStatus int

const (
	VehicleStatusAvailable VehicleStatus = 0
	VehicleStatusReserved  VehicleStatus = 1
	VehicleStatusSold      VehicleStatus = 2
)

func (s VehicleStatus) String() string {
	names := [...]string{"Available", "Reserved", "Sold"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Available"
	}
	return names[s]
}

func (s VehicleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *VehicleStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = VehicleStatus(i)
		return nil
	}
	switch str {
	case "Available":
		*s = VehicleStatusAvailable
	case "Reserved":
		*s = VehicleStatusReserved
	case "Sold":
		*s = VehicleStatusSold
	}
	return nil
}

func (s VehicleStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *VehicleStatus) Scan(value interface{}) error {
	if value == nil {
		*s = VehicleStatusAvailable
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = VehicleStatus(v)
	case int:
		*s = VehicleStatus(v)
	}
	return nil
}
