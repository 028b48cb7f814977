package domain

import (
	"regexp"
	"time"
)

// DriverStatus represents the duty status of a driver.
type DriverStatus string

// List of possible driver statuses
const (
	DriverAvailable DriverStatus = "available"
	DriverOnTrip    DriverStatus = "on-trip"
	DriverOffDuty   DriverStatus = "off-duty"
)

var allowedDriverStatuses = [...]DriverStatus{
	DriverAvailable, DriverOnTrip, DriverOffDuty,
}

// Valid checks if the DriverStatus is valid
func (s DriverStatus) Valid() bool {
	for _, v := range allowedDriverStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Driver is a registered driver.
type Driver struct {
	ID                int64        `json:"id"`
	Name              string       `json:"name"`
	Phone             string       `json:"phone"`
	Email             string       `json:"email,omitempty"`
	LicenseNumber     string       `json:"license_number"`
	Status            DriverStatus `json:"status"`
	AssignedVehicleID *int64       `json:"assigned_vehicle_id,omitempty"`
	CurrentOrderID    *int64       `json:"current_order_id,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// PartialDriverUpdate carries optional profile fields to update a driver.
// A nil field means "do not change" that attribute.
type PartialDriverUpdate struct {
	ID            int64
	Name          *string
	Phone         *string
	Email         *string
	LicenseNumber *string
}

// Empty reports whether the update changes nothing.
func (u PartialDriverUpdate) Empty() bool {
	return u.Name == nil && u.Phone == nil && u.Email == nil && u.LicenseNumber == nil
}

// rePhone accepts E.164 numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{10,15}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
