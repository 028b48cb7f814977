package domain

import "time"

type (
	// VehicleClass is the booking category a customer requests and a vehicle belongs to.
	VehicleClass string
	// VehicleStatus represents the availability of a vehicle.
	VehicleStatus string
	// FuelType represents the fuel a vehicle runs on.
	FuelType string
)

// List of vehicle classes, smallest first.
const (
	ClassBike      VehicleClass = "bike"
	ClassVan       VehicleClass = "van"
	ClassMiniTruck VehicleClass = "mini-truck"
	ClassTruck     VehicleClass = "truck"
	ClassLorry     VehicleClass = "lorry"
)

// List of vehicle statuses.
const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInUse       VehicleStatus = "in-use"
	VehicleMaintenance VehicleStatus = "maintenance"
)

// List of fuel types.
const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelCNG      FuelType = "cng"
	FuelElectric FuelType = "electric"
)

var allowedClasses = [...]VehicleClass{
	ClassBike, ClassVan, ClassMiniTruck, ClassTruck, ClassLorry,
}

var allowedVehicleStatuses = [...]VehicleStatus{
	VehicleAvailable, VehicleInUse, VehicleMaintenance,
}

var allowedFuelTypes = [...]FuelType{
	FuelPetrol, FuelDiesel, FuelCNG, FuelElectric,
}

// Classes returns every known vehicle class.
func Classes() []VehicleClass {
	out := make([]VehicleClass, len(allowedClasses))
	copy(out, allowedClasses[:])
	return out
}

// Valid checks if the VehicleClass is valid
func (c VehicleClass) Valid() bool {
	for _, v := range allowedClasses {
		if c == v {
			return true
		}
	}
	return false
}

// Valid checks if the VehicleStatus is valid
func (s VehicleStatus) Valid() bool {
	for _, v := range allowedVehicleStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the FuelType is valid
func (f FuelType) Valid() bool {
	for _, v := range allowedFuelTypes {
		if f == v {
			return true
		}
	}
	return false
}

// Vehicle is a registered vehicle. It is in-use exactly when both
// AssignedDriverID and CurrentOrderID are set.
type Vehicle struct {
	ID               int64         `json:"id"`
	Number           string        `json:"number"`
	Class            VehicleClass  `json:"class"`
	CapacityKg       float64       `json:"capacity_kg"`
	FuelType         FuelType      `json:"fuel_type"`
	Status           VehicleStatus `json:"status"`
	OwnerDriverID    *int64        `json:"owner_driver_id,omitempty"`
	AssignedDriverID *int64        `json:"assigned_driver_id,omitempty"`
	CurrentOrderID   *int64        `json:"current_order_id,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// OwnedBy reports whether the driver owns this vehicle.
func (v *Vehicle) OwnedBy(driverID int64) bool {
	return v.OwnerDriverID != nil && *v.OwnerDriverID == driverID
}
