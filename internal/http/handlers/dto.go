package handlers

import (
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/geo"
	"delivery-dispatch/internal/service/lifecycle"
)

type pointDTO struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

func (p *pointDTO) toModel() *geo.Point {
	if p == nil {
		return nil
	}
	return &geo.Point{Lat: p.Lat, Lng: p.Lng}
}

type quoteRequest struct {
	VehicleClass domain.VehicleClass `json:"vehicle_class" validate:"required"`
	Pickup       *pointDTO           `json:"pickup"`
	Drop         *pointDTO           `json:"drop"`
	DistanceKm   *float64            `json:"distance_km" validate:"omitempty,gte=0"`
}

func (req quoteRequest) toModel() lifecycle.QuoteRequest {
	return lifecycle.QuoteRequest{
		Class:      req.VehicleClass,
		Pickup:     req.Pickup.toModel(),
		Drop:       req.Drop.toModel(),
		DistanceKm: req.DistanceKm,
	}
}

type createOrderRequest struct {
	CustomerID         int64               `json:"customer_id" validate:"required,gt=0"`
	PickupAddress      string              `json:"pickup_address" validate:"required"`
	DropAddress        string              `json:"drop_address" validate:"required"`
	Pickup             *pointDTO           `json:"pickup"`
	Drop               *pointDTO           `json:"drop"`
	DistanceKm         *float64            `json:"distance_km" validate:"omitempty,gte=0"`
	PackageWeightKg    float64             `json:"package_weight_kg" validate:"gte=0"`
	PackageDescription string              `json:"package_description"`
	VehicleClass       domain.VehicleClass `json:"vehicle_class" validate:"required"`
}

func (req createOrderRequest) toModel() lifecycle.CreateCommand {
	return lifecycle.CreateCommand{
		CustomerID:         req.CustomerID,
		PickupAddress:      req.PickupAddress,
		DropAddress:        req.DropAddress,
		Pickup:             req.Pickup.toModel(),
		Drop:               req.Drop.toModel(),
		DistanceKm:         req.DistanceKm,
		PackageWeightKg:    req.PackageWeightKg,
		PackageDescription: req.PackageDescription,
		VehicleClass:       req.VehicleClass,
	}
}

type assignRequest struct {
	DriverID  int64 `json:"driver_id" validate:"required,gt=0"`
	VehicleID int64 `json:"vehicle_id" validate:"required,gt=0"`
	AdminID   int64 `json:"admin_id" validate:"required,gt=0"`
}

type driverStepRequest struct {
	DriverID int64 `json:"driver_id" validate:"required,gt=0"`
}

type cancelRequest struct {
	ActorRole domain.Role `json:"actor_role" validate:"required,oneof=admin customer"`
	ActorID   int64       `json:"actor_id" validate:"required,gt=0"`
	Reason    string      `json:"reason" validate:"max=500"`
}

type rateRequest struct {
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback   string `json:"feedback" validate:"max=2000"`
}

type createDriverRequest struct {
	Name          string              `json:"name" validate:"required"`
	Phone         string              `json:"phone" validate:"required"`
	Email         string              `json:"email" validate:"omitempty,email"`
	LicenseNumber string              `json:"license_number" validate:"required"`
	Status        domain.DriverStatus `json:"status"`
}

func (req createDriverRequest) toModel() *domain.Driver {
	return &domain.Driver{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		LicenseNumber: req.LicenseNumber,
		Status:        req.Status,
	}
}

type updateDriverRequest struct {
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	LicenseNumber *string `json:"license_number,omitempty"`
}

func (req updateDriverRequest) toModel(id int64) domain.PartialDriverUpdate {
	return domain.PartialDriverUpdate{
		ID:            id,
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		LicenseNumber: req.LicenseNumber,
	}
}

type dutyRequest struct {
	OnDuty *bool `json:"on_duty" validate:"required"`
}

type maintenanceRequest struct {
	Maintenance *bool `json:"maintenance" validate:"required"`
}

type createVehicleRequest struct {
	Number        string              `json:"number" validate:"required"`
	Class         domain.VehicleClass `json:"class" validate:"required"`
	CapacityKg    float64             `json:"capacity_kg" validate:"gt=0"`
	FuelType      domain.FuelType     `json:"fuel_type"`
	OwnerDriverID *int64              `json:"owner_driver_id" validate:"omitempty,gt=0"`
}

func (req createVehicleRequest) toModel() *domain.Vehicle {
	return &domain.Vehicle{
		Number:        req.Number,
		Class:         req.Class,
		CapacityKg:    req.CapacityKg,
		FuelType:      req.FuelType,
		OwnerDriverID: req.OwnerDriverID,
	}
}

type idResponse struct {
	ID int64 `json:"id"`
}

type countResponse struct {
	Count int64 `json:"count"`
}
