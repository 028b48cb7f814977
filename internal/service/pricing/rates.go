package pricing

import "delivery-dispatch/internal/domain"

// Rate is the tariff of one vehicle class in whole currency units.
// DriverShare is the fraction of the total paid to a driver who does not
// own the vehicle; the remainder goes to the vehicle owner.
type Rate struct {
	BaseFare      int64   `json:"base_fare"`
	PerKm         int64   `json:"per_km"`
	MinimumCharge int64   `json:"minimum_charge"`
	DriverShare   float64 `json:"driver_share"`
}

// RateTable maps a vehicle class to its tariff.
type RateTable map[domain.VehicleClass]Rate

var defaultRates = RateTable{
	domain.ClassBike:      {BaseFare: 20, PerKm: 8, MinimumCharge: 40, DriverShare: 0.80},
	domain.ClassVan:       {BaseFare: 50, PerKm: 15, MinimumCharge: 100, DriverShare: 0.65},
	domain.ClassMiniTruck: {BaseFare: 100, PerKm: 20, MinimumCharge: 200, DriverShare: 0.60},
	domain.ClassTruck:     {BaseFare: 200, PerKm: 30, MinimumCharge: 500, DriverShare: 0.55},
	domain.ClassLorry:     {BaseFare: 300, PerKm: 40, MinimumCharge: 800, DriverShare: 0.50},
}

// DefaultRates returns a copy of the built-in tariff.
func DefaultRates() RateTable {
	out := make(RateTable, len(defaultRates))
	for k, v := range defaultRates {
		out[k] = v
	}
	return out
}
