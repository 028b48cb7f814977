// Package pricing turns a trip distance and vehicle class into a fare and
// its split between driver and vehicle owner.
package pricing

import (
	"math"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/geo"
)

// Engine quotes fares from a static rate table. It is safe for concurrent use.
type Engine struct {
	rates     RateTable
	precision int
}

// NewEngine creates an Engine. A nil table falls back to DefaultRates.
// precision is the number of decimals kept on computed trip distances.
func NewEngine(rates RateTable, precision int) *Engine {
	if rates == nil {
		rates = DefaultRates()
	}
	if precision < 0 {
		precision = 0
	}
	return &Engine{rates: rates, precision: precision}
}

// Rate returns the tariff of a class.
func (e *Engine) Rate(class domain.VehicleClass) (Rate, error) {
	r, ok := e.rates[class]
	if !ok {
		return Rate{}, &apperr.UnknownVehicleClassError{Class: string(class)}
	}
	return r, nil
}

// Quote prices a trip:
//
//	total = round(max(base + distance*perKm, minimum))
//
// An owner-driver receives the whole total. Otherwise the driver gets
// round(total*share) and the vehicle charge is the remainder, so the two
// parts always add up to the total.
func (e *Engine) Quote(class domain.VehicleClass, distanceKm float64, driverOwnsVehicle bool) (domain.Quote, error) {
	rate, err := e.Rate(class)
	if err != nil {
		return domain.Quote{}, err
	}
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return domain.Quote{}, apperr.Reasonf(apperr.Invalid, "distance %g km is not a valid trip length", distanceKm)
	}

	distanceCharge := distanceKm * float64(rate.PerKm)
	raw := float64(rate.BaseFare) + distanceCharge
	minApplied := raw < float64(rate.MinimumCharge)
	if minApplied {
		raw = float64(rate.MinimumCharge)
	}
	total := int64(math.Round(raw))

	q := domain.Quote{
		Class:      class,
		DistanceKm: distanceKm,
		Total:      total,
		Breakdown: domain.QuoteBreakdown{
			BaseFare:       rate.BaseFare,
			PerKm:          rate.PerKm,
			DistanceCharge: distanceCharge,
			MinimumCharge:  rate.MinimumCharge,
			MinimumApplied: minApplied,
		},
	}
	q.DriverPayment, q.VehicleCharge = split(total, rate.DriverShare, driverOwnsVehicle)
	return q, nil
}

// QuoteTrip computes the haversine distance between two points and prices it
// for a driver who does not own the vehicle.
func (e *Engine) QuoteTrip(class domain.VehicleClass, pickup, drop geo.Point) (domain.Quote, error) {
	if _, err := e.Rate(class); err != nil {
		return domain.Quote{}, err
	}
	d, err := geo.DistanceKm(pickup, drop, e.precision)
	if err != nil {
		return domain.Quote{}, err
	}
	return e.Quote(class, d, false)
}

// Resplit recomputes the driver/vehicle split of an already priced total.
func (e *Engine) Resplit(class domain.VehicleClass, total int64, driverOwnsVehicle bool) (domain.Price, error) {
	rate, err := e.Rate(class)
	if err != nil {
		return domain.Price{}, err
	}
	driver, vehicle := split(total, rate.DriverShare, driverOwnsVehicle)
	return domain.Price{Total: total, DriverPayment: driver, VehicleCharge: vehicle}, nil
}

// Precision returns the number of decimals kept on trip distances.
func (e *Engine) Precision() int { return e.precision }

func split(total int64, share float64, ownsVehicle bool) (driver, vehicle int64) {
	if ownsVehicle {
		return total, 0
	}
	driver = int64(math.Round(float64(total) * share))
	return driver, total - driver
}
