package memory

import (
	"time"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/geo"
)

func cloneID(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func clonePoint(p *geo.Point) *geo.Point {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneDriver(d domain.Driver) domain.Driver {
	d.AssignedVehicleID = cloneID(d.AssignedVehicleID)
	d.CurrentOrderID = cloneID(d.CurrentOrderID)
	return d
}

func cloneVehicle(v domain.Vehicle) domain.Vehicle {
	v.OwnerDriverID = cloneID(v.OwnerDriverID)
	v.AssignedDriverID = cloneID(v.AssignedDriverID)
	v.CurrentOrderID = cloneID(v.CurrentOrderID)
	return v
}

func cloneOrder(o domain.Order) domain.Order {
	o.Pickup = clonePoint(o.Pickup)
	o.Drop = clonePoint(o.Drop)
	o.AssignedDriverID = cloneID(o.AssignedDriverID)
	o.AssignedVehicleID = cloneID(o.AssignedVehicleID)
	o.AssignedAt = cloneTime(o.AssignedAt)
	o.OnRouteAt = cloneTime(o.OnRouteAt)
	o.PickedUpAt = cloneTime(o.PickedUpAt)
	o.DeliveredAt = cloneTime(o.DeliveredAt)
	o.CancelledAt = cloneTime(o.CancelledAt)
	if o.Rating != nil {
		r := *o.Rating
		o.Rating = &r
	}
	return o
}

func cloneNotification(n domain.Notification) domain.Notification {
	n.ReadAt = cloneTime(n.ReadAt)
	if n.Payload != nil {
		p := make(map[string]any, len(n.Payload))
		for k, v := range n.Payload {
			p[k] = v
		}
		n.Payload = p
	}
	return n
}
