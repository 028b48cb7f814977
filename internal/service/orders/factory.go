package orders

import (
	"context"

	"delivery-dispatch/internal/domain"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byStatus map[domain.OrderStatus]actionFunc
}

func newActionFactory(onRoute, onPickedUp, onDelivered, onCancelled actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[domain.OrderStatus]actionFunc{
			// pending и assigned приходят только от API, здесь их не ждём
			domain.OrderOnRoute:   onRoute,
			domain.OrderPickedUp:  onPickedUp,
			domain.OrderDelivered: onDelivered,
			domain.OrderCancelled: onCancelled,
		},
	}
}

// get accepts canonical and legacy spellings, e.g. "in-transit" or "completed".
func (f *actionFactory) get(status string) (actionFunc, bool) {
	st, ok := domain.ParseOrderStatus(status)
	if !ok {
		return nil, false
	}
	fn, ok := f.byStatus[st]
	return fn, ok
}
