package service

import (
	"context"
	"time"

	"github.com/MKhiriev/proxy-desk-bot/models"
)

// ObservedDispatcher reports the handling time of every event to an
// [EventObserver].
type ObservedDispatcher struct {
	inner    Dispatcher
	observer EventObserver
}

func NewObservedDispatcher(observer EventObserver) DispatcherWrapper {
	return &ObservedDispatcher{observer: observer}
}

func (o *ObservedDispatcher) Wrap(inner Dispatcher) Dispatcher {
	return &ObservedDispatcher{inner: inner, observer: o.observer}
}

func (o *ObservedDispatcher) Handle(ctx context.Context, event models.Event) []models.Reply {
	started := time.Now()
	replies := o.inner.Handle(ctx, event)
	o.observer.ObserveEvent(event.Kind, time.Since(started).Seconds())
	return replies
}
