package service

import "errors"

// ErrValidation wraps a rejected field when strict validation is on.
var ErrValidation = errors.New("validation failed")

// EventPublisher receives an event after every successful write.
type EventPublisher interface {
	PublishEvent(subject, eventType string, payload interface{})
}

type Option func(*options)

type options struct {
	events EventPublisher
	strict bool
}

// WithEvents publishes write events through p.
func WithEvents(p EventPublisher) Option {
	return func(o *options) { o.events = p }
}

// WithStrictValidation makes the service enforce the phone number and
// access card checks that the client normally runs.
func WithStrictValidation(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) publish(subject, eventType string, payload interface{}) {
	if o.events != nil {
		o.events.PublishEvent(subject, eventType, payload)
	}
}
