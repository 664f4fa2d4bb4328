package session

import (
	"context"
	"errors"

	"storefront-checkout/internal/usecase/shared"
)

// FanOut hands every lifecycle event to each recorder in turn. One failing
// recorder does not stop the others.
type FanOut []shared.LifecycleRecorder

func (f FanOut) Record(ctx context.Context, event shared.LifecycleEvent) error {
	var failures []error
	for _, r := range f {
		if r == nil {
			continue
		}
		if err := r.Record(ctx, event); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
