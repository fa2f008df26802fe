package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/repository"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
	"github.com/noah-isme/school-admin-api/pkg/events"
)

// notify publishes a change event. Delivery failures are logged and never
// reach the caller.
func notify(ctx context.Context, publisher events.Publisher, logger *zap.Logger, typ events.Type, id string) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, events.Event{Type: typ, ID: id}); err != nil {
		logger.Warn("publish event failed", zap.String("type", string(typ)), zap.String("id", id), zap.Error(err))
	}
}

// storeError maps record store failures onto API errors.
func storeError(err error, notFound, action string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	case errors.Is(err, repository.ErrIDExhausted):
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "no free identifier available")
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, action)
	}
}
