package application

import (
	"context"
	"errors"

	"github.com/oksasatya/tender-marketplace/internal/domain/repository"
)

// Owned is any resource with a single owning identity.
type Owned interface {
	OwnerID() string
}

// authorizeOwner resolves a resource and returns it only when callerID owns
// it. A missing resource and a foreign one both yield ErrAccessDenied so the
// caller cannot probe for existence.
func authorizeOwner[T Owned](ctx context.Context, callerID string, resolve func(context.Context) (T, error)) (T, error) {
	var zero T
	res, err := resolve(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return zero, ErrAccessDenied
		}
		return zero, err
	}
	if callerID == "" || res.OwnerID() != callerID {
		return zero, ErrAccessDenied
	}
	return res, nil
}
