// Package iab reads IAB consent strings (TCF, USP, GPP) written by a CMP into
// shared preference storage and reports when they change. The strings are
// opaque and are never decoded here.
package iab

import (
	"context"
	"fmt"

	"cmpref/internal/consent/models"
	"cmpref/internal/sentinel"
)

// Source provides the current IAB strings and change notifications.
type Source interface {
	// Strings returns every IAB string currently stored, keyed by IAB key.
	Strings(ctx context.Context) (map[models.Key]string, error)
	// Watch calls fn with the key of each changed IAB string until ctx is done.
	Watch(ctx context.Context, fn func(key models.Key)) error
}

func validateKey(key models.Key) error {
	if !key.IsIAB() {
		return fmt.Errorf("iab key %q: %w", key, sentinel.ErrInvalidInput)
	}
	return nil
}
