package batchtree

import (
	"errors"
	"fmt"

	"github.com/hupe1980/batchtree/engine"
)

var (
	// ErrUnknownBatch is returned when a batch index is not registered.
	ErrUnknownBatch = errors.New("unknown batch")

	// ErrUnknownItem is returned when a name resolves to no item.
	ErrUnknownItem = errors.New("unknown item")
)

// translateError maps engine-layer errors onto the public contract while
// keeping the originals reachable via errors.Unwrap. Construction and
// ingestion errors pass through untranslated; their engine sentinels are
// part of the public surface.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, engine.ErrUnregisteredIndex) {
		return fmt.Errorf("%w: %w", ErrUnknownBatch, err)
	}
	if errors.Is(err, engine.ErrUnregisteredItem) {
		return fmt.Errorf("%w: %w", ErrUnknownItem, err)
	}

	return err
}
