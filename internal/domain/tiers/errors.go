package tiers

import (
	"errors"
	"fmt"

	"github.com/adekau/wvwgg-solver/internal/domain/model"
)

// ErrUnknownRegion is the sentinel kind for lookups against a region the
// table has no entries for. Callers match it with errors.Is.
var ErrUnknownRegion = errors.New("unknown region")

// UnknownRegionError carries the offending region alongside the sentinel.
type UnknownRegionError struct {
	Region model.Region
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("unknown region %q", e.Region)
}

func (e *UnknownRegionError) Unwrap() error {
	return ErrUnknownRegion
}
