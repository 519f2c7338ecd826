// SPDX-License-Identifier: MIT

package experiment

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownExperiment is returned for a name that is not registered.
	ErrUnknownExperiment = errors.New("experiment: unknown experiment")

	// ErrInvalidConfig is returned by Config.Validate and the loaders.
	ErrInvalidConfig = errors.New("experiment: invalid config")
)

// configErrorf tags ErrInvalidConfig with the offending field.
func configErrorf(field, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", field, fmt.Sprintf(format, args...), ErrInvalidConfig)
}
