package holtwinters

import "github.com/pkg/errors"

// Sentinel errors returned by Model operations. Callers should match them
// with errors.Is since returned errors may carry additional context.
var (
	// ErrAlreadyFitted is returned when Fit is called on a fitted model.
	ErrAlreadyFitted = errors.New("model has already been fitted")

	// ErrNotFitted is returned when a forecast or state inspection is
	// requested before the model has been fitted.
	ErrNotFitted = errors.New("model must be fitted first")

	// ErrInsufficientData is returned when the series is too short to
	// initialize the model components.
	ErrInsufficientData = errors.New("insufficient data points")

	// ErrInvalidParameter is returned for smoothing weights outside [0,1],
	// a season length below 1, or a non-positive forecast horizon.
	ErrInvalidParameter = errors.New("invalid parameter")
)
