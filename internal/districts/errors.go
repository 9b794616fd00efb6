package districts

import "errors"

// Resolution failures. Callers should treat ErrResolutionUnavailable and
// ErrDistrictNotFound the same for display purposes ("no representatives
// found"); they are kept distinct for operational diagnosis.
var (
	ErrInvalidInput          = errors.New("postal code must be exactly 5 digits")
	ErrResolutionUnavailable = errors.New("district lookup provider unavailable")
	ErrDistrictNotFound      = errors.New("no congressional district found")
	ErrStorageUnavailable    = errors.New("district storage unavailable")
)
