package guideproviders

import "github.com/pkg/errors"

var (
	// ErrSourceUnavailable means the upstream provider could not be reached or
	// answered with a non-200 status. It degrades to an empty result set and is
	// never surfaced to API callers.
	ErrSourceUnavailable = errors.New("guide source unavailable")

	// ErrMalformedEntry means a single raw entry failed to parse. The entry is
	// dropped; sibling entries are unaffected.
	ErrMalformedEntry = errors.New("malformed guide entry")

	// ErrNoUsableData means every adapter and normalization step yielded
	// nothing; the synthetic generator takes over.
	ErrNoUsableData = errors.New("no usable guide data")
)
