package draw

import "errors"

// Sentinel kinds for draw errors. Callers match with errors.Is; the API
// layer maps them to stable codes via CodeOf.
var (
	// ErrInvalidLink means the draw link carries no usable slug segment.
	ErrInvalidLink = errors.New("invalid draw link")

	// ErrAPI means the data provider was unreachable, timed out, or
	// returned an unusable response.
	ErrAPI = errors.New("data provider error")

	// ErrInsufficientParticipants means the participant count is below the
	// draw's required minimum.
	ErrInsufficientParticipants = errors.New("insufficient participants")

	// ErrInvalidInput means participant records or metadata are malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrHashComputation means a digest primitive failed. Fatal and
	// non-retryable: it indicates an environment defect, not a transient
	// condition.
	ErrHashComputation = errors.New("hash computation failed")

	// ErrSelection means winner index selection failed (bad hex or a zero
	// modulus).
	ErrSelection = errors.New("winner selection failed")

	// ErrDraw is the generic kind every unclassified failure is folded
	// into, so callers always observe one of the enumerated kinds.
	ErrDraw = errors.New("draw failed")
)

// Stable string codes, one per error kind.
const (
	CodeInvalidLink              = "invalid_link"
	CodeAPI                      = "api_error"
	CodeInsufficientParticipants = "insufficient_participants"
	CodeInvalidInput             = "invalid_input"
	CodeHashComputation          = "hash_computation_error"
	CodeSelection                = "selection_error"
	CodeDraw                     = "draw_failed"
)

// CodeOf returns the stable code for err. Errors outside the taxonomy map
// to CodeDraw, matching the generic-wrapping policy of Classify.
func CodeOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidLink):
		return CodeInvalidLink
	case errors.Is(err, ErrAPI):
		return CodeAPI
	case errors.Is(err, ErrInsufficientParticipants):
		return CodeInsufficientParticipants
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrHashComputation):
		return CodeHashComputation
	case errors.Is(err, ErrSelection):
		return CodeSelection
	default:
		return CodeDraw
	}
}

// known reports whether err already carries one of the enumerated kinds.
func known(err error) bool {
	return CodeOf(err) != CodeDraw || errors.Is(err, ErrDraw)
}
