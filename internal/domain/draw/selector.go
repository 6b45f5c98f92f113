package draw

import (
	"fmt"
	"math/big"
)

// SelectIndex reduces the stage-2 digest to a winner index in
// [0, participantCount). The 128 hex characters are interpreted as one
// big-endian arbitrary-precision unsigned integer; truncating to a machine
// word first would change the result, so the reduction goes through
// math/big.
func SelectIndex(stage2 string, participantCount int) (int, error) {
	if participantCount < 1 {
		return 0, fmt.Errorf("%w: participant count %d", ErrSelection, participantCount)
	}
	if len(stage2) != stage2HexLen {
		return 0, fmt.Errorf("%w: stage2 digest has %d hex chars, want %d", ErrSelection, len(stage2), stage2HexLen)
	}

	value, ok := new(big.Int).SetString(stage2, 16)
	if !ok || value.Sign() < 0 {
		return 0, fmt.Errorf("%w: stage2 digest is not valid hex", ErrSelection)
	}

	index := new(big.Int).Mod(value, big.NewInt(int64(participantCount)))
	return int(index.Int64()), nil
}
