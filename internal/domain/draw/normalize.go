// Package draw implements the deterministic winner-selection pipeline:
// normalize participants, build the canonical seed, compute the hash chain,
// and reduce the final digest to a winner index. Every stage is a pure
// function; fixed inputs always reproduce the same Result.
package draw

import (
	"fmt"
	"sort"

	"github.com/okian/fairdraw/internal/domain/model"
)

// Normalize validates the participant list and returns a copy sorted
// ascending by TxID using byte-wise comparison. The sort is stable: if two
// participants share a TxID, their input order is preserved, which is
// observable in the seed and therefore part of the contract.
func Normalize(participants []model.Participant, minParticipants int) ([]model.Participant, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: empty participant list", ErrInvalidInput)
	}
	for i, p := range participants {
		if p.Username == "" || p.UUID == "" || p.TxID == "" {
			return nil, fmt.Errorf("%w: participant %d missing required fields", ErrInvalidInput, i)
		}
	}
	if minParticipants < 1 {
		return nil, fmt.Errorf("%w: minParticipants must be >= 1, got %d", ErrInvalidInput, minParticipants)
	}
	if len(participants) < minParticipants {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientParticipants, len(participants), minParticipants)
	}

	sorted := make([]model.Participant, len(participants))
	copy(sorted, participants)
	// Go string < is byte-wise, never locale-aware.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TxID < sorted[j].TxID
	})
	return sorted, nil
}
