package drawcheck

import (
	"fmt"

	"github.com/okian/fairdraw/internal/domain/model"
)

// Compare returns a human-readable description of every field where the
// recomputed result differs from the published one. An empty slice means
// the draw is reproducible bit-for-bit.
func Compare(got, want model.Result) []string {
	var mismatches []string

	check := func(field, gotVal, wantVal string) {
		if gotVal != wantVal {
			mismatches = append(mismatches, fmt.Sprintf("%s: recomputed %q, published %q", field, gotVal, wantVal))
		}
	}

	check("seed", got.Seed, want.Seed)
	check("hashChain.stage1", got.HashChain.Stage1, want.HashChain.Stage1)
	check("hashChain.stage2", got.HashChain.Stage2, want.HashChain.Stage2)
	check("timestamp", got.Timestamp, want.Timestamp)
	check("version", got.Version, want.Version)
	check("recipient.username", got.Recipient.Username, want.Recipient.Username)
	check("recipient.uuid", got.Recipient.UUID, want.Recipient.UUID)

	if got.WinnerIndex != want.WinnerIndex {
		mismatches = append(mismatches,
			fmt.Sprintf("winnerIndex: recomputed %d, published %d", got.WinnerIndex, want.WinnerIndex))
	}
	if got.TotalParticipants != want.TotalParticipants {
		mismatches = append(mismatches,
			fmt.Sprintf("totalParticipants: recomputed %d, published %d", got.TotalParticipants, want.TotalParticipants))
	}

	return mismatches
}
