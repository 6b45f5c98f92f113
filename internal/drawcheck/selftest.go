package drawcheck

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/okian/fairdraw/internal/domain/draw"
	"github.com/okian/fairdraw/internal/domain/model"
	"github.com/okian/fairdraw/pkg/logger"
)

// Defaults for synthetic draws.
const (
	defaultParticipants = 100
	selfTestSlug        = "selftest"
	selfTestSeed        = 42 // fixed shuffle seed so failures replay
)

// runSelfTest generates a synthetic participant set and checks the two
// properties a verifier relies on: repeated runs are byte-identical, and
// input order does not influence the outcome.
func runSelfTest(ctx context.Context, config *Config) error {
	count := config.Participants
	if count < 1 {
		count = defaultParticipants
	}

	log := logger.Get()
	log.Info(ctx, "running pipeline self-test", logger.Int("participants", count))

	participants := generateParticipants(count)
	meta := model.Metadata{
		Slug:            selfTestSlug,
		ClosedAt:        time.Now().UTC().Truncate(time.Millisecond),
		MinParticipants: 1,
	}

	first, err := draw.Run(participants, meta, nil)
	if err != nil {
		return fmt.Errorf("self-test draw failed: %w", err)
	}
	second, err := draw.Run(participants, meta, nil)
	if err != nil {
		return fmt.Errorf("self-test draw failed on re-run: %w", err)
	}
	if mismatches := Compare(second, first); len(mismatches) > 0 {
		return fmt.Errorf("pipeline is not deterministic: %v", mismatches)
	}

	shuffled := make([]model.Participant, len(participants))
	copy(shuffled, participants)
	rng := rand.New(rand.NewSource(selfTestSeed)) //nolint:gosec // deterministic shuffle for replayable failures
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	permuted, err := draw.Run(shuffled, meta, nil)
	if err != nil {
		return fmt.Errorf("self-test draw failed on permuted input: %w", err)
	}
	if mismatches := Compare(permuted, first); len(mismatches) > 0 {
		return errors.New("pipeline result depends on input order")
	}

	log.Info(ctx, "self-test passed",
		logger.Int("winnerIndex", first.WinnerIndex),
		logger.String("recipient", first.Recipient.Username),
	)
	return emitResult(config, first)
}

// generateParticipants builds a synthetic participant set with unique
// identities.
func generateParticipants(count int) []model.Participant {
	participants := make([]model.Participant, count)
	for i := range participants {
		participants[i] = model.Participant{
			Username: fmt.Sprintf("entrant-%04d", i),
			UUID:     uuid.NewString(),
			TxID:     uuid.NewString(),
		}
	}
	return participants
}
