package draw

import (
	"fmt"

	"github.com/okian/fairdraw/internal/domain/model"
)

// ProgressFunc receives short human-readable status strings as the pipeline
// advances. It is purely observational: it runs synchronously, may be nil,
// and can never alter the computed Result. A panicking sink is contained.
type ProgressFunc func(step string)

// Emit invokes fn with step, swallowing a nil fn and any panic so that a
// misbehaving sink cannot affect the draw.
func (fn ProgressFunc) Emit(step string) {
	if fn == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	fn(step)
}

// Run executes the pure pipeline over an already-fetched participant list
// and metadata: normalize, build seed, hash, select, assemble. Inputs are
// frozen before the first stage; the stages run in fixed order exactly
// once. All I/O (link parsing, fetching) lives with the orchestrator.
func Run(participants []model.Participant, meta model.Metadata, onStep ProgressFunc) (model.Result, error) {
	onStep.Emit(fmt.Sprintf("normalizing %d participants", len(participants)))
	normalized, err := Normalize(participants, meta.MinParticipants)
	if err != nil {
		return model.Result{}, Classify(err)
	}

	onStep.Emit("building canonical seed")
	seed, err := BuildSeed(normalized, meta.ClosedAt, meta.Slug)
	if err != nil {
		return model.Result{}, Classify(err)
	}

	onStep.Emit("computing hash chain")
	chain, err := Chain(seed, meta.ClosedAt)
	if err != nil {
		return model.Result{}, Classify(err)
	}

	onStep.Emit("selecting winner")
	index, err := SelectIndex(chain.Stage2, len(normalized))
	if err != nil {
		return model.Result{}, Classify(err)
	}

	return model.Result{
		Recipient:         normalized[index],
		WinnerIndex:       index,
		TotalParticipants: len(normalized),
		Seed:              seed,
		HashChain:         chain,
		Timestamp:         FormatClosedAt(meta.ClosedAt),
		Version:           model.ResultVersion,
	}, nil
}

// Classify folds errors from outside the taxonomy into the generic ErrDraw
// kind so callers always observe one of the enumerated kinds. Errors that
// already carry a kind pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if known(err) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrDraw, err)
}
