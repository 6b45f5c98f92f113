// Package model contains domain models passed between layers.
package model

import "time"

// ResultVersion tags the DrawResult wire format.
const ResultVersion = "1.0"

// Participant is one entrant in a draw. Records are supplied wholesale by
// the data provider and are immutable for the lifetime of the draw.
type Participant struct {
	Username string `json:"username"` // display identity, part of the seed fingerprint
	UUID     string `json:"uuid"`     // unique per draw, part of the seed fingerprint
	TxID     string `json:"txId"`     // unique, used only for canonical ordering
}

// Metadata describes one draw: its identifier, the instant entries closed,
// and the minimum number of participants required to run it.
type Metadata struct {
	Slug            string    `json:"slug"`
	ClosedAt        time.Time `json:"closedAt"`
	MinParticipants int       `json:"minParticipants"`
}

// HashChain holds the two chained digests, hex-encoded lowercase.
// Stage1 is 64 hex characters (SHA-256), Stage2 is 128 (SHA-512).
type HashChain struct {
	Stage1 string `json:"stage1"`
	Stage2 string `json:"stage2"`
}

// Result is the outcome of one draw. Every field is bit-for-bit
// reproducible from the participant list and metadata; the JSON shape is a
// compatibility contract and must not change without a version bump.
type Result struct {
	Recipient         Participant `json:"recipient"`
	WinnerIndex       int         `json:"winnerIndex"`
	TotalParticipants int         `json:"totalParticipants"`
	Seed              string      `json:"seed"`
	HashChain         HashChain   `json:"hashChain"`
	Timestamp         string      `json:"timestamp"` // closedAt as ISO-8601 UTC with milliseconds
	Version           string      `json:"version"`
}
