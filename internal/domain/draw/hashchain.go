package draw

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/okian/fairdraw/internal/domain/model"
)

// Expected digest lengths in hex characters.
const (
	stage1HexLen = 64
	stage2HexLen = 128
)

// Chain computes the two chained digests over the seed:
//
//	stage1 = hex(SHA-256(seed))
//	stage2 = hex(SHA-512(seed || epochMillis(closedAt) as decimal string))
//
// The stage2 suffix is pinned to the epoch-millisecond decimal form; this
// is part of the wire contract (see DESIGN.md). Errors from the digest
// primitives are fatal and non-retryable.
func Chain(seed string, closedAt time.Time) (model.HashChain, error) {
	stage1, err := hexDigest(sha256Sum, seed)
	if err != nil {
		return model.HashChain{}, fmt.Errorf("%w: stage1: %v", ErrHashComputation, err)
	}

	suffix := strconv.FormatInt(closedAt.UnixMilli(), 10)
	stage2, err := hexDigest(sha512Sum, seed+suffix)
	if err != nil {
		return model.HashChain{}, fmt.Errorf("%w: stage2: %v", ErrHashComputation, err)
	}

	return model.HashChain{Stage1: stage1, Stage2: stage2}, nil
}

func sha256Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func sha512Sum(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:]
}

// hexDigest runs one digest primitive over the UTF-8 bytes of input and
// hex-encodes the sum lowercase.
func hexDigest(sum func([]byte) []byte, input string) (string, error) {
	digest := sum([]byte(input))
	if len(digest) == 0 {
		return "", fmt.Errorf("digest primitive returned no output")
	}
	return hex.EncodeToString(digest), nil
}
