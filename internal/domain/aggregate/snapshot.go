package aggregate

import (
	"encoding/hex"
	"hash"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/color3/backend/internal/domain/entity"
)

// Snapshot is a stored aggregate result together with a fingerprint of its inputs.
type Snapshot struct {
	ID               uuid.UUID
	ComputedAt       time.Time
	TotalSubmissions int
	InputsHash       string
	Result           *Result
}

// NewSnapshot creates a new Snapshot.
func NewSnapshot(result *Result, inputsHash string, now time.Time) *Snapshot {
	return &Snapshot{
		ID:               uuid.New(),
		ComputedAt:       now.UTC(),
		TotalSubmissions: result.TotalSubmissions,
		InputsHash:       inputsHash,
		Result:           result,
	}
}

// Fingerprint hashes the identity and version of every submission it sees.
// Feed submissions in a stable order to get a stable digest.
type Fingerprint struct {
	h hash.Hash
}

// NewFingerprint creates an empty Fingerprint.
func NewFingerprint() *Fingerprint {
	// blake2b.New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	return &Fingerprint{h: h}
}

// Add mixes sub's ID and update time into the digest.
func (f *Fingerprint) Add(sub *entity.Submission) {
	if sub == nil {
		return
	}
	f.h.Write(sub.ID[:])
	f.h.Write([]byte(strconv.FormatInt(sub.UpdatedAt.UnixNano(), 10)))
	f.h.Write([]byte{0})
}

// Sum returns the hex-encoded digest.
func (f *Fingerprint) Sum() string {
	return hex.EncodeToString(f.h.Sum(nil))
}
