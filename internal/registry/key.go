package registry

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// HashAlgorithmBlake2b is the only record-key hash this package speaks.
const HashAlgorithmBlake2b = "blake2b"

// Domain separation prefixes for the two derivations sharing one hash
// configuration.
var (
	recordKeyDomain       = []byte("rrr:record-key:")
	successionNonceDomain = []byte("rrr:succession-nonce:")
)

// RecordName is the plaintext name of a record, as entered by the user.
// Names are byte strings; text input arrives as UTF-8.
type RecordName []byte

// RootRecordName addresses the registry's root record.
var RootRecordName = RecordName{}

// SuccessionNonce links a record to its predecessor in the naming chain.
type SuccessionNonce []byte

// RecordKey identifies a record before hashing: the predecessor's
// succession nonce plus the record's own name.
type RecordKey struct {
	PredecessorNonce SuccessionNonce
	Name             RecordName
}

// HashedRecordKey is the hashed form of a RecordKey, used to address
// records on disk.
type HashedRecordKey []byte

// Hash derives the record's storage address. The digest covers a domain
// prefix, the predecessor nonce, and the record name, each length-framed so
// boundary shifts cannot collide.
func (k RecordKey) Hash(cfg HashConfig) (HashedRecordKey, error) {
	if cfg.Algorithm != HashAlgorithmBlake2b {
		return nil, fmt.Errorf("unsupported hash algorithm %q", cfg.Algorithm)
	}
	h, err := blake2b.New(cfg.OutputLengthInBytes, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing record key hash: %w", err)
	}
	h.Write(recordKeyDomain)
	writeFramed(h, k.PredecessorNonce)
	writeFramed(h, k.Name)
	return HashedRecordKey(h.Sum(nil)), nil
}

// DeriveSuccessionNonce derives the nonce that names this record's
// successors.
func (key HashedRecordKey) DeriveSuccessionNonce(cfg KDFConfig) (SuccessionNonce, error) {
	h, err := blake2b.New(cfg.SuccessionNonceLengthInBytes, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing succession nonce hash: %w", err)
	}
	h.Write(successionNonceDomain)
	writeFramed(h, key)
	return SuccessionNonce(h.Sum(nil)), nil
}

// writeFramed writes a length-prefixed byte string into the hash.
func writeFramed(h interface{ Write([]byte) (int, error) }, b []byte) {
	var frame [8]byte
	n := uint64(len(b))
	for i := 0; i < 8; i++ {
		frame[i] = byte(n >> (8 * i))
	}
	h.Write(frame[:])
	h.Write(b)
}
