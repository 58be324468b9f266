// Package registry reads content-addressed record registries from disk.
//
// A registry is a directory holding a registry.cbor configuration file and a
// records tree. Records are addressed by the hash of their record key; the
// registry never learns plaintext record names. Each record may exist in
// multiple numbered versions.
package registry

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/fxamacker/cbor/v2"
)

// ConfigFileName is the name of the registry configuration file inside a
// registry directory.
const ConfigFileName = "registry.cbor"

// recordsDirName is the subdirectory holding record version files.
const recordsDirName = "records"

// Config is the contents of registry.cbor.
type Config struct {
	// Name is a human-readable registry title.
	Name string `cbor:"name"`
	// Version is the registry format version.
	Version uint64 `cbor:"version"`
	// Hash configures record-key hashing.
	Hash HashConfig `cbor:"hash"`
	// KDF configures succession-nonce derivation.
	KDF KDFConfig `cbor:"kdf"`
}

// HashConfig parameterizes the record-key hash.
type HashConfig struct {
	// Algorithm names the hash function. Only "blake2b" is supported.
	Algorithm string `cbor:"algorithm"`
	// OutputLengthInBytes is the digest length. Must be in [1, 64].
	OutputLengthInBytes int `cbor:"output_length_in_bytes"`
}

// KDFConfig parameterizes succession-nonce derivation.
type KDFConfig struct {
	// SuccessionNonceLengthInBytes is the derived nonce length.
	SuccessionNonceLengthInBytes int `cbor:"succession_nonce_length_in_bytes"`
	// RootPredecessorNonce seeds the chain for the root record.
	RootPredecessorNonce []byte `cbor:"root_predecessor_nonce"`
}

// Registry is an open, read-only registry directory.
type Registry struct {
	dir    string
	config Config
}

// Open reads the configuration of the registry at dir.
func Open(dir string) (*Registry, error) {
	raw, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return nil, fmt.Errorf("reading registry config: %w", err)
	}

	var config Config
	if err := cbor.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("decoding registry config: %w", err)
	}
	if config.Hash.Algorithm != HashAlgorithmBlake2b {
		return nil, fmt.Errorf("unsupported hash algorithm %q", config.Hash.Algorithm)
	}
	if config.Hash.OutputLengthInBytes < 1 || config.Hash.OutputLengthInBytes > 64 {
		return nil, fmt.Errorf("hash output length %d out of range", config.Hash.OutputLengthInBytes)
	}
	if config.KDF.SuccessionNonceLengthInBytes < 1 || config.KDF.SuccessionNonceLengthInBytes > 64 {
		return nil, fmt.Errorf("succession nonce length %d out of range", config.KDF.SuccessionNonceLengthInBytes)
	}

	return &Registry{dir: dir, config: config}, nil
}

// Config returns the registry configuration.
func (r *Registry) Config() Config {
	return r.config
}

// Dir returns the registry directory path.
func (r *Registry) Dir() string {
	return r.dir
}

// recordDir returns the directory holding the versions of a record.
func (r *Registry) recordDir(key HashedRecordKey) string {
	return filepath.Join(r.dir, recordsDirName, hex.EncodeToString(key))
}

// ListVersions returns the version numbers available for a record, in
// ascending order. A record with no stored versions yields an empty slice
// and no error.
func (r *Registry) ListVersions(ctx context.Context, key HashedRecordKey) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.recordDir(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing record versions: %w", err)
	}

	versions := make([]uint64, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		version, err := strconv.ParseUint(entry.Name(), 10, 64)
		if err != nil {
			// Stray files are not version records.
			continue
		}
		versions = append(versions, version)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })
	return versions, nil
}

// Record is one stored version of a record.
type Record struct {
	// Version is the record version number this was read from.
	Version uint64
	// Metadata is the decoded CBOR metadata map.
	Metadata Metadata
	// Data is the record content.
	Data []byte
}

// recordFile is the on-disk CBOR layout of a record version.
type recordFile struct {
	Metadata Metadata `cbor:"metadata"`
	Data     []byte   `cbor:"data"`
}

// ReadVersion reads one version of a record. Returns nil with no error if
// the version does not exist.
func (r *Registry) ReadVersion(ctx context.Context, key HashedRecordKey, version uint64) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(r.recordDir(key), strconv.FormatUint(version, 10))
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading record version %d: %w", version, err)
	}

	var file recordFile
	if err := cbor.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decoding record version %d: %w", version, err)
	}

	return &Record{Version: version, Metadata: file.Metadata, Data: file.Data}, nil
}

// ReadLatestVersion reads the record's highest stored version. Returns nil
// with no error when the record has no versions.
func (r *Registry) ReadLatestVersion(ctx context.Context, key HashedRecordKey) (*Record, error) {
	versions, err := r.ListVersions(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, nil
	}
	return r.ReadVersion(ctx, key, versions[len(versions)-1])
}
