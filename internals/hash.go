package internals

import (
	"io"
	"os"
	"strings"
)

// HashAlgo is an alias for string, but specifically can only
// be one of the identifiers for hash algorithms.
type HashAlgo string

const (
	HashMD5      HashAlgo = `md5`
	HashSHA1     HashAlgo = `sha1`
	HashSHA224   HashAlgo = `sha224`
	HashSHA256   HashAlgo = `sha256`
	HashSHA384   HashAlgo = `sha384`
	HashSHA512   HashAlgo = `sha512`
	HashSHA3_224 HashAlgo = `sha3_224`
	HashSHA3_256 HashAlgo = `sha3_256`
	HashSHA3_384 HashAlgo = `sha3_384`
	HashSHA3_512 HashAlgo = `sha3_512`
	HashSHAKE128 HashAlgo = `shake_128`
	HashSHAKE256 HashAlgo = `shake_256`
	HashBLAKE2B  HashAlgo = `blake2b`
	HashBLAKE2S  HashAlgo = `blake2s`
	HashBLAKE3   HashAlgo = `blake3`
	HashXXH64    HashAlgo = `xxh64`
	HashXXH3_64  HashAlgo = `xxh3_64`
	HashXXH3_128 HashAlgo = `xxh3_128`
)

// DefaultHash is used whenever no algorithm was requested explicitly.
const DefaultHash = HashSHA256

// Admissible values for the shake digest length parameter, in bytes.
const (
	ShakeLengthDefault = 32
	ShakeLengthMin     = 1
	ShakeLengthMax     = 128
)

// DigestValue is an immutable (algorithm, lowercase hex digest) pair.
type DigestValue struct {
	Algorithm HashAlgo `json:"algorithm"`
	Hex       string   `json:"digest"`
}

// SupportedHashAlgorithms returns the list of supported hash algorithms.
// The slice contains specified hash algorithm identifiers
func SupportedHashAlgorithms() []HashAlgo {
	return []HashAlgo{
		HashMD5, HashSHA1,
		HashSHA224, HashSHA256, HashSHA384, HashSHA512,
		HashSHA3_224, HashSHA3_256, HashSHA3_384, HashSHA3_512,
		HashSHAKE128, HashSHAKE256,
		HashBLAKE2B, HashBLAKE2S, HashBLAKE3,
		HashXXH64, HashXXH3_64, HashXXH3_128,
	}
}

// hashAliases maps accepted alternative spellings to canonical identifiers.
var hashAliases = map[string]HashAlgo{
	`sha-1`:    HashSHA1,
	`sha2-224`: HashSHA224,
	`sha2-256`: HashSHA256,
	`sha2-384`: HashSHA384,
	`sha2-512`: HashSHA512,
	`sha-224`:  HashSHA224,
	`sha-256`:  HashSHA256,
	`sha-384`:  HashSHA384,
	`sha-512`:  HashSHA512,
	`sha3-224`: HashSHA3_224,
	`sha3-256`: HashSHA3_256,
	`sha3-384`: HashSHA3_384,
	`sha3-512`: HashSHA3_512,
	`shake128`: HashSHAKE128,
	`shake256`: HashSHAKE256,
	`b2b`:      HashBLAKE2B,
	`b2s`:      HashBLAKE2S,
	`b3`:       HashBLAKE3,
	`xxh3`:     HashXXH3_64,
}

// HashAlgorithmFromString returns a HashAlgo instance, given the hash
// algorithm's name as a string. Lookup is case-insensitive and
// resolves aliases like 'sha2-256'.
func HashAlgorithmFromString(name string) (HashAlgo, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, algo := range SupportedHashAlgorithms() {
		if normalized == string(algo) {
			return algo, nil
		}
	}
	if algo, ok := hashAliases[normalized]; ok {
		return algo, nil
	}
	return DefaultHash, algorithmUnknownError(name)
}

// ParseAlgorithmSet parses a comma-delimited list of hash algorithm names.
// The value 'all' expands to every registered algorithm.
// Duplicates collapse, order of first occurrence is preserved.
func ParseAlgorithmSet(spec string) ([]HashAlgo, error) {
	if strings.ToLower(strings.TrimSpace(spec)) == `all` {
		return SupportedHashAlgorithms(), nil
	}

	algos := make([]HashAlgo, 0, 4)
	for _, name := range strings.Split(spec, ",") {
		algo, err := HashAlgorithmFromString(name)
		if err != nil {
			return nil, err
		}
		seen := false
		for _, existing := range algos {
			if existing == algo {
				seen = true
			}
		}
		if !seen {
			algos = append(algos, algo)
		}
	}
	if len(algos) == 0 {
		return nil, algorithmUnknownError(spec)
	}
	return algos, nil
}

// IsVariableLength reports whether the digest length of this algorithm
// is controlled by the shake length parameter.
func (h HashAlgo) IsVariableLength() bool {
	return h == HashSHAKE128 || h == HashSHAKE256
}

// DigestSize returns the output size in bytes for a given hash algorithm.
// shakeLength decides the size of the shake variants and is ignored otherwise.
func (h HashAlgo) DigestSize(shakeLength int) int {
	switch h {
	case HashMD5:
		return 16
	case HashSHA1:
		return 20
	case HashSHA224, HashSHA3_224:
		return 28
	case HashSHA256, HashSHA3_256, HashBLAKE2S, HashBLAKE3:
		return 32
	case HashSHA384, HashSHA3_384:
		return 48
	case HashSHA512, HashSHA3_512, HashBLAKE2B:
		return 64
	case HashSHAKE128, HashSHAKE256:
		return shakeLength
	case HashXXH64, HashXXH3_64:
		return 8
	case HashXXH3_128:
		return 16
	}
	return 0
}

// Instance returns a fresh Hash state for the given hash algorithm.
// shakeLength applies to the shake variants only and is ignored otherwise.
func (h HashAlgo) Instance(shakeLength int) Hash {
	switch h {
	case HashMD5:
		return NewMD5()
	case HashSHA1:
		return NewSHA1()
	case HashSHA224:
		return NewSHA224()
	case HashSHA256:
		return NewSHA256()
	case HashSHA384:
		return NewSHA384()
	case HashSHA512:
		return NewSHA512()
	case HashSHA3_224:
		return NewSHA3_224()
	case HashSHA3_256:
		return NewSHA3_256()
	case HashSHA3_384:
		return NewSHA3_384()
	case HashSHA3_512:
		return NewSHA3_512()
	case HashSHAKE128:
		return NewSHAKE128(shakeLength)
	case HashSHAKE256:
		return NewSHAKE256(shakeLength)
	case HashBLAKE2B:
		return NewBLAKE2B()
	case HashBLAKE2S:
		return NewBLAKE2S()
	case HashBLAKE3:
		return NewBLAKE3()
	case HashXXH64:
		return NewXXH64()
	case HashXXH3_64:
		return NewXXH3_64()
	case HashXXH3_128:
		return NewXXH3_128()
	}
	return DefaultHash.Instance(shakeLength)
}

// Hash is a custom interface to define operations
// a hash algorithm needs to support to include it in hexsum
type Hash interface {
	// returns number of bytes of the digest
	Size() int
	// returns number of bytes of the internal block
	BlockSize() int
	// update hash state with data of file at given filepath
	ReadFile(string) error
	// update hash state with given bytes
	ReadBytes([]byte) error
	// reset hash state
	Reset()
	// get hash state digest
	Digest() []byte
	// get hash state digest represented as hexadecimal string
	HexDigest() string
	// get string representation of this hash algorithm
	Name() string
}

// readFileInto updates a hash state with the content of an entire file,
// read in chunks.
func readFileInto(w io.Writer, filepath string) error {
	fd, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer fd.Close()

	_, err = io.Copy(w, fd)
	return err
}
