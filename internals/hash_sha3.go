package internals

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/sha3"
)

// SHA3 implements the Keccak sponge based, cryptographic hash algorithm
// family standardized by NIST (2015), fixed-output variants.
type SHA3 struct {
	h    hash.Hash
	name HashAlgo
}

// NewSHA3_224 returns a properly initialized SHA3-224 instance
func NewSHA3_224() *SHA3 {
	return &SHA3{h: sha3.New224(), name: HashSHA3_224}
}

// NewSHA3_256 returns a properly initialized SHA3-256 instance
func NewSHA3_256() *SHA3 {
	return &SHA3{h: sha3.New256(), name: HashSHA3_256}
}

// NewSHA3_384 returns a properly initialized SHA3-384 instance
func NewSHA3_384() *SHA3 {
	return &SHA3{h: sha3.New384(), name: HashSHA3_384}
}

// NewSHA3_512 returns a properly initialized SHA3-512 instance
func NewSHA3_512() *SHA3 {
	return &SHA3{h: sha3.New512(), name: HashSHA3_512}
}

// Size returns the number of bytes of the digest
func (c *SHA3) Size() int {
	return c.h.Size()
}

// BlockSize returns the internal block size in bytes
func (c *SHA3) BlockSize() int {
	return c.h.BlockSize()
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *SHA3) ReadFile(filepath string) error {
	return readFileInto(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *SHA3) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset resets the hash state to its initial state
func (c *SHA3) Reset() {
	c.h.Reset()
}

// Digest returns the digest resulting from the hash state
func (c *SHA3) Digest() []byte {
	return c.h.Sum(nil)
}

// HexDigest returns the hash state digest encoded in a hexadecimal string
func (c *SHA3) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}

// Name returns the hash algorithm's name
func (c *SHA3) Name() string {
	return string(c.name)
}

// SHAKE implements the variable-output-length members of the Keccak family.
// The digest length is a per-instance parameter in bytes.
type SHAKE struct {
	h      sha3.ShakeHash
	name   HashAlgo
	length int
}

// NewSHAKE128 returns a properly initialized SHAKE-128 instance
// with the given output length in bytes
func NewSHAKE128(length int) *SHAKE {
	return &SHAKE{h: sha3.NewShake128(), name: HashSHAKE128, length: length}
}

// NewSHAKE256 returns a properly initialized SHAKE-256 instance
// with the given output length in bytes
func NewSHAKE256(length int) *SHAKE {
	return &SHAKE{h: sha3.NewShake256(), name: HashSHAKE256, length: length}
}

// Size returns the number of bytes of the digest
func (c *SHAKE) Size() int {
	return c.length
}

// BlockSize returns the internal block size in bytes
func (c *SHAKE) BlockSize() int {
	return c.h.BlockSize()
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *SHAKE) ReadFile(filepath string) error {
	return readFileInto(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *SHAKE) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset resets the hash state to its initial state
func (c *SHAKE) Reset() {
	c.h.Reset()
}

// Digest returns the digest resulting from the hash state.
// Squeezing happens on a clone, so the state stays updatable.
func (c *SHAKE) Digest() []byte {
	buf := make([]byte, c.length)
	_, _ = c.h.Clone().Read(buf)
	return buf
}

// HexDigest returns the hash state digest encoded in a hexadecimal string
func (c *SHAKE) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}

// Name returns the hash algorithm's name
func (c *SHAKE) Name() string {
	return string(c.name)
}
