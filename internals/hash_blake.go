package internals

import (
	"encoding/hex"
	"hash"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
)

// BLAKE2 implements the ChaCha based, cryptographic hash algorithm family
// by Aumasson et al. (2012): blake2b with 64 bytes output, blake2s with 32.
type BLAKE2 struct {
	h    hash.Hash
	name HashAlgo
}

// NewBLAKE2B returns a properly initialized unkeyed BLAKE2b-512 instance
func NewBLAKE2B() *BLAKE2 {
	h, _ := blake2b.New512(nil)
	return &BLAKE2{h: h, name: HashBLAKE2B}
}

// NewBLAKE2S returns a properly initialized unkeyed BLAKE2s-256 instance
func NewBLAKE2S() *BLAKE2 {
	h, _ := blake2s.New256(nil)
	return &BLAKE2{h: h, name: HashBLAKE2S}
}

// Size returns the number of bytes of the digest
func (c *BLAKE2) Size() int {
	return c.h.Size()
}

// BlockSize returns the internal block size in bytes
func (c *BLAKE2) BlockSize() int {
	return c.h.BlockSize()
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *BLAKE2) ReadFile(filepath string) error {
	return readFileInto(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *BLAKE2) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset resets the hash state to its initial state
func (c *BLAKE2) Reset() {
	c.h.Reset()
}

// Digest returns the digest resulting from the hash state
func (c *BLAKE2) Digest() []byte {
	return c.h.Sum(nil)
}

// HexDigest returns the hash state digest encoded in a hexadecimal string
func (c *BLAKE2) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}

// Name returns the hash algorithm's name
func (c *BLAKE2) Name() string {
	return string(c.name)
}

// BLAKE3 implements the Bao tree based, cryptographic hash algorithm
// by O'Connor et al. (2020) with the default 32 bytes output.
type BLAKE3 struct {
	h *blake3.Hasher
}

// NewBLAKE3 returns a properly initialized BLAKE3 instance
func NewBLAKE3() *BLAKE3 {
	return &BLAKE3{h: blake3.New()}
}

// Size returns the number of bytes of the digest
func (c *BLAKE3) Size() int {
	return c.h.Size()
}

// BlockSize returns the internal block size in bytes
func (c *BLAKE3) BlockSize() int {
	return c.h.BlockSize()
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *BLAKE3) ReadFile(filepath string) error {
	return readFileInto(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *BLAKE3) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset resets the hash state to its initial state
func (c *BLAKE3) Reset() {
	c.h.Reset()
}

// Digest returns the digest resulting from the hash state
func (c *BLAKE3) Digest() []byte {
	return c.h.Sum(nil)
}

// HexDigest returns the hash state digest encoded in a hexadecimal string
func (c *BLAKE3) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}

// Name returns the hash algorithm's name
func (c *BLAKE3) Name() string {
	return string(HashBLAKE3)
}
