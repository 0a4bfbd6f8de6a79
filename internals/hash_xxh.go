package internals

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// XXH64 implements the non-cryptographic XXH64 hash algorithm
// by Yann Collet (2012). Fast, not collision resistant.
type XXH64 struct {
	h *xxhash.Digest
}

// NewXXH64 returns a properly initialized XXH64 instance
func NewXXH64() *XXH64 {
	return &XXH64{h: xxhash.New()}
}

// Size returns the number of bytes of the digest
func (c *XXH64) Size() int {
	return c.h.Size()
}

// BlockSize returns the internal block size in bytes
func (c *XXH64) BlockSize() int {
	return c.h.BlockSize()
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *XXH64) ReadFile(filepath string) error {
	return readFileInto(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *XXH64) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset resets the hash state to its initial state
func (c *XXH64) Reset() {
	c.h.Reset()
}

// Digest returns the digest resulting from the hash state, big-endian
func (c *XXH64) Digest() []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], c.h.Sum64())
	return buf[:]
}

// HexDigest returns the hash state digest encoded in a hexadecimal string
func (c *XXH64) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}

// Name returns the hash algorithm's name
func (c *XXH64) Name() string {
	return string(HashXXH64)
}

// XXH3 implements the non-cryptographic XXH3 hash algorithm
// by Yann Collet (2019), in its 64 bit and 128 bit output variants.
type XXH3 struct {
	h    *xxh3.Hasher
	name HashAlgo
}

// NewXXH3_64 returns a properly initialized XXH3-64 instance
func NewXXH3_64() *XXH3 {
	return &XXH3{h: xxh3.New(), name: HashXXH3_64}
}

// NewXXH3_128 returns a properly initialized XXH3-128 instance
func NewXXH3_128() *XXH3 {
	return &XXH3{h: xxh3.New(), name: HashXXH3_128}
}

// Size returns the number of bytes of the digest
func (c *XXH3) Size() int {
	if c.name == HashXXH3_128 {
		return 16
	}
	return 8
}

// BlockSize returns the internal block size in bytes
func (c *XXH3) BlockSize() int {
	return c.h.BlockSize()
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *XXH3) ReadFile(filepath string) error {
	return readFileInto(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *XXH3) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset resets the hash state to its initial state
func (c *XXH3) Reset() {
	c.h.Reset()
}

// Digest returns the digest resulting from the hash state, big-endian
func (c *XXH3) Digest() []byte {
	if c.name == HashXXH3_128 {
		buf := c.h.Sum128().Bytes()
		return buf[:]
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], c.h.Sum64())
	return buf[:]
}

// HexDigest returns the hash state digest encoded in a hexadecimal string
func (c *XXH3) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}

// Name returns the hash algorithm's name
func (c *XXH3) Name() string {
	return string(c.name)
}
