package internals

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
)

// SHA2 implements the Merkle–Damgård structure based, cryptographic hash
// algorithm family invented by NSA (2001). One instance covers one of the
// four output sizes.
type SHA2 struct {
	h    hash.Hash
	name HashAlgo
}

// NewSHA224 returns a properly initialized SHA2-224 instance
func NewSHA224() *SHA2 {
	return &SHA2{h: sha256.New224(), name: HashSHA224}
}

// NewSHA256 returns a properly initialized SHA2-256 instance
func NewSHA256() *SHA2 {
	return &SHA2{h: sha256.New(), name: HashSHA256}
}

// NewSHA384 returns a properly initialized SHA2-384 instance
func NewSHA384() *SHA2 {
	return &SHA2{h: sha512.New384(), name: HashSHA384}
}

// NewSHA512 returns a properly initialized SHA2-512 instance
func NewSHA512() *SHA2 {
	return &SHA2{h: sha512.New(), name: HashSHA512}
}

// Size returns the number of bytes of the digest
func (c *SHA2) Size() int {
	return c.h.Size()
}

// BlockSize returns the internal block size in bytes
func (c *SHA2) BlockSize() int {
	return c.h.BlockSize()
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *SHA2) ReadFile(filepath string) error {
	return readFileInto(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *SHA2) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset resets the hash state to its initial state
func (c *SHA2) Reset() {
	c.h.Reset()
}

// Digest returns the digest resulting from the hash state
func (c *SHA2) Digest() []byte {
	return c.h.Sum(nil)
}

// HexDigest returns the hash state digest encoded in a hexadecimal string
func (c *SHA2) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}

// Name returns the hash algorithm's name
func (c *SHA2) Name() string {
	return string(c.name)
}
