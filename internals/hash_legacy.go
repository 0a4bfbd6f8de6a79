package internals

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"hash"
)

// MD5 implements the Merkle–Damgård structure based, cryptographic hash
// algorithm invented by Ronald Rivest (1991). Considered broken, kept for
// interoperability with legacy checksum files.
type MD5 struct {
	h hash.Hash
}

// NewMD5 returns a properly initialized MD5 instance
func NewMD5() *MD5 {
	c := new(MD5)
	c.h = md5.New()
	return c
}

// Size returns the number of bytes of the digest
func (c *MD5) Size() int {
	return c.h.Size()
}

// BlockSize returns the internal block size in bytes
func (c *MD5) BlockSize() int {
	return c.h.BlockSize()
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *MD5) ReadFile(filepath string) error {
	return readFileInto(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *MD5) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset resets the hash state to its initial state
func (c *MD5) Reset() {
	c.h.Reset()
}

// Digest returns the digest resulting from the hash state
func (c *MD5) Digest() []byte {
	return c.h.Sum(nil)
}

// HexDigest returns the hash state digest encoded in a hexadecimal string
func (c *MD5) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}

// Name returns the hash algorithm's name
func (c *MD5) Name() string {
	return string(HashMD5)
}

// SHA1 implements the cryptographic hash algorithm invented by NSA (1995).
// Considered broken, kept for interoperability with legacy checksum files.
type SHA1 struct {
	h hash.Hash
}

// NewSHA1 returns a properly initialized SHA1 instance
func NewSHA1() *SHA1 {
	c := new(SHA1)
	c.h = sha1.New()
	return c
}

// Size returns the number of bytes of the digest
func (c *SHA1) Size() int {
	return c.h.Size()
}

// BlockSize returns the internal block size in bytes
func (c *SHA1) BlockSize() int {
	return c.h.BlockSize()
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *SHA1) ReadFile(filepath string) error {
	return readFileInto(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *SHA1) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset resets the hash state to its initial state
func (c *SHA1) Reset() {
	c.h.Reset()
}

// Digest returns the digest resulting from the hash state
func (c *SHA1) Digest() []byte {
	return c.h.Sum(nil)
}

// HexDigest returns the hash state digest encoded in a hexadecimal string
func (c *SHA1) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}

// Name returns the hash algorithm's name
func (c *SHA1) Name() string {
	return string(HashSHA1)
}
