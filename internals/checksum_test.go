package internals

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloSHA256 = `2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824`

func TestFormatChecksumLine(t *testing.T) {
	record := ChecksumRecord{Algorithm: HashSHA256, Path: `a.txt`, Digest: helloSHA256, Binary: true}

	assert.Equal(t, `sha256 (a.txt) = `+helloSHA256, FormatChecksumLine(record, StyleTag))
	assert.Equal(t, helloSHA256+` *a.txt`, FormatChecksumLine(record, StyleLegacy))

	record.Binary = false
	assert.Equal(t, helloSHA256+`  a.txt`, FormatChecksumLine(record, StyleGNU))
}

// TestRoundTrip checks parse(serialize(record)) == record for both dialects
func TestRoundTrip(t *testing.T) {
	records := []ChecksumRecord{
		{Algorithm: HashSHA256, Path: `a.txt`, Digest: helloSHA256, Binary: true},
		{Algorithm: HashSHAKE128, Path: `dir with spaces/b.bin`, Digest: `00ff00ff`, Binary: true},
		{Algorithm: HashBLAKE3, Path: `c`, Digest: `aa`, Binary: false},
	}
	for _, record := range records {
		for _, style := range []Style{StyleTag, StyleGNU, StyleLegacy} {
			if style.TagDialect() && !record.Binary {
				// the tag dialect has no mode marker; binary is always assumed
				continue
			}
			line := FormatChecksumLine(record, style)
			parsed, err := ParseChecksumLine(line, style, record.Algorithm, 1)
			require.NoError(t, err, "style %s line '%s'", style, line)
			assert.Equal(t, record, parsed, "style %s", style)
		}
	}
}

func TestParseChecksumLineTagDialect(t *testing.T) {
	record, err := ParseChecksumLine(`sha256 (a.txt) = `+helloSHA256, StyleTag, HashMD5, 1)
	require.NoError(t, err)
	assert.Equal(t, HashSHA256, record.Algorithm, "in-line algorithm must win over the implicit one")
	assert.Equal(t, `a.txt`, record.Path)
	assert.Equal(t, helloSHA256, record.Digest)
}

func TestParseChecksumLineTraditionalDialect(t *testing.T) {
	record, err := ParseChecksumLine(helloSHA256+`  a.txt`, StyleGNU, HashSHA256, 1)
	require.NoError(t, err)
	assert.Equal(t, HashSHA256, record.Algorithm)
	assert.False(t, record.Binary)

	record, err = ParseChecksumLine(helloSHA256+` *a.txt`, StyleGNU, HashSHA256, 1)
	require.NoError(t, err)
	assert.True(t, record.Binary)
}

func TestParseChecksumLineMalformed(t *testing.T) {
	malformed := []string{
		``,
		`not a checksum line`,
		`sha256 (a.txt) = nothex!!`,
		`zz99 a.txt`,
		`rot13 (a.txt) = ` + helloSHA256, // unknown algorithm
	}
	for _, line := range malformed {
		_, err := ParseChecksumLine(line, StyleTag, HashSHA256, 3)
		assert.ErrorIs(t, err, ErrMalformedRecord, "line '%s'", line)
	}

	// digest case is normalized on parse
	record, err := ParseChecksumLine(`sha256 (a.txt) = `+`2CF24DBA5FB0A30E26E83B2AC5B9E29E1B161E5C1FA7425E73043362938B9824`, StyleTag, HashSHA256, 1)
	require.NoError(t, err)
	assert.Equal(t, helloSHA256, record.Digest)
}

// TestChecksumReaderResilience checks that one malformed line does not
// stop processing of the remaining lines
func TestChecksumReaderResilience(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, `sums.txt`)
	content := "# a comment\n" +
		"sha256 (a.txt) = " + helloSHA256 + "\n" +
		"\n" +
		"garbage garbage garbage\n" +
		"md5 (b.txt) = 5d41402abc4b2a76b9719d911017c592\n"
	require.NoError(t, os.WriteFile(listPath, []byte(content), 0644))

	reader, err := NewChecksumReader(listPath, StyleTag, HashSHA256)
	require.NoError(t, err)
	defer reader.Close()

	record, lineno, err := reader.Iterate()
	require.NoError(t, err)
	assert.Equal(t, 2, lineno)
	assert.Equal(t, `a.txt`, record.Path)

	_, lineno, err = reader.Iterate()
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Equal(t, 4, lineno)

	record, _, err = reader.Iterate()
	require.NoError(t, err)
	assert.Equal(t, HashMD5, record.Algorithm)
	assert.Equal(t, `b.txt`, record.Path)

	_, _, err = reader.Iterate()
	assert.Equal(t, io.EOF, err)
}

// TestChecksumWriterAtomic checks the write-temp-then-rename strategy:
// the final path appears only on Close and holds the full list
func TestChecksumWriterAtomic(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, `sums.txt`)

	writer, err := NewChecksumWriter(outPath, StyleGNU)
	require.NoError(t, err)
	require.NoError(t, writer.Record(ChecksumRecord{Algorithm: HashSHA256, Path: `a.txt`, Digest: helloSHA256}))

	_, err = os.Stat(outPath)
	assert.True(t, os.IsNotExist(err), "target must not exist before Close")

	require.NoError(t, writer.Close())
	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, helloSHA256+"  a.txt\n", string(content))
}
