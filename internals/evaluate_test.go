package internals

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func resolveForTest(t *testing.T, raw RawFlags) *Plan {
	t.Helper()
	if raw.ShakeLength == 0 {
		raw.ShakeLength = ShakeLengthDefault
	}
	plan, err := Resolve(raw)
	require.NoError(t, err)
	return plan
}

func TestEvaluateDigestOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, `a.txt`, `hello`)

	plan := resolveForTest(t, RawFlags{Files: []string{path}, Algorithms: `sha256`})
	outcomes := Evaluate(plan)

	require.Len(t, outcomes, 1)
	assert.Equal(t, VerdictNone, outcomes[0].Verdict)
	assert.Equal(t, helloSHA256, outcomes[0].Digest)

	report := Render(outcomes, plan)
	assert.Equal(t, ExitSuccess, report.ExitCode)
	require.Len(t, report.Lines, 1)
	assert.Equal(t, `sha256 (`+path+`) = `+helloSHA256, report.Lines[0])
}

func TestEvaluateLiteralCompare(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, `a.txt`, `hello`)

	plan := resolveForTest(t, RawFlags{Files: []string{path}, Algorithms: `sha256`, CompareLiteral: helloSHA256})
	outcomes := Evaluate(plan)
	require.Len(t, outcomes, 1)
	assert.Equal(t, VerdictMatch, outcomes[0].Verdict)
	assert.Equal(t, ExitSuccess, Render(outcomes, plan).ExitCode)

	plan = resolveForTest(t, RawFlags{Files: []string{path}, Algorithms: `sha256`, CompareLiteral: `deadbeef`})
	outcomes = Evaluate(plan)
	require.Len(t, outcomes, 1)
	assert.Equal(t, VerdictMismatch, outcomes[0].Verdict)
	assert.Equal(t, ExitFailure, Render(outcomes, plan).ExitCode)
}

// TestEvaluateLiteralCompareAnyAlgorithm checks that one matching
// algorithm out of several suffices
func TestEvaluateLiteralCompareAnyAlgorithm(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, `a.txt`, `hello`)

	plan := resolveForTest(t, RawFlags{Files: []string{path}, Algorithms: `md5,sha256`, CompareLiteral: helloSHA256})
	outcomes := Evaluate(plan)
	require.Len(t, outcomes, 1)
	assert.Equal(t, VerdictMatch, outcomes[0].Verdict)
	assert.Equal(t, HashSHA256, outcomes[0].Algorithm)
}

// TestEvaluateOrderStable checks that report order matches the CLI
// argument order under parallel processing
func TestEvaluateOrderStable(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 0, 8)
	for _, name := range []string{`h.txt`, `a.txt`, `z.txt`, `m.txt`, `b.txt`, `q.txt`, `c.txt`, `y.txt`} {
		paths = append(paths, writeTempFile(t, dir, name, name))
	}

	plan := resolveForTest(t, RawFlags{Files: paths, Algorithms: `sha256`, Workers: 4})
	outcomes := Evaluate(plan)
	require.Len(t, outcomes, len(paths))
	for i, outcome := range outcomes {
		assert.Equal(t, paths[i], outcome.Path, "outcome %d out of order", i)
	}
}

func TestEvaluateUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	present := writeTempFile(t, dir, `a.txt`, `hello`)
	absent := filepath.Join(dir, `nope.txt`)

	plan := resolveForTest(t, RawFlags{Files: []string{absent, present}, Algorithms: `sha256`})
	outcomes := Evaluate(plan)
	require.Len(t, outcomes, 2)
	assert.Equal(t, VerdictUnreadable, outcomes[0].Verdict)
	assert.Equal(t, VerdictNone, outcomes[1].Verdict, "one unreadable file must not abort the rest")

	assert.Equal(t, ExitUsage, Render(outcomes, plan).ExitCode)
}

func TestWriteChecksumFileStyles(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, `a.txt`, `hello`)

	outTag := filepath.Join(dir, `tag.sums`)
	plan := resolveForTest(t, RawFlags{Files: []string{path}, Algorithms: `sha256`, ChecksumOut: outTag})
	Evaluate(plan)
	content, err := os.ReadFile(outTag)
	require.NoError(t, err)
	assert.Equal(t, `sha256 (`+path+`) = `+helloSHA256+"\n", string(content))

	outGNU := filepath.Join(dir, `gnu.sums`)
	plan = resolveForTest(t, RawFlags{Files: []string{path}, Algorithms: `sha256`, ChecksumOut: outGNU, GNUStyle: true})
	Evaluate(plan)
	content, err = os.ReadFile(outGNU)
	require.NoError(t, err)
	assert.Equal(t, helloSHA256+`  `+path+"\n", string(content))
}

// TestChecksumListRoundTrip writes a checksum file with -Z semantics and
// validates it with -c semantics
func TestChecksumListRoundTrip(t *testing.T) {
	dir := t.TempDir()
	pathA := writeTempFile(t, dir, `a.txt`, `hello`)
	pathB := writeTempFile(t, dir, `b.txt`, `world`)
	listPath := filepath.Join(dir, `sums.txt`)

	plan := resolveForTest(t, RawFlags{Files: []string{pathA, pathB}, Algorithms: `sha256,blake3`, ChecksumOut: listPath})
	Evaluate(plan)

	plan = resolveForTest(t, RawFlags{Files: []string{listPath}, Algorithms: `sha256`, Check: true})
	outcomes := Evaluate(plan)
	require.Len(t, outcomes, 4)
	for _, outcome := range outcomes {
		assert.Equal(t, VerdictMatch, outcome.Verdict, "record for %s", outcome.Path)
	}
	assert.Equal(t, ExitSuccess, Render(outcomes, plan).ExitCode)
}

// TestChecksumListResilience checks the malformed-line contract: one bad
// line yields exactly one MalformedRecord verdict and never aborts the read
func TestChecksumListResilience(t *testing.T) {
	dir := t.TempDir()
	pathA := writeTempFile(t, dir, `a.txt`, `hello`)
	pathB := writeTempFile(t, dir, `b.txt`, `world`)

	listContent := "sha256 (" + pathA + ") = " + helloSHA256 + "\n" +
		"this line is garbage\n" +
		"sha256 (" + pathB + ") = " + helloSHA256 + "\n"
	listPath := writeTempFile(t, dir, `sums.txt`, listContent)

	plan := resolveForTest(t, RawFlags{Files: []string{listPath}, Algorithms: `sha256`, Check: true})
	outcomes := Evaluate(plan)
	require.Len(t, outcomes, 3)
	assert.Equal(t, VerdictMatch, outcomes[0].Verdict)
	assert.Equal(t, VerdictMalformedRecord, outcomes[1].Verdict)
	assert.Equal(t, 2, outcomes[1].Line)
	assert.Equal(t, VerdictMismatch, outcomes[2].Verdict)
}

func TestChecksumListMissingFile(t *testing.T) {
	dir := t.TempDir()
	absent := filepath.Join(dir, `gone.txt`)
	listContent := "sha256 (" + absent + ") = " + helloSHA256 + "\n"
	listPath := writeTempFile(t, dir, `sums.txt`, listContent)

	plan := resolveForTest(t, RawFlags{Files: []string{listPath}, Algorithms: `sha256`, Check: true})
	outcomes := Evaluate(plan)
	require.Len(t, outcomes, 1)
	assert.Equal(t, VerdictMissingFile, outcomes[0].Verdict)
	assert.Equal(t, ExitFailure, Render(outcomes, plan).ExitCode)

	plan = resolveForTest(t, RawFlags{Files: []string{listPath}, Algorithms: `sha256`, Check: true, IgnoreMissing: true})
	outcomes = Evaluate(plan)
	report := Render(outcomes, plan)
	assert.Equal(t, ExitSuccess, report.ExitCode)
	assert.Empty(t, report.Lines)
}

// TestChecksumListTraditionalDialect validates a GNU-style list where the
// algorithm comes from the configured set
func TestChecksumListTraditionalDialect(t *testing.T) {
	dir := t.TempDir()
	pathA := writeTempFile(t, dir, `a.txt`, `hello`)
	listPath := writeTempFile(t, dir, `sums.txt`, helloSHA256+`  `+pathA+"\n")

	plan := resolveForTest(t, RawFlags{Files: []string{listPath}, Algorithms: `sha256`, Check: true, GNUStyle: true})
	outcomes := Evaluate(plan)
	require.Len(t, outcomes, 1)
	assert.Equal(t, VerdictMatch, outcomes[0].Verdict)
	assert.Equal(t, HashSHA256, outcomes[0].Algorithm)
}

// TestChecksumListShakeLengthFromRecord checks that shake references of
// any length validate, with the length derived from the stored digest
func TestChecksumListShakeLengthFromRecord(t *testing.T) {
	dir := t.TempDir()
	pathA := writeTempFile(t, dir, `a.txt`, `hello`)

	live := NewSHAKE128(16)
	require.NoError(t, live.ReadFile(pathA))
	listPath := writeTempFile(t, dir, `sums.txt`, `shake_128 (`+pathA+`) = `+live.HexDigest()+"\n")

	// the plan's shake length differs from the one the list was written with
	plan := resolveForTest(t, RawFlags{Files: []string{listPath}, Algorithms: `sha256`, Check: true, ShakeLength: 64})
	outcomes := Evaluate(plan)
	require.Len(t, outcomes, 1)
	assert.Equal(t, VerdictMatch, outcomes[0].Verdict)
}
