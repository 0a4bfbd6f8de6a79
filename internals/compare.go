package internals

import (
	"encoding/json"
	"strings"
)

// Verdict is the per-file comparison outcome classification.
type Verdict int

const (
	// VerdictNone means no comparison was requested; the digest is reported as-is
	VerdictNone Verdict = iota
	// VerdictMatch means the live digest equals the reference
	VerdictMatch
	// VerdictMismatch means a reference exists and differs
	VerdictMismatch
	// VerdictMissingFile means a file named by a checksum record cannot be read
	VerdictMissingFile
	// VerdictMalformedRecord means a checksum line did not match its dialect's grammar
	VerdictMalformedRecord
	// VerdictNoReference means no persisted attribute exists for the file
	VerdictNoReference
	// VerdictUnreadable means a FILE argument itself cannot be processed
	VerdictUnreadable
)

// Annotation returns the user-visible verdict marker for report lines.
func (v Verdict) Annotation() string {
	switch v {
	case VerdictMatch:
		return `OK`
	case VerdictMismatch:
		return `FAILED`
	case VerdictMissingFile:
		return `MISSING`
	case VerdictMalformedRecord:
		return `MALFORMED`
	case VerdictNoReference:
		return `NO REFERENCE`
	case VerdictUnreadable:
		return `ERROR`
	}
	return ``
}

// MarshalJSON serializes verdicts under their annotation names.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Annotation())
}

// Outcome is one semantic result record: a computed digest, a comparison
// verdict, or both. Line is set for outcomes originating from a checksum
// list line.
type Outcome struct {
	Path      string   `json:"path"`
	Algorithm HashAlgo `json:"algorithm,omitempty"`
	Digest    string   `json:"digest,omitempty"`
	Verdict   Verdict  `json:"verdict,omitempty"`
	Detail    string   `json:"detail,omitempty"`
	Line      int      `json:"-"`
}

// compareLiteral produces the per-file verdict for a literal reference:
// Match if any one algorithm's digest equals the literal, case-insensitive,
// Mismatch otherwise. The mismatch outcome carries the first algorithm's
// digest so the report can show generated next to provided.
func compareLiteral(path string, digests []DigestValue, literal string) Outcome {
	for _, digest := range digests {
		if digest.Hex == literal {
			return Outcome{Path: path, Algorithm: digest.Algorithm, Digest: digest.Hex, Verdict: VerdictMatch}
		}
	}
	first := digests[0]
	return Outcome{Path: path, Algorithm: first.Algorithm, Digest: first.Hex, Verdict: VerdictMismatch, Detail: literal}
}

// compareAttributes produces one verdict per requested algorithm against
// the persisted attributes of the file. A missing attribute yields
// NoReference, never an error.
func compareAttributes(path string, digests []DigestValue) []Outcome {
	outcomes := make([]Outcome, 0, len(digests))
	for _, digest := range digests {
		outcome := Outcome{Path: path, Algorithm: digest.Algorithm, Digest: digest.Hex}
		record, present, err := ReadAttribute(path, digest.Algorithm)
		switch {
		case err != nil:
			outcome.Verdict = VerdictUnreadable
			outcome.Detail = err.Error()
		case !present:
			outcome.Verdict = VerdictNoReference
		case strings.EqualFold(record.Digest, digest.Hex):
			outcome.Verdict = VerdictMatch
		default:
			outcome.Verdict = VerdictMismatch
			outcome.Detail = record.Digest
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// compareRecord checks one checksum list record against the file it names.
// The shake length of variable-length references is derived from the
// reference digest itself so lists written with any -s validate correctly.
func compareRecord(record ChecksumRecord, lineno int, fallbackShakeLength int) Outcome {
	outcome := Outcome{Path: record.Path, Algorithm: record.Algorithm, Line: lineno}

	shakeLength := fallbackShakeLength
	if record.Algorithm.IsVariableLength() && len(record.Digest)%2 == 0 && len(record.Digest) > 0 {
		shakeLength = len(record.Digest) / 2
	}

	live := record.Algorithm.Instance(shakeLength)
	if err := live.ReadFile(record.Path); err != nil {
		outcome.Verdict = VerdictMissingFile
		outcome.Detail = err.Error()
		return outcome
	}

	outcome.Digest = live.HexDigest()
	if strings.EqualFold(outcome.Digest, record.Digest) {
		outcome.Verdict = VerdictMatch
	} else {
		outcome.Verdict = VerdictMismatch
		outcome.Detail = record.Digest
	}
	return outcome
}
