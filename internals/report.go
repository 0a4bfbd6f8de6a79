package internals

import (
	"encoding/json"
	"fmt"
)

// Report carries the rendered per-file lines, warnings for stderr and the
// fused process exit code. Suppression flags drop lines, never the code.
type Report struct {
	Lines    []string
	Warnings []string
	ExitCode int
}

// Render turns outcome records into a report. Line shapes:
//   - digest-only outcomes print as checksum lines in the resolved style
//   - comparison outcomes print the path (plus the algorithm where the
//     comparison is per-algorithm) and the verdict annotation
//
// The exit code fuses the independent failure classes: ExitUsage for
// unprocessable FILE arguments, ExitFailure for any mismatch, qualifying
// missing file or (strict) malformed record, ExitSuccess otherwise.
func Render(outcomes []Outcome, plan *Plan) *Report {
	report := &Report{ExitCode: ExitSuccess}
	anyMismatch := false
	anyMissing := false
	anyMalformed := false
	anyUnreadable := false

	for _, outcome := range outcomes {
		switch outcome.Verdict {
		case VerdictNone:
			record := ChecksumRecord{
				Algorithm: outcome.Algorithm,
				Path:      outcome.Path,
				Digest:    outcome.Digest,
				Binary:    plan.Style == StyleLegacy,
			}
			report.Lines = append(report.Lines, FormatChecksumLine(record, plan.Style))

		case VerdictMatch:
			if !plan.Quiet {
				report.Lines = append(report.Lines, verdictLine(plan, outcome))
			}

		case VerdictMismatch:
			anyMismatch = true
			report.Lines = append(report.Lines, verdictLine(plan, outcome))

		case VerdictMissingFile:
			anyMissing = true
			if !plan.IgnoreMissing {
				report.Lines = append(report.Lines, verdictLine(plan, outcome))
			}

		case VerdictMalformedRecord:
			anyMalformed = true
			if plan.Warn {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf(`%s: line %d is improperly formatted`, outcome.Path, outcome.Line))
			}

		case VerdictNoReference:
			report.Lines = append(report.Lines, verdictLine(plan, outcome))

		case VerdictUnreadable:
			anyUnreadable = true
			report.Warnings = append(report.Warnings,
				fmt.Sprintf(`%s: %s`, outcome.Path, outcome.Detail))
		}
	}

	switch {
	case anyUnreadable:
		report.ExitCode = ExitUsage
	case anyMismatch,
		plan.Strict && anyMalformed,
		!plan.IgnoreMissing && anyMissing:
		report.ExitCode = ExitFailure
	}

	if plan.Status {
		report.Lines = nil
		report.Warnings = nil
	}
	return report
}

// verdictLine formats one comparison outcome. Attribute comparisons are
// per-algorithm, so the algorithm is part of the label; checksum list and
// literal comparisons already determine it from context.
func verdictLine(plan *Plan, outcome Outcome) string {
	if plan.Compare == CompareAttribute && outcome.Algorithm != "" {
		return fmt.Sprintf(`%s (%s): %s`, outcome.Path, outcome.Algorithm, outcome.Verdict.Annotation())
	}
	return fmt.Sprintf(`%s: %s`, outcome.Path, outcome.Verdict.Annotation())
}

// RenderJSON serializes the outcome records and the fused exit code as one
// JSON document for --json mode.
func RenderJSON(outcomes []Outcome, exitCode int) (string, error) {
	type output struct {
		Results  []Outcome `json:"results"`
		ExitCode int       `json:"exit-code"`
	}
	b, err := json.Marshal(&output{Results: outcomes, ExitCode: exitCode})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
