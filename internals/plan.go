package internals

import (
	"runtime"
	"strings"
)

// EagerFlag identifies a flag which short-circuits normal processing.
type EagerFlag int

const (
	// EagerListAlgos is the -a / --available flag
	EagerListAlgos EagerFlag = iota
	// EagerVersion is the --version flag
	EagerVersion
	// EagerHelp is the --help flag, subordinate to the two above
	EagerHelp
)

// ScanEager extracts the eager flags from raw argv tokens in their original
// order. The relative order decides which eager flag wins, so a set would
// not do. Scanning stops at the '--' terminator; bundled short options
// like '-ac' are unpacked.
func ScanEager(argv []string) []EagerFlag {
	order := make([]EagerFlag, 0, 2)
	for _, arg := range argv {
		switch {
		case arg == `--`:
			return order
		case arg == `--available`:
			order = append(order, EagerListAlgos)
		case arg == `--version`:
			order = append(order, EagerVersion)
		case arg == `--help`:
			order = append(order, EagerHelp)
		case len(arg) > 1 && arg[0] == '-' && arg[1] != '-':
			for _, short := range arg[1:] {
				if short == 'a' {
					order = append(order, EagerListAlgos)
				}
			}
		}
	}
	return order
}

// RawFlags is the unresolved flag set as the CLI surface collected it.
// EagerOrder carries the argv-ordered eager tokens separately because the
// eager precedence depends on the original order, not on a fixed priority.
type RawFlags struct {
	Files      []string
	EagerOrder []EagerFlag

	Algorithms  string // -h, comma-delimited or 'all'
	ShakeLength int    // -s, bytes

	Check bool // -c, FILE arguments name checksum lists

	Binary bool // -b, validated, never acted on
	Text   bool // -t, validated, never acted on
	Zero   bool // -z, validated, never acted on

	TagStyle    bool // --tag
	GNUStyle    bool // --gnu
	LegacyStyle bool // --zzz

	CompareAttribute bool   // -v
	CompareLiteral   string // -C
	WriteAttribute   bool   // -V
	ChecksumOut      string // -Z, target path, '-' for stdout

	IgnoreMissing bool
	Quiet         bool
	Status        bool
	Strict        bool
	Warn          bool // -w

	JSONOutput bool
	Workers    int
}

// Action is the top-level operation a plan resolves to.
type Action int

const (
	// ActionProcess runs the read/hash/compare/write/report pipeline
	ActionProcess Action = iota
	// ActionListAlgos prints the algorithm table and exits
	ActionListAlgos
	// ActionVersion prints version metadata and exits
	ActionVersion
	// ActionHelp prints usage and exits
	ActionHelp
)

// ReadMode decides how FILE arguments are interpreted.
type ReadMode int

const (
	// ReadModeHash treats FILE as data to hash
	ReadModeHash ReadMode = iota
	// ReadModeChecksumFile treats FILE as a checksum list to validate
	ReadModeChecksumFile
)

// CompareSource enumerates where reference digests come from.
type CompareSource int

const (
	// CompareNone means no comparison was requested
	CompareNone CompareSource = iota
	// CompareAttribute compares against persisted per-file attributes
	CompareAttribute
	// CompareLiteral compares against one literal hex value
	CompareLiteral
)

// Plan is the resolved, ordered set of actions for one invocation.
// It is built once by Resolve and immutable thereafter.
type Plan struct {
	Action   Action
	ReadMode ReadMode

	Algorithms  []HashAlgo
	ShakeLength int

	Compare CompareSource
	Literal string // lowercase hex, set iff Compare == CompareLiteral

	WriteAttribute bool
	ChecksumOut    string // empty means no checksum file is written

	Style Style

	IgnoreMissing bool
	Quiet         bool
	Status        bool
	Strict        bool
	Warn          bool

	JSONOutput bool
	Workers    int

	Files []string
}

// Resolve derives an execution plan from the raw flag set. The evaluation
// order is fixed; earlier steps are decided first and constrain later ones:
//
//  1. eager flags in original argv order (first one wins)
//  2. --help, only if no other eager flag fired
//  3. output style: --zzz over --gnu over --tag, fixed priority
//  4. read mode (-c), parsing dialect follows the resolved style
//  5. -b/-t/-z validated, binary is always assumed
//  6. algorithm set and shake length
//  7. comparison source, attribute before literal, both is an error
//  8. - 11. read, hash, write-attribute, write-checksum-file
//  12. report filters, reporting only, never the comparison itself
//
// Resolve is pure: it performs no I/O and touches no global state.
func Resolve(raw RawFlags) (*Plan, error) {
	plan := &Plan{Action: ActionProcess, ReadMode: ReadModeHash, Style: StyleTag}

	for i, eager := range raw.EagerOrder {
		switch eager {
		case EagerListAlgos:
			plan.Action = ActionListAlgos
			return plan, nil
		case EagerVersion:
			plan.Action = ActionVersion
			return plan, nil
		case EagerHelp:
			// subordinate: fires only if no other eager flag follows
			remaining := raw.EagerOrder[i+1:]
			subordinate := false
			for _, later := range remaining {
				if later != EagerHelp {
					subordinate = true
				}
			}
			if !subordinate {
				plan.Action = ActionHelp
				return plan, nil
			}
		}
	}

	if raw.LegacyStyle {
		plan.Style = StyleLegacy
	} else if raw.GNUStyle {
		plan.Style = StyleGNU
	}

	if raw.Check {
		plan.ReadMode = ReadModeChecksumFile
	}

	// -b, -t, -z carry no behavior; binary mode is always assumed

	if raw.ShakeLength < ShakeLengthMin || raw.ShakeLength > ShakeLengthMax {
		return nil, parameterOutOfRangeError(`shake length %d not within %d..%d`,
			raw.ShakeLength, ShakeLengthMin, ShakeLengthMax)
	}
	plan.ShakeLength = raw.ShakeLength

	algorithms := raw.Algorithms
	if algorithms == "" {
		algorithms = string(DefaultHash)
	}
	algos, err := ParseAlgorithmSet(algorithms)
	if err != nil {
		return nil, err
	}
	plan.Algorithms = algos

	if raw.CompareAttribute && raw.CompareLiteral != "" {
		return nil, configurationError(`ambiguous comparison target: both -v and -C requested`)
	}
	if raw.Check && raw.CompareAttribute {
		return nil, configurationError(`-c and -v cannot both supply the comparison source`)
	}
	if raw.Check && raw.CompareLiteral != "" {
		return nil, configurationError(`-C has no meaning when FILE is a checksum list`)
	}
	switch {
	case raw.CompareAttribute:
		plan.Compare = CompareAttribute
	case raw.CompareLiteral != "":
		if !isHexString(raw.CompareLiteral) {
			return nil, configurationError(`'-C %s' is not a valid hexadecimal number`, raw.CompareLiteral)
		}
		plan.Compare = CompareLiteral
		plan.Literal = strings.ToLower(raw.CompareLiteral)
	}

	plan.WriteAttribute = raw.WriteAttribute
	if raw.Check && (raw.WriteAttribute || raw.ChecksumOut != "") {
		return nil, configurationError(`-V and -Z require hashing FILE arguments, not validating a checksum list`)
	}
	plan.ChecksumOut = raw.ChecksumOut
	if plan.ChecksumOut != "" && !plan.Style.TagDialect() && len(plan.Algorithms) > 1 {
		return nil, configurationError(`%s style encodes no algorithm name and supports exactly one algorithm, %d requested`,
			plan.Style, len(plan.Algorithms))
	}
	if plan.ReadMode == ReadModeChecksumFile && !plan.Style.TagDialect() && len(plan.Algorithms) > 1 {
		return nil, configurationError(`%s style encodes no algorithm name and supports exactly one algorithm, %d requested`,
			plan.Style, len(plan.Algorithms))
	}

	plan.IgnoreMissing = raw.IgnoreMissing
	plan.Quiet = raw.Quiet
	plan.Status = raw.Status
	plan.Strict = raw.Strict
	plan.Warn = raw.Warn
	plan.JSONOutput = raw.JSONOutput

	plan.Workers = raw.Workers
	if plan.Workers < 1 {
		plan.Workers = runtime.NumCPU()
	}

	if len(raw.Files) == 0 {
		return nil, configurationError(`at least one FILE argument is required`)
	}
	plan.Files = raw.Files

	return plan, nil
}

// isHexString reports whether the string is a plain hexadecimal number.
// Odd digit counts are admissible, so hex.DecodeString is too strict here.
func isHexString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
