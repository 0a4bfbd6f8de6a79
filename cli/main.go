package main

import (
	"bytes"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bwprog/hexsum/internals"
	v1 "github.com/bwprog/hexsum/v1"
)

// cobra flag targets
var argHelp bool
var argAvailable bool
var argVersion bool
var argAlgorithms string
var argShakeLength int
var argCheck bool
var argBinary bool
var argText bool
var argZero bool
var argTagStyle bool
var argGNUStyle bool
var argLegacyStyle bool
var argCompareAttribute bool
var argWriteAttribute bool
var argCompareLiteral string
var argChecksumOut string
var argIgnoreMissing bool
var argQuiet bool
var argStatus bool
var argStrict bool
var argWarn bool
var argJSONOutput bool
var argWorkers int

// rootCmd represents the one and only hexsum command
var rootCmd = &cobra.Command{
	Use:   "hexsum [flags] FILE...",
	Short: "Calculate and verify hash digests for files.",
	Long: `hexsum computes digests of files under a configurable set of hash
algorithms, optionally compares them against prior values (a literal hex
string, a checksum file, or a persisted per-file attribute), and optionally
records new values for future comparison.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := internals.RawFlags{
			Files:            args,
			EagerOrder:       internals.ScanEager(os.Args[1:]),
			Algorithms:       argAlgorithms,
			ShakeLength:      argShakeLength,
			Check:            argCheck,
			Binary:           argBinary,
			Text:             argText,
			Zero:             argZero,
			TagStyle:         argTagStyle,
			GNUStyle:         argGNUStyle,
			LegacyStyle:      argLegacyStyle,
			CompareAttribute: argCompareAttribute,
			CompareLiteral:   argCompareLiteral,
			WriteAttribute:   argWriteAttribute,
			ChecksumOut:      argChecksumOut,
			IgnoreMissing:    argIgnoreMissing,
			Quiet:            argQuiet,
			Status:           argStatus,
			Strict:           argStrict,
			Warn:             argWarn,
			JSONOutput:       argJSONOutput,
			Workers:          argWorkers,
		}

		// handle environment variables
		if envJSON, errJSON := envToBool("HEXSUM_JSON"); errJSON == nil {
			raw.JSONOutput = envJSON
		}
		if envWorkers, ok := envToInt("HEXSUM_WORKERS"); ok && raw.Workers == 0 {
			raw.Workers = envWorkers
		}

		plan, err := internals.Resolve(raw)
		if err != nil {
			log.Printfln(cliErrMsg, err.Error())
			exitCode = internals.ExitUsage
			return nil
		}

		switch plan.Action {
		case internals.ActionListAlgos:
			printAvailable(w)
		case internals.ActionVersion:
			printVersion(w)
		case internals.ActionHelp:
			return cmd.Help()
		case internals.ActionProcess:
			outcomes := internals.Evaluate(plan)
			report := internals.Render(outcomes, plan)
			exitCode = report.ExitCode
			if plan.JSONOutput {
				jsonRepr, err := internals.RenderJSON(outcomes, report.ExitCode)
				if err != nil {
					log.Printfln(resultJSONErrMsg, err.Error())
					exitCode = internals.ExitUsage
					return nil
				}
				if !plan.Status {
					w.Println(jsonRepr)
				}
				return nil
			}
			for _, line := range report.Lines {
				w.Println(line)
			}
			for _, warning := range report.Warnings {
				log.Printfln(`hexsum: WARNING: %s`, warning)
			}
		}
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()

	// registering --help without a shorthand keeps -h free for --hash
	flags.BoolVar(&argHelp, "help", false, "print usage and exit")
	flags.BoolVarP(&argAvailable, "available", "a", false, "list available hash algorithms and exit")
	flags.BoolVar(&argVersion, "version", false, "print version and exit")

	flags.StringVarP(&argAlgorithms, "hash", "h", envOr("HEXSUM_HASH", "sha256"), "comma-delimited hash algorithms to run, or 'all'")
	flags.IntVarP(&argShakeLength, "shake-length", "s", internals.ShakeLengthDefault, "shake digest length in bytes [1-128]")

	flags.BoolVarP(&argCheck, "check", "c", false, "treat FILE as a checksum list to validate")

	flags.BoolVarP(&argBinary, "binary", "b", false, "read in binary mode (always the case, accepted for compatibility)")
	flags.BoolVarP(&argText, "text", "t", false, "read in text mode (accepted, behaves like binary)")
	flags.BoolVarP(&argZero, "zero", "z", false, "accepted for compatibility, no effect")

	flags.BoolVar(&argTagStyle, "tag", false, "tag-style checksum lines 'ALGORITHM (PATH) = HEXDIGEST' (default)")
	flags.BoolVar(&argGNUStyle, "gnu", false, "GNU-style checksum lines 'HEXDIGEST  PATH'")
	flags.BoolVar(&argLegacyStyle, "zzz", false, "legacy-style checksum lines 'HEXDIGEST *PATH'")

	flags.BoolVarP(&argCompareAttribute, "verify-attribute", "v", false, "compare against the persisted per-file attribute")
	flags.BoolVarP(&argWriteAttribute, "store-attribute", "V", false, "write digest(s) to the persisted per-file attribute, with timestamp")
	flags.StringVarP(&argCompareLiteral, "compare", "C", "", "compare the live digest against a literal hex value")
	flags.StringVarP(&argChecksumOut, "write-checksum", "Z", "", "write a checksum file in the resolved style ('-' for stdout)")

	flags.BoolVar(&argIgnoreMissing, "ignore-missing", false, "do not report or fail on files a checksum list names but which are absent")
	flags.BoolVar(&argQuiet, "quiet", false, "do not print OK lines")
	flags.BoolVar(&argStatus, "status", false, "print nothing, the exit code carries the result")
	flags.BoolVar(&argStrict, "strict", false, "malformed checksum lines make the run fail")
	flags.BoolVarP(&argWarn, "warn", "w", false, "warn about improperly formatted checksum lines")

	flags.BoolVar(&argJSONOutput, "json", false, "return output as JSON, not as plain text")
	flags.IntVar(&argWorkers, "workers", 0, "number of concurrent file pipelines (default: number of CPUs)")
}

// printAvailable writes the algorithm table: one row per registered
// algorithm with block size, digest size and hex length. The shake rows
// defer to the -s parameter.
func printAvailable(w Output) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 2, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Hash\tBlock Size\tDigest Length\tHex Length")
	for _, algo := range internals.SupportedHashAlgorithms() {
		blockSize := algo.Instance(internals.ShakeLengthDefault).BlockSize()
		if algo.IsVariableLength() {
			fmt.Fprintf(tw, "%s\t%d\t%d (or -s)\t%d (or 2 * -s)\n",
				algo, blockSize, internals.ShakeLengthDefault, 2*internals.ShakeLengthDefault)
			continue
		}
		digestSize := algo.DigestSize(internals.ShakeLengthDefault)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", algo, blockSize, digestSize, 2*digestSize)
	}
	tw.Flush()
	w.Print(buf.String())
}

// printVersion writes the one-line version banner
func printVersion(w Output) {
	w.Printfln(`hexsum %d.%d.%d (%s)`, v1.VERSION_MAJOR, v1.VERSION_MINOR, v1.VERSION_PATCH, v1.RELEASE_DATE)
}

func main() {
	w = &plainOutput{device: os.Stdout}
	log = &plainOutput{device: os.Stderr}

	// -a and --version outrank --help and terminate before any flag
	// validation, so they are dispatched ahead of the argument parser;
	// the first non-help eager flag in argv order wins
	for _, eager := range internals.ScanEager(os.Args[1:]) {
		if eager == internals.EagerListAlgos {
			printAvailable(w)
			os.Exit(0)
		}
		if eager == internals.EagerVersion {
			printVersion(w)
			os.Exit(0)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		log.Printfln(cliErrMsg, err.Error())
		exitCode = internals.ExitUsage
	}
	os.Exit(exitCode)
}
