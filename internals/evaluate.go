package internals

import (
	"errors"
	"io"
	"sync"
	"time"
)

// Evaluate executes a resolved plan: it reads, hashes, compares and writes
// per the plan and returns the semantic outcome records in stable FILE
// argument order. Only plans with ActionProcess reach this function.
func Evaluate(plan *Plan) []Outcome {
	if plan.ReadMode == ReadModeChecksumFile {
		return evaluateChecksumLists(plan)
	}
	return evaluateFiles(plan)
}

// fileResult buffers one file's pipeline output until the report emits it.
type fileResult struct {
	outcomes []Outcome
	digests  []DigestValue
}

// evaluateFiles runs the per-file digest pipeline over a bounded worker
// pool. Files are independent; results are buffered per input index so the
// report order matches the CLI argument order regardless of scheduling.
func evaluateFiles(plan *Plan) []Outcome {
	results := make([]fileResult, len(plan.Files))
	indexes := make(chan int)
	var wg sync.WaitGroup

	workers := plan.Workers
	if workers > len(plan.Files) {
		workers = len(plan.Files)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range indexes {
				outcomes, digests := processFile(plan, plan.Files[index])
				results[index] = fileResult{outcomes: outcomes, digests: digests}
			}
		}()
	}
	for index := range plan.Files {
		indexes <- index
	}
	close(indexes)
	wg.Wait()

	outcomes := make([]Outcome, 0, len(plan.Files)*len(plan.Algorithms))
	for _, result := range results {
		outcomes = append(outcomes, result.outcomes...)
	}

	if plan.ChecksumOut != "" {
		if err := writeChecksumFile(plan, results); err != nil {
			outcomes = append(outcomes, Outcome{
				Path:    plan.ChecksumOut,
				Verdict: VerdictUnreadable,
				Detail:  err.Error(),
			})
		}
	}

	return outcomes
}

// processFile runs the full read-hash-compare-write cycle for one file.
// The cycle either completes or fails atomically: the attribute write
// happens only after every digest computed successfully.
func processFile(plan *Plan, path string) ([]Outcome, []DigestValue) {
	digests, err := digestFile(path, plan.Algorithms, plan.ShakeLength)
	if err != nil {
		return []Outcome{{Path: path, Verdict: VerdictUnreadable, Detail: err.Error()}}, nil
	}

	var outcomes []Outcome
	switch plan.Compare {
	case CompareLiteral:
		outcomes = []Outcome{compareLiteral(path, digests, plan.Literal)}
	case CompareAttribute:
		outcomes = compareAttributes(path, digests)
	default:
		outcomes = make([]Outcome, 0, len(digests))
		for _, digest := range digests {
			outcomes = append(outcomes, Outcome{Path: path, Algorithm: digest.Algorithm, Digest: digest.Hex})
		}
	}

	if plan.WriteAttribute {
		if err := WriteAttributes(path, digests, time.Now()); err != nil {
			outcomes = append(outcomes, Outcome{Path: path, Verdict: VerdictUnreadable, Detail: err.Error()})
		}
	}

	return outcomes, digests
}

// digestFile reads the file once and feeds every requested hash state
// through one pass.
func digestFile(path string, algos []HashAlgo, shakeLength int) ([]DigestValue, error) {
	instances := make([]Hash, len(algos))
	writers := make([]io.Writer, len(algos))
	for i, algo := range algos {
		instances[i] = algo.Instance(shakeLength)
		writers[i] = hashWriter{instances[i]}
	}

	if err := readFileInto(io.MultiWriter(writers...), path); err != nil {
		return nil, err
	}

	digests := make([]DigestValue, len(algos))
	for i, instance := range instances {
		digests[i] = DigestValue{Algorithm: algos[i], Hex: instance.HexDigest()}
	}
	return digests, nil
}

// hashWriter adapts the Hash interface to io.Writer for io.MultiWriter.
type hashWriter struct {
	h Hash
}

func (w hashWriter) Write(p []byte) (int, error) {
	if err := w.h.ReadBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// writeChecksumFile serializes all freshly-computed digests in the plan's
// style. Files which could not be read contribute no records.
func writeChecksumFile(plan *Plan, results []fileResult) error {
	writer, err := NewChecksumWriter(plan.ChecksumOut, plan.Style)
	if err != nil {
		return err
	}
	for index, result := range results {
		for _, digest := range result.digests {
			record := ChecksumRecord{
				Algorithm: digest.Algorithm,
				Path:      plan.Files[index],
				Digest:    digest.Hex,
				Binary:    plan.Style == StyleLegacy,
			}
			if err := writer.Record(record); err != nil {
				writer.Close()
				return err
			}
		}
	}
	return writer.Close()
}

// evaluateChecksumLists validates the records of each FILE argument, which
// names a checksum list in the resolved style. One malformed line never
// stops processing of the remaining lines.
func evaluateChecksumLists(plan *Plan) []Outcome {
	outcomes := make([]Outcome, 0, 16)
	implicit := plan.Algorithms[0]

	for _, listPath := range plan.Files {
		reader, err := NewChecksumReader(listPath, plan.Style, implicit)
		if err != nil {
			outcomes = append(outcomes, Outcome{Path: listPath, Verdict: VerdictUnreadable, Detail: err.Error()})
			continue
		}
		for {
			record, lineno, err := reader.Iterate()
			if err == io.EOF {
				break
			}
			if errors.Is(err, ErrMalformedRecord) {
				outcomes = append(outcomes, Outcome{
					Path:    listPath,
					Verdict: VerdictMalformedRecord,
					Detail:  err.Error(),
					Line:    lineno,
				})
				continue
			}
			if err != nil {
				outcomes = append(outcomes, Outcome{Path: listPath, Verdict: VerdictUnreadable, Detail: err.Error()})
				break
			}
			outcomes = append(outcomes, compareRecord(record, lineno, plan.ShakeLength))
		}
		reader.Close()
	}
	return outcomes
}
