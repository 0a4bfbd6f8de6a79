package internals

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Style enumerates the textual checksum line styles.
// StyleTag encodes the algorithm in the line, the two others do not.
type Style int

const (
	// StyleTag writes 'ALGORITHM (PATH) = HEXDIGEST'
	StyleTag Style = iota
	// StyleGNU writes 'HEXDIGEST  PATH'
	StyleGNU
	// StyleLegacy writes 'HEXDIGEST *PATH'
	StyleLegacy
)

func (s Style) String() string {
	switch s {
	case StyleGNU:
		return `gnu`
	case StyleLegacy:
		return `legacy`
	}
	return `tag`
}

// TagDialect reports whether lines of this style carry the algorithm in-line.
func (s Style) TagDialect() bool {
	return s == StyleTag
}

// ChecksumRecord contains the data of one checksum file line.
// Algorithm is explicit in the tag dialect; in the traditional dialect it
// is the single configured algorithm supplied by the caller.
type ChecksumRecord struct {
	Algorithm HashAlgo
	Path      string
	Digest    string
	Binary    bool
}

var tagLineRegex *regexp.Regexp
var traditionalLineRegex *regexp.Regexp

func init() {
	tagLineRegex = regexp.MustCompilePOSIX(`^([a-zA-Z0-9_-]+) \((.+)\) = ([0-9a-fA-F]+)$`)
	traditionalLineRegex = regexp.MustCompilePOSIX(`^([0-9a-fA-F]+) ([ *])(.+)$`)
}

// ParseChecksumLine parses one checksum file line in the dialect of the
// given style. implicit supplies the algorithm for the traditional dialect.
// A line not matching the dialect's grammar yields an error wrapping
// ErrMalformedRecord; the caller decides whether that aborts anything.
func ParseChecksumLine(line string, style Style, implicit HashAlgo, lineno int) (ChecksumRecord, error) {
	record := ChecksumRecord{}

	if style.TagDialect() {
		groups := tagLineRegex.FindStringSubmatch(line)
		if groups == nil {
			return record, malformedRecordError(lineno, line)
		}
		algo, err := HashAlgorithmFromString(groups[1])
		if err != nil {
			return record, malformedRecordError(lineno, line)
		}
		record.Algorithm = algo
		record.Path = groups[2]
		record.Digest = strings.ToLower(groups[3])
		record.Binary = true
		return record, nil
	}

	groups := traditionalLineRegex.FindStringSubmatch(line)
	if groups == nil {
		return record, malformedRecordError(lineno, line)
	}
	record.Algorithm = implicit
	record.Digest = strings.ToLower(groups[1])
	record.Binary = groups[2] == `*`
	record.Path = groups[3]
	return record, nil
}

// FormatChecksumLine is the syntactic inverse of ParseChecksumLine.
// Round-trip holds for both dialects:
// ParseChecksumLine(FormatChecksumLine(r, s), s, r.Algorithm, 1) == r
func FormatChecksumLine(record ChecksumRecord, style Style) string {
	if style.TagDialect() {
		return fmt.Sprintf(`%s (%s) = %s`, record.Algorithm, record.Path, record.Digest)
	}
	marker := ` `
	if record.Binary {
		marker = `*`
	}
	return fmt.Sprintf(`%s %s%s`, record.Digest, marker, record.Path)
}

// ChecksumReader iterates over the records of one checksum file.
type ChecksumReader struct {
	file     *os.File
	scanner  *bufio.Scanner
	style    Style
	implicit HashAlgo
	lineno   int
}

// NewChecksumReader creates a file descriptor for filepath ('-' means stdin)
// and returns a ChecksumReader wrapping it.
func NewChecksumReader(path string, style Style, implicit HashAlgo) (*ChecksumReader, error) {
	reader := &ChecksumReader{style: style, implicit: implicit}
	if path == "-" {
		reader.file = os.Stdin
	} else {
		fd, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		reader.file = fd
	}
	reader.scanner = bufio.NewScanner(reader.file)
	return reader, nil
}

// Iterate reads and parses the next record line in the file.
// Blank lines and '#' comments are skipped. It returns io.EOF at the end,
// or a record-level error wrapping ErrMalformedRecord which leaves the
// reader usable for the remaining lines. The int is the 1-based line number.
func (r *ChecksumReader) Iterate() (ChecksumRecord, int, error) {
	for r.scanner.Scan() {
		r.lineno++
		line := strings.TrimRight(r.scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		record, err := ParseChecksumLine(line, r.style, r.implicit, r.lineno)
		return record, r.lineno, err
	}
	if err := r.scanner.Err(); err != nil {
		return ChecksumRecord{}, r.lineno, err
	}
	return ChecksumRecord{}, r.lineno, io.EOF
}

// Close closes the underlying file
func (r *ChecksumReader) Close() {
	if r.file != os.Stdin {
		r.file.Close()
	}
}

// ChecksumWriter serializes records into a checksum file.
// Writes to a regular file go through a temporary file which is renamed
// into place on Close, so readers never observe a partial list.
type ChecksumWriter struct {
	file  *os.File
	path  string
	style Style
}

// NewChecksumWriter returns a freshly-initialized ChecksumWriter
// ('-' means stdout).
func NewChecksumWriter(path string, style Style) (*ChecksumWriter, error) {
	writer := &ChecksumWriter{path: path, style: style}
	if path == "-" {
		writer.file = os.Stdout
		return writer, nil
	}
	fd, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, err
	}
	writer.file = fd
	return writer, nil
}

// Record writes one checksum line in the writer's style
func (w *ChecksumWriter) Record(record ChecksumRecord) error {
	_, err := fmt.Fprintln(w.file, FormatChecksumLine(record, w.style))
	return err
}

// Close finishes the write and moves the file to its final path
func (w *ChecksumWriter) Close() error {
	if w.file == os.Stdout {
		return nil
	}
	tmp := w.file.Name()
	if err := w.file.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, w.path)
}
