package internals

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/xattr"
)

// AttributeRecord contains the data persisted as extended attributes for
// one (file, algorithm) pair. DateTime is recorded at write time and is
// informational only; it is never validated on read.
type AttributeRecord struct {
	Algorithm HashAlgo  `json:"algorithm"`
	Digest    string    `json:"digest"`
	DateTime  time.Time `json:"datetime"`
}

// Attribute key layout: user.<ALGORITHM>.hash and user.<ALGORITHM>.date
func attributeKey(algo HashAlgo, field string) string {
	return fmt.Sprintf(`user.%s.%s`, algo, field)
}

// WriteAttributes persists the given digests to the file's extended
// attributes, one hash/date key pair per algorithm. Callers invoke it only
// after every digest computed successfully, so a file never carries a
// partial update from this invocation.
func WriteAttributes(path string, digests []DigestValue, now time.Time) error {
	stamp := []byte(now.Format(time.RFC3339))
	for _, digest := range digests {
		if err := xattr.Set(path, attributeKey(digest.Algorithm, `hash`), []byte(digest.Hex)); err != nil {
			return fmt.Errorf(`cannot write attribute for '%s': %w`, path, err)
		}
		if err := xattr.Set(path, attributeKey(digest.Algorithm, `date`), stamp); err != nil {
			return fmt.Errorf(`cannot write attribute for '%s': %w`, path, err)
		}
	}
	return nil
}

// ReadAttribute returns the persisted record for (path, algo).
// The second return value is false when no digest attribute is present.
func ReadAttribute(path string, algo HashAlgo) (AttributeRecord, bool, error) {
	record := AttributeRecord{Algorithm: algo}

	raw, err := xattr.Get(path, attributeKey(algo, `hash`))
	if err != nil {
		if isNoAttribute(err) {
			return record, false, nil
		}
		return record, false, err
	}
	record.Digest = strings.ToLower(strings.TrimSpace(string(raw)))

	if rawDate, err := xattr.Get(path, attributeKey(algo, `date`)); err == nil {
		if stamp, err := time.Parse(time.RFC3339, strings.TrimSpace(string(rawDate))); err == nil {
			record.DateTime = stamp
		}
	}
	return record, true, nil
}

func isNoAttribute(err error) bool {
	var xerr *xattr.Error
	if errors.As(err, &xerr) {
		return xerr.Err == xattr.ENOATTR
	}
	return false
}
