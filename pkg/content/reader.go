// Package content reads authored JSON content files. Reads never fail hard:
// the caller always gets a value to bind over, plus a Status describing
// what went wrong, so one bad file degrades the experience instead of
// aborting the whole load.
package content

import (
	"encoding/json"
	"fmt"
	"os"
)

// Status is the outcome of a structured read. When OK is false, Message
// holds a human-readable diagnostic for the host's reporting channel and
// the accompanying value is whatever could be decoded (possibly zero).
type Status struct {
	OK      bool
	Message string
}

func ok() Status {
	return Status{OK: true}
}

func failed(format string, args ...any) Status {
	return Status{OK: false, Message: fmt.Sprintf(format, args...)}
}

// Read decodes the JSON file at path into T. The returned value is always
// usable: on read or decode failure it is the zero (or partially decoded)
// value and the Status carries the diagnostic.
func Read[T any](path string) (T, Status) {
	var v T

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return v, failed("content file not found: %s", path)
		}
		return v, failed("failed to read content file %s: %v", path, err)
	}

	if err := json.Unmarshal(data, &v); err != nil {
		return v, failed("failed to parse content file %s: %v", path, err)
	}

	return v, ok()
}

// ReadBytes decodes raw JSON bytes into T with the same tolerance contract
// as Read. Used when the bytes come from a cache rather than disk.
func ReadBytes[T any](data []byte, origin string) (T, Status) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, failed("failed to parse cached content %s: %v", origin, err)
	}
	return v, ok()
}
