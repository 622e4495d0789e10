// Package bind decodes and validates JSON request bodies
package bind

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	perr "gsa/internal/platform/errors"
)

// JSONOptions tunes ParseJSON. The zero value allows unknown fields and
// applies no size cap
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// DefaultJSON caps bodies at 1MiB and rejects unknown fields
var DefaultJSON = JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}

// ParseJSON reads one JSON value from r's body into T and validates it.
// Failures are JSON or validation coded errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var out T
	o := DefaultJSON
	if len(opts) > 0 {
		o = opts[0]
	}

	body, err := readBody(r, o.MaxBytes)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		if o.AllowEmptyBody {
			return out, nil
		}
		return out, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&out); err != nil {
		return out, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return out, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(out); err != nil {
		return out, err
	}
	return out, nil
}

// readBody drains and closes the body, refusing more than limit bytes when limit > 0
func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()

	src := io.Reader(r.Body)
	if limit > 0 {
		src = io.LimitReader(r.Body, limit+1)
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, perr.JSONErrf("read body: %v", err)
	}
	if limit > 0 && int64(len(b)) > limit {
		return nil, perr.JSONErrf("body exceeds %d bytes", limit)
	}
	return b, nil
}
