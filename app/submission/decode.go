package submission

import (
	"encoding/json"
	"io"
)

// Decode drains the request body once and unmarshals it into v. A missing,
// empty, or malformed body leaves v zero-valued: the pipelines must never
// fail solely because the body was unparseable, since downstream defaulting
// absorbs missing fields.
func Decode(r io.Reader, v any) {
	if r == nil {
		return
	}

	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return
	}

	// Parse errors are deliberately swallowed; v keeps its zero value.
	_ = json.Unmarshal(data, v)
}
