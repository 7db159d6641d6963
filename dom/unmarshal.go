package dom

import (
	"fmt"
	"io"

	"github.com/mcvoid/jsonstream"
	"github.com/mcvoid/jsonstream/internal/engine"
	"github.com/mcvoid/jsonstream/source"
)

// Unmarshal decodes a single JSON value out of data and returns the
// resulting tree. data is never copied as a whole: strings are copied
// out of it during the decode, while number Values keep referencing
// data and read their digits from it whenever AsNumber, AsInteger or
// String is called.
func Unmarshal(data []byte) (*Value, error) {
	eng := engine.New()
	src := source.NewSlice(data)
	snk := New(data)
	r := eng.Run(src, snk)
	switch r.Kind {
	case jsonstream.End:
		return snk.Result(), nil
	case jsonstream.ErrorResult:
		return nil, r.Err
	default:
		return nil, fmt.Errorf("dom: decode did not finish against a non-suspending source (%s)", r.Kind)
	}
}

// UnmarshalString is Unmarshal for a string.
func UnmarshalString(s string) (*Value, error) {
	return Unmarshal([]byte(s))
}

// UnmarshalReader reads all of r before decoding. It is a convenience
// wrapper, not a streaming decode: for genuine incremental use, drive
// internal/engine's Run directly against a suspending Source as bytes
// arrive.
func UnmarshalReader(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}
