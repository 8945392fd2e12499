package output

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// WriteMsgpack serializes v to w as MessagePack, keyed by the json tags so
// that the field names match the JSON output.
func WriteMsgpack(w io.Writer, v any) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	enc.UseCompactInts(true)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("msgpack encode: %w", err)
	}
	return nil
}
