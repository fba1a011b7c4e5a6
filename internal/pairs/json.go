package pairs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"
)

// EncodeOptions controls the textual layout of the emitted object.
type EncodeOptions struct {
	// Indent switches to multi-line output using this indent. Empty means compact.
	Indent string
}

// MarshalJSON encodes the buffer as a compact JSON object in insertion order.
func (b *Buffer) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('{')
	for i, p := range b.Pairs() {
		if i > 0 {
			out.WriteByte(',')
		}
		if err := writeString(&out, p.Key); err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", p.Key, err)
		}
		out.WriteByte(':')
		if err := writeString(&out, p.Value); err != nil {
			return nil, fmt.Errorf("failed to encode value for key %q: %w", p.Key, err)
		}
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

// Encode serializes b according to opts. The result has no trailing newline.
func Encode(b *Buffer, opts EncodeOptions) ([]byte, error) {
	if b == nil {
		b = NewBuffer()
	}
	data, err := b.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if opts.Indent == "" {
		return data, nil
	}
	formatted := pretty.PrettyOptions(data, &pretty.Options{
		Width:  80,
		Indent: opts.Indent,
	})
	return bytes.TrimRight(formatted, "\n"), nil
}

// writeString appends s as a JSON string literal. HTML characters are kept
// verbatim so values come out exactly as typed.
func writeString(out *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	out.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
