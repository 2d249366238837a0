package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/memmark/pkg/core"
)

// Codec defines how records are encoded in a side-file format.
type Codec interface {
	// Decode reads records from r.
	Decode(r io.Reader) ([]core.Record, error)
	// Encode converts records to bytes.
	Encode(records []core.Record) ([]byte, error)
}

// Codecs returns the supported codecs keyed by format name.
func Codecs() map[string]Codec {
	return map[string]Codec{
		"json": JSONCodec{},
		"yaml": YAMLCodec{},
	}
}

// wireRecord tracks field presence so missing fields can be told apart from
// zero values.
type wireRecord struct {
	Item  *string `json:"item" yaml:"item"`
	Value *int    `json:"value" yaml:"value"`
}

func (w wireRecord) record(i int) (core.Record, error) {
	if w.Item == nil {
		return core.Record{}, fmt.Errorf("record %d: missing \"item\"", i)
	}
	if w.Value == nil {
		return core.Record{}, fmt.Errorf("record %d: missing \"value\"", i)
	}
	r := core.Record{Item: *w.Item, Value: *w.Value}
	if _, err := r.Mark(); err != nil {
		return core.Record{}, fmt.Errorf("record %d: %w", i, err)
	}
	return r, nil
}

func fromWire(wire []wireRecord) ([]core.Record, error) {
	records := make([]core.Record, 0, len(wire))
	for i, w := range wire {
		r, err := w.record(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrCorrupt, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// --- JSON Codec ---

// JSONCodec reads and writes the side-file format: a top-level array of
// {"item": <key>, "value": <49..57>} objects.
type JSONCodec struct{}

func (JSONCodec) Decode(r io.Reader) ([]core.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var wire []wireRecord
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %w", core.ErrCorrupt, err)
	}
	if wire == nil {
		return nil, fmt.Errorf("%w: expected a json array", core.ErrCorrupt)
	}
	return fromWire(wire)
}

func (JSONCodec) Encode(records []core.Record) ([]byte, error) {
	if records == nil {
		records = []core.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// --- YAML Codec ---

// YAMLCodec holds the same records as a YAML sequence, for exports.
type YAMLCodec struct{}

func (YAMLCodec) Decode(r io.Reader) ([]core.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var wire []wireRecord
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: invalid yaml: %w", core.ErrCorrupt, err)
	}
	return fromWire(wire)
}

func (YAMLCodec) Encode(records []core.Record) ([]byte, error) {
	if records == nil {
		records = []core.Record{}
	}
	return yaml.Marshal(records)
}
