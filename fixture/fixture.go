// Package fixture loads named byte sequences from YAML, so the bytes a
// device answers with can live beside the tests instead of inside them.
//
//	# captured from a TMP102
//	reset: [0x00]
//	temperature: "01 9a"
//	calibration:
//	  - 0x6b
//	  - 0x70
package fixture

import (
	"encoding/hex"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var ErrMissing = errors.New("fixture missing")

// Bytes is a byte sequence written in YAML either as a list of integers
// (0-255) or as a string of hex digits. Whitespace, commas, colons and 0x
// prefixes in the string form are ignored. A bare number is rejected: write
// [12] for decimal 12 or "12" for 0x12.
type Bytes []byte

func (self *Bytes) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*self = nil
	case string:
		b, err := ParseHex(v)
		if err != nil {
			return err
		}
		*self = b
	case []interface{}:
		var seq []int
		if err := unmarshal(&seq); err != nil {
			return errors.Wrap(err, "expected a list of bytes")
		}
		b := make(Bytes, len(seq))
		for i, n := range seq {
			if n < 0 || n > 0xff {
				return errors.Errorf("byte %d out of range: %d", i, n)
			}
			b[i] = byte(n)
		}
		*self = b
	default:
		// a bare number is ambiguous between decimal and hex
		return errors.Errorf("expected a list of bytes or a quoted hex string, got %v", raw)
	}
	return nil
}

// ParseHex decodes a hex string such as "01 9a", "0x01,0x9a" or "01:9a".
func ParseHex(s string) (Bytes, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == ':'
	})
	for i, f := range fields {
		if strings.HasPrefix(f, "0x") || strings.HasPrefix(f, "0X") {
			fields[i] = f[2:]
		}
	}
	b, err := hex.DecodeString(strings.Join(fields, ""))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex %q", s)
	}
	return b, nil
}

// Fixtures maps a name to the bytes a device should answer with.
type Fixtures map[string]Bytes

// Open fixtures from a file.
func Open(path string) (Fixtures, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	fixtures, err := OpenReader(file)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return fixtures, nil
}

// Open fixtures from a reader.
func OpenReader(r io.Reader) (Fixtures, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return OpenRaw(data)
}

// Open fixtures from []byte.
func OpenRaw(data []byte) (Fixtures, error) {
	self := Fixtures{}
	err := yaml.Unmarshal(data, &self)
	if err != nil {
		return nil, err
	}
	return self, nil
}

// Names returns the fixture names in sorted order.
func (self Fixtures) Names() []string {
	var names []string
	for name := range self {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (self Fixtures) Get(name string) (Bytes, error) {
	b, ok := self[name]
	if !ok {
		return nil, errors.Wrap(ErrMissing, name)
	}
	return b, nil
}

// Source is anything reads can be served from, such as *mock.I2C.
type Source interface {
	SetReadData(data []byte)
}

// Load sets the named fixture as the read data of src. src keeps a reference
// to the fixture's bytes.
func (self Fixtures) Load(src Source, name string) error {
	b, err := self.Get(name)
	if err != nil {
		return err
	}
	src.SetReadData(b)
	return nil
}
