package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/iddl/pkg/errors"
	"github.com/matzehuels/iddl/pkg/iddl"
)

// Batch is a list of inputs to resolve together.
type Batch struct {
	Inputs []Entry `json:"inputs" yaml:"inputs" toml:"inputs"`
}

// Entry is one named input of a batch.
type Entry struct {
	ID              string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	iddl.TokenInput `yaml:",inline"`
}

// ReadBatch decodes a batch in format f from r, names unnamed entries and
// validates every entry. ReadBatch does not close r.
func ReadBatch(r io.Reader, f Format) (Batch, error) {
	var b Batch
	if err := decode(r, f, &b); err != nil {
		return Batch{}, err
	}
	if err := b.normalize(); err != nil {
		return Batch{}, err
	}
	return b, nil
}

// ImportBatch reads the batch file at path. The format is taken from the
// file extension.
func ImportBatch(fs afero.Fs, path string) (Batch, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Batch{}, err
	}
	file, err := fs.Open(path)
	if err != nil {
		return Batch{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer file.Close()

	b, err := ReadBatch(file, f)
	if err != nil {
		return Batch{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

func decode(r io.Reader, f Format, v any) error {
	var err error
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(v)
		if err == io.EOF {
			err = nil
		}
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.NewDecoder(r).Decode(v)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown field %q", undecoded[0].String())
			}
		}
	default:
		_, err = ParseFormat(string(f))
		return err
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", f)
	}
	return nil
}

// normalize names unnamed entries and validates every entry.
func (b *Batch) normalize() error {
	var result *multierror.Error
	seen := make(map[string]bool, len(b.Inputs))

	for i := range b.Inputs {
		e := &b.Inputs[i]
		if e.ID == "" {
			e.ID = "#" + strconv.Itoa(i+1)
		}
		if seen[e.ID] {
			result = multierror.Append(result, errors.New(errors.ErrCodeInvalidInput, "duplicate id %q", e.ID))
		}
		seen[e.ID] = true

		if err := e.Validate(); err != nil {
			result = multierror.Append(result, errors.Wrap(errors.ErrCodeInvalidInput, err, "entry %s", e.ID))
		}
	}
	return result.ErrorOrNil()
}

// encode writes v in format f.
func encode(w io.Writer, f Format, v any) error {
	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		var buf bytes.Buffer
		if err = toml.NewEncoder(&buf).Encode(v); err == nil {
			_, err = buf.WriteTo(w)
		}
	default:
		_, err = ParseFormat(string(f))
		return err
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", f)
	}
	return nil
}
