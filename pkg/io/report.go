package io

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/matzehuels/iddl/pkg/errors"
	"github.com/matzehuels/iddl/pkg/iddl"
)

// Resolver resolves a single input. *engine.Engine satisfies it.
type Resolver interface {
	ResolveContext(ctx context.Context, in iddl.TokenInput) iddl.TokenOutput
}

// Report is the result of resolving a batch.
type Report struct {
	RunID       string    `json:"run_id" yaml:"run_id" toml:"run_id"`
	Created     time.Time `json:"created" yaml:"created" toml:"created"`
	Theme       string    `json:"theme,omitempty" yaml:"theme,omitempty" toml:"theme,omitempty"`
	Fingerprint string    `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty" toml:"fingerprint,omitempty"`
	Duration    string    `json:"duration" yaml:"duration" toml:"duration"`
	Results     []Result  `json:"results" yaml:"results" toml:"results"`
}

// Result pairs a batch entry with its resolved tokens.
type Result struct {
	ID      string           `json:"id" yaml:"id" toml:"id"`
	Input   iddl.TokenInput  `json:"input" yaml:"input" toml:"input"`
	Output  iddl.TokenOutput `json:"output" yaml:"output" toml:"output"`
	Classes string           `json:"classes" yaml:"classes" toml:"classes"`
}

// Run resolves every entry of b in order. Inputs are recorded as given, not
// normalized.
func Run(ctx context.Context, r Resolver, b Batch) *Report {
	start := time.Now()
	rep := &Report{
		RunID:   uuid.NewString(),
		Created: start.UTC().Truncate(time.Second),
		Results: make([]Result, len(b.Inputs)),
	}
	for i, e := range b.Inputs {
		out := r.ResolveContext(ctx, e.TokenInput)
		rep.Results[i] = Result{
			ID:      e.ID,
			Input:   e.TokenInput,
			Output:  out,
			Classes: out.Classes(),
		}
	}
	rep.Duration = time.Since(start).String()
	return rep
}

// Lookup returns the result with the given id.
func (r *Report) Lookup(id string) (Result, bool) {
	for _, res := range r.Results {
		if res.ID == id {
			return res, true
		}
	}
	return Result{}, false
}

// Encode writes v in format f. It is used for single results as well as
// whole reports.
func Encode(w io.Writer, f Format, v any) error {
	return encode(w, f, v)
}

// WriteReport encodes rep in format f and writes it to w.
func WriteReport(w io.Writer, rep *Report, f Format) error {
	return encode(w, f, rep)
}

// ExportReport writes rep to path. The format is taken from the file
// extension.
func ExportReport(fs afero.Fs, rep *Report, path string) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := fs.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := WriteReport(file, rep, f); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}

// ReadReport decodes a report written by WriteReport.
func ReadReport(r io.Reader, f Format) (*Report, error) {
	var rep Report
	if err := decode(r, f, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
