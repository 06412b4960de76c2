package io

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/iddl/pkg/engine"
	"github.com/matzehuels/iddl/pkg/errors"
	"github.com/matzehuels/iddl/pkg/iddl"
)

const batchJSON = `{
  "inputs": [
    {"id": "cta", "role": "Button", "prominence": "Hero", "intent": "Brand",
     "context": {"ancestry": {"space": "surface"}}},
    {"role": "Sidebar", "context": {"ancestry": {"space": "rail"}}}
  ]
}`

const batchYAML = `
inputs:
  - id: cta
    role: Button
    prominence: Hero
    intent: Brand
    context:
      ancestry: {space: surface}
  - role: Sidebar
    context:
      ancestry: {space: rail}
`

const batchTOML = `
[[inputs]]
id = "cta"
role = "Button"
prominence = "Hero"
intent = "Brand"
[inputs.context.ancestry]
space = "surface"

[[inputs]]
role = "Sidebar"
[inputs.context.ancestry]
space = "rail"
`

func TestReadBatchFormats(t *testing.T) {
	want := Batch{Inputs: []Entry{
		{ID: "cta", TokenInput: iddl.TokenInput{
			Role: "Button", Prominence: iddl.ProminenceHero, Intent: iddl.IntentBrand,
			Context: iddl.Context{Ancestry: iddl.Ancestry{Space: iddl.SpaceSurface}},
		}},
		{ID: "#2", TokenInput: iddl.TokenInput{
			Role:    "Sidebar",
			Context: iddl.Context{Ancestry: iddl.Ancestry{Space: iddl.SpaceRail}},
		}},
	}}

	for f, src := range map[Format]string{FormatJSON: batchJSON, FormatYAML: batchYAML, FormatTOML: batchTOML} {
		t.Run(string(f), func(t *testing.T) {
			b, err := ReadBatch(strings.NewReader(src), f)
			require.NoError(t, err)
			assert.Equal(t, want, b)
		})
	}
}

func TestReadBatchValidation(t *testing.T) {
	src := `{"inputs": [
		{"id": "a", "role": "Button", "prominence": "Heroic"},
		{"id": "a", "role": "Card"},
		{"role": ""}
	]}`

	_, err := ReadBatch(strings.NewReader(src), FormatJSON)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	msg := err.Error()
	assert.Contains(t, msg, "Heroic")
	assert.Contains(t, msg, `duplicate id "a"`)
	assert.Contains(t, msg, "entry #3")
}

func TestReadBatchUnknownFields(t *testing.T) {
	tests := map[Format]string{
		FormatJSON: `{"inputs": [{"role": "Button", "colour": "red"}]}`,
		FormatYAML: "inputs:\n  - role: Button\n    colour: red\n",
		FormatTOML: "[[inputs]]\nrole = \"Button\"\ncolour = \"red\"\n",
	}
	for f, src := range tests {
		t.Run(string(f), func(t *testing.T) {
			_, err := ReadBatch(strings.NewReader(src), f)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat), "got %v", err)
		})
	}
}

func TestFormats(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "YML": FormatYAML, "yaml": FormatYAML, "toml": FormatTOML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Equal(t, errors.ErrCodeUnsupported, errors.GetCode(err))

	f, err := FormatOf("dir/batch.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
}

func TestImportBatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/batch.toml", []byte(batchTOML), 0o644))

	b, err := ImportBatch(fs, "/in/batch.toml")
	require.NoError(t, err)
	assert.Len(t, b.Inputs, 2)

	_, err = ImportBatch(fs, "/in/missing.json")
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	_, err = ImportBatch(fs, "/in/batch.csv")
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported))
}

func TestRunAndReportRoundTrip(t *testing.T) {
	b, err := ReadBatch(strings.NewReader(batchJSON), FormatJSON)
	require.NoError(t, err)

	e := engine.New()
	rep := Run(context.Background(), e, b)

	_, err = uuid.Parse(rep.RunID)
	require.NoError(t, err)
	require.Len(t, rep.Results, 2)

	cta, ok := rep.Lookup("cta")
	require.True(t, ok)
	assert.Equal(t, e.Resolve(b.Inputs[0].TokenInput), cta.Output)
	assert.Equal(t, cta.Output.Classes(), cta.Classes)
	assert.Contains(t, cta.Classes, "bg-primary")

	_, ok = rep.Lookup("nope")
	assert.False(t, ok)

	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteReport(&buf, rep, f))

			back, err := ReadReport(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, rep.RunID, back.RunID)
			assert.True(t, rep.Created.Equal(back.Created))
			assert.Equal(t, rep.Results, back.Results)
		})
	}
}

func TestRunIDsAreUnique(t *testing.T) {
	e := engine.New()
	a := Run(context.Background(), e, Batch{})
	b := Run(context.Background(), e, Batch{})
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Empty(t, a.Results)
}

func TestExportReport(t *testing.T) {
	fs := afero.NewMemMapFs()
	rep := Run(context.Background(), engine.New(), Batch{Inputs: []Entry{{ID: "x", TokenInput: iddl.TokenInput{Role: "Card"}}}})

	require.NoError(t, ExportReport(fs, rep, "/out/report.yaml"))
	data, err := afero.ReadFile(fs, "/out/report.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "run_id: "+rep.RunID)

	assert.Error(t, ExportReport(fs, rep, "/out/report.txt"))
}
