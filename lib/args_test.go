package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmoglot/reion/lib/native"
)

func TestSet(t *testing.T) {
	raw := &RawArgs{}

	require.NoError(t, raw.set("Model", "splined"))
	require.NoError(t, raw.set("H0", "70.2"))
	require.NoError(t, raw.set("IncludeHeliumFullReion", "false"))
	require.NoError(t, raw.set("Samples", "512"))

	require.NotNil(t, raw.Model)
	assert.Equal(t, "splined", *raw.Model)
	require.NotNil(t, raw.H0)
	assert.Equal(t, 70.2, *raw.H0)
	require.NotNil(t, raw.IncludeHeliumFullReion)
	assert.False(t, *raw.IncludeHeliumFullReion)
	require.NotNil(t, raw.Samples)
	assert.Equal(t, 512, *raw.Samples)

	assert.Error(t, raw.set("H0", "meow"))
	assert.Error(t, raw.set("Samples", "1.5"))
	assert.Error(t, raw.set("LogRegular", "maybe"))
	assert.Error(t, raw.set("NotAVariable", "1"))
}

func TestOverwrite(t *testing.T) {
	file := &RawArgs{}
	require.NoError(t, file.set("H0", "70"))
	require.NoError(t, file.set("Model", "tanh"))
	require.NoError(t, file.set("OpticalDepth", "0.06"))

	flags := &RawArgs{}
	require.NoError(t, flags.set("H0", "67.5"))
	require.NoError(t, flags.set("Redshift", "8.5"))

	file.Overwrite(flags)

	assert.Equal(t, 67.5, *file.H0)        // flag wins
	assert.Equal(t, "tanh", *file.Model)   // file value survives
	assert.Equal(t, 0.06, *file.OpticalDepth)
	assert.Equal(t, 8.5, *file.Redshift)   // flag-only value lands
}

func TestProcessDefaults(t *testing.T) {
	args := (&RawArgs{}).Process()

	assert.Equal(t, "tanh", args.Model)
	assert.Equal(t, 67.5, args.H0)
	assert.False(t, args.UseOpticalDepth)
	assert.Equal(t, 10.0, args.Redshift)
	assert.Equal(t, 0.5, args.DeltaRedshift)
	assert.Equal(t, -1.0, args.Fraction)
	assert.True(t, args.IncludeHeliumFullReion)
	assert.Equal(t, 50.0, args.MaxRedshift)
	assert.Equal(t, 256, args.Samples)
	assert.Equal(t, "text", args.OutputFormat)

	// Defaults alone are a valid configuration.
	assert.True(t, Check(WarnOnError, args))
}

func TestProcessOpticalDepthMode(t *testing.T) {
	raw := &RawArgs{}
	require.NoError(t, raw.set("OpticalDepth", "0.054"))
	args := raw.Process()

	assert.True(t, args.UseOpticalDepth)
	assert.Equal(t, 0.054, args.OpticalDepth)

	m := args.TanhModel(native.New())
	assert.True(t, m.UseOpticalDepth)
	assert.Equal(t, 0.054, m.OpticalDepth)
	assert.Equal(t, args.DeltaRedshift, m.DeltaRedshift)
}

func TestTanhModelRedshiftMode(t *testing.T) {
	raw := &RawArgs{}
	require.NoError(t, raw.set("Redshift", "8.5"))
	require.NoError(t, raw.set("Fraction", "0.9"))
	args := raw.Process()

	m := args.TanhModel(native.New())
	assert.False(t, m.UseOpticalDepth)
	assert.Equal(t, 8.5, m.Redshift)
	assert.Equal(t, 0.9, m.Fraction)

	params := args.Cosmology(m)
	require.NoError(t, params.Check())
	assert.Equal(t, args.H0, params.H0)
	assert.Equal(t, args.YHe, params.YHe)
}

func TestSplinedModel(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "xe.txt")
	require.NoError(t, os.WriteFile(fname,
		[]byte("# z Xe\n0 1.16\n8 0.5\n30 0\n"), 0644))

	raw := &RawArgs{}
	require.NoError(t, raw.set("Model", "splined"))
	require.NoError(t, raw.set("TableFile", fname))
	args := raw.Process()

	solver := native.New()
	m, err := args.SplinedModel(solver)
	require.NoError(t, err)
	assert.True(t, m.UseSpline)

	xe, err := solver.Xe(args.Cosmology(m), 8)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, xe, 1e-8)
}

func TestParseConfigFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "reion.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(
		"Model: tanh\nOpticalDepth: 0.054\nH0: 70\nSamples: 64\n"), 0644))

	raw := ParseConfigFile(fname)
	require.NotNil(t, raw.OpticalDepth)
	assert.Equal(t, 0.054, *raw.OpticalDepth)
	assert.Equal(t, 70.0, *raw.H0)
	assert.Equal(t, 64, *raw.Samples)
	assert.Nil(t, raw.Redshift)

	// An empty file name sets nothing.
	raw = ParseConfigFile("")
	assert.Nil(t, raw.Model)
}

func TestCheckProblems(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"Model", "spline"},
		{"H0", "-70"},
		{"OmegaB", "0"},
		{"YHe", "1.2"},
		{"DeltaRedshift", "-0.5"},
		{"Fraction", "-2"},
		{"MaxRedshift", "0"},
		{"OpticalDepth", "-0.01"},
		{"Samples", "1"},
		{"OutputFormat", "csv"},
	}

	for i := range tests {
		raw := &RawArgs{}
		require.NoError(t, raw.set(tests[i].key, tests[i].value), "%d", i)
		args := raw.Process()
		assert.False(t, Check(WarnOnError, args),
			"%d) %s = %s passed Check", i, tests[i].key, tests[i].value)
	}
}

func TestCheckSplinedNeedsTable(t *testing.T) {
	raw := &RawArgs{}
	require.NoError(t, raw.set("Model", "splined"))
	args := raw.Process()
	assert.False(t, Check(WarnOnError, args))
}

func TestCheckBinaryNeedsOutputFile(t *testing.T) {
	raw := &RawArgs{}
	require.NoError(t, raw.set("OutputFormat", "binary"))
	args := raw.Process()
	assert.False(t, Check(WarnOnError, args))

	require.NoError(t, raw.set("OutputFile", "xe.tab"))
	args = raw.Process()
	assert.True(t, Check(WarnOnError, args))
}

func TestCheckLogRegularGrid(t *testing.T) {
	raw := &RawArgs{}
	require.NoError(t, raw.set("LogRegular", "true"))
	args := raw.Process()
	assert.False(t, Check(WarnOnError, args)) // ZMin defaults to 0

	require.NoError(t, raw.set("ZMin", "0.5"))
	args = raw.Process()
	assert.True(t, Check(WarnOnError, args))
}
