package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/unitconv-mcp/unit"
	"github.com/viant/unitconv-mcp/unit/catalog"
)

// runCLI executes args with a fresh service and returns captured stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetService()
	buf := &bytes.Buffer{}
	stdout = buf
	stderr = &bytes.Buffer{}
	t.Cleanup(func() {
		resetService()
		stdout = os.Stdout
		stderr = os.Stderr
	})
	err := RunE(args)
	return buf.String(), err
}

func TestExtractConfigPath(t *testing.T) {
	assert.Equal(t, "cfg.yaml", extractConfigPath([]string{"-f", "cfg.yaml", "convert"}))
	assert.Equal(t, "cfg.yaml", extractConfigPath([]string{"convert", "--config=cfg.yaml"}))
	assert.Equal(t, "", extractConfigPath([]string{"convert", "-v", "1"}))
}

func TestFirstCommand(t *testing.T) {
	testCases := []struct {
		args   []string
		expect string
	}{
		{[]string{"convert", "-v", "1"}, "convert"},
		{[]string{"-f", "cfg.yaml", "list-units"}, "list-units"},
		{[]string{"--config", "cfg.yaml", "serve", "--stdio"}, "serve"},
		{[]string{"--config=cfg.yaml", "unit", "-n", "m"}, "unit"},
		{[]string{"-f"}, ""},
		{nil, ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, firstCommand(tc.args), "%v", tc.args)
	}
}

func TestConvertCmd(t *testing.T) {
	out, err := runCLI(t, "convert", "-v", "100", "--from", "meters", "--to", "centimeter")
	require.NoError(t, err)
	assert.Equal(t, "100 m = 10000 cm (length)\n", out)

	out, err = runCLI(t, "convert", "--value=-40", "--from", "celsius", "--to", "fahrenheit", "--json")
	require.NoError(t, err)
	actual := &unit.Result{}
	require.NoError(t, json.Unmarshal([]byte(out), actual))
	assert.EqualValues(t, &unit.Result{Category: "temperature", InputValue: -40, FromUnit: "C", ToUnit: "F", Result: -40, Precision: 6}, actual)

	out, err = runCLI(t, "convert", "-v", "10", "--from", "lbs", "--to", "kg", "-p", "2")
	require.NoError(t, err)
	assert.Equal(t, "10 lb = 4.54 kg (mass)\n", out)
}

func TestConvertCmd_Errors(t *testing.T) {
	_, err := runCLI(t, "convert", "-v", "abc", "--from", "m", "--to", "cm")
	assert.True(t, errors.Is(err, unit.ErrInvalidInput))

	_, err = runCLI(t, "convert", "-v", "1", "--from", "kg", "--to", "seconds")
	assert.True(t, errors.Is(err, unit.ErrIncompatibleUnits))
	assert.EqualValues(t, "Incompatible units 'kg' and 'seconds' (categories: mass vs time)", err.Error())

	_, err = runCLI(t, "convert", "-v", "1", "--from", "kg")
	var flagsErr *flags.Error
	require.True(t, errors.As(err, &flagsErr))
	assert.Equal(t, flags.ErrRequired, flagsErr.Type)
}

func TestListUnitsCmd(t *testing.T) {
	out, err := runCLI(t, "list-units", "--json")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimRight(string(catalog.Embedded()), "\n")+"\n", out)

	out, err = runCLI(t, "list-units")
	require.NoError(t, err)
	assert.Contains(t, out, "length (ratio, base m)")
	assert.Contains(t, out, "temperature (affine)")
}

func TestUnitCmd(t *testing.T) {
	out, err := runCLI(t, "unit", "-n", "Degrees Fahrenheit", "--json")
	require.NoError(t, err)
	info := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "F", info["unit"])
	assert.Equal(t, "temperature", info["category"])

	_, err = runCLI(t, "unit", "-n", "furlong")
	assert.True(t, errors.Is(err, unit.ErrUnknownUnit))
}

func TestToolCommands(t *testing.T) {
	out, err := runCLI(t, "list-tools", "unit")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "unit-convert\t"))

	out, err = runCLI(t, "tool", "-n", "unit/convert", "--json")
	require.NoError(t, err)
	info := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "unit-convert", info["name"])
	assert.Equal(t, "*unitaction.ConvertInput", info["inputType"])

	_, err = runCLI(t, "tool", "-n", "unit/none")
	assert.Error(t, err)
}

func TestExecCmd(t *testing.T) {
	out, err := runCLI(t, "exec", "-n", "unit-convert", "-i", `{"value":1.5,"from_unit":"hours","to_unit":"minutes"}`)
	require.NoError(t, err)
	actual := &unit.Result{}
	require.NoError(t, json.Unmarshal([]byte(out), actual))
	assert.EqualValues(t, 90, actual.Result)

	location := filepath.Join(t.TempDir(), "args.json")
	require.NoError(t, os.WriteFile(location, []byte(`{"unit":"km"}`), 0o644))
	out, err = runCLI(t, "exec", "-n", "unit/resolve", "--file", location)
	require.NoError(t, err)
	assert.Contains(t, out, `"category": "length"`)

	_, err = runCLI(t, "exec", "-n", "unit-convert", "-i", "{")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	units := filepath.Join(dir, "units.yaml")
	require.NoError(t, os.WriteFile(units, []byte(`
categories:
  length:
    kind: ratio
    base: m
    units:
      m: {factor: 1, aliases: [meter]}
      league: {factor: 4828.032}
`), 0o644))
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("catalog: "+units+"\nprecision: 2\n"), 0o644))

	out, err := runCLI(t, "-f", cfg, "convert", "-v", "1", "--from", "league", "--to", "meter")
	require.NoError(t, err)
	assert.Equal(t, "1 league = 4828.03 m (length)\n", out)

	t.Setenv("UNITCONV_PRECISION", "1")
	out, err = runCLI(t, "-f", cfg, "convert", "-v", "1", "--from", "league", "--to", "meter")
	require.NoError(t, err)
	assert.Equal(t, "1 league = 4828 m (length)\n", out)

	t.Setenv("UNITCONV_CATALOG", filepath.Join(dir, "missing.json"))
	_, err = runCLI(t, "convert", "-v", "1", "--from", "m", "--to", "cm")
	assert.Error(t, err)
}

func TestRemoteCmd_Validation(t *testing.T) {
	_, err := runCLI(t, "remote", "-a", "http://localhost:1/sse")
	assert.Error(t, err)
	_, err = runCLI(t, "remote", "-a", "http://localhost:1/sse", "-v", "x", "--from", "m", "--to", "cm")
	assert.True(t, errors.Is(err, unit.ErrInvalidInput))
	_, err = runCLI(t, "remote", "-a", "http://localhost:1/sse", "-v", "1")
	assert.Error(t, err)
}
