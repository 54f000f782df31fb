package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/penmap"
	"github.com/lukeod/penmap/internal/cli"
)

func noEnv(string) (string, bool) { return "", false }

func writeMapping(t *testing.T, f penmap.Format) string {
	t.Helper()
	m := penmap.NewMapping(2)
	m.Set(".1.3.6.1.4.1.9", "ciscoSystems")
	m.Set(".1.3.6.1.4.1.2636", "Juniper Networks, Inc.")

	path := filepath.Join(t.TempDir(), "pen_map"+f.Ext())
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, penmap.Encode(file, m, f))
	require.NoError(t, file.Close())
	return path
}

func TestRun_Args(t *testing.T) {
	path := writeMapping(t, penmap.FormatJSON)

	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-m", path, ".1.3.6.1.4.1.9.1.516", "SNMPv2-SMI::enterprises.2636.1.1.1.2.29"},
		strings.NewReader(""), &stdout, &bytes.Buffer{}, noEnv)
	require.NoError(t, err)
	assert.Equal(t,
		".1.3.6.1.4.1.9.1.516\tciscoSystems\n"+
			"SNMPv2-SMI::enterprises.2636.1.1.1.2.29\tJuniper Networks, Inc.\n",
		stdout.String())
}

func TestRun_Stdin(t *testing.T) {
	for _, f := range []penmap.Format{penmap.FormatJSON, penmap.FormatYAML, penmap.FormatProto} {
		t.Run(f.String(), func(t *testing.T) {
			path := writeMapping(t, f)
			stdin := strings.NewReader("1.3.6.1.4.1.9.12.3.1.3.1\n\n.1.3.6.1.4.1.2636\n")

			var stdout bytes.Buffer
			err := run(context.Background(), []string{"-m", path}, stdin, &stdout, &bytes.Buffer{}, noEnv)
			require.NoError(t, err)
			assert.Equal(t,
				"1.3.6.1.4.1.9.12.3.1.3.1\tciscoSystems\n"+
					".1.3.6.1.4.1.2636\tJuniper Networks, Inc.\n",
				stdout.String())
		})
	}
}

func TestRun_Unresolved(t *testing.T) {
	path := writeMapping(t, penmap.FormatJSON)

	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-m", path, ".1.3.6.1.4.1.99999", ".1.3.6.1.4.1.9"},
		strings.NewReader(""), &stdout, &bytes.Buffer{}, noEnv)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitFailure, exitErr.Code)
	assert.Empty(t, exitErr.Message)
	assert.Equal(t, ".1.3.6.1.4.1.99999\t\n.1.3.6.1.4.1.9\tciscoSystems\n", stdout.String())
}

func TestRun_ZenHomeMapping(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, "share", "iana")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pen_map.json"), []byte(`{".1.3.6.1.4.1.11": "Hewlett-Packard"}`), 0o600))

	lookupEnv := func(key string) (string, bool) {
		if key == cli.ZenHomeEnv {
			return home, true
		}
		return "", false
	}

	var stdout bytes.Buffer
	err := run(context.Background(), []string{".1.3.6.1.4.1.11.2.3.9.1"}, strings.NewReader(""), &stdout, &bytes.Buffer{}, lookupEnv)
	require.NoError(t, err)
	assert.Equal(t, ".1.3.6.1.4.1.11.2.3.9.1\tHewlett-Packard\n", stdout.String())
}

func TestRun_MissingMapping(t *testing.T) {
	err := run(context.Background(), []string{"-m", filepath.Join(t.TempDir(), "nope.json"), ".1.3"},
		strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, noEnv)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitFailure, exitErr.Code)
	assert.Contains(t, exitErr.Message, "opening mapping")
}

func TestRun_InvalidMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pen_map.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2]`), 0o600))

	err := run(context.Background(), []string{"-m", path, ".1.3"},
		strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mapping document")
}
