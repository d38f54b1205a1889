package app_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nvramgen/internal/app"
	"nvramgen/internal/services/diffing"
	"nvramgen/internal/services/dump"
	"nvramgen/internal/services/script"
	"nvramgen/internal/services/section"
	"nvramgen/internal/store"
)

func newApp(dir string, commit bool) *app.App {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return app.New(
		dump.New(log),
		diffing.New(log),
		section.New(log),
		script.New(log, script.Options{Commit: commit}),
		store.NewWorkspace(dir),
	)
}

func writeInputs(t *testing.T, dir, current, defaults string) app.Config {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, app.DefaultInput), []byte(current), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, app.DefaultBase), []byte(defaults), 0o644))
	return app.Config{
		Input:  app.DefaultInput,
		Base:   app.DefaultBase,
		Output: app.DefaultOutput,
		Commit: true,
	}
}

func readOutput(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, app.DefaultOutput))
	require.NoError(t, err)
	return string(data)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInputs(t, dir,
		"wl1_channel=132\nwl0_ssid=My Network\nwan_proto=dhcp\n",
		"wl1_channel=100\nwl0_ssid=FreshTomato24\nwan_proto=dhcp\nlan_stp=1\n",
	)

	res, err := newApp(dir, true).Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, app.DefaultOutput, res.Path)

	text := readOutput(t, dir)
	assert.Contains(t, text, "#!/bin/sh\n")
	assert.Contains(t, text, "# Wireless (2.4 GHz)\nnvram set wl0_ssid='My Network'\n")
	assert.Contains(t, text, "# Wireless (5 GHz)\nnvram set wl1_channel=132\n")
	assert.Contains(t, text, "# Save\nnvram commit\n")

	// Unchanged and defaults-only keys never appear.
	assert.NotContains(t, text, "wan_proto")
	assert.NotContains(t, text, "lan_stp")
}

func TestGenerate_IgnoredKeysExcluded(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInputs(t, dir,
		"http_id=TID123\nwan_hwaddr=00:11:22:33:44:55\nwl1_channel=132\n",
		"",
	)

	res, err := newApp(dir, true).Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)

	text := readOutput(t, dir)
	assert.NotContains(t, text, "http_id")
	assert.NotContains(t, text, "wan_hwaddr")
}

func TestGenerate_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	cfg := app.Config{Input: "nvram.txt", Base: "defaults.txt", Output: "out.sh"}

	_, err := newApp(dir, true).Generate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nvram.txt")
	assert.NoFileExists(t, filepath.Join(dir, "out.sh"))
}

func TestGenerate_IdenticalDumpsEmptyScript(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInputs(t, dir, "a=1\nb=2\n", "a=1\nb=2\n")

	res, err := newApp(dir, false).Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, "#!/bin/sh\n", readOutput(t, dir))
}

func TestGenerate_Idempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInputs(t, dir,
		"wl1_channel=132\nddnsx0=user@example.com<pass\nsshd_authkeys=ssh-rsa AAAA a@b\nssh-rsa BBBB c@d\n",
		"wl1_channel=100\n",
	)
	a := newApp(dir, true)

	_, err := a.Generate(cfg)
	require.NoError(t, err)
	first := readOutput(t, dir)

	_, err = a.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, first, readOutput(t, dir))
}

func TestRawDiff_KeepsIgnoredNames(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInputs(t, dir, "http_id=TID123\nwl1_channel=132\n", "")

	settings, err := newApp(dir, true).RawDiff(cfg)
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, "http_id", settings[0].Name)
}
