package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/eve-ui-reader/internal/uiparse"
)

const yamlConfig = `
keys:
  ctl: LCONTROL
  Maj: "0xA0"
maneuvers:
  - pattern: Warpantrieb
    type: warp
moduleRowThreshold: 30
logLevel: debug
`

const tomlConfig = `
moduleRowThreshold = 25
replaceManeuvers = true

[keys]
ctl = "LCONTROL"

[[maneuvers]]
pattern = "Orbitieren"
type = "orbit"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	f, err := Load(writeFile(t, "eve.yaml", yamlConfig))
	require.NoError(t, err)
	assert.Equal(t, "debug", f.LogLevel)
	require.NotNil(t, f.ModuleRowThreshold)
	assert.Equal(t, 30, *f.ModuleRowThreshold)

	cfg, err := f.Apply(uiparse.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.ModuleRowThreshold)
	assert.Equal(t, uiparse.VKLControl, cfg.KeyCodes["CTL"])
	assert.Equal(t, uiparse.VKLShift, cfg.KeyCodes["MAJ"])
	assert.Equal(t, uiparse.VKLControl, cfg.KeyCodes["STRG"], "built-in labels are kept")

	require.NotEmpty(t, cfg.ManeuverPatterns)
	assert.Equal(t, uiparse.ManeuverPattern{Pattern: "Warpantrieb", Type: uiparse.ManeuverWarp}, cfg.ManeuverPatterns[0])
	assert.Len(t, cfg.ManeuverPatterns, len(uiparse.DefaultConfig().ManeuverPatterns)+1)
}

func TestLoad_TOML(t *testing.T) {
	f, err := Load(writeFile(t, "eve.toml", tomlConfig))
	require.NoError(t, err)

	cfg, err := f.Apply(uiparse.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.ModuleRowThreshold)
	assert.Equal(t, []uiparse.ManeuverPattern{{Pattern: "Orbitieren", Type: uiparse.ManeuverOrbit}}, cfg.ManeuverPatterns)
	assert.Equal(t, uiparse.VKLControl, cfg.KeyCodes["CTL"])
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "eve.json", "{}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "eve.yaml", "moduleRowTreshold: 3\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = Load(writeFile(t, "eve.toml", "bogus = 1\n"))
	assert.Error(t, err)
}

func TestParse_EmptyYAML(t *testing.T) {
	f, err := Parse(nil, "yaml")
	require.NoError(t, err)

	cfg, err := f.Apply(uiparse.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, uiparse.DefaultConfig(), cfg)
}

func TestApply_Validation(t *testing.T) {
	negative := -1
	tests := []struct {
		name string
		file File
	}{
		{"unknown key", File{Keys: map[string]string{"CMD": "COMMAND"}}},
		{"empty label", File{Keys: map[string]string{" ": "F1"}}},
		{"empty pattern", File{Maneuvers: []Maneuver{{Pattern: "", Type: "warp"}}}},
		{"unknown maneuver", File{Maneuvers: []Maneuver{{Pattern: "Dock", Type: "dock"}}}},
		{"negative threshold", File{ModuleRowThreshold: &negative}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Apply(uiparse.DefaultConfig())
			assert.Error(t, err)
		})
	}
}

func TestApply_ReplaceKeysDoesNotTouchBase(t *testing.T) {
	base := uiparse.DefaultConfig()
	f := File{ReplaceKeys: true, Keys: map[string]string{"ctl": "LCONTROL"}}

	cfg, err := f.Apply(base)
	require.NoError(t, err)
	assert.Equal(t, map[string]uiparse.KeyCode{"CTL": uiparse.VKLControl}, cfg.KeyCodes)
	assert.Contains(t, base.KeyCodes, "CTRL")
	assert.NotContains(t, base.KeyCodes, "CTL")
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, f, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, uiparse.DefaultConfig(), cfg)
	assert.Equal(t, &File{}, f)

	t.Setenv(EnvPath, writeFile(t, "env.yaml", "moduleRowThreshold: 7\n"))
	cfg, _, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.ModuleRowThreshold)

	cfg, _, err = Resolve(writeFile(t, "flag.toml", "moduleRowThreshold = 9\n"))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.ModuleRowThreshold, "an explicit path wins over the environment")

	_, _, err = Resolve(writeFile(t, "bad.yaml", "keys:\n  X: nope\n"))
	assert.Error(t, err)
}
