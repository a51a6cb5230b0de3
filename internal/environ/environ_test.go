package environ

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	env := Parse([]string{"A=1", "B=", "C=x=y", "broken", "=nokey", "A=2"})

	assert.Equal(t, Env{"A": "2", "B": "", "C": "x=y"}, env)

	v, ok := env.Lookup("B")
	assert.True(t, ok, "empty value is still set")
	assert.Equal(t, "", v)

	_, ok = env.Lookup("missing")
	assert.False(t, ok)
}

func TestFromOS(t *testing.T) {
	t.Setenv("BINSMITH_ENVIRON_TEST", "present")
	env := FromOS()
	assert.Equal(t, "present", env.Get("BINSMITH_ENVIRON_TEST"))
}

func TestWith_doesNotMutate(t *testing.T) {
	base := Env{"A": "1"}
	next := base.With("B", "2")

	assert.Equal(t, Env{"A": "1"}, base)
	assert.Equal(t, Env{"A": "1", "B": "2"}, next)
}

func TestWithDefault(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want string
	}{
		{"unset", Env{}, "binsmith"},
		{"set", Env{"AGENT_DEFAULT": "other"}, "other"},
		{"set empty", Env{"AGENT_DEFAULT": ""}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.env.WithDefault("AGENT_DEFAULT", "binsmith")
			v, ok := got.Lookup("AGENT_DEFAULT")
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestMergeDefaults_prefixes(t *testing.T) {
	base := Env{"LATTIS_DATA_DIR": "/keep"}
	got := base.MergeDefaults(map[string]string{
		"LATTIS_DATA_DIR":       "/ignored",
		"LATTIS_WORKSPACE_MODE": "central",
		"AWS_SECRET":            "nope",
	}, "LATTIS_")

	assert.Equal(t, Env{"LATTIS_DATA_DIR": "/keep", "LATTIS_WORKSPACE_MODE": "central"}, got)
	assert.Equal(t, Env{"LATTIS_DATA_DIR": "/keep"}, base)
}

func TestEnviron_sorted(t *testing.T) {
	env := Env{"B": "2", "A": "1", "C": ""}
	assert.Equal(t, []string{"A=1", "B=2", "C="}, env.Environ())
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DotenvFile)
	data := []byte("LATTIS_WORKSPACE_MODE=central\nLATTIS_PROJECT_ROOT=/from/file\nOTHER=skip\n")
	require.NoError(t, os.WriteFile(path, data, 0600))

	base := Env{"LATTIS_PROJECT_ROOT": "/from/process"}
	got, err := base.LoadDotenv(path, "LATTIS_")
	require.NoError(t, err)

	assert.Equal(t, "central", got.Get("LATTIS_WORKSPACE_MODE"))
	assert.Equal(t, "/from/process", got.Get("LATTIS_PROJECT_ROOT"))
	_, ok := got.Lookup("OTHER")
	assert.False(t, ok)
}

func TestLoadDotenv_missingFile(t *testing.T) {
	base := Env{"A": "1"}
	got, err := base.LoadDotenv(filepath.Join(t.TempDir(), DotenvFile))
	require.NoError(t, err)
	assert.Equal(t, base, got)
}
