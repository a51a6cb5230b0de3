package delegate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLookPath(found map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if p, ok := found[name]; ok {
			return p, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name       string
		bin        string
		found      map[string]string
		wantPath   string
		wantPrefix []string
		wantErr    bool
	}{
		{
			name:     "default on PATH",
			found:    map[string]string{"lattis": "/usr/bin/lattis", "python3": "/usr/bin/python3"},
			wantPath: "/usr/bin/lattis",
		},
		{
			name:       "python fallback",
			found:      map[string]string{"python3": "/usr/bin/python3"},
			wantPath:   "/usr/bin/python3",
			wantPrefix: []string{"-c", pythonShim},
		},
		{
			name:       "python2-era name",
			found:      map[string]string{"python": "/usr/bin/python"},
			wantPath:   "/usr/bin/python",
			wantPrefix: []string{"-c", pythonShim},
		},
		{
			name:    "nothing found",
			found:   map[string]string{},
			wantErr: true,
		},
		{
			name:     "explicit override",
			bin:      "/opt/lattis",
			found:    map[string]string{"/opt/lattis": "/opt/lattis"},
			wantPath: "/opt/lattis",
		},
		{
			name:    "explicit override has no fallback",
			bin:     "custom-lattis",
			found:   map[string]string{"lattis": "/usr/bin/lattis", "python3": "/usr/bin/python3"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(tt.bin, fakeLookPath(tt.found))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, got.Path)
			assert.Equal(t, tt.wantPrefix, got.Prefix)
		})
	}
}

func TestCommandArgv(t *testing.T) {
	c := Command{Path: "/usr/bin/python3", Prefix: []string{"-c", "x"}}
	prefix := c.Prefix
	assert.Equal(t, []string{"-c", "x", "run", "--workspace=central"}, c.Argv([]string{"run", "--workspace=central"}))
	assert.Equal(t, []string{"-c", "x"}, prefix, "prefix must not be modified")
	assert.Equal(t, []string{}, Command{}.Argv(nil))
}
