package environ

import (
	"os"
	"sort"
	"strings"
)

// Env maps variable names to values. Presence is significant: a key
// mapped to "" is set, a missing key is unset.
type Env map[string]string

// FromOS snapshots the current process environment.
func FromOS() Env {
	return Parse(os.Environ())
}

// Parse builds an Env from KEY=VALUE pairs. Entries without "=" are
// skipped. Later duplicates win, matching os.Getenv.
func Parse(pairs []string) Env {
	env := make(Env, len(pairs))
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Lookup reports the value of key and whether it is set.
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Get returns the value of key, or "" when unset.
func (e Env) Get(key string) string {
	return e[key]
}

// Clone returns an independent copy of e.
func (e Env) Clone() Env {
	out := make(Env, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// With returns a copy of e with key set to value.
func (e Env) With(key, value string) Env {
	out := e.Clone()
	out[key] = value
	return out
}

// WithDefault returns a copy of e with key set to value only if key is unset.
func (e Env) WithDefault(key, value string) Env {
	if _, ok := e[key]; ok {
		return e.Clone()
	}
	return e.With(key, value)
}

// MergeDefaults returns a copy of e extended with the entries of defaults
// that are unset in e. When prefixes are given, only keys starting with
// one of them are considered.
func (e Env) MergeDefaults(defaults map[string]string, prefixes ...string) Env {
	out := e.Clone()
	for k, v := range defaults {
		if !hasAnyPrefix(k, prefixes) {
			continue
		}
		if _, ok := out[k]; ok {
			continue
		}
		out[k] = v
	}
	return out
}

// Environ returns e as a sorted KEY=VALUE list suitable for exec.Cmd.Env.
func (e Env) Environ() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+e[k])
	}
	return out
}

func hasAnyPrefix(key string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}
