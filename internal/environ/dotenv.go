package environ

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DotenvFile is the file name looked up in the project directory.
const DotenvFile = ".env"

// LoadDotenv merges variables from the dotenv file at path into a copy of
// e. Process variables always win over file entries, and only keys
// matching prefixes (all keys when none are given) are merged. A missing
// file is not an error.
func (e Env) LoadDotenv(path string, prefixes ...string) (Env, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return e.Clone(), nil
		}
		return e.Clone(), fmt.Errorf("reading %s: %w", path, err)
	}
	return e.MergeDefaults(values, prefixes...), nil
}
