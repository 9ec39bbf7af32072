package env

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/joho/godotenv"
)

// Parse reads dotenv-formatted KEY=VALUE lines, including "export " prefixes and quoted values.
func Parse(r io.Reader) (map[string]string, error) {
	vars, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	return vars, nil
}

// Load reads path (e.g. ".env") and sets each variable that is not already set to a non-empty value, so
// the shell environment wins over the file. Returns the keys it set, sorted. A missing file is not an error.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("env: %w", err)
	}
	defer f.Close()
	vars, err := Parse(f)
	if err != nil {
		return nil, err
	}
	var set []string
	for k, v := range vars {
		if os.Getenv(k) != "" {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return set, fmt.Errorf("env: set %s: %w", k, err)
		}
		set = append(set, k)
	}
	sort.Strings(set)
	return set, nil
}
