package env

import (
	"bufio"
	"os"
	"strings"
)

// Env var names the viewer honors as overrides for the corresponding prefs.
const (
	AssetDirVar     = "CREATURE_ASSET_DIR"
	ModelPackURLVar = "CREATURE_MODEL_PACK_URL"
)

// Load reads the given file (e.g. ".env") and sets an environment variable for
// each KEY=VALUE line. Empty lines and # comments are skipped; surrounding
// quotes on values are stripped. A missing file is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if ok {
			_ = os.Setenv(key, value)
		}
	}
	return scanner.Err()
}

// parseLine splits one .env line into key and value. Reports false for blank
// lines, comments, and lines without a key.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}

// Get returns the environment variable key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
