// Package e2e fixtures build the overlay files a deployment carries: a
// lexicon overlay, a scoring weights overlay, and a config pointing at them.
package e2e

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteLexiconOverlay writes a lexicon overlay file to dir that adds one
// location (brewerville) and one category (bakery) on top of the built-ins.
// Returns the file path.
func WriteLexiconOverlay(dir string) (string, error) {
	content := `locations:
  brewerville:
    - brewersville
    - brewerville city
categories:
  bakery:
    - bread shop
    - bakeshop
`
	path := filepath.Join(dir, "lexicon.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", err
	}
	return path, nil
}

// WriteWeightsOverlay writes a scoring weights overlay to dir that boosts
// name matches above the built-in values. Returns the file path.
func WriteWeightsOverlay(dir string) (string, error) {
	content := `name_exact: 40
name_fuzzy: 20
`
	path := filepath.Join(dir, "weights.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", err
	}
	return path, nil
}

// WriteConfig writes a config file to dir wiring together the given database
// and overlay paths. Returns the file path.
func WriteConfig(dir, dbPath, lexiconPath, weightsPath string) (string, error) {
	content := fmt.Sprintf(`debug: false
server:
  host: "localhost"
storage:
  database_path: %q
search:
  weights_path: %q
lexicon:
  path: %q
  watch: false
`, dbPath, weightsPath, lexiconPath)
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", err
	}
	return path, nil
}
