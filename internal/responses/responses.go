// Package responses manages the canned response sets the support bot draws
// from. Sets are loaded from JSON files named by language code (e.g.
// "en.json", each holding an array of strings); a built-in default set is
// always available as a fallback.
package responses

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Default is the built-in supportive response set.
var Default = []string{
	"I understand your concern. Let me help you with that.",
	"That's a valid question. Here's what I can tell you...",
	"I'm here to support you. Can you tell me more about this?",
	"Thank you for reaching out. Let me provide some guidance...",
	"I appreciate you sharing this with me. Here's my advice...",
}

// Library holds the loaded response sets keyed by language code. Sets are
// read-only after NewLibrary, so lookups need no locking.
type Library struct {
	sets map[string][]string
}

// NewLibrary loads all response set files from the given directory. An
// empty path yields a library that only serves the default set.
func NewLibrary(path string) (*Library, error) {
	l := &Library{sets: make(map[string][]string)}
	if path == "" {
		return l, nil
	}

	files, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		lang := strings.TrimSuffix(file.Name(), ".json")
		data, err := os.ReadFile(filepath.Join(path, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read responses file %s: %w", file.Name(), err)
		}

		var set []string
		if err := json.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse responses file %s: %w", file.Name(), err)
		}
		if len(set) == 0 {
			continue
		}
		l.sets[lang] = set
	}

	return l, nil
}

// Set returns the response set for a language, falling back to "en" and
// then to the built-in defaults.
func (l *Library) Set(lang string) []string {
	if set, ok := l.sets[lang]; ok {
		return set
	}
	if lang != "en" {
		if set, ok := l.sets["en"]; ok {
			return set
		}
	}
	return Default
}
