package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDefaultsAndFiles decodes defaultsYAML and overlays every YAML file in files on top of
// it, in sorted order. Keys missing from a file keep their previous value.
func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Settings, error) {
	var merged Settings
	if len(defaultsYAML) > 0 {
		part, err := decodeOverlay(defaultsYAML)
		if err != nil {
			return Settings{}, fmt.Errorf("defaults: %w", err)
		}
		merged = mergeSettings(merged, part)
	}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Settings{}, err
		}
		part, err := decodeOverlay(b)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", f, err)
		}
		merged = mergeSettings(merged, part)
	}
	return merged, nil
}

func decodeOverlay(b []byte) (settingsOverlay, error) {
	var part settingsOverlay
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&part); err != nil && !errors.Is(err, io.EOF) {
		return settingsOverlay{}, err
	}
	return part, nil
}

func mergeSettings(base Settings, overlay settingsOverlay) Settings {
	out := base
	if overlay.Verbose != nil {
		out.Verbose = *overlay.Verbose
	}
	if overlay.LogFile != nil {
		out.LogFile = *overlay.LogFile
	}
	return out
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}
