// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files for missing or orphaned translation
// keys. It scans the Go sources for message IDs and compares them against
// the YAML locales, using the English locale as the source of truth.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// Report is the outcome of one lint run.
type Report struct {
	Used     int
	Orphaned []string            // in the primary locale, never referenced
	Missing  map[string][]string // locale file -> keys of the primary locale it lacks
}

func (r Report) Failed() bool {
	return len(r.Missing) > 0
}

func main() {
	report, err := lint(projectRoot, filepath.Join(projectRoot, localesDir))
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, report)
	if report.Failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (Report, error) {
	report := Report{Missing: map[string][]string{}}

	usedKeys, err := findUsedKeys(root)
	if err != nil {
		return report, fmt.Errorf("error finding used keys: %w", err)
	}
	report.Used = len(usedKeys)

	primaryKeys, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return report, fmt.Errorf("error loading primary locale '%s': %w", primaryLocale, err)
	}
	for key := range primaryKeys {
		if _, exists := usedKeys[key]; !exists {
			report.Orphaned = append(report.Orphaned, key)
		}
	}
	sort.Strings(report.Orphaned)

	localeFiles, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report, fmt.Errorf("error finding locale files: %w", err)
	}
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		secondaryKeys, err := loadKeysFromLocale(file)
		if err != nil {
			return report, fmt.Errorf("error loading %s: %w", file, err)
		}
		var missing []string
		for key := range primaryKeys {
			if _, exists := secondaryKeys[key]; !exists {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			report.Missing[filepath.Base(file)] = missing
		}
	}
	return report, nil
}

func printReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "✅ Found %d unique translation keys used in source code.\n\n", r.Used)

	fmt.Fprintln(w, "--- Orphaned Keys (in primary locale but not used in code) ---")
	if len(r.Orphaned) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
	}
	for _, key := range r.Orphaned {
		fmt.Fprintf(w, "  - Orphaned: %s\n", key)
	}

	fmt.Fprintln(w, "\n--- Missing Keys (in primary locale but not in others) ---")
	if len(r.Missing) == 0 {
		fmt.Fprintln(w, "  ✨ All keys present.")
	}
	files := make([]string, 0, len(r.Missing))
	for file := range r.Missing {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		for _, key := range r.Missing[file] {
			fmt.Fprintf(w, "  - Missing in %s: %s\n", file, key)
		}
	}
}

// keyPattern matches i18n.T("some.key") calls and bare literals shaped like
// message IDs, as used in segment tables.
var keyPattern = regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z]+\.[a-z\._]+)"`)

// findUsedKeys scans all non-test .go files below root, skipping tools.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && (info.Name() == "tools" || info.Name() == "_examples") {
			return filepath.SkipDir
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range keyPattern.FindAllStringSubmatch(string(content), -1) {
			if match[1] != "" {
				keys[match[1]] = struct{}{}
			} else if match[2] != "" {
				keys[match[2]] = struct{}{}
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into a flat map with dot-separated keys.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	case []interface{}:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
