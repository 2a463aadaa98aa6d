// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides the translated user-facing strings of Termfolio.
// It uses the go-i18n library to load the embedded YAML locale files.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

// Init initializes the i18n bundle and sets up the localizer for a specific language.
// Unknown languages fall back to English.
func Init(l string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return fmt.Errorf("could not read embedded locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return fmt.Errorf("could not read locale %s: %w", f.Name(), err)
		}
		if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
			return fmt.Errorf("could not parse locale %s: %w", f.Name(), err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	bundle = b
	localizer = i18n.NewLocalizer(b, l)
	lang = l
	return nil
}

// T translates a message by its ID. If the i18n system has not been
// initialized, it will default to English. If a translation for the given ID
// is not found, it returns the ID itself. Extra args are applied with
// fmt.Sprintf to the translated text.
func T(messageID string, args ...any) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()
	if l == nil {
		if err := Init("en"); err != nil {
			return messageID
		}
		mu.RLock()
		l = localizer
		mu.RUnlock()
	}

	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Lang returns the language passed to the last Init call.
func Lang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// Languages lists the language tags that have an embedded locale file.
func Languages() []string {
	files, _ := fs.ReadDir(localeFS, "locales")
	var langs []string
	for _, f := range files {
		if name, ok := strings.CutSuffix(f.Name(), ".yaml"); ok {
			langs = append(langs, name)
		}
	}
	sort.Strings(langs)
	return langs
}

// messageIDs returns the message IDs defined by a locale file.
func messageIDs(l string) (map[string]struct{}, error) {
	data, err := localeFS.ReadFile("locales/" + l + ".yaml")
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(raw))
	for id := range raw {
		ids[id] = struct{}{}
	}
	return ids, nil
}
