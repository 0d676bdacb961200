package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
)

const (
	LangEN = "en"
	LangES = "es"
)

//go:embed locales/*.json
var localeFiles embed.FS

type Manager struct {
	defaultLanguage string
	locales         map[string]map[string]string
	supported       []string
}

func NewManager(defaultLanguage string) (*Manager, error) {
	manager := &Manager{
		locales: map[string]map[string]string{},
	}

	entries, err := localeFiles.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}

		language := strings.TrimSuffix(strings.ToLower(entry.Name()), path.Ext(entry.Name()))
		content, err := localeFiles.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", language, err)
		}

		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", language, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", language)
		}

		manager.locales[language] = messages
		manager.supported = append(manager.supported, language)
	}

	if len(manager.supported) == 0 {
		return nil, fmt.Errorf("no locales embedded")
	}
	sort.Strings(manager.supported)

	normalized := strings.ToLower(strings.TrimSpace(defaultLanguage))
	if _, ok := manager.locales[normalized]; !ok {
		normalized = LangEN
	}
	if _, ok := manager.locales[normalized]; !ok {
		normalized = manager.supported[0]
	}
	manager.defaultLanguage = normalized

	return manager, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) Supported() []string {
	supported := make([]string, len(manager.supported))
	copy(supported, manager.supported)
	return supported
}

func (manager *Manager) IsSupported(language string) bool {
	_, ok := manager.locales[strings.ToLower(strings.TrimSpace(language))]
	return ok
}

// Messages returns the message catalog for the language, falling back to the
// default language for unknown codes.
func (manager *Manager) Messages(language string) map[string]string {
	if messages, ok := manager.locales[strings.ToLower(strings.TrimSpace(language))]; ok {
		return messages
	}
	return manager.locales[manager.defaultLanguage]
}

// Translate returns the message for key, or the key itself when missing.
func Translate(messages map[string]string, key string) string {
	if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return key
}
