// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides localisation for psu's user-facing strings.
// It uses the go-i18n library to load the embedded YAML translation files.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

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
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	available map[string]string
)

// Init loads every embedded locale and selects lang, falling back to English
// for messages the language does not define.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	available = map[string]string{}

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			continue
		}
		code := strings.TrimSuffix(f.Name(), ".yaml")
		tag := language.Make(code)
		available[code] = displayName(tag)
	}

	localizer = i18n.NewLocalizer(bundle, lang, language.English.String())
}

// T translates messageID. When args are given the translation is used as a
// fmt format. Unknown IDs are returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	// A message missing from the selected language comes back in English
	// together with a MessageNotFoundErr.
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil && msg == "" {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetAvailableLocales returns the embedded locale codes mapped to a display
// name.
func GetAvailableLocales() map[string]string {
	if available == nil {
		Init("en")
	}
	out := make(map[string]string, len(available))
	for k, v := range available {
		out[k] = v
	}
	return out
}

func displayName(tag language.Tag) string {
	switch base, _ := tag.Base(); base.String() {
	case "de":
		return "Deutsch"
	case "en":
		return "English"
	default:
		return tag.String()
	}
}
