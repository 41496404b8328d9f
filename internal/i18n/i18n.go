// Package i18n serves the storefront's UI labels in the four supported
// languages from embedded message files.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/mhanac/storefront-backend/pkg/enums"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed labels/*.json
var labelFiles embed.FS

// Translator localizes message ids, falling back English then to the raw id
// so a missing translation never blanks the UI.
type Translator struct {
	bundle     *goi18n.Bundle
	localizers map[enums.Language]*goi18n.Localizer
}

func New() (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	localizers := make(map[enums.Language]*goi18n.Localizer, len(enums.Languages()))
	for _, lang := range enums.Languages() {
		if _, err := bundle.LoadMessageFileFS(labelFiles, fmt.Sprintf("labels/%s.json", lang)); err != nil {
			return nil, fmt.Errorf("load %s labels: %w", lang, err)
		}
	}
	for _, lang := range enums.Languages() {
		localizers[lang] = goi18n.NewLocalizer(bundle, lang.String(), enums.LanguageEN.String())
	}

	return &Translator{bundle: bundle, localizers: localizers}, nil
}

// T translates a message id for a language.
func (t *Translator) T(lang enums.Language, messageID string) string {
	localizer, ok := t.localizers[lang]
	if !ok {
		localizer = t.localizers[enums.LanguageEN]
	}
	out, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:      messageID,
		DefaultMessage: &goi18n.Message{ID: messageID, Other: messageID},
	})
	if err != nil {
		return messageID
	}
	return out
}

// CategoryLabel returns the display label for a category key. A key with no
// message in any language falls back to the raw key string.
func (t *Translator) CategoryLabel(lang enums.Language, key enums.CategoryKey) string {
	id := "category." + key.String()
	if out := t.T(lang, id); out != id {
		return out
	}
	return key.String()
}
