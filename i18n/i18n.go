// Package i18n translates UI strings. Message IDs are the English text, so
// an untranslated key renders as itself.
package i18n

import (
	"embed"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jeandeaual/go-locale"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// EnvLang forces the UI language.
const EnvLang = "COCTIMERS_LANG"

//go:embed locales/*.toml
var locales embed.FS

var (
	bundle    = mustLoadBundle()
	matcher   = language.NewMatcher(bundle.LanguageTags())
	lang      = "en"
	localizer = goi18n.NewLocalizer(bundle, lang)
)

func mustLoadBundle() *goi18n.Bundle {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		if _, err := b.LoadMessageFileFS(locales, "locales/"+e.Name()); err != nil {
			panic(err)
		}
	}
	return b
}

// Init selects the UI language. The EnvLang variable wins, then override
// (the settings file), then the system locale.
func Init(override string) {
	if forcedLang := strings.TrimSpace(os.Getenv(EnvLang)); forcedLang != "" {
		log.Printf("%s is set to: '%s'", EnvLang, forcedLang)
		SetLang(forcedLang)
		return
	}
	if override != "" {
		log.Printf("Language set in settings: '%s'", override)
		SetLang(override)
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		log.Println("Could not get user locale, defaulting to english")
		SetLang("en")
		return
	}
	log.Printf("Detected user locale: %s", userLocales[0])
	SetLang(userLocales...)
}

// SetLang picks the best supported language for the given preferences.
func SetLang(prefs ...string) {
	var tags []language.Tag
	for _, p := range prefs {
		if t, err := language.Parse(strings.ReplaceAll(p, "_", "-")); err == nil {
			tags = append(tags, t)
		}
	}

	supported := bundle.LanguageTags()
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		idx = 0
	}
	base, _ := supported[idx].Base()
	lang = base.String()
	localizer = goi18n.NewLocalizer(bundle, lang)
	log.Printf("Language set to: %s", lang)
}

// T translates key.
func T(key string) string {
	return Tf(key, key, nil)
}

// Tf translates the message id, rendering data into it. other is the
// English template used when no translation exists.
func Tf(id, other string, data map[string]any) string {
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: &goi18n.Message{ID: id, Other: other},
		TemplateData:   data,
	})
	if msg == "" {
		if err != nil {
			log.WithError(err).Debugf("no translation for %q", id)
		}
		return other
	}
	return msg
}

func GetLang() string {
	return lang
}
