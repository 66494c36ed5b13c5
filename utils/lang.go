package utils

import (
	"embed"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

//go:embed locales/*.yaml
var locales embed.FS

var bundle *i18n.Bundle

func init() {
	InitI18NBundle()
}

// InitI18NBundle loads the embedded message files. Files named in `i18n.files`
// under `i18n.dir` are loaded on top of them.
func InitI18NBundle() {
	b := i18n.NewBundle(language.Spanish)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	for _, name := range []string{"es.yaml", "en.yaml"} {
		data, err := locales.ReadFile(path.Join("locales", name))
		if err != nil {
			panic(err)
		}
		b.MustParseMessageFileBytes(data, name)
	}

	if dir := viper.GetString("i18n.dir"); dir != "" {
		for _, name := range viper.GetStringSlice("i18n.files") {
			if _, err := b.LoadMessageFile(path.Join(dir, name)); err != nil {
				log.WithField("prefix", "i18n").Warnf("load message file %s with error: %s", name, err)
			}
		}
	}

	bundle = b
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}

// Localize returns the message in the requested language, falling back to
// Spanish and then to the message id.
func Localize(lang, id string, data map[string]interface{}) string {
	msg, err := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
