// Package i18n loads the embedded message catalogs and hands out
// locale-aware printers.
package i18n

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale; every other locale falls back to it.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds every loaded locale and the catalog built from them.
type Bundle struct {
	messages map[string]map[string]string
	tags     []language.Tag
	names    []string
	matcher  language.Matcher
	builder  *catalog.Builder
}

// Load reads the catalogs embedded in the binary.
func Load() (*Bundle, error) {
	return LoadFS(embeddedFS)
}

// LoadFS reads locales/<locale>/<namespace>.yaml files from fsys.
func LoadFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{messages: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.addFile(p, file); err != nil {
			return nil, err
		}
	}
	if _, ok := b.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := b.build(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if namespace != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, namespace, namespaceFromPath)
	}
	if file.Messages == nil {
		return fmt.Errorf("catalog %s: messages map is required", p)
	}

	msgs, ok := b.messages[locale]
	if !ok {
		msgs = map[string]string{}
		b.messages[locale] = msgs
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, dup := msgs[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		msgs[key] = value
	}
	return nil
}

// build registers every locale with a private catalog. Keys missing from a
// locale are filled in from the base locale.
func (b *Bundle) build() error {
	names := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		if locale != BaseLocale {
			names = append(names, locale)
		}
	}
	sort.Strings(names)
	names = append([]string{BaseLocale}, names...)

	base := b.messages[BaseLocale]
	builder := catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	tags := make([]language.Tag, 0, len(names))
	for _, locale := range names {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags = append(tags, tag)

		msgs := b.messages[locale]
		keys := make([]string, 0, len(base)+len(msgs))
		for key := range base {
			keys = append(keys, key)
		}
		for key := range msgs {
			if _, ok := base[key]; !ok {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			value, ok := msgs[key]
			if !ok {
				value = base[key]
			}
			if err := builder.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}

	b.names = names
	b.tags = tags
	b.matcher = language.NewMatcher(tags)
	b.builder = builder
	return nil
}

// Locales returns the available locales, base locale first.
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Match returns the supported locale closest to the requested one. Blank or
// unparseable requests resolve to the base locale.
func (b *Bundle) Match(locale string) string {
	requested, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return BaseLocale
	}
	_, idx, conf := b.matcher.Match(requested)
	if conf == language.No {
		return BaseLocale
	}
	return b.names[idx]
}

// Printer returns a printer for the best match of locale.
func (b *Bundle) Printer(locale string) *message.Printer {
	tag := language.MustParse(b.Match(locale))
	return message.NewPrinter(tag, message.Catalog(b.builder))
}

// Message returns the raw message for key with base-locale fallback.
func (b *Bundle) Message(locale, key string) (string, bool) {
	key = strings.TrimSpace(key)
	if msgs, ok := b.messages[b.Match(locale)]; ok {
		if value, ok := msgs[key]; ok {
			return value, true
		}
	}
	value, ok := b.messages[BaseLocale][key]
	return value, ok
}
