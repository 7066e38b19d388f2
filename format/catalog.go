package format

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message ids shared by the renderers
const (
	MsgTimestampLayout = "TimestampLayout"
	MsgInvalidDate     = "InvalidDate"
	MsgNoArticles      = "NoArticles"
	MsgLoadError       = "LoadError"
	MsgReadMore        = "ReadMore"
	MsgBack            = "Back"
	MsgLastUpdate      = "LastUpdate"
	MsgLoading         = "Loading"
	MsgHelpGrid        = "HelpGrid"
	MsgHelpDetail      = "HelpDetail"
)

// Catalog resolves UI text for one fixed locale
type Catalog struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewCatalog loads the embedded message files and binds them to locale.
// Unknown locales fall back to Spanish, the default display language.
func NewCatalog(locale string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.Spanish)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}
	for _, e := range entries {
		p := path.Join("locales", e.Name())
		buf, err := fs.ReadFile(localeFS, p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", p, err)
		}
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	supported := bundle.LanguageTags()
	_, idx, confidence := language.NewMatcher(supported).Match(tag)
	matched := language.Spanish
	if confidence != language.No {
		matched = supported[idx]
	}

	return &Catalog{
		tag:       matched,
		localizer: i18n.NewLocalizer(bundle, matched.String()),
	}, nil
}

// Tag is the locale the catalog resolved to
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// Text returns the message for id, or id itself when it is missing
func (c *Catalog) Text(id string) string {
	return c.Template(id, nil)
}

// Template renders the message id with data
func (c *Catalog) Template(id string, data map[string]any) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || s == "" {
		return id
	}
	return s
}
