package nav

import (
	"strconv"
	"strings"
)

// PagePlaceholder is the token substituted with the page number when it
// appears in Config.BaseURL.
const PagePlaceholder = "{page}"

// Resolver returns the link builder for a config: Config.LinkFunc when
// set, otherwise placeholder substitution on Config.BaseURL, otherwise a
// page query parameter appended to Config.BaseURL. It never fails; a
// template without a placeholder just degrades to the query form.
func Resolver(cfg Config) func(page int) string {
	if cfg.LinkFunc != nil {
		return cfg.LinkFunc
	}

	base := cfg.BaseURL
	if strings.Contains(base, PagePlaceholder) {
		return func(page int) string {
			return strings.ReplaceAll(base, PagePlaceholder, strconv.Itoa(page))
		}
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return func(page int) string {
		return base + sep + "page=" + strconv.Itoa(page)
	}
}
