package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/cands-to-harn/internal/services/shared/i18nhttp"
	"golang.org/x/text/language"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	CurrentPath string
}

// languageOptions returns the language switcher entries for page.
func languageOptions(page PageContext) []i18nhttp.LanguageOption {
	return i18nhttp.BuildLanguageOptions(page.CurrentPath, page.Lang, func(tag language.Tag) string {
		return T(page.Loc, i18nhttp.LanguageKeyLabel(tag))
	})
}

// layout wraps body in the page shell.
func layout(page PageContext, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.raw(`<!DOCTYPE html><html lang="`)
		h.text(page.Lang)
		h.raw(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title></head><body><header><h1>`)
		h.text(T(page.Loc, "app.title"))
		h.raw(`</h1><nav aria-label="`)
		h.text(T(page.Loc, "lang.label"))
		h.raw(`"><ul>`)
		for _, option := range languageOptions(page) {
			h.raw(`<li><a href="`)
			h.text(option.URL)
			h.raw(`" hreflang="`)
			h.text(option.Tag)
			h.raw(`"`)
			if option.Active {
				h.raw(` aria-current="true"`)
			}
			h.raw(`>`)
			h.text(option.Label)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></nav></header><main>`)
		if h.err != nil {
			return h.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main></body></html>`)
		return h.err
	})
}
