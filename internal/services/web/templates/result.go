package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/cands-to-harn/internal/conversion"
)

// ResultParams carries a finished conversion.
type ResultParams struct {
	Result conversion.Result
	Seed   *int64
}

// ResultPage renders a converted character the way the results dialog
// lists it: characteristics, hearing and eyesight, the rolled extras when
// present, then veteran points.
func ResultPage(page PageContext, params ResultParams) templ.Component {
	return layout(page, T(page.Loc, "result.title"), resultBody(page, params))
}

func resultBody(page PageContext, params ResultParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		loc := page.Loc
		result := params.Result

		h := newHTML(w)
		h.raw(`<h2>`)
		h.text(T(loc, "result.heading"))
		if result.Name != "" {
			h.raw(` `)
			h.text(result.Name)
		}
		h.raw(`</h2><dl class="characteristics">`)
		for _, c := range conversion.Characteristics() {
			h.term(string(c), T(loc, "characteristic."+string(c)), conversion.FormatValue(result.Characteristics.Get(c)))
		}
		h.raw(`</dl><dl class="metadata">`)

		hearing, eyesight := result.Metadata.Hearing, result.Metadata.Eyesight
		if extras := result.Extras; extras != nil {
			hearing = strconv.Itoa(extras.Hearing) + " " + hearing
			eyesight = strconv.Itoa(extras.Eyesight) + " " + eyesight
		}
		h.term("hearing", T(loc, "result.hearing"), hearing)
		h.term("eyesight", T(loc, "result.eyesight"), eyesight)
		if extras := result.Extras; extras != nil {
			h.term("smell", T(loc, "result.smell"), strconv.Itoa(extras.Smell))
			h.term("morality", T(loc, "result.morality"), strconv.Itoa(extras.Morality))
		}
		h.term("veteran_points", T(loc, "result.veteran_points"), strconv.Itoa(result.Metadata.VeteranPoints))
		if params.Seed != nil {
			h.term("seed", T(loc, "result.seed"), strconv.FormatInt(*params.Seed, 10))
		}
		h.raw(`</dl><p><a href="/">`)
		h.text(T(loc, "result.again"))
		h.raw(`</a></p>`)
		return h.err
	})
}

func (h *htmlWriter) term(id, label, value string) {
	h.raw(`<dt>`)
	h.text(label)
	h.raw(`</dt><dd data-field="`)
	h.text(id)
	h.raw(`">`)
	h.text(value)
	h.raw(`</dd>`)
}
