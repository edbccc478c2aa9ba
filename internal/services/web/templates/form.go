package templates

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"
	"github.com/louisbranch/cands-to-harn/internal/conversion"
	"github.com/louisbranch/cands-to-harn/internal/options"
)

// FormParams configures the conversion form.
type FormParams struct {
	Options options.Set
	// Values are the previously submitted fields, if any.
	Values url.Values
	// Error is a localized message shown above the form.
	Error string
}

type choice struct {
	value string
	label string
}

// FormPage renders the conversion form.
func FormPage(page PageContext, params FormParams) templ.Component {
	return layout(page, T(page.Loc, "form.title"), formBody(page, params))
}

func formBody(page PageContext, params FormParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		loc := page.Loc
		values := params.Values
		if values == nil {
			values = url.Values{}
		}

		h := newHTML(w)
		h.raw(`<h2>`)
		h.text(T(loc, "form.title"))
		h.raw(`</h2>`)
		if params.Error != "" {
			h.raw(`<p role="alert" class="error"><strong>`)
			h.text(T(loc, "form.error"))
			h.raw(`</strong>: `)
			h.text(params.Error)
			h.raw(`</p>`)
		}
		h.raw(`<form method="post" action="/convert">`)

		h.input(conversion.FieldName, T(loc, "form.name"), "text", values.Get(conversion.FieldName), false)
		h.selectField(conversion.FieldBackground, T(loc, "form.background"), values.Get(conversion.FieldBackground), []choice{
			{value: conversion.BackgroundCommon, label: T(loc, "form.background.poor")},
			{value: conversion.BackgroundWellOff, label: T(loc, "form.background.well")},
		})
		h.input(conversion.FieldLevel, T(loc, "form.level"), "number", values.Get(conversion.FieldLevel), true)

		h.raw(`<fieldset><legend>`)
		h.text(T(loc, "form.abilities"))
		h.raw(`</legend>`)
		for _, ability := range conversion.SourceAbilities() {
			name := string(ability)
			h.input(name, T(loc, "ability."+name), "number", values.Get(name), true)
		}
		h.raw(`</fieldset>`)

		h.selectField(conversion.FieldHearing, T(loc, "form.hearing"), values.Get(conversion.FieldHearing), descriptorChoices(params.Options.Hearing))
		h.selectField(conversion.FieldEyesight, T(loc, "form.eyesight"), values.Get(conversion.FieldEyesight), descriptorChoices(params.Options.Eyesight))
		h.selectField(conversion.FieldGrowth, T(loc, "form.growth"), values.Get(conversion.FieldGrowth), []choice{
			{value: string(conversion.GrowthNone), label: T(loc, "form.growth.none")},
			{value: string(conversion.GrowthAdd), label: T(loc, "form.growth.add")},
			{value: string(conversion.GrowthRoll), label: T(loc, "form.growth.roll")},
		})
		h.checkbox(conversion.FieldAuraBonus, T(loc, "form.aura_bonus"), values.Get(conversion.FieldAuraBonus))
		h.checkbox(conversion.FieldRollExtras, T(loc, "form.roll_extras"), values.Get(conversion.FieldRollExtras))
		h.input("seed", T(loc, "form.seed"), "number", values.Get("seed"), false)

		h.raw(`<button type="submit">`)
		h.text(T(loc, "form.submit"))
		h.raw(`</button></form>`)
		return h.err
	})
}

func descriptorChoices(list []options.Descriptor) []choice {
	out := make([]choice, 0, len(list))
	for _, d := range list {
		out = append(out, choice{value: d.Value, label: d.Name})
	}
	return out
}

func (h *htmlWriter) label(name, label string) {
	h.raw(`<label for="`)
	h.text(name)
	h.raw(`">`)
	h.text(label)
	h.raw(`</label>`)
}

func (h *htmlWriter) input(name, label, kind, value string, required bool) {
	h.raw(`<p>`)
	h.label(name, label)
	h.raw(`<input id="`)
	h.text(name)
	h.raw(`" name="`)
	h.text(name)
	h.raw(`" type="`)
	h.text(kind)
	h.raw(`" value="`)
	h.text(value)
	h.raw(`"`)
	if kind == "number" {
		h.raw(` step="any"`)
	}
	if required {
		h.raw(` required`)
	}
	h.raw(`></p>`)
}

func (h *htmlWriter) selectField(name, label, selected string, choices []choice) {
	h.raw(`<p>`)
	h.label(name, label)
	h.raw(`<select id="`)
	h.text(name)
	h.raw(`" name="`)
	h.text(name)
	h.raw(`">`)
	for _, c := range choices {
		h.raw(`<option value="`)
		h.text(c.value)
		h.raw(`"`)
		if c.value == selected {
			h.raw(` selected`)
		}
		h.raw(`>`)
		h.text(c.label)
		h.raw(`</option>`)
	}
	h.raw(`</select></p>`)
}

func (h *htmlWriter) checkbox(name, label, current string) {
	h.raw(`<p><input id="`)
	h.text(name)
	h.raw(`" name="`)
	h.text(name)
	h.raw(`" type="checkbox" value="true"`)
	if current == "true" || current == "on" || current == "1" {
		h.raw(` checked`)
	}
	h.raw(`>`)
	h.label(name, label)
	h.raw(`</p>`)
}
