package web

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/louisbranch/cands-to-harn/internal/conversion"
	"github.com/louisbranch/cands-to-harn/internal/options"
	apperrors "github.com/louisbranch/cands-to-harn/internal/platform/errors"
	errori18n "github.com/louisbranch/cands-to-harn/internal/platform/errors/i18n"
	"github.com/louisbranch/cands-to-harn/internal/random"
	"github.com/louisbranch/cands-to-harn/internal/services/shared/converter"
	"github.com/louisbranch/cands-to-harn/internal/services/shared/i18nhttp"
	webtemplates "github.com/louisbranch/cands-to-harn/internal/services/web/templates"
	"golang.org/x/text/message"
)

// maxBodyBytes caps form and JSON request bodies.
const maxBodyBytes = 64 << 10

type handler struct {
	converter *converter.Service
}

// localizer resolves the request locale, optionally persists a cookie,
// and returns a message printer with the resolved language tag string.
func localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, setCookie := i18nhttp.ResolveTag(r)
	if setCookie {
		i18nhttp.SetLanguageCookie(w, tag)
	}
	return i18nhttp.Printer(tag), tag.String()
}

// localizeError renders err in lang.
func localizeError(err error, lang string) string {
	return apperrors.Localize(err, errori18n.GetCatalog(lang).Format)
}

func (h *handler) page(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	printer, lang := localizer(w, r)
	return webtemplates.PageContext{Lang: lang, Loc: printer, CurrentPath: r.URL.Path}
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	page := h.page(w, r)
	templ.Handler(webtemplates.FormPage(page, webtemplates.FormParams{
		Options: h.converter.Options(),
	})).ServeHTTP(w, r)
}

func (h *handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	page := h.page(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	outcome, err := h.convertForm(r, r.PostForm)
	if err != nil {
		status := apperrors.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Printf("convert form: %v", err)
		}
		templ.Handler(webtemplates.FormPage(page, webtemplates.FormParams{
			Options: h.converter.Options(),
			Values:  r.PostForm,
			Error:   localizeError(err, page.Lang),
		}), templ.WithStatus(status)).ServeHTTP(w, r)
		return
	}
	templ.Handler(webtemplates.ResultPage(page, webtemplates.ResultParams{
		Result: outcome.Result,
		Seed:   outcome.Seed,
	})).ServeHTTP(w, r)
}

func (h *handler) convertForm(r *http.Request, form url.Values) (converter.Outcome, error) {
	src, err := conversion.ParseForm(form)
	if err != nil {
		return converter.Outcome{}, err
	}
	seed, err := random.ParseSeed(form.Get("seed"))
	if err != nil {
		return converter.Outcome{}, apperrors.WrapWithMetadata(apperrors.CodeMalformedInput, "seed is not a whole number",
			map[string]string{"Field": "seed", "Value": form.Get("seed")}, err)
	}
	return h.converter.Convert(r.Context(), src, seed)
}

// optionsResponse is the body of GET /api/options.
type optionsResponse struct {
	Eyesight []options.Descriptor `json:"eyesight"`
	Hearing  []options.Descriptor `json:"hearing"`
}

func (h *handler) handleAPIOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	set := h.converter.Options()
	writeJSON(w, http.StatusOK, optionsResponse{Eyesight: set.Eyesight, Hearing: set.Hearing})
}

// convertRequest is the body of POST /api/convert.
type convertRequest struct {
	Character conversion.SourceCharacter `json:"character"`
	Seed      *int64                     `json:"seed,omitempty"`
}

// convertResponse is the body of a successful POST /api/convert.
type convertResponse struct {
	Result conversion.Result `json:"result"`
	Seed   *int64            `json:"seed,omitempty"`
}

type errorBody struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (h *handler) handleAPIConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	_, lang := localizer(w, r)

	var req convertRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, lang, apperrors.WrapWithMetadata(apperrors.CodeMalformedInput, "decode request",
			map[string]string{"Field": "body"}, err))
		return
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, lang, apperrors.WithMetadata(apperrors.CodeMalformedInput, "request body has trailing data",
			map[string]string{"Field": "body"}))
		return
	}

	outcome, err := h.converter.Convert(r.Context(), req.Character, req.Seed)
	if err != nil {
		writeError(w, lang, err)
		return
	}
	writeJSON(w, http.StatusOK, convertResponse{Result: outcome.Result, Seed: outcome.Seed})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, lang string, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("api convert: %v", err)
	}
	body := errorBody{
		Code:    string(apperrors.CodeOf(err)),
		Message: localizeError(err, lang),
	}
	if domainErr, ok := apperrors.As(err); ok {
		body.Metadata = domainErr.Metadata
	}
	writeJSON(w, status, errorResponse{Error: body})
}

// writeJSON writes JSON responses with a consistent content type.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	_ = encoder.Encode(payload)
}
