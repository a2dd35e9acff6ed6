package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ledrew1407/report-generator/report"
)

//go:embed templates/index.html
var templates embed.FS

var formTmpl = template.Must(template.ParseFS(templates, "templates/index.html"))

// formView is the data passed to the form template.
type formView struct {
	Error  string
	Fields []report.Field
	Values map[string]string
}

// Handler serves the report form and the generated PDF download.
type Handler struct {
	gen *report.Generator
}

// NewHandler creates a Handler backed by the given generator.
func NewHandler(gen *report.Generator) *Handler {
	return &Handler{gen: gen}
}

// ShowForm renders the report form pre-filled with sample values.
func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, report.Samples(), "", http.StatusOK)
}

// GenerateReport builds the report from the submitted form and returns
// the PDF as a download. On assembly failure the form is re-rendered
// with the submitted values and the error message, so the user can
// resubmit; no partial document is ever written.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form submission", http.StatusBadRequest)
		return
	}

	values := make(map[string]string)
	for _, f := range report.Schema() {
		if r.PostForm.Has(f.Name) {
			values[f.Name] = r.PostForm.Get(f.Name)
		}
	}

	data := report.New(values)
	artifact, err := h.gen.Generate(data)
	if err != nil {
		logger.Error().Err(err).Msg("report generation failed")
		h.renderForm(w, r, values, fmt.Sprintf("Error generating PDF: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info().
		Str("claim", data.Get(report.FieldClaimNumber)).
		Int("bytes", len(artifact.Bytes)).
		Msg("report generated")

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(artifact.Bytes)))
	if _, err := w.Write(artifact.Bytes); err != nil {
		logger.Error().Err(err).Msg("failed to write artifact")
	}
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, values map[string]string, errMsg string, code int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)

	view := formView{Error: errMsg, Fields: report.Schema(), Values: values}
	if err := formTmpl.Execute(w, view); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render form")
	}
}
