package http

import (
	"html/template"
	"net/http"

	"github.com/boardhive/jobboard/internal/logger"
)

// activationPageData feeds the HTML page rendered by the email confirmation
// endpoint.
type activationPageData struct {
	Confirmed bool
	Name      string
	Message   string
}

var activationPage = template.Must(template.New("activation").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Email confirmation</title>
  <style>
    body { font-family: sans-serif; max-width: 32rem; margin: 4rem auto; padding: 0 1rem; }
    h1 { font-size: 1.4rem; }
  </style>
</head>
<body>
{{- if .Confirmed }}
  <h1>Email confirmed</h1>
  <p>Thank you{{ if .Name }}, {{ .Name }}{{ end }}. Your email address has been confirmed and your account is now active.</p>
{{- else }}
  <h1>Confirmation failed</h1>
  <p>{{ .Message }}</p>
{{- end }}
</body>
</html>
`))

// renderActivationPage writes the activation result as HTML with the given
// status code. A template failure after the header is written cannot be
// recovered, so it is only logged.
func (h *Handler) renderActivationPage(w http.ResponseWriter, r *http.Request, status int, data activationPageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := activationPage.Execute(w, data); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("rendering activation page")
	}
}
