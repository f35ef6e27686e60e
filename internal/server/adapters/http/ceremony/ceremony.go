package ceremony

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sodiqit/signceremony.git/internal/constants"
	"github.com/sodiqit/signceremony.git/internal/logger"
	"github.com/sodiqit/signceremony.git/internal/server/adapters/http/middlewares"
	"github.com/sodiqit/signceremony.git/internal/server/services/ceremonyprocessor"
	"github.com/sodiqit/signceremony.git/pkg/esign"
)

type Adapter struct {
	ceremonyService ceremonyprocessor.CeremonyService
	logger          logger.ILogger
}

func (a *Adapter) Route() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlewares.WithLogger(a.logger))
	r.Use(middlewares.Gzip)

	r.Get("/", a.handleOpenSigningCeremony)
	r.Head("/", a.handleOpenSigningCeremony)

	return r
}

func (a *Adapter) handleOpenSigningCeremony(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := ceremonyprocessor.Params{
		AccessToken: query.Get(constants.QueryAccessToken),
		AccountID:   query.Get(constants.QueryAccountID),
		SignerName:  query.Get(constants.QuerySignerName),
		SignerEmail: query.Get(constants.QuerySignerEmail),
	}

	url, err := a.ceremonyService.OpenSigningCeremony(r.Context(), params)

	if errors.Is(err, ceremonyprocessor.ErrMissingCredentials) {
		http.Error(w, fmt.Sprintf("%s: provide %s and %s", err, constants.QueryAccessToken, constants.QueryAccountID), http.StatusBadRequest)
		return
	}

	if apiErr, ok := esign.AsAPIError(err); ok {
		a.logger.Warnw("signature service rejected request", "status", apiErr.StatusCode, "errorCode", apiErr.ErrorCode, "message", apiErr.Message)

		w.Header().Add("Content-Type", "text/html")
		w.Write([]byte(renderAPIProblem(apiErr)))
		return
	}

	if err != nil {
		a.logger.Errorw("cannot open signing ceremony", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

func renderAPIProblem(apiErr *esign.APIError) string {
	var htmlBuilder strings.Builder
	htmlBuilder.WriteString(`<html lang="en"><body>`)
	htmlBuilder.WriteString("<h3>API problem</h3>")
	htmlBuilder.WriteString(fmt.Sprintf("<p>Status code %d</p>", apiErr.StatusCode))
	htmlBuilder.WriteString("<p>Error message:</p>")
	htmlBuilder.WriteString(fmt.Sprintf("<p><pre><code>%s</code></pre></p>", html.EscapeString(indentBody(apiErr.Body))))
	htmlBuilder.WriteString("</body></html>")

	return htmlBuilder.String()
}

func indentBody(body []byte) string {
	var buf bytes.Buffer

	if err := json.Indent(&buf, body, "", "    "); err != nil {
		return string(body)
	}

	return buf.String()
}

func New(ceremonyService ceremonyprocessor.CeremonyService, logger logger.ILogger) *Adapter {
	return &Adapter{
		ceremonyService,
		logger,
	}
}
