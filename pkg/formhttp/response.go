package formhttp

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// respond renders partial for HTMX and DataStar requests and full otherwise.
// DataStar receives partial as an element patch targeting selector. HTMX
// fragments are sent with 200 so they are swapped regardless of status.
func respond(w http.ResponseWriter, r *http.Request, status int, selector string, partial, full templ.Component) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(partial, datastar.WithSelector(selector))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if IsHTMX(r) {
		w.WriteHeader(http.StatusOK)
		return partial.Render(r.Context(), w)
	}

	w.WriteHeader(status)
	return full.Render(r.Context(), w)
}

// redirect sends the client to url in the way its request type expects.
func redirect(w http.ResponseWriter, r *http.Request, url string) error {
	switch {
	case IsDataStar(r):
		return datastar.NewSSE(w, r).Redirect(url)
	case IsHTMX(r):
		w.Header().Set(HXRedirect, url)
		w.WriteHeader(http.StatusOK)
		return nil
	default:
		http.Redirect(w, r, url, http.StatusSeeOther)
		return nil
	}
}
