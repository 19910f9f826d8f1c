package http

import (
	stdhttp "net/http"
	"strings"

	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
	"folio/internal/platform/net/http/bind"
	"folio/internal/services/site/domain"
	"folio/internal/services/site/render"
)

// submitContact hands the message to the configured action, usually a mailto link
func (h *handlers) submitContact(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	f, err := bind.ParseForm[domain.ContactForm](r)
	if err != nil {
		h.page(w, r, perr.HTTPStatus(err), render.PageContact, "Contact", contactData{
			Error: perr.WireFrom(err).Message,
			Form:  domain.ContactForm{Subject: r.PostFormValue("subject"), Body: r.PostFormValue("body")},
		})
		return
	}
	if h.ContactAction == "" {
		h.fail(w, r, perr.Disabledf("The contact form is not configured."))
		return
	}
	stdhttp.Redirect(w, r, domain.ComposeURL(h.ContactAction, f), stdhttp.StatusSeeOther)
}

// setTheme stores the picked scheme and sends the visitor back where they were
func (h *handlers) setTheme(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	f, err := bind.ParseForm[domain.ThemeForm](r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	stdhttp.SetCookie(w, domain.ThemeCookieFor(f.Scheme, h.Base))
	logger.C(r.Context()).Debug().Str("scheme", f.Scheme).Msg("theme stored")
	stdhttp.Redirect(w, r, h.returnTo(f.Return), stdhttp.StatusSeeOther)
}

// returnTo accepts only local paths under the base path
func (h *handlers) returnTo(p string) string {
	if p == "" || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return h.Base
	}
	if p == strings.TrimSuffix(h.Base, "/") || strings.HasPrefix(p, h.Base) {
		return p
	}
	return h.Base
}
