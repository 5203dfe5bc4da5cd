package auth

import (
	"net/url"
	"strings"
)

// PageOptions declares how a page participates in route guarding.
type PageOptions struct {
	// RequiredRole bounces any other session role to its own dashboard.
	RequiredRole Kind
	// RedirectToRoleDashboard dispatches signed-in users to their
	// dashboard (the home page behavior).
	RedirectToRoleDashboard bool
	// DisableRedirects opts the page out of guarding entirely.
	DisableRedirects bool
}

// publicPaths are reachable without authentication.
var publicPaths = map[string]struct{}{
	"/":             {},
	"/auth/signin":  {},
	"/admin":        {},
	"/admin/signin": {},
}

const (
	adminSignInPath    = "/admin/signin"
	adminDashboardPath = "/admin/dashboard"
	signInPath         = "/auth/signin"
)

// Decide returns the path the request must be redirected to, or "" when the
// page may render. At most one redirect is produced, and re-evaluating an
// unchanged state never re-navigates: a target equal to the current path is
// suppressed.
func Decide(id Identity, path string, opts PageOptions) string {
	if opts.DisableRedirects {
		return ""
	}
	target := decide(id, path, opts)
	if target == path {
		return ""
	}
	return target
}

func decide(id Identity, path string, opts PageOptions) string {
	// Admin namespace pages have their own rules. The bare /admin page is
	// exempt: it performs its own role-based dispatch.
	if strings.HasPrefix(path, "/admin") {
		if path == adminSignInPath && id.IsAdmin() {
			return adminDashboardPath
		}
		if path != adminSignInPath && path != "/admin" && !id.IsAdmin() {
			return adminSignInPath
		}
		return ""
	}

	// Admin status takes precedence over the session role everywhere: an
	// admin is never bounced by role requirements or the sign-in guard.
	if id.IsAdmin() {
		return ""
	}

	if id.Kind == KindStudent || id.Kind == KindMentor {
		if opts.RedirectToRoleDashboard {
			return id.Home()
		}
		if opts.RequiredRole != KindAnonymous && id.Kind != opts.RequiredRole {
			return id.Home()
		}
		return ""
	}

	// Anonymous visitors may only see the public allow-list; everything
	// else goes to sign-in with the original path preserved for the
	// post-login return.
	if _, ok := publicPaths[path]; !ok {
		return signInPath + "?callbackUrl=" + url.QueryEscape(path)
	}
	return ""
}
