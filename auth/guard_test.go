package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusmentor/booking-portal/auth"
)

func student() auth.Identity {
	return auth.Identity{Kind: auth.KindStudent, Subject: "21BCE100", Name: "Asha", Email: "asha@college.edu"}
}

func mentor() auth.Identity {
	return auth.Identity{Kind: auth.KindMentor, Subject: "g-123", Name: "Ravi", Email: "ravi@example.com"}
}

func TestGuardAnonymousRedirectsToSignIn(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/student", "/mentor", "/somewhere/else"} {
		target := auth.Decide(auth.Anonymous(), path, auth.PageOptions{})
		assert.Equal(t, "/auth/signin?callbackUrl="+urlEscape(path), target, "path %s", path)
	}
}

func TestGuardAnonymousAllowedOnPublicPaths(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/", "/auth/signin", "/admin", "/admin/signin"} {
		assert.Empty(t, auth.Decide(auth.Anonymous(), path, auth.PageOptions{}), "path %s", path)
	}
}

func TestGuardRequiredRoleBouncesToOwnHome(t *testing.T) {
	t.Parallel()

	// A mismatched role always lands on its own dashboard, never the
	// required one.
	target := auth.Decide(student(), "/mentor", auth.PageOptions{RequiredRole: auth.KindMentor})
	assert.Equal(t, "/student", target)

	target = auth.Decide(mentor(), "/student", auth.PageOptions{RequiredRole: auth.KindStudent})
	assert.Equal(t, "/mentor", target)
}

func TestGuardRoleDashboardDispatch(t *testing.T) {
	t.Parallel()

	opts := auth.PageOptions{RedirectToRoleDashboard: true}
	assert.Equal(t, "/student", auth.Decide(student(), "/", opts))
	assert.Equal(t, "/mentor", auth.Decide(mentor(), "/", opts))
	assert.Empty(t, auth.Decide(auth.Anonymous(), "/", opts))
}

func TestGuardAdminShortCircuitsEverywhere(t *testing.T) {
	t.Parallel()

	admin := auth.Admin("ops")

	// Admin is never bounced by role requirements or the sign-in guard,
	// whatever the concurrent session state would have said.
	assert.Empty(t, auth.Decide(admin, "/student", auth.PageOptions{RequiredRole: auth.KindStudent}))
	assert.Empty(t, auth.Decide(admin, "/mentor", auth.PageOptions{RequiredRole: auth.KindMentor}))
	assert.Empty(t, auth.Decide(admin, "/somewhere/else", auth.PageOptions{}))
	assert.Empty(t, auth.Decide(admin, "/", auth.PageOptions{RedirectToRoleDashboard: true}))
}

func TestGuardAdminNamespace(t *testing.T) {
	t.Parallel()

	admin := auth.Admin("ops")

	assert.Equal(t, "/admin/dashboard", auth.Decide(admin, "/admin/signin", auth.PageOptions{}))
	assert.Empty(t, auth.Decide(admin, "/admin/dashboard", auth.PageOptions{}))
	assert.Empty(t, auth.Decide(admin, "/admin/mentors", auth.PageOptions{}))

	for _, id := range []auth.Identity{auth.Anonymous(), student(), mentor()} {
		assert.Equal(t, "/admin/signin", auth.Decide(id, "/admin/dashboard", auth.PageOptions{}))
		assert.Equal(t, "/admin/signin", auth.Decide(id, "/admin/slots", auth.PageOptions{}))
		// The bare admin root does its own dispatch.
		assert.Empty(t, auth.Decide(id, "/admin", auth.PageOptions{}))
		assert.Empty(t, auth.Decide(id, "/admin/signin", auth.PageOptions{}))
	}
}

func TestGuardIdempotence(t *testing.T) {
	t.Parallel()

	// Re-evaluating an unchanged state never re-navigates: once on the
	// target page, the same inputs produce no redirect.
	target := auth.Decide(student(), "/mentor", auth.PageOptions{RequiredRole: auth.KindMentor})
	assert.Equal(t, "/student", target)
	assert.Empty(t, auth.Decide(student(), target, auth.PageOptions{}))

	// Deciding twice in a row with identical state yields the identical
	// single answer.
	again := auth.Decide(student(), "/mentor", auth.PageOptions{RequiredRole: auth.KindMentor})
	assert.Equal(t, target, again)

	// A target equal to the current path is suppressed outright.
	assert.Empty(t, auth.Decide(mentor(), "/mentor", auth.PageOptions{RequiredRole: auth.KindStudent}))
}

func TestGuardDisableRedirects(t *testing.T) {
	t.Parallel()

	assert.Empty(t, auth.Decide(auth.Anonymous(), "/privacypolicy", auth.PageOptions{DisableRedirects: true}))
	assert.Empty(t, auth.Decide(student(), "/termsandconditions", auth.PageOptions{
		DisableRedirects: true,
		RequiredRole:     auth.KindMentor,
	}))
}

func urlEscape(p string) string {
	// Paths in these tests only need the slash escape.
	out := ""
	for _, r := range p {
		if r == '/' {
			out += "%2F"
		} else {
			out += string(r)
		}
	}
	return out
}
