package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/campusmentor/booking-portal/auth"
	"github.com/campusmentor/booking-portal/config"
	"github.com/campusmentor/booking-portal/middleware"
	"github.com/campusmentor/booking-portal/utils"
)

// Google OAuth signs mentors in. Students use the credential flow; anyone
// arriving through Google gets the mentor role.

const (
	oauthStateCookie    = "oauth_state"
	oauthCallbackCookie = "oauth_callback"
	googleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

func googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.GoogleClientID(),
		ClientSecret: config.GoogleClientSecret(),
		RedirectURL:  config.GoogleRedirectURL(),
		Scopes: []string{
			"openid",
			"email",
			"profile",
			"https://www.googleapis.com/auth/calendar",
		},
		Endpoint: google.Endpoint,
	}
}

// GoogleLogin starts the consent redirect, carrying a state nonce in a
// short-lived cookie.
func GoogleLogin(c *fiber.Ctx) error {
	conf := googleOAuthConfig()
	if conf.ClientID == "" || conf.ClientSecret == "" {
		log.Println("Google OAuth credentials not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Google sign-in not configured",
		})
	}

	state := utils.StateToken()
	setFlowCookie(c, oauthStateCookie, state)
	if cb := c.Query("callbackUrl"); isSafeCallback(cb) {
		setFlowCookie(c, oauthCallbackCookie, cb)
	}

	url := conf.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	return c.Redirect(url, fiber.StatusFound)
}

// GoogleCallback exchanges the code, reads the Google profile and issues a
// mentor session. Every failure lands back on the sign-in page.
func GoogleCallback(c *fiber.Ctx) error {
	defer clearFlowCookies(c)

	state := c.Query("state")
	if state == "" || state != c.Cookies(oauthStateCookie) {
		log.Println("OAuth state mismatch")
		return c.Redirect("/auth/signin?error=state_mismatch", fiber.StatusFound)
	}

	code := c.Query("code")
	if code == "" {
		return c.Redirect("/auth/signin?error=access_denied", fiber.StatusFound)
	}

	conf := googleOAuthConfig()
	tok, err := conf.Exchange(c.UserContext(), code)
	if err != nil {
		log.Printf("OAuth code exchange failed: %v", err)
		return c.Redirect("/auth/signin?error=oauth_exchange", fiber.StatusFound)
	}

	profile, err := fetchGoogleProfile(c.UserContext(), conf, tok)
	if err != nil {
		log.Printf("Failed to fetch Google profile: %v", err)
		return c.Redirect("/auth/signin?error=oauth_profile", fiber.StatusFound)
	}

	id := auth.Identity{
		Kind:        auth.KindMentor,
		Subject:     profile.ID,
		Name:        profile.Name,
		Email:       profile.Email,
		AccessToken: tok.AccessToken,
	}
	sessionToken, err := auth.NewSessionToken(id, config.SessionSecret())
	if err != nil {
		log.Printf("Failed to sign mentor session: %v", err)
		return c.Redirect("/auth/signin?error=session", fiber.StatusFound)
	}
	middleware.SetSessionCookie(c, sessionToken)

	target := "/mentor"
	if cb := c.Cookies(oauthCallbackCookie); isSafeCallback(cb) {
		target = cb
	}
	return c.Redirect(target, fiber.StatusFound)
}

type googleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func fetchGoogleProfile(ctx context.Context, conf *oauth2.Config, tok *oauth2.Token) (*googleProfile, error) {
	client := conf.Client(ctx, tok)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		return nil, fmt.Errorf("userinfo returned %d", resp.StatusCode)
	}

	profile := new(googleProfile)
	if err := json.NewDecoder(resp.Body).Decode(profile); err != nil {
		return nil, err
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("userinfo response missing email")
	}
	return profile, nil
}

// isSafeCallback permits relative paths only, keeping the post-login return
// from becoming an open redirect.
func isSafeCallback(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}

func setFlowCookie(c *fiber.Ctx, name, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearFlowCookies(c *fiber.Ctx) {
	for _, name := range []string{oauthStateCookie, oauthCallbackCookie} {
		c.Cookie(&fiber.Cookie{
			Name:    name,
			Value:   "",
			Path:    "/",
			Expires: time.Now().Add(-time.Hour),
		})
	}
}
