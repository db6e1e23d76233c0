package scraper

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// challengeMarker only appears on the CAS login page.
const challengeMarker = "formsAuthenticationArea"

// maxLoginAttempts bounds how often the login form is submitted in one run.
const maxLoginAttempts = 2

// Credentials is a CAS username and password. It lives for one login run only.
type Credentials struct {
	Username string
	Password string
}

// CredentialProvider supplies credentials when the login form shows up.
// Implementations may prompt the operator.
type CredentialProvider interface {
	Credentials() (Credentials, error)
}

// CredentialFunc adapts a plain function to CredentialProvider.
type CredentialFunc func() (Credentials, error)

func (f CredentialFunc) Credentials() (Credentials, error) {
	return f()
}

// PreferConfigured returns configured when both fields are set, and asks
// fallback otherwise.
func PreferConfigured(configured Credentials, fallback CredentialProvider) CredentialProvider {
	return CredentialFunc(func() (Credentials, error) {
		if configured.Username != "" && configured.Password != "" {
			return configured, nil
		}
		if fallback == nil {
			return Credentials{}, errors.New("login required but no credentials are configured")
		}
		return fallback.Credentials()
	})
}

// AuthState is the position of a login run.
type AuthState int

const (
	StateUnauthenticated AuthState = iota
	StateChallengeDetected
	StateCredentialsObtained
	StateSubmitted
	StateAuthenticated
	StateFailed
)

func (s AuthState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateChallengeDetected:
		return "challenge_detected"
	case StateCredentialsObtained:
		return "credentials_obtained"
	case StateSubmitted:
		return "submitted"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("AuthState(%d)", int(s))
}

// IsChallenge reports whether body is the CAS login page.
func IsChallenge(body string) bool {
	return strings.Contains(body, challengeMarker)
}

// FetchAuthenticated fetches target and, if the CAS login page comes back
// instead, logs in and returns the page the login redirects to.
// Credentials are requested from provider at most once.
func (c *Client) FetchAuthenticated(target string, provider CredentialProvider) (string, error) {
	body, err := c.Get(target)
	if err != nil {
		return "", err
	}

	run := &loginRun{client: c, provider: provider, target: target}
	return run.resolve(body)
}

type loginRun struct {
	client   *Client
	provider CredentialProvider
	target   string

	state    AuthState
	creds    *Credentials
	attempts int
}

func (r *loginRun) resolve(body string) (string, error) {
	for {
		if !IsChallenge(body) {
			r.enter(StateAuthenticated)
			return body, nil
		}
		r.enter(StateChallengeDetected)

		if r.attempts >= maxLoginAttempts {
			r.enter(StateFailed)
			return "", &AuthenticationError{Attempts: r.attempts}
		}

		execution, err := executionToken(body)
		if err != nil {
			r.enter(StateFailed)
			return "", &ProtocolError{URL: r.target, Reason: err.Error()}
		}

		if r.creds == nil {
			if r.provider == nil {
				r.enter(StateFailed)
				return "", errors.New("login required but no credential provider was given")
			}
			creds, err := r.provider.Credentials()
			if err != nil {
				r.enter(StateFailed)
				return "", fmt.Errorf("could not obtain credentials: %w", err)
			}
			r.creds = &creds
			r.enter(StateCredentialsObtained)
		}

		r.attempts++
		log.Info().Int("attempt", r.attempts).Str("user", r.creds.Username).Msg("submitting CAS login")

		body, err = r.client.PostForm(loginURL, loginForm(execution, *r.creds))
		if err != nil {
			r.enter(StateFailed)
			return "", err
		}
		r.enter(StateSubmitted)
	}
}

func (r *loginRun) enter(s AuthState) {
	log.Debug().Stringer("from", r.state).Stringer("to", s).Msg("auth state")
	r.state = s
}

// executionToken reads the one-time hidden "execution" field of the login form.
func executionToken(body string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("could not parse login page: %w", err)
	}

	value, exists := doc.Find(`input[name="execution"]`).First().Attr("value")
	value = strings.TrimSpace(value)
	if !exists || value == "" {
		return "", errors.New("login form has no execution token")
	}
	return value, nil
}

func loginForm(execution string, creds Credentials) url.Values {
	form := url.Values{}
	form.Set("execution", execution)
	form.Set("_eventId", "submit")
	form.Set("geolocation", "")
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)
	return form
}
