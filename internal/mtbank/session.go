package mtbank

import (
	"net/http"
	"regexp"
	"strings"
)

// Session is the cookie set that authorizes API calls after login. Immutable
// once established; shared read-only across concurrent fetches; never
// persisted across runs.
type Session struct {
	Cookie string
}

// Credentials are the user secrets for the login handshake. They are
// declared sensitive to the transport wrapper and never logged.
type Credentials struct {
	Phone    string
	Password string
}

// The two cookies every authorized call must carry: the servlet session and
// the bot-mitigation token.
var requiredCookiesRe = regexp.MustCompile(`(JSESSIONID=[^;]*;).*(TS[^=]*=[^;]*;)`)

// extractSessionCookies pulls the required cookie pair out of Set-Cookie
// headers. Returns "" when headers are absent or the pair is incomplete
// (test doubles often mock no headers); never fails.
func extractSessionCookies(headers http.Header) string {
	if headers == nil {
		return ""
	}

	setCookie := strings.Join(headers.Values("Set-Cookie"), "; ")
	if setCookie == "" {
		return ""
	}

	m := requiredCookiesRe.FindStringSubmatch(setCookie)
	if m == nil {
		return ""
	}
	return strings.Join(m[1:], ";")
}
