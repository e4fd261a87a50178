// internal/app/auth.go
package app

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"
)

const (
	// AuthCookieName holds the only client-side state the system keeps.
	AuthCookieName = "admin_auth"

	sessionTTL = time.Hour
)

// ReportAccess is the capability gating sensitive report fields. Only
// Auth hands out values with phone visibility; the zero value grants
// nothing, so a caller cannot skip the check by accident.
type ReportAccess struct {
	phoneVisible bool
}

func (a ReportAccess) PhoneVisible() bool { return a.phoneVisible }

// Auth issues and checks the staff session token. A token is
// "<unix-millis>:<hex hmac-sha256(millis, secret)>" and is valid for one
// hour from its own timestamp; there is no server-side session state and
// no early revocation.
type Auth struct {
	password string
	secret   []byte
	now      func() time.Time
}

func NewAuth(config *Config) *Auth {
	if config.Admin.Secret == "" {
		logger.Error.Println("Admin secret is not set, report authentication will reject everything")
	}
	return &Auth{
		password: config.Admin.Password,
		secret:   []byte(config.Admin.Secret),
		now:      time.Now,
	}
}

// Authenticate checks the shared staff password and issues a session
// token on match.
func (a *Auth) Authenticate(password string) (string, bool) {
	if len(a.secret) == 0 || a.password == "" {
		logger.Debug.Println("Rejecting login: admin secret or password not configured")
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) != 1 {
		return "", false
	}

	millis := a.now().UnixMilli()
	return fmt.Sprintf("%d:%s", millis, a.sign(millis)), true
}

// Verify fails closed: a missing or malformed token, a timestamp more
// than an hour old and a signature mismatch all read as unauthenticated.
func (a *Auth) Verify(token string) bool {
	if len(a.secret) == 0 {
		logger.Debug.Println("Rejecting session check: admin secret not configured")
		return false
	}
	tsPart, hashPart, ok := strings.Cut(token, ":")
	if !ok {
		return false
	}
	millis, err := strconv.ParseInt(tsPart, 10, 64)
	if err != nil {
		return false
	}
	if a.now().UnixMilli()-millis > sessionTTL.Milliseconds() {
		return false
	}
	return hmac.Equal([]byte(hashPart), []byte(a.sign(millis)))
}

// Grant converts a session token into a report capability.
func (a *Auth) Grant(token string) ReportAccess {
	return ReportAccess{phoneVisible: a.Verify(token)}
}

func (a *Auth) sign(millis int64) string {
	mac := hmac.New(sha256.New, a.secret)
	fmt.Fprintf(mac, "%d", millis)
	return hex.EncodeToString(mac.Sum(nil))
}

// SessionCookie wraps a token for the browser: http-only, same-site
// strict, expiring together with the token's own validity window.
func SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// TokenFromRequest reads the session cookie, empty when absent.
func TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(AuthCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
