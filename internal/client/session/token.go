package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expiryLeeway is how close to expiry an access token may be before
// Initialize refreshes it proactively instead of handing out a token
// that will die mid-request.
const expiryLeeway = 60 * time.Second

// tokenNeedsRefresh reports whether the access token expires within the
// leeway, counting from now. The signature is not verified (the backend
// does that); only the exp claim is inspected. Unparsable tokens and
// tokens without an exp claim report true: when in doubt, refresh.
func tokenNeedsRefresh(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Time.Sub(now) <= expiryLeeway
}
