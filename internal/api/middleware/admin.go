package middleware

import (
	"net/http"

	"github.com/anuraag-firstaid/storefront/internal/errors"
	"github.com/anuraag-firstaid/storefront/internal/utils/response"
	"golang.org/x/crypto/bcrypt"
)

// AdminMiddleware gates the catalog admin endpoints behind a shared password
// sent in the X-Admin-Password header and compared against a bcrypt hash.
type AdminMiddleware struct {
	passwordHash []byte
}

func NewAdminMiddleware(passwordHash string) *AdminMiddleware {
	return &AdminMiddleware{passwordHash: []byte(passwordHash)}
}

func (m *AdminMiddleware) RequireAdmin(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		password := r.Header.Get("X-Admin-Password")
		if password == "" {
			logger.Warn("Missing admin password header")
			response.Error(w, errors.UnauthorizedError("Admin password is required"))

			return
		}

		if err := bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)); err != nil {
			logger.Warn("Rejected admin password")
			response.Error(w, errors.ForbiddenError("Incorrect admin password"))

			return
		}

		next.ServeHTTP(w, r)
	}
}
