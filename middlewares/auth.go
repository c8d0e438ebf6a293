package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"
)

// AdminRealm is the basic-auth realm presented on the 401 challenge.
const AdminRealm = "VendorFlow Admin"

// Credentials is the credential store behind the admin gate. It holds a
// single entry today; supporting more admins means seeding more entries, not
// changing the gate. Passwords are kept only as bcrypt hashes.
type Credentials struct {
	hashes map[string][]byte
}

func NewCredentials(username, password string) (*Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	return &Credentials{hashes: map[string][]byte{username: hash}}, nil
}

// Authorize reports whether the username/password pair matches a stored entry.
func (s *Credentials) Authorize(username, password string) bool {
	hash, ok := s.hashes[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// AdminAuth guards admin routes with HTTP basic auth. Failures receive a
// challenge response; the authenticated username is exposed via
// c.Locals("username") and recorded as approved_by on approval.
func AdminAuth(creds *Credentials) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm:      AdminRealm,
		Authorizer: creds.Authorize,
	})
}
