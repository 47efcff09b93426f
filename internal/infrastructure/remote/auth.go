// internal/infrastructure/remote/auth.go
package remote

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/your-org/ekart-storefront/internal/config"
)

// ErrInvalidCredentials is returned by Login when the auth service
// rejects the email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthClient talks to the authentication service, which issues the
// bearer credential used to scope cart sync and checkout.
type AuthClient struct {
	c *client
}

// NewAuthClient creates a client for the remote auth service.
func NewAuthClient(cfg config.RemoteConfig, log *logrus.Logger) *AuthClient {
	return &AuthClient{
		c: newClient(cfg.AuthBaseURL, cfg.RequestTimeout, log.WithField("remote", "auth")),
	}
}

// LoginResult is the auth service's response to a successful login.
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges an email/password pair for a bearer credential.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := a.c.doJSON(ctx, http.MethodPost, "/login", "", loginRequest{Email: email, Password: password}, &result)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && (statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusBadRequest) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &result, nil
}

// Register creates a new account with the auth service.
func (a *AuthClient) Register(ctx context.Context, name, email, password string) error {
	return a.c.doJSON(ctx, http.MethodPost, "/register", "", registerRequest{Name: name, Email: email, Password: password}, nil)
}
