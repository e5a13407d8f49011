// Package auth verifies the bearer tokens issued by the identity provider
// and exposes the current user to the handlers.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ribgsilva/user-notes/platform/web/handler"
	"go.uber.org/zap"
)

const userKey = "auth.user"

// Config describes how tokens are verified. Either Secret (HS256) or
// PublicKey (RS256, PEM encoded) must be set.
type Config struct {
	Secret    string
	PublicKey string
	Issuer    string
	Audience  string
}

// Claims are the token claims the service reads, the subject is the user id
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// User is the authenticated caller
type User struct {
	Id   string `json:"id" example:"user_2aXb"`
	Name string `json:"name" example:"Jane Doe"`
}

// Verifier parses and validates tokens
type Verifier struct {
	key    any
	parser *jwt.Parser
}

func NewVerifier(cfg Config) (*Verifier, error) {
	var opts []jwt.ParserOption
	var key any
	switch {
	case cfg.PublicKey != "":
		pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKey))
		if err != nil {
			return nil, fmt.Errorf("parse public key: %w", err)
		}
		key = pub
		opts = append(opts, jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}))
	case cfg.Secret != "":
		key = []byte(cfg.Secret)
		opts = append(opts, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	default:
		return nil, errors.New("either a secret or a public key is required")
	}

	opts = append(opts, jwt.WithExpirationRequired())
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &Verifier{key: key, parser: jwt.NewParser(opts...)}, nil
}

// Verify returns the user of a valid token
func (v *Verifier) Verify(token string) (User, error) {
	var claims Claims
	if _, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	}); err != nil {
		return User{}, err
	}
	if claims.Subject == "" {
		return User{}, errors.New("token has no subject")
	}
	return User{Id: claims.Subject, Name: claims.Name}, nil
}

// Middleware rejects requests without a valid bearer token
func Middleware(log *zap.SugaredLogger, v *Verifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "missing bearer token"})
			return
		}

		user, err := v.Verify(token)
		if err != nil {
			log.Debugw("auth", "path", ctx.FullPath(), "ERROR", err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "invalid token"})
			return
		}

		ctx.Set(userKey, user)
		ctx.Next()
	}
}

// Current returns the user set by Middleware
func Current(ctx *gin.Context) (User, bool) {
	v, ok := ctx.Get(userKey)
	if !ok {
		return User{}, false
	}
	user, ok := v.(User)
	return user, ok
}
