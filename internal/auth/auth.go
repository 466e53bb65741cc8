package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/card-ledger/backend/internal/httperror"
	"github.com/card-ledger/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized       = errors.New("authentication is required, please provide a valid bearer token")
	ErrInvalidCredentials = errors.New("the email address or password is not correct")
)

// ownerKey is the gin context key for the ID of the authenticated user.
const ownerKey = "ledger-owner"

// Issuer signs and verifies access tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) Issuer {
	return Issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// IssueToken returns a signed token for the user.
func (i Issuer) IssueToken(user uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(i.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expires, nil
}

// ParseToken verifies the token and returns the ID of the user it was issued for.
func (i Issuer) ParseToken(s string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(s, &claims, func(_ *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: the token subject is not a valid user ID", ErrUnauthorized)
	}

	return id, nil
}

// HashPassword returns the bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword returns ErrInvalidCredentials if the password does not match the hash.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}

// Middleware rejects requests without a valid bearer token for an existing user.
//
// The ID of the user is stored in the context and can be read with Owner.
func (i Issuer) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abort(c, ErrUnauthorized)
			return
		}

		id, err := i.ParseToken(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("token rejected")
			abort(c, ErrUnauthorized)
			return
		}

		// Tokens of deleted users are not valid anymore
		err = models.DB.First(&models.User{}, "id = ?", id).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			abort(c, ErrUnauthorized)
			return
		} else if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperror.New(err))
			return
		}

		c.Set(ownerKey, id)
		c.Next()
	}
}

// Owner returns the ID of the authenticated user.
func Owner(c *gin.Context) uuid.UUID {
	owner, ok := c.Get(ownerKey)
	if !ok {
		return uuid.Nil
	}

	id, _ := owner.(uuid.UUID)
	return id
}

func abort(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", `Bearer realm="card-ledger"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(err))
}
