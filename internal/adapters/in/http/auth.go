package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

var errMissingCredential = errors.New("bearer credential is missing")

// Claims is the token payload. Subject carries the subject ID; for an admin
// that is the shop ID.
type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// TokenAuthenticator verifies HS256 bearer tokens and turns them into actors.
type TokenAuthenticator struct {
	secret []byte
	now    func() time.Time
}

func NewTokenAuthenticator(secret string) (*TokenAuthenticator, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwtSecret")
	}
	return &TokenAuthenticator{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs a token for subjectID valid for ttl.
func (a *TokenAuthenticator) Issue(subjectID kernel.UUID, role kernel.Role, ttl time.Duration) (string, error) {
	if _, err := kernel.NewActor(subjectID, role); err != nil {
		return "", err
	}
	now := a.now()
	claims := &Claims{
		Role: string(role),
		StandardClaims: jwt.StandardClaims{
			Subject:   subjectID.String(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Authenticate parses a raw token into an actor.
func (a *TokenAuthenticator) Authenticate(raw string) (kernel.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return kernel.Actor{}, err
	}
	if !token.Valid {
		return kernel.Actor{}, errors.New("token is not valid")
	}

	subjectID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, err
	}
	role, ok := kernel.ParseRole(claims.Role)
	if !ok {
		return kernel.Actor{}, errs.NewValueIsInvalidError("role")
	}
	return kernel.NewActor(subjectID, role)
}

// Middleware rejects requests without a valid bearer token and stores the
// actor on the echo context.
func (a *TokenAuthenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return unauthorized(c, err.Error())
			}
			actor, err := a.Authenticate(raw)
			if err != nil {
				return unauthorized(c, "invalid token")
			}
			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// RequireRole lets through only actors holding one of roles.
func RequireRole(roles ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return unauthorized(c, errMissingCredential.Error())
			}
			for _, r := range roles {
				if actor.Is(r) {
					return next(c)
				}
			}
			return writeError(c, errs.NewNotAuthorizedError(c.Request().Method+" "+c.Path(),
				fmt.Sprintf("role %s is not allowed", actor.Role())))
		}
	}
}

// ActorFrom returns the authenticated actor, if any.
func ActorFrom(c echo.Context) (kernel.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok || actor.Validate() != nil {
		return kernel.Actor{}, false
	}
	return actor, true
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingCredential
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("authorization header must be Bearer <token>")
	}
	return strings.TrimSpace(token), nil
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Kind:    string(errs.KindNotAuthorized),
		Message: message,
	})
}
