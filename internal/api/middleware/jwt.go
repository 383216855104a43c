package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/linskybing/portal-go/internal/config"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/linskybing/portal-go/pkg/cache"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/response"
	"github.com/linskybing/portal-go/pkg/types"
)

var (
	jwtKey   []byte
	denylist cache.Store
)

var ErrTokenRevoked = errors.New("token revoked")

// Init sets the JWT signing key and the store of revoked token ids.
func Init(revoked cache.Store) {
	jwtKey = []byte(config.JwtSecret)
	denylist = revoked
}

// RevocationKey is the denylist key of a token id.
func RevocationKey(jti string) string {
	return "revoked:" + jti
}

// GenerateToken issues a signed session token for u.
var GenerateToken = func(u user.User, ttl time.Duration) (string, *types.Claims, error) {
	now := time.Now()
	claims := &types.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtKey)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// IsRevoked reports whether the token id was signed out.
func IsRevoked(ctx context.Context, jti string) (bool, error) {
	if denylist == nil || jti == "" {
		return false, nil
	}
	return denylist.Exists(ctx, RevocationKey(jti))
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
		Error: msg,
		Code:  string(i18n.KeyErrUnauthorized),
	})
}

// JWTAuthMiddleware validates a Bearer token in the Authorization header or the token cookie.
// Websocket upgrades may pass the token as a query parameter instead.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		switch {
		case authHeader != "":
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(c, "Authorization header format must be Bearer {token}")
				return
			}
			tokenStr = parts[1]
		case websocket.IsWebSocketUpgrade(c.Request) && c.Query("token") != "":
			tokenStr = c.Query("token")
		default:
			cookie, err := c.Cookie("token")
			if err != nil || cookie == "" {
				unauthorized(c, "Authorization required (header or cookie)")
				return
			}
			tokenStr = cookie
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			unauthorized(c, "Invalid token: "+err.Error())
			return
		}

		if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
			unauthorized(c, "token expired")
			return
		}

		revoked, err := IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.ErrorResponse{
				Error: "session store unavailable",
				Code:  string(i18n.KeyErrGeneric),
			})
			return
		}
		if revoked {
			unauthorized(c, ErrTokenRevoked.Error())
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
