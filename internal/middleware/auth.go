package middleware

import (
	"net/http"
	"strings"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const PrincipalKey = "principal"

// Claims are minted by the login service; only the identity fields are read.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies the HS256 bearer token and stores the caller's
// domain.Principal on the context.
func Auth(secret string) ginext.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization required"})
			return
		}

		claims := &Claims{}
		token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		})
		if err != nil || !token.Valid || claims.Email == "" || claims.Role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		c.Set(PrincipalKey, domain.Principal{
			Email: strings.ToLower(claims.Email),
			Name:  claims.Name,
			Role:  domain.ParseRole(claims.Role).String(),
		})
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by Auth.
func PrincipalFrom(c *ginext.Context) (domain.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}
