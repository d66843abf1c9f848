package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextSubject is the key used to store the token subject in the Gin context.
	ContextSubject = "subject"
)

// Authoriz rejects requests without a valid bearer token and stores the token subject in the context.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		subject, err := ts.Subject(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextSubject, subject)
		c.Next()
	}
}

// Subject returns the token subject stored by Authoriz.
func Subject(c *gin.Context) string {
	return c.GetString(ContextSubject)
}
