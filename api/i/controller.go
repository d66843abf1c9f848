package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the public and protected API groups.
type Controller interface {
	// RegisterPublic registers routes reachable without a token.
	RegisterPublic(*gin.RouterGroup)

	// RegisterProtected registers routes behind the authorization middleware.
	RegisterProtected(*gin.RouterGroup)
}
