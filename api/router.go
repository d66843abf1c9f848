package api

import (
	"net/http"

	"github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router manages the HTTP server and its dependencies,
// including controllers and the authorization middleware.
type Router struct {
	addr                    string
	baseURL                 string
	mode                    string
	controllers             []i.Controller
	authorizationMiddleware gin.HandlerFunc
	logger                  *zap.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr                    string // Address to listen on
	BaseURL                 string // Base URL for API routes
	Mode                    string // Gin mode (debug, release, test)
	Controllers             []i.Controller
	AuthorizationMiddleware gin.HandlerFunc
	Logger                  *zap.Logger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Router{
		addr:                    config.Addr,
		baseURL:                 config.BaseURL,
		mode:                    config.Mode,
		controllers:             config.Controllers,
		authorizationMiddleware: config.AuthorizationMiddleware,
		logger:                  logger,
	}
}

// Handler builds the gin engine with every route registered.
//
// Routes are grouped and managed under the base URL, with the following access levels:
// - Public routes: No authentication required.
// - Protected routes: Authentication required.
func (r *Router) Handler() http.Handler {
	if r.mode != "" {
		gin.SetMode(r.mode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), r.accessLog())

	// Setting up routes under baseURL
	api := router.Group(r.baseURL)

	{
		// Public routes (accessible without authentication)
		publicRoutes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(publicRoutes)
			}
		}

		// Protected routes (authentication required)
		protectedRoutes := api.Group("/v1")
		if r.authorizationMiddleware != nil {
			protectedRoutes.Use(r.authorizationMiddleware)
		}
		{
			for _, c := range r.controllers {
				c.RegisterProtected(protectedRoutes)
			}
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	r.logger.Info("listening", zap.String("addr", r.addr))
	return http.ListenAndServe(r.addr, r.Handler())
}

// accessLog logs one line per request.
func (r *Router) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		r.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
