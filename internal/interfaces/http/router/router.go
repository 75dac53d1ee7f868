package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by handlers that register their own routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router assembles the API route tree
type Router struct {
	engine     *gin.Engine
	apiPrefix  string
	registrars []RouteRegistrar
}

// Option configures the Router
type Option func(*Router)

// WithAPIPrefix overrides the default /api/v1 prefix
func WithAPIPrefix(prefix string) Option {
	return func(r *Router) {
		r.apiPrefix = prefix
	}
}

// New creates a Router on an existing gin engine
func New(engine *gin.Engine, opts ...Option) *Router {
	r := &Router{
		engine:    engine,
		apiPrefix: "/api/v1",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds handlers to the route tree
func (r *Router) Register(registrars ...RouteRegistrar) {
	r.registrars = append(r.registrars, registrars...)
}

// Setup mounts every registered handler under the API prefix
func (r *Router) Setup() {
	api := r.engine.Group(r.apiPrefix)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
