// Package router mounts the API under /api/v1. Each domain exports a
// RegisterFunc from its own router package; the caller passes them to
// SetupRoutes so this package never imports a domain.
//
// Middleware is attached with Group(prefix).Use(mw) and the route is
// registered on that group. Passing middleware inline to Get/Post is not used.
package router

import (
	"github.com/anurag2169/RiseStream-backend/internal/media"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"
)

// RoutePrefix holds the base paths of the API.
type RoutePrefix struct {
	Base string // /api
	V1   string // /api/v1
}

func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// Dependencies are the collaborators domain routers build their services from.
type Dependencies struct {
	Auth     fiber.Handler // required on every route except the health check
	Cache    fiber.Handler // optional response cache, runs after Auth
	Uploader media.Uploader
	DB       *mongo.Client
}

// Router gives domain routers access to the shared middleware and collaborators.
type Router struct {
	app  *fiber.App
	deps Dependencies
}

func NewRouter(app *fiber.App, deps Dependencies) *Router {
	return &Router{app: app, deps: deps}
}

func (r *Router) Uploader() media.Uploader { return r.deps.Uploader }

func (r *Router) DB() *mongo.Client { return r.deps.DB }

// Protected returns a group under prefix that requires an actor and, when
// configured, goes through the response cache.
func (r *Router) Protected(parent fiber.Router, prefix string) fiber.Router {
	group := parent.Group(prefix)
	if r.deps.Auth != nil {
		group.Use(r.deps.Auth)
	}
	if r.deps.Cache != nil {
		group.Use(r.deps.Cache)
	}
	return group
}

// Handle registers handler for method on router.
func Handle(router fiber.Router, method string, path string, handler fiber.Handler) {
	switch method {
	case fiber.MethodGet:
		router.Get(path, handler)
	case fiber.MethodPost:
		router.Post(path, handler)
	case fiber.MethodPut:
		router.Put(path, handler)
	case fiber.MethodPatch:
		router.Patch(path, handler)
	case fiber.MethodDelete:
		router.Delete(path, handler)
	}
}

// RegisterFunc registers the routes of one domain.
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes mounts every domain under /api/v1.
func SetupRoutes(app *fiber.App, deps Dependencies, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app, deps)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
