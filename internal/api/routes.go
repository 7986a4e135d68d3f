package api

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/magicvilla/villa-api/internal/api/handler"
	"github.com/magicvilla/villa-api/internal/api/middleware"
	"github.com/magicvilla/villa-api/internal/core/domain"
)

// Unversioned marks a route served directly under /api.
const Unversioned = 0

// Route describes one endpoint. Path is relative to /api for the
// unversioned form and to /api/v{n} for version n. An empty Roles set makes
// the route public.
type Route struct {
	Method   string
	Path     string
	Versions []int
	Roles    []string
	Handler  echo.HandlerFunc
}

// Handlers groups the handlers the route table dispatches to.
type Handlers struct {
	Villa       *handler.VillaHandler
	VillaNumber *handler.VillaNumberHandler
	Auth        *handler.AuthHandler
}

// Routes returns the endpoint table of the API.
func Routes(h Handlers) []Route {
	villa := []int{Unversioned, 1}
	v1 := []int{1}
	admin := []string{domain.RoleAdmin}

	return []Route{
		{Method: http.MethodGet, Path: "/villaAPI", Versions: villa, Handler: h.Villa.List},
		{Method: http.MethodGet, Path: "/villaAPI/:id", Versions: villa, Handler: h.Villa.Get},
		{Method: http.MethodPost, Path: "/villaAPI", Versions: villa, Roles: admin, Handler: h.Villa.Create},
		{Method: http.MethodPut, Path: "/villaAPI/:id", Versions: villa, Roles: admin, Handler: h.Villa.Update},
		{Method: http.MethodPatch, Path: "/villaAPI/:id", Versions: villa, Roles: admin, Handler: h.Villa.Patch},
		{Method: http.MethodDelete, Path: "/villaAPI/:id", Versions: villa, Roles: admin, Handler: h.Villa.Delete},

		{Method: http.MethodGet, Path: "/VillaNumberAPI/GetString", Versions: v1, Handler: h.VillaNumber.GetString},
		{Method: http.MethodGet, Path: "/VillaNumberAPI", Versions: v1, Handler: h.VillaNumber.List},
		{Method: http.MethodGet, Path: "/VillaNumberAPI/:id", Versions: v1, Handler: h.VillaNumber.Get},
		{Method: http.MethodPost, Path: "/VillaNumberAPI", Versions: v1, Roles: admin, Handler: h.VillaNumber.Create},
		{Method: http.MethodPut, Path: "/VillaNumberAPI/:id", Versions: v1, Roles: admin, Handler: h.VillaNumber.Update},
		{Method: http.MethodPatch, Path: "/VillaNumberAPI/:id", Versions: v1, Roles: admin, Handler: h.VillaNumber.Patch},
		{Method: http.MethodDelete, Path: "/VillaNumberAPI/:id", Versions: v1, Roles: admin, Handler: h.VillaNumber.Delete},
		{Method: http.MethodGet, Path: "/VillaNumberAPI", Versions: []int{2}, Handler: h.VillaNumber.ListV2},

		{Method: http.MethodPost, Path: "/UsersAuth/login", Versions: []int{Unversioned}, Handler: h.Auth.Login},
		{Method: http.MethodPost, Path: "/UsersAuth/register", Versions: []int{Unversioned}, Handler: h.Auth.Register},
	}
}

// RegisterRoutes resolves routes into concrete echo routes. Routes with a
// role set get the Authenticate then RequireRoles chain. Requests for a
// version no route declares answer 400.
func RegisterRoutes(e *echo.Echo, routes []Route, jwtSecret string) {
	authenticate := middleware.Authenticate(jwtSecret)
	supported := make(map[int]bool)

	for _, r := range routes {
		var chain []echo.MiddlewareFunc
		if len(r.Roles) > 0 {
			chain = append(chain, authenticate, middleware.RequireRoles(r.Roles...))
		}
		for _, v := range r.Versions {
			e.Add(r.Method, versionPrefix(v)+r.Path, r.Handler, chain...)
			if v != Unversioned {
				supported[v] = true
			}
		}
	}

	e.Any("/api/:version/*", unsupportedVersion(supported))
}

func versionPrefix(v int) string {
	if v == Unversioned {
		return "/api"
	}
	return "/api/v" + strconv.Itoa(v)
}

var versionSegment = regexp.MustCompile(`^[vV](\d+)$`)

// unsupportedVersion answers requests that matched no declared route.
// A well-formed but undeclared version is a client error; anything else is
// an unknown resource.
func unsupportedVersion(supported map[int]bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		m := versionSegment.FindStringSubmatch(c.Param("version"))
		if m == nil {
			return echo.ErrNotFound
		}
		v, err := strconv.Atoi(strings.TrimLeft(m[1], "0"))
		if err == nil && supported[v] {
			return echo.ErrNotFound
		}
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("API version %s is not supported", m[1]))
	}
}
