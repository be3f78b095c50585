package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taxpro/office-api/internal/core/ports"
)

// ctxActor builds the acting identity from the claims the Auth middleware
// injected. A missing role or id means the middleware did not run or the
// token lacks identity; reject with 401 before any service call.
func ctxActor(c echo.Context) (ports.Actor, error) {
	role, _ := c.Get("role").(string)
	id, _ := c.Get("user_id").(int)
	if role == "" || id == 0 {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("name").(string)
	return ports.Actor{ID: id, Name: name, Role: role}, nil
}

// ctxToken returns the raw bearer token the Auth middleware saw.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get("token").(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return token, nil
}
