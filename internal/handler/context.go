package handler

import (
	"net/http"
	"strconv"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"hizmetpinari/internal/access"
	"hizmetpinari/internal/model"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// actorFromContext resolves the authenticated actor from the JWT placed in
// context by the echo-jwt middleware.
func actorFromContext(c echo.Context) (access.Actor, error) {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return access.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return access.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return access.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	role, ok := claims["role"].(string)
	if !ok || !model.Role(role).Valid() {
		return access.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}

	return access.Actor{ID: uint(userID), Role: model.Role(role)}, nil
}

// idParam parses a numeric path parameter.
func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// pagination parses skip/limit query parameters with defaults.
func pagination(c echo.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.QueryParam("skip"))
	if offset < 0 {
		offset = 0
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return offset, limit
}
