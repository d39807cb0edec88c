package handler

import (
	"net/http"
	"testing"

	"aquamanager/internal/model"
	"aquamanager/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTokenEndpoint(t *testing.T) {
	s := newServer(t)
	tok := bearer(t, model.RoleClerk)["Authorization"][len("Bearer "):]

	status, raw := s.do(t, call{method: http.MethodPost, path: "/api/v1/auth/validate-token", headers: map[string]string{}, body: map[string]string{"token": tok}})
	require.Equal(t, http.StatusOK, status, string(raw))
	resp := decode[map[string]interface{}](t, raw)
	assert.Equal(t, true, resp["valid"])
	assert.Equal(t, model.RoleClerk, resp["role"])

	status, _ = s.do(t, call{method: http.MethodPost, path: "/api/v1/auth/validate-token", headers: map[string]string{}, body: map[string]string{"token": "garbage"}})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(t, call{method: http.MethodPost, path: "/api/v1/auth/validate-token", headers: map[string]string{}, body: map[string]string{}})
	assert.Equal(t, http.StatusBadRequest, status)

	noExpiry, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, &jwt.Claims{
		Role:             model.RoleService,
		RegisteredClaims: gojwt.RegisteredClaims{Subject: "forever", Issuer: "aquamanager"},
	}).SignedString([]byte(apiKey))
	require.NoError(t, err)
	status, raw = s.do(t, call{method: http.MethodPost, path: "/api/v1/auth/validate-token", headers: map[string]string{}, body: map[string]string{"token": noExpiry}})
	assert.Equal(t, http.StatusUnauthorized, status, string(raw))
}

func TestMeAndRoles(t *testing.T) {
	s := newServer(t)

	status, raw := s.do(t, call{method: http.MethodGet, path: "/api/v1/auth/me"})
	require.Equal(t, http.StatusOK, status)
	me := decode[map[string]interface{}](t, raw)
	assert.Equal(t, model.RoleService, me["role"])

	status, raw = s.do(t, call{method: http.MethodGet, path: "/api/v1/roles", headers: bearer(t, model.RoleViewer)})
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]model.Role](t, raw), len(model.DefaultRoles))

	status, raw = s.do(t, call{method: http.MethodGet, path: "/api/v1/privileges"})
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]model.Privilege](t, raw), len(model.DefaultPrivileges))
}
