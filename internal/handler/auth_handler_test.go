package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"foodpreorder/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestAdminLoginEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/admin/login",
		`{"username":"admin","password":"password123"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.AdminLoginOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, 24*60*60, out.ExpiresIn)

	//発行されたトークンで管理APIに入れる
	rec = doJSON(e, http.MethodGet, "/admin/orders", "", bearer(out.AccessToken))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminLoginRejectedEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/admin/login",
		`{"username":"admin","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")

	rec = doJSON(e, http.MethodPost, "/admin/login",
		`{"username":"root","password":"password123"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
