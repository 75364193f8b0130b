package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/carbontrade/carboncert/internal/models"
	"github.com/carbontrade/carboncert/internal/service"
)

// newTestRouter wires the router with fake services and a real token issuer
// so requests travel through the full middleware chain.
func newTestRouter(t *testing.T, authSvc *fakeAuthService, certSvc *fakeCertService) (http.Handler, *service.TokenIssuer) {
	t.Helper()
	issuer := service.NewTokenIssuer("test-secret", time.Hour)
	router := NewRouter(
		&AuthHandler{AuthService: authSvc},
		&CertificateHandler{CertificateService: certSvc},
		issuer,
		zap.NewNop(),
	)
	return router, issuer
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t, &fakeAuthService{}, &fakeCertService{})

	cases := []struct {
		method string
		target string
	}{
		{"GET", "/carbon-certificates/my"},
		{"GET", "/carbon-certificates/ownerless"},
		{"PUT", "/carbon-certificates/my"},
		{"POST", "/carbon-certificates"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.target, nil)
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var payload map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
			assert.Equal(t, "Unauthorized", payload["message"])
			assert.Equal(t, float64(401), payload["statusCode"])
		})
	}
}

func TestRouter_BearerTokenGrantsAccess(t *testing.T) {
	certSvc := &fakeCertService{
		mineCerts: []models.CarbonCertificate{
			{ID: 1, Country: "France", Status: models.StatusOwned, Owner: &models.CertificateOwner{ID: 1, Email: "test1@mail.com", Name: "name1"}},
		},
	}
	router, issuer := newTestRouter(t, &fakeAuthService{}, certSvc)

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/carbon-certificates/my", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var certs []models.CarbonCertificate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&certs))
	require.Len(t, certs, 1)
	assert.Equal(t, "France", certs[0].Country)
	require.NotNil(t, certs[0].Owner)
	assert.Equal(t, int64(1), certs[0].Owner.ID)
}

func TestRouter_ExpiredTokenRejected(t *testing.T) {
	router, _ := newTestRouter(t, &fakeAuthService{}, &fakeCertService{})

	expired := service.NewTokenIssuer("test-secret", -time.Minute)
	token, err := expired.Issue(1)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/carbon-certificates/my", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RegisterAndLogin(t *testing.T) {
	authSvc := &fakeAuthService{
		registerUser: &models.User{ID: 1, Email: "test@email.com", Name: "username"},
		loginResult: &service.LoginResult{
			User:        &models.User{ID: 1, Email: "test@email.com", Name: "username"},
			AccessToken: "signed-token",
			ExpiresIn:   3600,
		},
	}
	router, _ := newTestRouter(t, authSvc, &fakeCertService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/authentication/register",
		strings.NewReader(`{"email":"test@email.com","name":"username","password":"password"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/authentication/log-in",
		strings.NewReader(`{"email":"test@email.com","password":"password"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, "signed-token", payload["accessToken"])
	assert.Equal(t, float64(3600), payload["expiresIn"])
}

func TestRouter_RejectsNonJSONContentType(t *testing.T) {
	router, _ := newTestRouter(t, &fakeAuthService{}, &fakeCertService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/authentication/register",
		strings.NewReader(`email=test@email.com`))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}
