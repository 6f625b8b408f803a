package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aulapro_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func firmarToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("firmando token: %v", err)
	}
	return signed
}

func appProtegida(extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/protegida", handlers...)
	return app
}

func TestAuthMiddleware(t *testing.T) {
	configs.JWTSecret = "secreto-de-prueba"
	app := appProtegida()

	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name       string
		authHeader string
		cookie     string
		wantStatus int
	}{
		{
			name:       "sin token",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name: "token válido en header",
			authHeader: "Bearer " + firmarToken(t, configs.JWTSecret, jwt.MapClaims{
				"user_id": "u1", "role": RoleLectura, "exp": exp,
			}),
			wantStatus: fiber.StatusOK,
		},
		{
			name: "token válido en cookie",
			cookie: firmarToken(t, configs.JWTSecret, jwt.MapClaims{
				"user_id": "u1", "exp": exp,
			}),
			wantStatus: fiber.StatusOK,
		},
		{
			name: "firma con otro secreto",
			authHeader: "Bearer " + firmarToken(t, "otro-secreto", jwt.MapClaims{
				"user_id": "u1", "exp": exp,
			}),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name: "token expirado",
			authHeader: "Bearer " + firmarToken(t, configs.JWTSecret, jwt.MapClaims{
				"user_id": "u1", "exp": time.Now().Add(-time.Hour).Unix(),
			}),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name: "sin user_id",
			authHeader: "Bearer " + firmarToken(t, configs.JWTSecret, jwt.MapClaims{
				"exp": exp,
			}),
			wantStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protegida", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestOnlyAdminGafetes(t *testing.T) {
	configs.JWTSecret = "secreto-de-prueba"
	app := appProtegida(OnlyAdminGafetes())
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		role       string
		wantStatus int
	}{
		{role: RoleOwner, wantStatus: fiber.StatusOK},
		{role: RoleAdminGafetes, wantStatus: fiber.StatusOK},
		{role: RoleLectura, wantStatus: fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			token := firmarToken(t, configs.JWTSecret, jwt.MapClaims{
				"user_id": "u1", "role": tt.role, "exp": exp,
			})
			req := httptest.NewRequest("GET", "/protegida", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("role %s: status = %d, want %d", tt.role, resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
