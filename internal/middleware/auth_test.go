package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testSecret   = "test-secret"
	testAudience = "authenticated"
	testUserID   = "0190f0a0-1234-7abc-8def-0123456789ab"
)

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func validClaims() *Claims {
	return &Claims{
		Email: "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   testUserID,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func setupAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(testSecret, testAudience))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(UserIDKey)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongAudience := validClaims()
	wrongAudience.Audience = jwt.ClaimStrings{"anon"}

	badSubject := validClaims()
	badSubject.Subject = "42"

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"valid", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()), http.StatusOK, ""},
		{"lowercase_scheme", "bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()), http.StatusOK, ""},
		{"missing_header", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"wrong_scheme", "Basic abc", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"garbage", "Bearer not-a-token", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"wrong_secret", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims()), http.StatusUnauthorized, "INVALID_TOKEN"},
		{"wrong_algorithm", "Bearer " + signToken(t, jwt.SigningMethodHS384, []byte(testSecret), validClaims()), http.StatusUnauthorized, "INVALID_TOKEN"},
		{"expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired), http.StatusUnauthorized, "INVALID_TOKEN"},
		{"no_expiry", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry), http.StatusUnauthorized, "INVALID_TOKEN"},
		{"wrong_audience", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), wrongAudience), http.StatusUnauthorized, "INVALID_TOKEN"},
		{"subject_not_uuid", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), badSubject), http.StatusUnauthorized, "INVALID_TOKEN"},
	}

	router := setupAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if code := errorCode(t, rec); code != tt.wantCode {
					t.Errorf("error code = %q, want %q", code, tt.wantCode)
				}
				return
			}
			if got, _ := parseBody(t, rec)["user_id"].(string); got != testUserID {
				t.Errorf("user_id = %q, want %q", got, testUserID)
			}
		})
	}
}
