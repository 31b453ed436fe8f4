package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/st10068763/APDS-PEO/internal/auth"
)

func newProtectedRouter(issuer *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(issuer), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	issuer := auth.NewTokenIssuer([]byte("unit-test-signing-secret"), time.Hour)
	token, err := issuer.Issue("usr-abc123", "alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	expired, err := auth.NewTokenIssuer([]byte("unit-test-signing-secret"), -time.Minute).Issue("usr-abc123", "alice")
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"valid bearer token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"malformed header", "Bearer", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"tampered token", "Bearer " + token + "x", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newProtectedRouter(issuer)
			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestValidateRequest_PaymentTags(t *testing.T) {
	type paymentFields struct {
		AccountNumber string `validate:"required,accnum"`
		SwiftCode     string `validate:"required,swift"`
	}

	if errs := ValidateRequest(paymentFields{AccountNumber: "1234567890", SwiftCode: "BOFAUS3NXXX"}); errs != nil {
		t.Errorf("expected valid payment fields, got %+v", errs)
	}

	errs := ValidateRequest(paymentFields{AccountNumber: "12345", SwiftCode: "BOFAUS3N"})
	if len(errs) != 2 {
		t.Fatalf("expected 2 validation errors, got %+v", errs)
	}
	if errs[0].Message != "Account number must be 10 digits" {
		t.Errorf("unexpected account number message %q", errs[0].Message)
	}
	if errs[1].Message != "SWIFT code must be 11 characters" {
		t.Errorf("unexpected SWIFT message %q", errs[1].Message)
	}
}
