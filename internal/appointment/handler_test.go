// AngelaMos | 2026
// handler_test.go

package appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/frontdesk/internal/middleware"
)

// asUser stands in for the authenticator and stamps fixed claims onto every
// request, so the role gates under test see a signed-in caller.
func asUser(claims *middleware.SessionClaims) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx = context.WithValue(ctx, middleware.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, middleware.UserRoleKey, claims.Role)
			ctx = context.WithValue(ctx, middleware.UserEmailKey, claims.Email)
			ctx = context.WithValue(ctx, middleware.UserNameKey, claims.Name)
			ctx = context.WithValue(ctx, middleware.ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestRouter(t *testing.T, claims *middleware.SessionClaims) chi.Router {
	t.Helper()

	handler := NewHandler(newTestService(t))
	router := chi.NewRouter()
	handler.RegisterRoutes(router, asUser(claims), middleware.RequireAdmin)
	return router
}

func TestBookRequiresStudentRole(t *testing.T) {
	body := `{"teacherId":"tea1","datetime":"2026-09-10 10:00"}`

	for _, role := range []string{"teacher", "member", "user", "admin"} {
		router := newTestRouter(t, &middleware.SessionClaims{
			UserID: "acct-" + role,
			Role:   role,
			Name:   "Not A Student",
		})

		req := httptest.NewRequest(
			http.MethodPost,
			"/appointments",
			strings.NewReader(body),
		)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code, "role %s", role)
	}
}

func TestBookAsStudentRecordsCaller(t *testing.T) {
	router := newTestRouter(t, &middleware.SessionClaims{
		UserID: "stu1",
		Role:   "student",
		Name:   "Sam Student",
	})

	req := httptest.NewRequest(
		http.MethodPost,
		"/appointments",
		strings.NewReader(`{"teacherId":"tea1","datetime":"2026-09-10 10:00"}`),
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"studentId":"stu1"`)
	require.Contains(t, rec.Body.String(), `"Sam Student"`)
}
