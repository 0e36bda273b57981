package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"spendview/internal/models"
	"spendview/internal/pagination"
	"spendview/internal/testutil"
)

func TestDoAttachesHeaders(t *testing.T) {
	backend := testutil.NewBackend(t)

	var gotAuth, gotContentType, gotRequestID string
	backend.Handle("GET /budgets/getuserbudgets", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode([]models.Budget{})
	})

	client := NewClient(backend.URL)
	ctx := WithRequestID(context.Background(), "req-123")
	_, err := client.UserBudgets(ctx, "tok-abc")
	_ = err

	if gotAuth != "Bearer tok-abc" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}
	if gotRequestID != "req-123" {
		t.Errorf("expected request id forwarded, got %q", gotRequestID)
	}
}

func TestPaginatedExpenses(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle("GET /expenses/getpaginateduserexpenses", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pageNumber") != "2" || r.URL.Query().Get("pageSize") != "5" {
			t.Errorf("unexpected pagination query: %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": 1, "title": "Groceries", "amount": 42.5, "date": "2024-01-15T00:00:00", "category": map[string]any{"id": 1, "name": "Food"}},
				{"id": 2, "title": "Bus ticket", "amount": 3, "date": "2024-01-16"},
			},
			"totalRecords": 12,
			"pageNumber":   2,
			"pageSize":     5,
			"totalPages":   3,
		})
	})

	client := NewClient(backend.URL)
	result, err := client.PaginatedExpenses(context.Background(), "tok", pagination.PageRequest{Page: 2, PageSize: 5})
	testutil.AssertNoError(t, err)

	if result.TotalRecords != 12 || result.TotalPages != 3 {
		t.Errorf("unexpected envelope: %+v", result)
	}
	if len(result.Data) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(result.Data))
	}

	first := result.Data[0]
	if first.Title != "Groceries" || first.Amount != 42.5 {
		t.Errorf("unexpected expense: %+v", first)
	}
	if first.Category == nil || first.Category.Name != "Food" {
		t.Errorf("expected category Food, got %+v", first.Category)
	}
	if want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC); !first.Date.Equal(want) {
		t.Errorf("expected offset-less date parsed, got %v", first.Date)
	}
	if result.Data[1].Category != nil {
		t.Error("expected absent category to stay nil")
	}
}

func TestErrorMapping(t *testing.T) {
	t.Run("transport_failure_is_network_error", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1")
		_, err := client.UserBudgets(context.Background(), "tok")
		testutil.AssertAppError(t, err, "NETWORK_ERROR")
	})

	t.Run("server_detail_wins_over_fallback", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		backend.Handle("POST /budgets/createbudget", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "End date must be after start date"})
		})

		client := NewClient(backend.URL)
		_, err := client.CreateBudget(context.Background(), "tok", models.BudgetInsert{})
		testutil.AssertAppError(t, err, "SERVER_ERROR")
		if err.Error() != "End date must be after start date" {
			t.Errorf("expected server detail, got %q", err.Error())
		}
	})

	t.Run("plain_text_body_is_used", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		backend.Handle("DELETE /budgets/deletebudget/9", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("Budget not found"))
		})

		client := NewClient(backend.URL)
		err := client.DeleteBudget(context.Background(), "tok", 9)
		if err == nil || err.Error() != "Budget not found" {
			t.Errorf("expected plain text body, got %v", err)
		}
	})

	t.Run("empty_body_uses_fallback", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		backend.Handle("DELETE /expenses/deleteexpense/3", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		client := NewClient(backend.URL)
		err := client.DeleteExpense(context.Background(), "tok", 3)
		if err == nil || err.Error() != "Failed to delete expense" {
			t.Errorf("expected per-operation fallback, got %v", err)
		}
	})

	t.Run("authenticated_401_is_session_expired", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		backend.Handle("GET /budgets/getuserbudgets", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		client := NewClient(backend.URL)
		_, err := client.UserBudgets(context.Background(), "tok")
		testutil.AssertAppError(t, err, "SESSION_EXPIRED")
	})

	t.Run("authenticated_403_is_forbidden", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		backend.Handle("GET /users/getallusers", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		client := NewClient(backend.URL)
		_, err := client.PaginatedUsers(context.Background(), "tok", pagination.PageRequest{Page: 1, PageSize: 10})
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("login_401_is_invalid_credentials", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		backend.Handle("POST /auth/login/access-token", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"title": "Bad credentials"})
		})

		client := NewClient(backend.URL)
		_, err := client.Login(context.Background(), models.Credentials{Username: "x", Password: "y"})
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		if err.Error() != "Bad credentials" {
			t.Errorf("expected server title, got %q", err.Error())
		}
	})

	t.Run("validation_errors_map_is_flattened", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		backend.Handle("POST /users/registeruser", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"title":  "Validation failed",
				"errors": map[string][]string{"Username": {"Username already taken"}},
			})
		})

		client := NewClient(backend.URL)
		_, err := client.Register(context.Background(), models.UserRegister{})
		testutil.AssertAppError(t, err, "REGISTRATION_FAILED")
		if err.Error() != "Username already taken" {
			t.Errorf("expected flattened field error, got %q", err.Error())
		}
	})
}

func TestRegisterSendsNoAuthHeader(t *testing.T) {
	backend := testutil.NewBackend(t)

	var gotAuth string
	backend.Handle("POST /users/registeruser", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(models.User{ID: 1, Username: "new"})
	})

	client := NewClient(backend.URL)
	user, err := client.Register(context.Background(), models.UserRegister{Username: "new"})
	testutil.AssertNoError(t, err)

	if gotAuth != "" {
		t.Errorf("self-registration must not carry an auth header, got %q", gotAuth)
	}
	if user.Username != "new" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestDeleteReturnsNoBody(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle("DELETE /expenses/deleteexpense/5", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	client := NewClient(backend.URL)
	testutil.AssertNoError(t, client.DeleteExpense(context.Background(), "tok", 5))
}
