package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthtrack/internal/models"
	"healthtrack/internal/service"
)

func TestArticleHandlers_ListIsPublic(t *testing.T) {
	articles := &mockArticles{list: []models.Article{{ID: "a1", Title: "Sleep basics"}}, listTotal: 11}
	r := newTestRouter(&service.Service{Articles: articles})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/article/?page=1&limit=10&category=SLEEP", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if articles.lastList.Category != "SLEEP" {
		t.Fatalf("category filter not forwarded: %+v", articles.lastList)
	}

	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	p := m["pagination"].(map[string]any)
	if int(p["totalPages"].(float64)) != 2 || p["hasNextPage"] != true {
		t.Fatalf("unexpected pagination: %v", p)
	}
}

func TestArticleHandlers_MutationsRequireAdmin(t *testing.T) {
	payload := `{"title":"Eating well","publishDate":"2026-08-01","content":"some article content here"}`

	t.Run("anonymous", func(t *testing.T) {
		r := newTestRouter(&service.Service{Articles: &mockArticles{}})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/article/", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("regular user", func(t *testing.T) {
		auth := &mockAuth{parseClaims: userClaims("u1", models.RoleUser)}
		r := newTestRouter(&service.Service{Authorization: auth, Articles: &mockArticles{}})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/article/", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin", func(t *testing.T) {
		auth := &mockAuth{parseClaims: userClaims("a1", models.RoleAdmin)}
		articles := &mockArticles{createRes: &models.Article{ID: "a1", Title: "Eating well"}}
		r := newTestRouter(&service.Service{Authorization: auth, Articles: articles})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/article/", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body=%s)", w.Code, w.Body.String())
		}
	})
}
