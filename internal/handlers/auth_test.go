package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthtrack/internal/apperr"
	"healthtrack/internal/models"
	"healthtrack/internal/service"
)

func TestAuthHandlers_RegisterAndLogin(t *testing.T) {
	auth := &mockAuth{
		registerUser: &models.User{ID: "u1", Email: "a@b.com", UserName: "alice"},
		loginRes:     &service.AuthResult{AccessToken: "tok123", User: &models.User{ID: "u1"}},
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	// register success → 201 with envelope
	body := bytes.NewBufferString(`{"email":"a@b.com","userName":"alice","firstName":"Alice","lastName":"Smith","password":"secret1"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["success"] != true {
		t.Fatalf("expected success=true, got %v", m["success"])
	}
	data := m["data"].(map[string]any)
	if data["id"] != "u1" {
		t.Fatalf("expected data.id=u1, got %v", data["id"])
	}
	if auth.lastRegister.Email != "a@b.com" {
		t.Fatalf("register params not forwarded: %+v", auth.lastRegister)
	}

	// login success
	body = bytes.NewBufferString(`{"email":"a@b.com","password":"secret1"}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	data = m["data"].(map[string]any)
	if data["accessToken"] != "tok123" {
		t.Fatalf("expected accessToken tok123, got %v", data["accessToken"])
	}

	// login invalid body → 400
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}
}

func TestAuthHandlers_RegisterConflict(t *testing.T) {
	auth := &mockAuth{registerErr: apperr.Conflict("User already exists")}
	r := newTestRouter(&service.Service{Authorization: auth})

	body := bytes.NewBufferString(`{"email":"a@b.com","userName":"alice","firstName":"Alice","lastName":"Smith","password":"secret1"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["success"] != false || m["message"] != "User already exists" {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
}

func TestAuthHandlers_LoginUnauthorizedIsGeneric(t *testing.T) {
	auth := &mockAuth{loginErr: apperr.Unauthorized("Invalid credentials")}
	r := newTestRouter(&service.Service{Authorization: auth})

	body := bytes.NewBufferString(`{"email":"a@b.com","password":"wrong"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["message"] != msgUnauthorized {
		t.Fatalf("expected generic message, got %v", m["message"])
	}
}

func TestAuthHandlers_Refresh(t *testing.T) {
	auth := &mockAuth{refreshRes: &service.AuthResult{AccessToken: "fresh", User: &models.User{ID: "u1"}}}
	r := newTestRouter(&service.Service{Authorization: auth})

	// token taken from the Authorization header when the body is empty
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer old-token")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("refresh status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["data"].(map[string]any)["accessToken"] != "fresh" {
		t.Fatalf("unexpected refresh body: %s", w.Body.String())
	}
}
