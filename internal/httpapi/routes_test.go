package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/chaLords/sudokugen/pkg/config"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := &config.Config{
		JWTSecret: "test-secret-key-at-least-32-chars-long",
		DefaultK:  3,
	}
	RegisterRoutes(r, c)
	return r
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("expected status ok, got %v", response["status"])
	}
}

func TestGenerateHandlerExplicitK(t *testing.T) {
	router := setupRouter()

	body, _ := json.Marshal(generateRequest{K: 2})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp generateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Grid) != 4 {
		t.Errorf("expected a 4x4 grid for k=2, got %d rows", len(resp.Grid))
	}
	if resp.Token == "" {
		t.Error("expected a non-empty session token")
	}
}

func TestGenerateHandlerRejectsOutOfRangeK(t *testing.T) {
	router := setupRouter()

	body, _ := json.Marshal(generateRequest{K: 99})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestGenerateHandlerRejectsUnknownDifficulty(t *testing.T) {
	router := setupRouter()

	body, _ := json.Marshal(generateRequest{K: 2, Difficulty: "impossible"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestValidateHandlerAcceptsLegalGrid(t *testing.T) {
	router := setupRouter()

	grid := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	body, _ := json.Marshal(validateRequest{Grid: grid})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["valid"] != true {
		t.Errorf("expected valid=true, got %v", resp["valid"])
	}
}

func TestValidateHandlerRejectsConflict(t *testing.T) {
	router := setupRouter()

	grid := [][]int{
		{1, 1, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	body, _ := json.Marshal(validateRequest{Grid: grid})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["valid"] != false {
		t.Errorf("expected valid=false for a row conflict, got %v", resp["valid"])
	}
}

func TestSessionStartAndVerifyRoundTrip(t *testing.T) {
	router := setupRouter()

	body, _ := json.Marshal(sessionStartRequest{K: 3, Difficulty: "medium"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/session/start", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var startResp map[string]string
	json.Unmarshal(w.Body.Bytes(), &startResp)
	token := startResp["token"]
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/api/session/"+token, nil)
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected status 200 verifying a fresh token, got %d: %s", w2.Code, w2.Body.String())
	}

	var session SessionToken
	json.Unmarshal(w2.Body.Bytes(), &session)
	if session.K != 3 || session.Difficulty != "medium" {
		t.Errorf("unexpected session contents: %+v", session)
	}
}

func TestSessionVerifyRejectsGarbageToken(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/session/not-a-real-token", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 for a garbage token, got %d", w.Code)
	}
}
