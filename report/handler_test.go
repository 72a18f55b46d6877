package report

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockAI struct {
	lastSystem string
	lastPrompt string
	fail       bool
}

func (m *mockAI) StreamMessage(ctx context.Context, system, prompt string) (<-chan string, error) {
	if m.fail {
		return nil, context.DeadlineExceeded
	}
	m.lastSystem = system
	m.lastPrompt = prompt
	ch := make(chan string, 2)
	ch <- "summary "
	ch <- "text"
	close(ch)
	return ch, nil
}

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func postJSON(r *gin.Engine, path string, body map[string]any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyze_ok(t *testing.T) {
	r := setupRouter(NewHandler(&mockAI{}))

	w := postJSON(r, "/report/analyze", map[string]any{
		"text": "Hemoglobin: 9 g/dL, WBC: 2.1, Neutrophil 40%",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Report struct {
			Panel struct {
				WBC struct {
					Value *float64 `json:"value"`
				} `json:"wbc"`
			} `json:"panel"`
			RiskFlags   []map[string]any `json:"risk_flags"`
			HealthIndex struct {
				Value float64 `json:"value"`
			} `json:"health_index"`
			Advisory struct {
				SampleMenu []string `json:"sample_menu"`
			} `json:"dietary_advisory"`
		} `json:"report"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Report.Panel.WBC.Value == nil || *resp.Report.Panel.WBC.Value != 2.1 {
		t.Errorf("wbc = %+v, want 2.1", resp.Report.Panel.WBC.Value)
	}
	if len(resp.Report.RiskFlags) == 0 {
		t.Error("expected risk flags in response")
	}
	if len(resp.Report.Advisory.SampleMenu) == 0 {
		t.Error("expected sample menu in response")
	}
}

// Empty text is tolerated: the engine answers with its baseline result.
func TestAnalyze_emptyTextBaseline(t *testing.T) {
	r := setupRouter(NewHandler(&mockAI{}))

	w := postJSON(r, "/report/analyze", map[string]any{"text": ""})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Report struct {
			HealthIndex struct {
				Value float64 `json:"value"`
			} `json:"health_index"`
		} `json:"report"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Report.HealthIndex.Value != 65 {
		t.Errorf("baseline health index = %g, want 65", resp.Report.HealthIndex.Value)
	}
}

func TestAnalyze_invalidBody(t *testing.T) {
	r := setupRouter(NewHandler(&mockAI{}))

	req := httptest.NewRequest(http.MethodPost, "/report/analyze", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAnalyze_capsLongText(t *testing.T) {
	r := setupRouter(NewHandler(&mockAI{}))

	long := strings.Repeat("x", MaxReportChars+500) + " Hemoglobin: 9"
	w := postJSON(r, "/report/analyze", map[string]any{"text": long})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	// The label sits past the cap, so it must not have been extracted.
	var resp struct {
		Report struct {
			Panel struct {
				Hemoglobin struct {
					Value *float64 `json:"value"`
				} `json:"hemoglobin"`
			} `json:"panel"`
		} `json:"report"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Report.Panel.Hemoglobin.Value != nil {
		t.Error("text beyond the cap was still analyzed")
	}
}

func TestSummary_streamsSSE(t *testing.T) {
	mk := &mockAI{}
	r := setupRouter(NewHandler(mk))

	w := postJSON(r, "/report/summary", map[string]any{
		"text": "Hemoglobin: 9 g/dL",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "data: summary ") || !strings.Contains(body, "data: [DONE]") {
		t.Errorf("unexpected sse body:\n%s", body)
	}
	if !strings.Contains(mk.lastPrompt, "anemia") {
		t.Errorf("prompt sent to the generation service missing findings:\n%s", mk.lastPrompt)
	}
	if !strings.Contains(mk.lastSystem, "oncology dietitian") {
		t.Errorf("system preamble not applied: %q", mk.lastSystem)
	}
}

func TestSummary_generationUnavailable(t *testing.T) {
	r := setupRouter(NewHandler(&mockAI{fail: true}))

	w := postJSON(r, "/report/summary", map[string]any{"text": "WBC 7800"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}
