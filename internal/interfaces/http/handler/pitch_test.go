package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"pitchcraft-ai-api/internal/domain/entity"
	"pitchcraft-ai-api/internal/interfaces/http/dto"
)

func newPitchTestRouter(userID string, h *PitchHandler) *gin.Engine {
	r := gin.New()
	r.Use(setUser(userID))
	r.POST("/v1/pitches/generate", h.Generate)
	r.GET("/v1/pitches", h.List)
	r.PUT("/v1/pitches/:id", h.Update)
	r.POST("/v1/pitches/feedback", h.CreateFeedback)
	r.GET("/v1/pitches/:id/feedback", h.ListFeedback)
	return r
}

func seedPitch(t *testing.T, repo *fakePitchRepo, ownerID, industry string, pitchType entity.PitchType, text string, createdAt time.Time) *entity.Pitch {
	t.Helper()
	p := &entity.Pitch{
		OwnerID:     ownerID,
		StartupName: "EcoGrow",
		Industry:    industry,
		PitchType:   pitchType,
		VariantKind: entity.VariantFormal,
		Text:        text,
		CreatedAt:   createdAt,
	}
	if err := repo.CreateBatch(context.Background(), []*entity.Pitch{p}); err != nil {
		t.Fatalf("seed pitch: %v", err)
	}
	return p
}

func TestGenerateValidationErrors(t *testing.T) {
	h := NewPitchHandler(nil, newFakePitchRepo(), &fakeFeedbackRepo{}, nil)
	r := newPitchTestRouter("owner-1", h)

	body := `{"industry":"Agritech","pitch_type":"investor","problem":"too short"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pitches/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("expected error detail with field map")
	}
	if got := resp.Error.Fields["startup_name"]; got != "Startup Name is required" {
		t.Errorf("startup_name error = %q", got)
	}
	if got := resp.Error.Fields["problem"]; got != "Problem must be at least 10 characters" {
		t.Errorf("problem error = %q", got)
	}
}

func TestGenerateRejectsMalformedBody(t *testing.T) {
	h := NewPitchHandler(nil, newFakePitchRepo(), &fakeFeedbackRepo{}, nil)
	r := newPitchTestRouter("owner-1", h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pitches/generate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestListPitches(t *testing.T) {
	repo := newFakePitchRepo()
	now := time.Now()
	seedPitch(t, repo, "owner-1", "Agritech", entity.PitchTypeInvestor, "older pitch", now.Add(-time.Minute))
	seedPitch(t, repo, "owner-1", "Fintech", entity.PitchTypeElevator, strings.Repeat("x", 150), now)
	seedPitch(t, repo, "owner-2", "Fintech", entity.PitchTypeInvestor, "other owner", now)

	h := NewPitchHandler(nil, repo, &fakeFeedbackRepo{}, nil)
	r := newPitchTestRouter("owner-1", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pitches", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp dto.Response[[]*dto.PitchDTO]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("got %d pitches, want 2", len(resp.Data))
	}
	if resp.Data[0].Industry != "Fintech" {
		t.Errorf("expected newest first, got %q", resp.Data[0].Industry)
	}
	// 超长正文在列表中被截断
	if len([]rune(resp.Data[0].Preview)) != 103 || !strings.HasSuffix(resp.Data[0].Preview, "...") {
		t.Errorf("preview = %q", resp.Data[0].Preview)
	}

	// 过滤条件透传
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pitches?industry=Agritech&pitch_type=investor", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal filtered: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Industry != "Agritech" {
		t.Errorf("filtered result = %+v", resp.Data)
	}
}

func TestUpdatePitch(t *testing.T) {
	repo := newFakePitchRepo()
	p := seedPitch(t, repo, "owner-1", "Agritech", entity.PitchTypeInvestor, "original", time.Now())

	h := NewPitchHandler(nil, repo, &fakeFeedbackRepo{}, nil)
	r := newPitchTestRouter("owner-1", h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/pitches/"+p.ID, strings.NewReader(`{"text":"edited"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp dto.Response[*dto.PitchDTO]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.Text != "edited" {
		t.Errorf("text = %q", resp.Data.Text)
	}
}

func TestUpdatePitchNotFound(t *testing.T) {
	h := NewPitchHandler(nil, newFakePitchRepo(), &fakeFeedbackRepo{}, nil)
	r := newPitchTestRouter("owner-1", h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/pitches/missing", strings.NewReader(`{"text":"edited"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCreateFeedback(t *testing.T) {
	repo := newFakePitchRepo()
	feedbackRepo := &fakeFeedbackRepo{}
	p := seedPitch(t, repo, "owner-1", "Agritech", entity.PitchTypeInvestor, "pitch", time.Now())

	h := NewPitchHandler(nil, repo, feedbackRepo, nil)
	r := newPitchTestRouter("owner-1", h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pitches/feedback",
		strings.NewReader(`{"pitch_id":"`+p.ID+`","text":"needs more numbers"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if len(feedbackRepo.feedbacks) != 1 || feedbackRepo.feedbacks[0].OwnerID != "owner-1" {
		t.Errorf("stored feedbacks = %+v", feedbackRepo.feedbacks)
	}
}

func TestCreateFeedbackCrossOwner(t *testing.T) {
	repo := newFakePitchRepo()
	p := seedPitch(t, repo, "owner-1", "Agritech", entity.PitchTypeInvestor, "pitch", time.Now())

	h := NewPitchHandler(nil, repo, &fakeFeedbackRepo{}, nil)
	r := newPitchTestRouter("owner-2", h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pitches/feedback",
		strings.NewReader(`{"pitch_id":"`+p.ID+`","text":"sneaky"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// 他人的路演稿按不存在处理
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestListFeedback(t *testing.T) {
	repo := newFakePitchRepo()
	feedbackRepo := &fakeFeedbackRepo{}
	p := seedPitch(t, repo, "owner-1", "Agritech", entity.PitchTypeInvestor, "pitch", time.Now())
	for _, text := range []string{"note one", "note two"} {
		if err := feedbackRepo.Create(context.Background(), &entity.Feedback{PitchID: p.ID, OwnerID: "owner-1", Text: text}); err != nil {
			t.Fatalf("seed feedback: %v", err)
		}
	}

	h := NewPitchHandler(nil, repo, feedbackRepo, nil)
	r := newPitchTestRouter("owner-1", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pitches/"+p.ID+"/feedback", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp dto.Response[[]*dto.FeedbackDTO]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("got %d feedbacks, want 2", len(resp.Data))
	}
}
