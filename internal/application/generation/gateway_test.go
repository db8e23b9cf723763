package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"pitchcraft-ai-api/internal/domain/entity"
	"pitchcraft-ai-api/internal/domain/repository"
	apperrors "pitchcraft-ai-api/pkg/errors"
)

// fakeChatModel 返回固定内容的 ChatModel
type fakeChatModel struct {
	content string
	err     error
	calls   int
}

func (m *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &schema.Message{Role: schema.Assistant, Content: m.content}, nil
}

func (m *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

// fakeModelProvider 直接返回注入的 ChatModel
type fakeModelProvider struct {
	model einomodel.BaseChatModel
	err   error
}

func (p *fakeModelProvider) Default(ctx context.Context) (einomodel.BaseChatModel, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.model, nil
}

func (p *fakeModelProvider) DefaultModelName() (provider, model string) {
	return "groq", "test-model"
}

// fakePitchRepo 记录落库内容的内存仓储
type fakePitchRepo struct {
	created   []*entity.Pitch
	createErr error
}

func (r *fakePitchRepo) CreateBatch(_ context.Context, pitches []*entity.Pitch) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, pitches...)
	return nil
}

func (r *fakePitchRepo) ListByOwner(context.Context, string, repository.PitchFilter) ([]*entity.Pitch, error) {
	return nil, nil
}

func (r *fakePitchRepo) GetByIDForOwner(context.Context, string, string) (*entity.Pitch, error) {
	return nil, nil
}

func (r *fakePitchRepo) UpdateText(context.Context, string, string, string) (*entity.Pitch, error) {
	return nil, nil
}

func validRequest() *Request {
	return &Request{
		StartupName: "EcoGrow",
		Industry:    "Agritech",
		Problem:     "Farmers lack data on soil health",
		Solution:    "IoT sensors with ML recommendations",
		Audience:    "Small farm owners",
		PitchType:   "investor",
	}
}

func TestGatewayGeneratePersistsThreeVariants(t *testing.T) {
	model := &fakeChatModel{
		content: `[
			{"type":"formal","text":"A formal pitch."},
			{"type":"storytelling","text":"A story pitch."},
			{"type":"data-driven","text":"A data pitch."}
		]`,
	}
	repo := &fakePitchRepo{}
	g := NewGateway(&fakeModelProvider{model: model}, repo)

	pitches, err := g.Generate(context.Background(), "owner-1", validRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if model.calls != 1 {
		t.Errorf("model called %d times, want 1", model.calls)
	}
	if len(pitches) != 3 || len(repo.created) != 3 {
		t.Fatalf("got %d returned / %d persisted, want 3 / 3", len(pitches), len(repo.created))
	}

	seen := make(map[entity.VariantKind]bool)
	for _, p := range repo.created {
		if p.OwnerID != "owner-1" {
			t.Errorf("owner = %q", p.OwnerID)
		}
		if p.StartupName != "EcoGrow" || p.Industry != "Agritech" || p.PitchType != entity.PitchTypeInvestor {
			t.Errorf("request metadata not stamped: %+v", p)
		}
		if p.Audience != "Small farm owners" {
			t.Errorf("audience = %q", p.Audience)
		}
		seen[p.VariantKind] = true
	}
	for _, kind := range entity.AllVariantKinds {
		if !seen[kind] {
			t.Errorf("variant kind %q missing from persisted set", kind)
		}
	}
}

func TestGatewayGenerateValidationStopsBeforeLLM(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing startup name", func(r *Request) { r.StartupName = "" }},
		{"invalid pitch type", func(r *Request) { r.PitchType = "keynote" }},
		{"short problem", func(r *Request) { r.Problem = "too short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &fakeChatModel{content: "[]"}
			repo := &fakePitchRepo{}
			g := NewGateway(&fakeModelProvider{model: model}, repo)

			req := validRequest()
			tt.mutate(req)

			_, err := g.Generate(context.Background(), "owner-1", req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeValidationFailed {
				t.Errorf("error code = %q, want %q", appErr.Code, apperrors.CodeValidationFailed)
			}
			if model.calls != 0 {
				t.Error("model should not be called on validation failure")
			}
			if len(repo.created) != 0 {
				t.Error("nothing should be persisted on validation failure")
			}
		})
	}
}

func TestGatewayGenerateLLMFailureNothingPersisted(t *testing.T) {
	repo := &fakePitchRepo{}
	g := NewGateway(&fakeModelProvider{model: &fakeChatModel{err: errors.New("upstream timeout")}}, repo)

	_, err := g.Generate(context.Background(), "owner-1", validRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeLLMCallFailed {
		t.Errorf("error code = %q, want %q", appErr.Code, apperrors.CodeLLMCallFailed)
	}
	if len(repo.created) != 0 {
		t.Errorf("persisted %d pitches on LLM failure, want 0", len(repo.created))
	}
}

func TestGatewayGenerateFallbackOnNonJSON(t *testing.T) {
	model := &fakeChatModel{content: strings.Repeat("plain prose ", 50)}
	repo := &fakePitchRepo{}
	g := NewGateway(&fakeModelProvider{model: model}, repo)

	pitches, err := g.Generate(context.Background(), "owner-1", validRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pitches) != 3 {
		t.Fatalf("got %d pitches, want 3", len(pitches))
	}
	for i, p := range pitches {
		if !strings.HasSuffix(p.Text, "...") {
			t.Errorf("pitch %d missing fallback truncation marker", i)
		}
	}
}

func TestGatewayGenerateStoreErrorSurfaced(t *testing.T) {
	model := &fakeChatModel{
		content: `[{"type":"formal","text":"a"},{"type":"storytelling","text":"b"},{"type":"data-driven","text":"c"}]`,
	}
	storeErr := apperrors.New(apperrors.CodeDatabaseError, "insert failed")
	g := NewGateway(&fakeModelProvider{model: model}, &fakePitchRepo{createErr: storeErr})

	_, err := g.Generate(context.Background(), "owner-1", validRequest())
	if !errors.Is(err, storeErr) {
		t.Errorf("error = %v, want store error surfaced", err)
	}
}
