package postgres

import (
	"context"
	"errors"
	"testing"

	"pitchcraft-ai-api/internal/domain/entity"
	apperrors "pitchcraft-ai-api/pkg/errors"
)

func TestIndustryRepositorySeedAndListVisible(t *testing.T) {
	repo := NewIndustryRepository(newTestClient(t))
	ctx := context.Background()

	if err := repo.SeedDefaults(ctx, entity.DefaultIndustries); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	ownerID := "owner-1"
	if err := repo.Create(ctx, &entity.Industry{Name: "Spacetech", OwnerID: &ownerID}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	otherID := "owner-2"
	if err := repo.Create(ctx, &entity.Industry{Name: "Legaltech", OwnerID: &otherID}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// 默认行业 + 自建行业可见，他人自建不可见
	visible, err := repo.ListVisible(ctx, ownerID)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if len(visible) != len(entity.DefaultIndustries)+1 {
		t.Fatalf("got %d industries, want %d", len(visible), len(entity.DefaultIndustries)+1)
	}
	for _, ind := range visible {
		if ind.Name == "Legaltech" {
			t.Error("other owner's industry should not be visible")
		}
	}
}

func TestIndustryRepositoryCreateConflict(t *testing.T) {
	repo := NewIndustryRepository(newTestClient(t))
	ctx := context.Background()

	if err := repo.SeedDefaults(ctx, entity.DefaultIndustries); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	// 与系统默认同名
	ownerID := "owner-1"
	err := repo.Create(ctx, &entity.Industry{Name: "Fintech", OwnerID: &ownerID})
	if !errors.Is(err, apperrors.ErrIndustryConflict) {
		t.Errorf("duplicate of default: err = %v, want ErrIndustryConflict", err)
	}

	// 与其它用户的自建同名
	if err := repo.Create(ctx, &entity.Industry{Name: "Spacetech", OwnerID: &ownerID}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	otherID := "owner-2"
	err = repo.Create(ctx, &entity.Industry{Name: "Spacetech", OwnerID: &otherID})
	if !errors.Is(err, apperrors.ErrIndustryConflict) {
		t.Errorf("duplicate across owners: err = %v, want ErrIndustryConflict", err)
	}
}

func TestIndustryRepositorySeedDefaultsIdempotent(t *testing.T) {
	repo := NewIndustryRepository(newTestClient(t))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.SeedDefaults(ctx, entity.DefaultIndustries); err != nil {
			t.Fatalf("SeedDefaults run %d: %v", i, err)
		}
	}

	visible, err := repo.ListVisible(ctx, "anyone")
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if len(visible) != len(entity.DefaultIndustries) {
		t.Errorf("got %d industries after reseed, want %d", len(visible), len(entity.DefaultIndustries))
	}
}
