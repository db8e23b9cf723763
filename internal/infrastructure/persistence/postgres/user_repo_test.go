package postgres

import (
	"context"
	"testing"

	"pitchcraft-ai-api/internal/domain/entity"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(newTestClient(t))
	ctx := context.Background()

	user := entity.NewUser("founder@ecogrow.io", "Alex")
	if err := user.SetPassword("correct-horse"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Email != "founder@ecogrow.io" {
		t.Fatalf("GetByID = %+v", got)
	}
	if !got.CheckPassword("correct-horse") {
		t.Error("stored hash should verify original password")
	}
	if got.CheckPassword("wrong") {
		t.Error("wrong password should not verify")
	}

	got, err = repo.GetByEmail(ctx, "founder@ecogrow.io")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Fatalf("GetByEmail = %+v", got)
	}

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetByEmail missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown email")
	}

	exists, err := repo.ExistsByEmail(ctx, "founder@ecogrow.io")
	if err != nil {
		t.Fatalf("ExistsByEmail: %v", err)
	}
	if !exists {
		t.Error("expected email to exist")
	}
}
