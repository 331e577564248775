package db

import (
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/stridehq/stride/internal/models"
)

func newUserRepositoryFixture(t *testing.T) *UserRepository {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "stride-users.db")
	database := openSQLiteForTest(t, databasePath)
	return NewUserRepository(database)
}

func TestFindByNormalizedEmailMatchesCaseAndWhitespace(t *testing.T) {
	users := newUserRepositoryFixture(t)

	user := models.User{Email: "  Casey@Example.COM ", PasswordHash: "hash"}
	if err := users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	found, err := users.FindByNormalizedEmail("casey@example.com")
	if err != nil {
		t.Fatalf("find by normalized email: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, found.ID)
	}

	if _, err := users.FindByNormalizedEmail("nobody@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestExistsByNormalizedEmail(t *testing.T) {
	users := newUserRepositoryFixture(t)

	if err := users.Create(&models.User{Email: "taken@example.com", PasswordHash: "hash"}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	exists, err := users.ExistsByNormalizedEmail("taken@example.com")
	if err != nil {
		t.Fatalf("exists check: %v", err)
	}
	if !exists {
		t.Fatal("expected the email to be taken")
	}

	exists, err = users.ExistsByNormalizedEmail("fresh@example.com")
	if err != nil {
		t.Fatalf("exists check: %v", err)
	}
	if exists {
		t.Fatal("expected the email to be free")
	}
}

func TestFindByID(t *testing.T) {
	users := newUserRepositoryFixture(t)

	user := models.User{Email: "id@example.com", PasswordHash: "hash", DisplayName: "Casey"}
	if err := users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	found, err := users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found.DisplayName != "Casey" {
		t.Fatalf("expected display name Casey, got %q", found.DisplayName)
	}

	if _, err := users.FindByID(999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}
