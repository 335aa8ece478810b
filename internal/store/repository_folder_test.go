package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/models"
)

func newTestFolderRepo(t *testing.T) (*folderRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &folderRepository{
		db:     &DB{DB: db, logger: l, errorClassifier: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func testFolder() models.Folder {
	userID := "user-1"
	return models.Folder{
		ID:        "folder-1",
		UserID:    &userID,
		Name:      "2.encryptedname|iv|mac",
		CreatedAt: "2025-01-02T03:04:05.000Z",
		UpdatedAt: "2025-01-02T03:04:05.000Z",
	}
}

func TestCreateFolder_Success(t *testing.T) {
	repo, mock, db := newTestFolderRepo(t)
	defer db.Close()

	folder := testFolder()

	mock.ExpectExec("INSERT INTO folders").
		WithArgs(folder.ID, folder.UserID, folder.Name, folder.CreatedAt, folder.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateFolder(context.Background(), folder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetFolder_NotFound(t *testing.T) {
	repo, mock, db := newTestFolderRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM folders").
		WithArgs("missing", "user-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetFolder(context.Background(), "missing", "user-1")
	if !errors.Is(err, ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
}

func TestGetAllFolders_Success(t *testing.T) {
	repo, mock, db := newTestFolderRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "created_at", "updated_at"}).
		AddRow("folder-1", "user-1", "2.name1|iv|mac", "2025-01-01T00:00:00.000Z", "2025-01-01T00:00:00.000Z").
		AddRow("folder-2", "user-1", "2.name2|iv|mac", "2025-01-02T00:00:00.000Z", "2025-01-02T00:00:00.000Z")

	mock.ExpectQuery("SELECT (.+) FROM folders").
		WithArgs("user-1").
		WillReturnRows(rows)

	folders, err := repo.GetAllFolders(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(folders) != 2 {
		t.Fatalf("expected 2 folders, got %d", len(folders))
	}
}

func TestUpdateFolder_PreservesCreatedAt(t *testing.T) {
	repo, mock, db := newTestFolderRepo(t)
	defer db.Close()

	folder := testFolder()
	folder.Name = "2.renamed|iv|mac"
	folder.UpdatedAt = "2025-03-01T00:00:00.000Z"

	rows := sqlmock.NewRows([]string{"created_at"}).AddRow("2025-01-02T03:04:05.000Z")

	mock.ExpectQuery("UPDATE folders").
		WithArgs(folder.ID, folder.UserID, folder.Name, folder.UpdatedAt).
		WillReturnRows(rows)

	updated, err := repo.UpdateFolder(context.Background(), folder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CreatedAt != "2025-01-02T03:04:05.000Z" {
		t.Errorf("expected created_at preserved, got %s", updated.CreatedAt)
	}
}

func TestUpdateFolder_NotFound(t *testing.T) {
	repo, mock, db := newTestFolderRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE folders").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateFolder(context.Background(), testFolder())
	if !errors.Is(err, ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
}

func TestDeleteFolder_DetachesCiphers(t *testing.T) {
	repo, mock, db := newTestFolderRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE ciphers").
		WithArgs("folder-1", "user-1", "2025-03-01T00:00:00.000Z").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM folders").
		WithArgs("folder-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.DeleteFolder(context.Background(), "folder-1", "user-1", "2025-03-01T00:00:00.000Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 affected row, got %d", affected)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteFolder_MissingRowIsZeroRows(t *testing.T) {
	repo, mock, db := newTestFolderRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE ciphers").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM folders").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := repo.DeleteFolder(context.Background(), "missing", "user-1", "2025-03-01T00:00:00.000Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 affected rows, got %d", affected)
	}
}
