package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-cyr-records/internal/logger"
	"github.com/MKhiriev/go-cyr-records/models"
)

func newTestFlashRepo(t *testing.T) (FlashRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	return NewFlashRepository(&DB{DB: db, logger: l}, l), mock, db
}

func TestSaveFlash_Success(t *testing.T) {
	repo, mock, db := newTestFlashRepo(t)
	defer db.Close()

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectExec("REPLACE INTO flash").
		WithArgs(singletonRowID, "Запись создана", models.FlashSuccess, at).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveFlash(context.Background(), models.Flash{Message: "Запись создана", Kind: models.FlashSuccess, At: at})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveFlash_DBError(t *testing.T) {
	repo, mock, db := newTestFlashRepo(t)
	defer db.Close()

	mock.ExpectExec("REPLACE INTO flash").WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveFlash(context.Background(), models.Flash{Message: "x"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestPopFlash_Success(t *testing.T) {
	repo, mock, db := newTestFlashRepo(t)
	defer db.Close()

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT message, kind, at FROM flash WHERE id = ?").
		WithArgs(singletonRowID).
		WillReturnRows(sqlmock.NewRows([]string{"message", "kind", "at"}).AddRow("Готово", "info", at))
	mock.ExpectExec("DELETE FROM flash WHERE id = ?").
		WithArgs(singletonRowID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	flash, ok, err := repo.PopFlash(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a pending flash")
	}
	if flash.Message != "Готово" || flash.Kind != "info" || !flash.At.Equal(at) {
		t.Errorf("unexpected flash: %+v", flash)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPopFlash_Empty(t *testing.T) {
	repo, mock, db := newTestFlashRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT message, kind, at FROM flash").
		WillReturnRows(sqlmock.NewRows([]string{"message", "kind", "at"}))
	mock.ExpectRollback()

	_, ok, err := repo.PopFlash(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no pending flash")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPopFlash_BeginError(t *testing.T) {
	repo, mock, db := newTestFlashRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	_, _, err := repo.PopFlash(context.Background())
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestPopFlash_DeleteError(t *testing.T) {
	repo, mock, db := newTestFlashRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT message, kind, at FROM flash").
		WillReturnRows(sqlmock.NewRows([]string{"message", "kind", "at"}).AddRow("m", "info", time.Now()))
	mock.ExpectExec("DELETE FROM flash").WillReturnError(errors.New("readonly database"))
	mock.ExpectRollback()

	_, ok, err := repo.PopFlash(context.Background())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if ok {
		t.Error("flash must not be reported as consumed")
	}
}

func TestPopFlash_CommitError(t *testing.T) {
	repo, mock, db := newTestFlashRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT message, kind, at FROM flash").
		WillReturnRows(sqlmock.NewRows([]string{"message", "kind", "at"}).AddRow("m", "info", time.Now()))
	mock.ExpectExec("DELETE FROM flash").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("busy"))

	_, _, err := repo.PopFlash(context.Background())
	if !errors.Is(err, ErrCommitingTransaction) {
		t.Fatalf("expected ErrCommitingTransaction, got %v", err)
	}
}
