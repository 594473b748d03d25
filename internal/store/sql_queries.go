package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cyr-records/models"
)

const (
	flashTable   = "flash"
	sessionTable = "session"

	// both tables keep a single row under this id
	singletonRowID = 1
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func saveFlashQuery(flash models.Flash) (string, []any, error) {
	return builder.Replace(flashTable).
		Columns("id", "message", "kind", "at").
		Values(singletonRowID, flash.Message, flash.Kind, flash.At).
		ToSql()
}

func selectFlashQuery() (string, []any, error) {
	return builder.Select("message", "kind", "at").
		From(flashTable).
		Where(sq.Eq{"id": singletonRowID}).
		ToSql()
}

func deleteSingletonQuery(table string) (string, []any, error) {
	return builder.Delete(table).
		Where(sq.Eq{"id": singletonRowID}).
		ToSql()
}

func saveSessionQuery(snapshot models.SessionSnapshot, record []byte) (string, []any, error) {
	return builder.Replace(sessionTable).
		Columns("id", "token", "record", "updated_at").
		Values(singletonRowID, snapshot.Token, string(record), snapshot.UpdatedAt).
		ToSql()
}

func selectSessionQuery() (string, []any, error) {
	return builder.Select("token", "record", "updated_at").
		From(sessionTable).
		Where(sq.Eq{"id": singletonRowID}).
		ToSql()
}
