package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	credentialsTable = "credentials"

	columnUserID          = "user_id"
	columnEncryptedSecret = "encrypted_secret"
	columnCreatedAt       = "created_at"
	columnUpdatedAt       = "updated_at"
)

// upsertCredentialSuffix keeps created_at of an existing row. Both SQLite
// (3.24+) and PostgreSQL understand the excluded pseudo-table.
const upsertCredentialSuffix = `ON CONFLICT (user_id) DO UPDATE SET
	encrypted_secret = excluded.encrypted_secret,
	updated_at = excluded.updated_at`

func buildUpsertCredentialQuery(b sq.StatementBuilderType, userID int64, encryptedSecret string, now time.Time) (string, []any, error) {
	return b.Insert(credentialsTable).
		Columns(columnUserID, columnEncryptedSecret, columnCreatedAt, columnUpdatedAt).
		Values(userID, encryptedSecret, now, now).
		Suffix(upsertCredentialSuffix).
		ToSql()
}

func buildSelectCredentialQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(columnEncryptedSecret).
		From(credentialsTable).
		Where(sq.Eq{columnUserID: userID}).
		ToSql()
}

func buildDeleteCredentialQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(credentialsTable).
		Where(sq.Eq{columnUserID: userID}).
		ToSql()
}

func buildExistsCredentialQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("1").
		From(credentialsTable).
		Where(sq.Eq{columnUserID: userID}).
		Limit(1).
		ToSql()
}
