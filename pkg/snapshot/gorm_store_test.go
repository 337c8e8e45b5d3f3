package snapshot

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mirrorops/cloudiam/pkg/model"
)

func newMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 db,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)

	return NewGormStore(gormDB), mock, db
}

func TestReplaceUsersClearsThenInserts(t *testing.T) {
	store, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM users`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO "users"`).
		WithArgs(
			"AIDA1", "alice", "/", sqlmock.AnyArg(), sqlmock.AnyArg(),
			"AIDA2", "bob", "/ops/", sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	syncedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	err := store.ReplaceUsers([]model.User{
		{UserID: "AIDA1", Name: "alice", Path: "/", SyncedAt: syncedAt},
		{UserID: "AIDA2", Name: "bob", Path: "/ops/", SyncedAt: syncedAt},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceUsersEmptySetOnlyClears(t *testing.T) {
	store, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM users`).
		WillReturnResult(sqlmock.NewResult(0, 5))

	require.NoError(t, store.ReplaceUsers(nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAttachments(t *testing.T) {
	store, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM policy_attachments`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "policy_attachments"`).
		WithArgs("arn:aws:iam::123456789012:policy/deployers", "user", "AIDA1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.ReplaceAttachments([]model.PolicyAttachment{
		{
			PolicyID:      "arn:aws:iam::123456789012:policy/deployers",
			PrincipalKind: "user",
			PrincipalID:   "AIDA1",
		},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSyncRun(t *testing.T) {
	store, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "sync_runs"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 3, 2, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	run := &model.SyncRun{
		StartedAt:   time.Now(),
		FinishedAt:  time.Now(),
		UserCount:   3,
		GroupCount:  2,
		PolicyCount: 4,
	}
	require.NoError(t, store.RecordSyncRun(run))
	require.Equal(t, uint(7), run.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRollsBackOnError(t *testing.T) {
	store, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM users`).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := store.Transaction(func(tx Store) error {
		return tx.ReplaceUsers(nil)
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionCommits(t *testing.T) {
	store, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM users`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM groups`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := store.Transaction(func(tx Store) error {
		if err := tx.ReplaceUsers(nil); err != nil {
			return err
		}
		return tx.ReplaceGroups(nil)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
