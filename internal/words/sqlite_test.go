package words

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/woxirdle/assets"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db), mock
}

func TestStore_Words(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT word FROM words WHERE kind=? ORDER BY id`)).
		WithArgs(KindAnswer).
		WillReturnRows(sqlmock.NewRows([]string{"word"}).AddRow("crane").AddRow("slate"))

	got, err := st.Words(context.Background(), KindAnswer)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Lists(t *testing.T) {
	t.Run("both groups", func(t *testing.T) {
		st, mock := newMockStore(t)
		mock.ExpectQuery("SELECT word FROM words").WithArgs(KindAnswer).
			WillReturnRows(sqlmock.NewRows([]string{"word"}).AddRow("crane"))
		mock.ExpectQuery("SELECT word FROM words").WithArgs(KindAllowed).
			WillReturnRows(sqlmock.NewRows([]string{"word"}).AddRow("soare").AddRow("raise"))

		answers, allowed, err := st.Lists(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"crane"}, answers)
		assert.Equal(t, []string{"soare", "raise"}, allowed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		st, mock := newMockStore(t)
		mock.ExpectQuery("SELECT word FROM words").WithArgs(KindAnswer).
			WillReturnError(errors.New("disk I/O error"))

		_, _, err := st.Lists(context.Background())
		assert.ErrorContains(t, err, "query answers")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Add(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		st, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT OR IGNORE INTO words").WithArgs("crane", KindAnswer).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT OR IGNORE INTO words").WithArgs("slate", KindAnswer).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		require.NoError(t, st.Add(context.Background(), KindAnswer, "crane", "slate"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on failure", func(t *testing.T) {
		st, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT OR IGNORE INTO words").WithArgs("crane", KindAnswer).
			WillReturnError(errors.New("constraint failed"))
		mock.ExpectRollback()

		err := st.Add(context.Background(), KindAnswer, "crane")
		assert.ErrorContains(t, err, "insert crane")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Seed(t *testing.T) {
	t.Run("non-empty store is left alone", func(t *testing.T) {
		st, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(1) FROM words`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		require.NoError(t, st.Seed(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty store gets embedded lists", func(t *testing.T) {
		answers, err := assets.Answers()
		require.NoError(t, err)
		allowed, err := assets.Allowed()
		require.NoError(t, err)

		st, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(1) FROM words`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		for _, group := range []struct {
			kind  string
			words []string
		}{{KindAnswer, answers}, {KindAllowed, allowed}} {
			mock.ExpectBegin()
			for _, w := range group.words {
				mock.ExpectExec("INSERT OR IGNORE INTO words").WithArgs(w, group.kind).
					WillReturnResult(sqlmock.NewResult(1, 1))
			}
			mock.ExpectCommit()
		}

		require.NoError(t, st.Seed(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLiteOnDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "words.db")

	t.Run("migrate twice", func(t *testing.T) {
		db, err := OpenDB(path)
		require.NoError(t, err)
		defer db.Close()

		require.NoError(t, Migrate(db))
		require.NoError(t, Migrate(db))

		n, err := NewStore(db).Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("load seeds then reuses", func(t *testing.T) {
		first, err := Load(ctx, Options{DBPath: path})
		require.NoError(t, err)
		assert.Equal(t, "sqlite:"+path, first.Source)

		answers, err := assets.Answers()
		require.NoError(t, err)
		assert.Equal(t, len(answers), first.Answers.Len())
		assert.True(t, first.Allowed.IsValid(first.Answers.At(0)))

		second, err := Load(ctx, Options{DBPath: path})
		require.NoError(t, err)
		assert.Equal(t, first.Answers.Words(), second.Answers.Words())
		assert.Equal(t, first.Allowed.Words(), second.Allowed.Words())
	})

	t.Run("added words survive reopen", func(t *testing.T) {
		db, err := OpenDB(path)
		require.NoError(t, err)
		st := NewStore(db)
		require.NoError(t, st.Add(ctx, KindAnswer, "quilt", "quilt"))
		require.NoError(t, db.Close())

		l, err := Load(ctx, Options{DBPath: path})
		require.NoError(t, err)
		assert.True(t, l.Answers.IsValid("quilt"))
		assert.True(t, l.Allowed.IsValid("quilt"))
	})
}
