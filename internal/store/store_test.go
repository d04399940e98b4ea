package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode stays "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL
		{"busy_timeout", "5000"},
	}
	for _, tt := range tests {
		var got string
		require.NoError(t, s.DB().QueryRow("PRAGMA "+tt.pragma).Scan(&got), tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestOpen_MigrationIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.migrate(context.Background()))
}

func TestInsight_CreateAndGet(t *testing.T) {
	repo := openTestStore(t).InsightRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, Insight{
		Content: "  A bad day is not a bad life.  ",
		Mood:    "hopeful",
		Author:  "sam",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "A bad day is not a bad life.", created.Content)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "A bad day is not a bad life.", got.Content)
	assert.Equal(t, "hopeful", got.Mood)
	assert.Equal(t, "sam", got.Author)
	assert.Zero(t, got.Likes)
	assert.Zero(t, got.Views)
	assert.False(t, got.Featured)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Second)
}

func TestInsight_CreateRejectsEmpty(t *testing.T) {
	repo := openTestStore(t).InsightRepo()
	_, err := repo.Create(context.Background(), Insight{Content: "   "})
	assert.ErrorIs(t, err, ErrInvalidInsight)
}

func TestInsight_GetUnknown(t *testing.T) {
	repo := openTestStore(t).InsightRepo()
	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrInsightNotFound)
}

func TestInsight_ListFiltersAndOrder(t *testing.T) {
	repo := openTestStore(t).InsightRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []Insight{
		{Content: "one", Mood: "calm", Author: "ana", CreatedAt: base},
		{Content: "two", Mood: "hopeful", Author: "ana", Featured: true, CreatedAt: base.Add(time.Minute)},
		{Content: "three", Mood: "calm", Author: "ben", Featured: true, CreatedAt: base.Add(2 * time.Minute)},
		{Content: "four", Mood: "calm", Author: "ben", CreatedAt: base.Add(3 * time.Minute)},
	}
	for _, in := range seed {
		_, err := repo.Create(ctx, in)
		require.NoError(t, err)
	}

	contents := func(ins []Insight) []string {
		var out []string
		for _, in := range ins {
			out = append(out, in.Content)
		}
		return out
	}
	featured := true
	notFeatured := false

	tests := []struct {
		name   string
		filter InsightFilter
		want   []string
	}{
		{"all newest first", InsightFilter{}, []string{"four", "three", "two", "one"}},
		{"mood", InsightFilter{Mood: "calm"}, []string{"four", "three", "one"}},
		{"author", InsightFilter{Author: "ana"}, []string{"two", "one"}},
		{"featured", InsightFilter{Featured: &featured}, []string{"three", "two"}},
		{"not featured", InsightFilter{Featured: &notFeatured}, []string{"four", "one"}},
		{"combined", InsightFilter{Mood: "calm", Author: "ben", Featured: &featured}, []string{"three"}},
		{"limit", InsightFilter{Limit: 2}, []string{"four", "three"}},
		{"no match", InsightFilter{Mood: "angry"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, contents(got))
		})
	}
}

func TestInsight_LikeAndView(t *testing.T) {
	repo := openTestStore(t).InsightRepo()
	ctx := context.Background()

	in, err := repo.Create(ctx, Insight{Content: "Progress, not perfection."})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		got, err := repo.Like(ctx, in.ID)
		require.NoError(t, err)
		assert.Equal(t, i, got.Likes)
	}
	got, err := repo.View(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)
	assert.Equal(t, 3, got.Likes)

	_, err = repo.Like(ctx, "missing")
	assert.ErrorIs(t, err, ErrInsightNotFound)
	_, err = repo.View(ctx, "missing")
	assert.ErrorIs(t, err, ErrInsightNotFound)
}

func TestLLMEvents_AppendAndQuery(t *testing.T) {
	events := openTestStore(t).EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"reframe", "reframe", "other"} {
		require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			InputTokens:  10,
			OutputTokens: 5,
			LatencyMs:    12,
			Success:      true,
			RequestBody:  "[user]\nhello",
			ResponseBody: `{"message":"hi"}`,
		}))
	}

	all, err := events.LLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "other", all[0].Purpose, "newest first")
	assert.Greater(t, all[0].ID, all[1].ID)
	assert.True(t, all[0].Success)
	assert.Equal(t, `{"message":"hi"}`, all[0].ResponseBody)
	assert.False(t, all[0].Timestamp.IsZero())

	reframes, err := events.LLMEvents(ctx, QueryOpts{Purpose: "reframe"})
	require.NoError(t, err)
	assert.Len(t, reframes, 2)

	limited, err := events.LLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	after, err := events.LLMEvents(ctx, QueryOpts{After: all[1].ID})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, all[0].ID, after[0].ID)

	future, err := events.LLMEvents(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)

	one, err := events.LLMEvent(ctx, all[2].ID)
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, all[2].ID, one.ID)
	assert.Equal(t, "[user]\nhello", one.RequestBody)

	missing, err := events.LLMEvent(ctx, all[0].ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &Store{db: db, drv: entsql.OpenDB(dialect.SQLite, db)}, mock
}

func TestInsight_CreateWrapsDriverError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO .insights.").WillReturnError(errors.New("disk I/O error"))

	_, err := s.InsightRepo().Create(context.Background(), Insight{Content: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save insight")
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsight_LikeNoRowsIsNotFound(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("UPDATE .insights.").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := s.InsightRepo().Like(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrInsightNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLLMEvents_QueryError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT .* FROM .llm_request_events.").WillReturnError(errors.New("locked"))

	_, err := s.EventRepo().LLMEvents(context.Background(), QueryOpts{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query LLM events")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("BLOOM_DB", dir+"/custom/bloom.db")
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, dir+"/custom/bloom.db", p)
	assert.DirExists(t, dir+"/custom")

	t.Setenv("BLOOM_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, dir+"/bloom/bloom.db", p)
}
