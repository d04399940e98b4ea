package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var insightSelect = []string{"id", "content", "mood", "author", "likes", "views", "featured", "created_at"}

type insightRepo struct {
	drv *entsql.Driver
}

func (r *insightRepo) Create(ctx context.Context, in Insight) (*Insight, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return nil, ErrInvalidInsight
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	in.CreatedAt = in.CreatedAt.UTC()

	q, args := entsql.Dialect(dialect.SQLite).
		Insert(tableInsights).
		Columns(insightSelect...).
		Values(in.ID, in.Content, in.Mood, in.Author, in.Likes, in.Views, in.Featured, in.CreatedAt).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		return nil, fmt.Errorf("save insight: %w", err)
	}
	return &in, nil
}

func (r *insightRepo) Get(ctx context.Context, id string) (*Insight, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(insightSelect...).
		From(entsql.Table(tableInsights)).
		Where(entsql.EQ("id", id))

	out, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query insight %s: %w", id, err)
	}
	if len(out) == 0 {
		return nil, ErrInsightNotFound
	}
	return &out[0], nil
}

func (r *insightRepo) List(ctx context.Context, f InsightFilter) ([]Insight, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(insightSelect...).
		From(entsql.Table(tableInsights)).
		OrderBy(entsql.Desc("created_at"))

	if f.Mood != "" {
		sel = sel.Where(entsql.EQ("mood", f.Mood))
	}
	if f.Author != "" {
		sel = sel.Where(entsql.EQ("author", f.Author))
	}
	if f.Featured != nil {
		sel = sel.Where(entsql.EQ("featured", *f.Featured))
	}
	if f.Limit > 0 {
		sel = sel.Limit(f.Limit)
	}

	out, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}
	return out, nil
}

func (r *insightRepo) Like(ctx context.Context, id string) (*Insight, error) {
	return r.increment(ctx, id, "likes")
}

func (r *insightRepo) View(ctx context.Context, id string) (*Insight, error) {
	return r.increment(ctx, id, "views")
}

func (r *insightRepo) increment(ctx context.Context, id, column string) (*Insight, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Update(tableInsights).
		Add(column, 1).
		Where(entsql.EQ("id", id)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		return nil, fmt.Errorf("increment %s: %w", column, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("increment %s: %w", column, err)
	}
	if n == 0 {
		return nil, ErrInsightNotFound
	}
	return r.Get(ctx, id)
}

func (r *insightRepo) query(ctx context.Context, sel *entsql.Selector) ([]Insight, error) {
	q, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Insight
	for rows.Next() {
		var in Insight
		if err := rows.Scan(&in.ID, &in.Content, &in.Mood, &in.Author, &in.Likes, &in.Views, &in.Featured, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan insight: %w", err)
		}
		out = append(out, in)
	}
	return out, rows.Err()
}
