package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInsightNotFound is returned for an unknown insight ID.
	ErrInsightNotFound = errors.New("insight not found")

	// ErrInvalidInsight is returned when an insight has no content.
	ErrInvalidInsight = errors.New("insight content is required")
)

// Insight is a short piece of encouragement shared with the community feed.
type Insight struct {
	ID        string    `json:"id" yaml:"id"`
	Content   string    `json:"content" yaml:"content"`
	Mood      string    `json:"mood,omitempty" yaml:"mood,omitempty"`
	Author    string    `json:"author,omitempty" yaml:"author,omitempty"`
	Likes     int       `json:"likes" yaml:"likes"`
	Views     int       `json:"views" yaml:"views"`
	Featured  bool      `json:"featured" yaml:"featured"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

// InsightFilter narrows List. Zero fields do not filter.
type InsightFilter struct {
	Mood     string
	Author   string
	Featured *bool
	Limit    int
}

// InsightRepo persists insights.
type InsightRepo interface {
	// Create stores in. A missing ID or CreatedAt is filled in.
	Create(ctx context.Context, in Insight) (*Insight, error)

	// Get returns the insight with id, or ErrInsightNotFound.
	Get(ctx context.Context, id string) (*Insight, error)

	// List returns matching insights, newest first.
	List(ctx context.Context, f InsightFilter) ([]Insight, error)

	// Like and View increment a counter and return the updated insight.
	Like(ctx context.Context, id string) (*Insight, error)
	View(ctx context.Context, id string) (*Insight, error)
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // id > After
	Purpose string    // exact purpose match
	From    time.Time // created_at >= From
	To      time.Time // created_at <= To
}

// LLMRequestEventData captures a single LLM request.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request.
type LLMRequestEvent struct {
	ID int64
	LLMRequestEventData
	Timestamp time.Time
}

// EventRepo records and queries LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMEvents returns events newest first.
	LLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// LLMEvent returns one event, or nil if id is unknown.
	LLMEvent(ctx context.Context, id int64) (*LLMRequestEvent, error)
}
