package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	tableInsights  = "insights"
	tableLLMEvents = "llm_request_events"
)

var (
	insightColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString},
		{Name: "mood", Type: field.TypeString, Default: ""},
		{Name: "author", Type: field.TypeString, Default: ""},
		{Name: "likes", Type: field.TypeInt, Default: 0},
		{Name: "views", Type: field.TypeInt, Default: 0},
		{Name: "featured", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}

	insightsTable = &schema.Table{
		Name:       tableInsights,
		Columns:    insightColumns,
		PrimaryKey: []*schema.Column{insightColumns[0]},
		Indexes: []*schema.Index{
			{Name: "insight_created_at", Columns: []*schema.Column{insightColumns[7]}},
			{Name: "insight_mood", Columns: []*schema.Column{insightColumns[2]}},
		},
	}

	llmEventColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Default: ""},
		{Name: "response_body", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}

	llmEventsTable = &schema.Table{
		Name:       tableLLMEvents,
		Columns:    llmEventColumns,
		PrimaryKey: []*schema.Column{llmEventColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llm_event_purpose", Columns: []*schema.Column{llmEventColumns[3]}},
		},
	}

	tables = []*schema.Table{insightsTable, llmEventsTable}
)
