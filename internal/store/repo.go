package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
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

// LLMRequestEvent is a stored LLM call.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM calls per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// ModuleKind distinguishes fresh generations from revisions.
type ModuleKind string

const (
	ModuleGenerated ModuleKind = "generate"
	ModuleRevised   ModuleKind = "revise"
)

// ModuleEventData is one generated or revised lesson plan.
type ModuleEventData struct {
	Kind        ModuleKind
	ParentUUID  string // the module a revision was derived from
	Title       string
	Subject     string
	Topic       string
	GradeLevel  string
	Instruction string // revision instruction, empty for generations
	Content     string // Markdown
	RequestJSON string // lesson request snapshot, empty for revisions
}

// ModuleEvent is a stored module.
type ModuleEvent struct {
	ID        int
	UUID      string
	Sequence  int64
	Timestamp time.Time
	ModuleEventData
}

// ModuleRepo stores and reads back generated modules.
type ModuleRepo interface {
	// AppendModule stores a module and returns it with its assigned id.
	AppendModule(ctx context.Context, data ModuleEventData) (*ModuleEvent, error)

	// GetModule returns the module with the given UUID or UUID prefix,
	// or nil if none matches.
	GetModule(ctx context.Context, id string) (*ModuleEvent, error)

	// ListModules returns modules newest first.
	ListModules(ctx context.Context, opts QueryOpts) ([]ModuleEvent, error)

	// LatestModule returns the newest module, or nil if none exist.
	LatestModule(ctx context.Context) (*ModuleEvent, error)
}
