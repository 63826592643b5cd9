package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ErrAmbiguousID is returned when a short id matches more than one module.
var ErrAmbiguousID = errors.New("module id prefix matches more than one module")

// ModuleStore implements ModuleRepo.
type ModuleStore struct {
	db  *sql.DB
	seq *sequenceCounter
}

var _ ModuleRepo = (*ModuleStore)(nil)

var moduleSelectColumns = []string{
	"id", "uuid", "sequence", "timestamp", "kind", "parent_uuid", "title",
	"subject", "topic", "grade_level", "instruction", "content", "request_json",
}

func (r *ModuleStore) AppendModule(ctx context.Context, data ModuleEventData) (*ModuleEvent, error) {
	if data.Kind == "" {
		data.Kind = ModuleGenerated
	}
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	ev := &ModuleEvent{
		UUID:            uuid.NewString(),
		Sequence:        seqNum,
		Timestamp:       time.Now().UTC(),
		ModuleEventData: data,
	}

	query, args := builder.Insert(moduleEventsTable.Name).
		Columns(moduleSelectColumns[1:]...).
		Values(
			ev.UUID,
			ev.Sequence,
			ev.Timestamp,
			string(data.Kind),
			data.ParentUUID,
			data.Title,
			data.Subject,
			data.Topic,
			data.GradeLevel,
			data.Instruction,
			data.Content,
			data.RequestJSON,
		).
		Returning("id").
		Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&ev.ID); err != nil {
		return nil, fmt.Errorf("save module event: %w", err)
	}
	return ev, nil
}

func (r *ModuleStore) GetModule(ctx context.Context, id string) (*ModuleEvent, error) {
	if id == "" {
		return nil, nil
	}
	query, args := builder.Select(moduleSelectColumns...).
		From(builder.Table(moduleEventsTable.Name)).
		Where(entsql.HasPrefix("uuid", id)).
		OrderBy(entsql.Desc("sequence")).
		Limit(2).
		Query()

	mods, err := r.queryModules(ctx, query, args)
	if err != nil {
		return nil, err
	}
	switch len(mods) {
	case 0:
		return nil, nil
	case 1:
		return &mods[0], nil
	}
	// An exact match wins over a longer id that shares the prefix.
	for i := range mods {
		if mods[i].UUID == id {
			return &mods[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrAmbiguousID, id)
}

func (r *ModuleStore) ListModules(ctx context.Context, opts QueryOpts) ([]ModuleEvent, error) {
	sel := builder.Select(moduleSelectColumns...).
		From(builder.Table(moduleEventsTable.Name)).
		OrderBy(entsql.Desc("sequence"))
	query, args := applyRange(sel, opts).Query()
	return r.queryModules(ctx, query, args)
}

func (r *ModuleStore) LatestModule(ctx context.Context) (*ModuleEvent, error) {
	mods, err := r.ListModules(ctx, QueryOpts{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(mods) == 0 {
		return nil, nil
	}
	return &mods[0], nil
}

func (r *ModuleStore) queryModules(ctx context.Context, query string, args []any) ([]ModuleEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query modules: %w", err)
	}
	defer rows.Close()

	var out []ModuleEvent
	for rows.Next() {
		var m ModuleEvent
		var kind string
		err := rows.Scan(
			&m.ID, &m.UUID, &m.Sequence, &m.Timestamp, &kind, &m.ParentUUID, &m.Title,
			&m.Subject, &m.Topic, &m.GradeLevel, &m.Instruction, &m.Content, &m.RequestJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		m.Kind = ModuleKind(kind)
		out = append(out, m)
	}
	return out, rows.Err()
}
