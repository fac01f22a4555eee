// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/chunk"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/ingestjob"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/predicate"
)

// IngestJobUpdate is the builder for updating IngestJob entities.
type IngestJobUpdate struct {
	config
	hooks    []Hook
	mutation *IngestJobMutation
}

// Where appends a list predicates to the IngestJobUpdate builder.
func (_u *IngestJobUpdate) Where(ps ...predicate.IngestJob) *IngestJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEtag sets the "etag" field.
func (_u *IngestJobUpdate) SetEtag(v string) *IngestJobUpdate {
	_u.mutation.SetEtag(v)
	return _u
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableEtag(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetEtag(*v)
	}
	return _u
}

// ClearEtag clears the value of the "etag" field.
func (_u *IngestJobUpdate) ClearEtag() *IngestJobUpdate {
	_u.mutation.ClearEtag()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *IngestJobUpdate) SetSizeBytes(v int64) *IngestJobUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableSizeBytes(v *int64) *IngestJobUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *IngestJobUpdate) AddSizeBytes(v int64) *IngestJobUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestJobUpdate) SetStatus(v string) *IngestJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableStatus(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *IngestJobUpdate) SetAttempts(v int) *IngestJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableAttempts(v *int) *IngestJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *IngestJobUpdate) AddAttempts(v int) *IngestJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetFailureStage sets the "failure_stage" field.
func (_u *IngestJobUpdate) SetFailureStage(v string) *IngestJobUpdate {
	_u.mutation.SetFailureStage(v)
	return _u
}

// SetNillableFailureStage sets the "failure_stage" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableFailureStage(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetFailureStage(*v)
	}
	return _u
}

// ClearFailureStage clears the value of the "failure_stage" field.
func (_u *IngestJobUpdate) ClearFailureStage() *IngestJobUpdate {
	_u.mutation.ClearFailureStage()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IngestJobUpdate) SetErrorMessage(v string) *IngestJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableErrorMessage(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IngestJobUpdate) ClearErrorMessage() *IngestJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *IngestJobUpdate) SetClaimedAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableClaimedAt(v *time.Time) *IngestJobUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *IngestJobUpdate) ClearClaimedAt() *IngestJobUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestJobUpdate) SetFinishedAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableFinishedAt(v *time.Time) *IngestJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestJobUpdate) ClearFinishedAt() *IngestJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *IngestJobUpdate) SetChunkCount(v int) *IngestJobUpdate {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableChunkCount(v *int) *IngestJobUpdate {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *IngestJobUpdate) AddChunkCount(v int) *IngestJobUpdate {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IngestJobUpdate) SetUpdatedAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_u *IngestJobUpdate) AddChunkIDs(ids ...uuid.UUID) *IngestJobUpdate {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_u *IngestJobUpdate) AddChunks(v ...*Chunk) *IngestJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// Mutation returns the IngestJobMutation object of the builder.
func (_u *IngestJobUpdate) Mutation() *IngestJobMutation {
	return _u.mutation
}

// ClearChunks clears all "chunks" edges to the Chunk entity.
func (_u *IngestJobUpdate) ClearChunks() *IngestJobUpdate {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to Chunk entities by IDs.
func (_u *IngestJobUpdate) RemoveChunkIDs(ids ...uuid.UUID) *IngestJobUpdate {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to Chunk entities.
func (_u *IngestJobUpdate) RemoveChunks(v ...*Chunk) *IngestJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IngestJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ingestjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestJobUpdate) check() error {
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := ingestjob.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "IngestJob.size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := ingestjob.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "IngestJob.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureStage(); ok {
		if err := ingestjob.FailureStageValidator(v); err != nil {
			return &ValidationError{Name: "failure_stage", err: fmt.Errorf(`ent: validator failed for field "IngestJob.failure_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChunkCount(); ok {
		if err := ingestjob.ChunkCountValidator(v); err != nil {
			return &ValidationError{Name: "chunk_count", err: fmt.Errorf(`ent: validator failed for field "IngestJob.chunk_count": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestjob.Table, ingestjob.Columns, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Etag(); ok {
		_spec.SetField(ingestjob.FieldEtag, field.TypeString, value)
	}
	if _u.mutation.EtagCleared() {
		_spec.ClearField(ingestjob.FieldEtag, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(ingestjob.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(ingestjob.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(ingestjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(ingestjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureStage(); ok {
		_spec.SetField(ingestjob.FieldFailureStage, field.TypeString, value)
	}
	if _u.mutation.FailureStageCleared() {
		_spec.ClearField(ingestjob.FieldFailureStage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ingestjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(ingestjob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(ingestjob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(ingestjob.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(ingestjob.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ingestjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestjob.ChunksTable,
			Columns: []string{ingestjob.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestjob.ChunksTable,
			Columns: []string{ingestjob.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestjob.ChunksTable,
			Columns: []string{ingestjob.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestJobUpdateOne is the builder for updating a single IngestJob entity.
type IngestJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestJobMutation
}

// SetEtag sets the "etag" field.
func (_u *IngestJobUpdateOne) SetEtag(v string) *IngestJobUpdateOne {
	_u.mutation.SetEtag(v)
	return _u
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableEtag(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetEtag(*v)
	}
	return _u
}

// ClearEtag clears the value of the "etag" field.
func (_u *IngestJobUpdateOne) ClearEtag() *IngestJobUpdateOne {
	_u.mutation.ClearEtag()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *IngestJobUpdateOne) SetSizeBytes(v int64) *IngestJobUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableSizeBytes(v *int64) *IngestJobUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *IngestJobUpdateOne) AddSizeBytes(v int64) *IngestJobUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestJobUpdateOne) SetStatus(v string) *IngestJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableStatus(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *IngestJobUpdateOne) SetAttempts(v int) *IngestJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableAttempts(v *int) *IngestJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *IngestJobUpdateOne) AddAttempts(v int) *IngestJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetFailureStage sets the "failure_stage" field.
func (_u *IngestJobUpdateOne) SetFailureStage(v string) *IngestJobUpdateOne {
	_u.mutation.SetFailureStage(v)
	return _u
}

// SetNillableFailureStage sets the "failure_stage" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableFailureStage(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetFailureStage(*v)
	}
	return _u
}

// ClearFailureStage clears the value of the "failure_stage" field.
func (_u *IngestJobUpdateOne) ClearFailureStage() *IngestJobUpdateOne {
	_u.mutation.ClearFailureStage()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IngestJobUpdateOne) SetErrorMessage(v string) *IngestJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableErrorMessage(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *IngestJobUpdateOne) ClearErrorMessage() *IngestJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *IngestJobUpdateOne) SetClaimedAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableClaimedAt(v *time.Time) *IngestJobUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *IngestJobUpdateOne) ClearClaimedAt() *IngestJobUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestJobUpdateOne) SetFinishedAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableFinishedAt(v *time.Time) *IngestJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestJobUpdateOne) ClearFinishedAt() *IngestJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *IngestJobUpdateOne) SetChunkCount(v int) *IngestJobUpdateOne {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableChunkCount(v *int) *IngestJobUpdateOne {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *IngestJobUpdateOne) AddChunkCount(v int) *IngestJobUpdateOne {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IngestJobUpdateOne) SetUpdatedAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_u *IngestJobUpdateOne) AddChunkIDs(ids ...uuid.UUID) *IngestJobUpdateOne {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_u *IngestJobUpdateOne) AddChunks(v ...*Chunk) *IngestJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// Mutation returns the IngestJobMutation object of the builder.
func (_u *IngestJobUpdateOne) Mutation() *IngestJobMutation {
	return _u.mutation
}

// ClearChunks clears all "chunks" edges to the Chunk entity.
func (_u *IngestJobUpdateOne) ClearChunks() *IngestJobUpdateOne {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to Chunk entities by IDs.
func (_u *IngestJobUpdateOne) RemoveChunkIDs(ids ...uuid.UUID) *IngestJobUpdateOne {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to Chunk entities.
func (_u *IngestJobUpdateOne) RemoveChunks(v ...*Chunk) *IngestJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// Where appends a list predicates to the IngestJobUpdate builder.
func (_u *IngestJobUpdateOne) Where(ps ...predicate.IngestJob) *IngestJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestJobUpdateOne) Select(field string, fields ...string) *IngestJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestJob entity.
func (_u *IngestJobUpdateOne) Save(ctx context.Context) (*IngestJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestJobUpdateOne) SaveX(ctx context.Context) *IngestJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IngestJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ingestjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestJobUpdateOne) check() error {
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := ingestjob.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "IngestJob.size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := ingestjob.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "IngestJob.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureStage(); ok {
		if err := ingestjob.FailureStageValidator(v); err != nil {
			return &ValidationError{Name: "failure_stage", err: fmt.Errorf(`ent: validator failed for field "IngestJob.failure_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChunkCount(); ok {
		if err := ingestjob.ChunkCountValidator(v); err != nil {
			return &ValidationError{Name: "chunk_count", err: fmt.Errorf(`ent: validator failed for field "IngestJob.chunk_count": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestJobUpdateOne) sqlSave(ctx context.Context) (_node *IngestJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestjob.Table, ingestjob.Columns, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestjob.FieldID)
		for _, f := range fields {
			if !ingestjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Etag(); ok {
		_spec.SetField(ingestjob.FieldEtag, field.TypeString, value)
	}
	if _u.mutation.EtagCleared() {
		_spec.ClearField(ingestjob.FieldEtag, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(ingestjob.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(ingestjob.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(ingestjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(ingestjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureStage(); ok {
		_spec.SetField(ingestjob.FieldFailureStage, field.TypeString, value)
	}
	if _u.mutation.FailureStageCleared() {
		_spec.ClearField(ingestjob.FieldFailureStage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ingestjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(ingestjob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(ingestjob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(ingestjob.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(ingestjob.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ingestjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestjob.ChunksTable,
			Columns: []string{ingestjob.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestjob.ChunksTable,
			Columns: []string{ingestjob.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestjob.ChunksTable,
			Columns: []string{ingestjob.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IngestJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
