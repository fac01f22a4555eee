// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/chunk"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/ingestjob"
)

// IngestJobCreate is the builder for creating a IngestJob entity.
type IngestJobCreate struct {
	config
	mutation *IngestJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBucket sets the "bucket" field.
func (_c *IngestJobCreate) SetBucket(v string) *IngestJobCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetObjectKey sets the "object_key" field.
func (_c *IngestJobCreate) SetObjectKey(v string) *IngestJobCreate {
	_c.mutation.SetObjectKey(v)
	return _c
}

// SetEtag sets the "etag" field.
func (_c *IngestJobCreate) SetEtag(v string) *IngestJobCreate {
	_c.mutation.SetEtag(v)
	return _c
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableEtag(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetEtag(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *IngestJobCreate) SetSizeBytes(v int64) *IngestJobCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableSizeBytes(v *int64) *IngestJobCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *IngestJobCreate) SetStatus(v string) *IngestJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableStatus(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *IngestJobCreate) SetAttempts(v int) *IngestJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableAttempts(v *int) *IngestJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetFailureStage sets the "failure_stage" field.
func (_c *IngestJobCreate) SetFailureStage(v string) *IngestJobCreate {
	_c.mutation.SetFailureStage(v)
	return _c
}

// SetNillableFailureStage sets the "failure_stage" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableFailureStage(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetFailureStage(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *IngestJobCreate) SetErrorMessage(v string) *IngestJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableErrorMessage(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *IngestJobCreate) SetClaimedAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableClaimedAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *IngestJobCreate) SetFinishedAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableFinishedAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetChunkCount sets the "chunk_count" field.
func (_c *IngestJobCreate) SetChunkCount(v int) *IngestJobCreate {
	_c.mutation.SetChunkCount(v)
	return _c
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableChunkCount(v *int) *IngestJobCreate {
	if v != nil {
		_c.SetChunkCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IngestJobCreate) SetCreatedAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableCreatedAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IngestJobCreate) SetUpdatedAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableUpdatedAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IngestJobCreate) SetID(v uuid.UUID) *IngestJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableID(v *uuid.UUID) *IngestJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_c *IngestJobCreate) AddChunkIDs(ids ...uuid.UUID) *IngestJobCreate {
	_c.mutation.AddChunkIDs(ids...)
	return _c
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_c *IngestJobCreate) AddChunks(v ...*Chunk) *IngestJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChunkIDs(ids...)
}

// Mutation returns the IngestJobMutation object of the builder.
func (_c *IngestJobCreate) Mutation() *IngestJobMutation {
	return _c.mutation
}

// Save creates the IngestJob in the database.
func (_c *IngestJobCreate) Save(ctx context.Context) (*IngestJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestJobCreate) SaveX(ctx context.Context) *IngestJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestJobCreate) defaults() {
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := ingestjob.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := ingestjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := ingestjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		v := ingestjob.DefaultChunkCount
		_c.mutation.SetChunkCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ingestjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ingestjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ingestjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestJobCreate) check() error {
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "IngestJob.bucket"`)}
	}
	if v, ok := _c.mutation.Bucket(); ok {
		if err := ingestjob.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "IngestJob.bucket": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectKey(); !ok {
		return &ValidationError{Name: "object_key", err: errors.New(`ent: missing required field "IngestJob.object_key"`)}
	}
	if v, ok := _c.mutation.ObjectKey(); ok {
		if err := ingestjob.ObjectKeyValidator(v); err != nil {
			return &ValidationError{Name: "object_key", err: fmt.Errorf(`ent: validator failed for field "IngestJob.object_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "IngestJob.size_bytes"`)}
	}
	if v, ok := _c.mutation.SizeBytes(); ok {
		if err := ingestjob.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "IngestJob.size_bytes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IngestJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ingestjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "IngestJob.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := ingestjob.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "IngestJob.attempts": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FailureStage(); ok {
		if err := ingestjob.FailureStageValidator(v); err != nil {
			return &ValidationError{Name: "failure_stage", err: fmt.Errorf(`ent: validator failed for field "IngestJob.failure_stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		return &ValidationError{Name: "chunk_count", err: errors.New(`ent: missing required field "IngestJob.chunk_count"`)}
	}
	if v, ok := _c.mutation.ChunkCount(); ok {
		if err := ingestjob.ChunkCountValidator(v); err != nil {
			return &ValidationError{Name: "chunk_count", err: fmt.Errorf(`ent: validator failed for field "IngestJob.chunk_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IngestJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "IngestJob.updated_at"`)}
	}
	return nil
}

func (_c *IngestJobCreate) sqlSave(ctx context.Context) (*IngestJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IngestJobCreate) createSpec() (*IngestJob, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestjob.Table, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(ingestjob.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.ObjectKey(); ok {
		_spec.SetField(ingestjob.FieldObjectKey, field.TypeString, value)
		_node.ObjectKey = value
	}
	if value, ok := _c.mutation.Etag(); ok {
		_spec.SetField(ingestjob.FieldEtag, field.TypeString, value)
		_node.Etag = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(ingestjob.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(ingestjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.FailureStage(); ok {
		_spec.SetField(ingestjob.FieldFailureStage, field.TypeString, value)
		_node.FailureStage = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(ingestjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(ingestjob.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.ChunkCount(); ok {
		_spec.SetField(ingestjob.FieldChunkCount, field.TypeInt, value)
		_node.ChunkCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ingestjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ingestjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ChunksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IngestJob.Create().
//		SetBucket(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IngestJobUpsert) {
//			SetBucket(v+v).
//		}).
//		Exec(ctx)
func (_c *IngestJobCreate) OnConflict(opts ...sql.ConflictOption) *IngestJobUpsertOne {
	_c.conflict = opts
	return &IngestJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IngestJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IngestJobCreate) OnConflictColumns(columns ...string) *IngestJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IngestJobUpsertOne{
		create: _c,
	}
}

type (
	// IngestJobUpsertOne is the builder for "upsert"-ing
	//  one IngestJob node.
	IngestJobUpsertOne struct {
		create *IngestJobCreate
	}

	// IngestJobUpsert is the "OnConflict" setter.
	IngestJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetEtag sets the "etag" field.
func (u *IngestJobUpsert) SetEtag(v string) *IngestJobUpsert {
	u.Set(ingestjob.FieldEtag, v)
	return u
}

// UpdateEtag sets the "etag" field to the value that was provided on create.
func (u *IngestJobUpsert) UpdateEtag() *IngestJobUpsert {
	u.SetExcluded(ingestjob.FieldEtag)
	return u
}

// ClearEtag clears the value of the "etag" field.
func (u *IngestJobUpsert) ClearEtag() *IngestJobUpsert {
	u.SetNull(ingestjob.FieldEtag)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *IngestJobUpsert) SetSizeBytes(v int64) *IngestJobUpsert {
	u.Set(ingestjob.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *IngestJobUpsert) UpdateSizeBytes() *IngestJobUpsert {
	u.SetExcluded(ingestjob.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *IngestJobUpsert) AddSizeBytes(v int64) *IngestJobUpsert {
	u.Add(ingestjob.FieldSizeBytes, v)
	return u
}

// SetStatus sets the "status" field.
func (u *IngestJobUpsert) SetStatus(v string) *IngestJobUpsert {
	u.Set(ingestjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *IngestJobUpsert) UpdateStatus() *IngestJobUpsert {
	u.SetExcluded(ingestjob.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *IngestJobUpsert) SetAttempts(v int) *IngestJobUpsert {
	u.Set(ingestjob.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *IngestJobUpsert) UpdateAttempts() *IngestJobUpsert {
	u.SetExcluded(ingestjob.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *IngestJobUpsert) AddAttempts(v int) *IngestJobUpsert {
	u.Add(ingestjob.FieldAttempts, v)
	return u
}

// SetFailureStage sets the "failure_stage" field.
func (u *IngestJobUpsert) SetFailureStage(v string) *IngestJobUpsert {
	u.Set(ingestjob.FieldFailureStage, v)
	return u
}

// UpdateFailureStage sets the "failure_stage" field to the value that was provided on create.
func (u *IngestJobUpsert) UpdateFailureStage() *IngestJobUpsert {
	u.SetExcluded(ingestjob.FieldFailureStage)
	return u
}

// ClearFailureStage clears the value of the "failure_stage" field.
func (u *IngestJobUpsert) ClearFailureStage() *IngestJobUpsert {
	u.SetNull(ingestjob.FieldFailureStage)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *IngestJobUpsert) SetErrorMessage(v string) *IngestJobUpsert {
	u.Set(ingestjob.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *IngestJobUpsert) UpdateErrorMessage() *IngestJobUpsert {
	u.SetExcluded(ingestjob.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *IngestJobUpsert) ClearErrorMessage() *IngestJobUpsert {
	u.SetNull(ingestjob.FieldErrorMessage)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *IngestJobUpsert) SetClaimedAt(v time.Time) *IngestJobUpsert {
	u.Set(ingestjob.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *IngestJobUpsert) UpdateClaimedAt() *IngestJobUpsert {
	u.SetExcluded(ingestjob.FieldClaimedAt)
	return u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *IngestJobUpsert) ClearClaimedAt() *IngestJobUpsert {
	u.SetNull(ingestjob.FieldClaimedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *IngestJobUpsert) SetFinishedAt(v time.Time) *IngestJobUpsert {
	u.Set(ingestjob.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *IngestJobUpsert) UpdateFinishedAt() *IngestJobUpsert {
	u.SetExcluded(ingestjob.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *IngestJobUpsert) ClearFinishedAt() *IngestJobUpsert {
	u.SetNull(ingestjob.FieldFinishedAt)
	return u
}

// SetChunkCount sets the "chunk_count" field.
func (u *IngestJobUpsert) SetChunkCount(v int) *IngestJobUpsert {
	u.Set(ingestjob.FieldChunkCount, v)
	return u
}

// UpdateChunkCount sets the "chunk_count" field to the value that was provided on create.
func (u *IngestJobUpsert) UpdateChunkCount() *IngestJobUpsert {
	u.SetExcluded(ingestjob.FieldChunkCount)
	return u
}

// AddChunkCount adds v to the "chunk_count" field.
func (u *IngestJobUpsert) AddChunkCount(v int) *IngestJobUpsert {
	u.Add(ingestjob.FieldChunkCount, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IngestJobUpsert) SetUpdatedAt(v time.Time) *IngestJobUpsert {
	u.Set(ingestjob.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IngestJobUpsert) UpdateUpdatedAt() *IngestJobUpsert {
	u.SetExcluded(ingestjob.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.IngestJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ingestjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IngestJobUpsertOne) UpdateNewValues() *IngestJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ingestjob.FieldID)
		}
		if _, exists := u.create.mutation.Bucket(); exists {
			s.SetIgnore(ingestjob.FieldBucket)
		}
		if _, exists := u.create.mutation.ObjectKey(); exists {
			s.SetIgnore(ingestjob.FieldObjectKey)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(ingestjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IngestJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IngestJobUpsertOne) Ignore() *IngestJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IngestJobUpsertOne) DoNothing() *IngestJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IngestJobCreate.OnConflict
// documentation for more info.
func (u *IngestJobUpsertOne) Update(set func(*IngestJobUpsert)) *IngestJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IngestJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetEtag sets the "etag" field.
func (u *IngestJobUpsertOne) SetEtag(v string) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetEtag(v)
	})
}

// UpdateEtag sets the "etag" field to the value that was provided on create.
func (u *IngestJobUpsertOne) UpdateEtag() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateEtag()
	})
}

// ClearEtag clears the value of the "etag" field.
func (u *IngestJobUpsertOne) ClearEtag() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.ClearEtag()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *IngestJobUpsertOne) SetSizeBytes(v int64) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *IngestJobUpsertOne) AddSizeBytes(v int64) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *IngestJobUpsertOne) UpdateSizeBytes() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetStatus sets the "status" field.
func (u *IngestJobUpsertOne) SetStatus(v string) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *IngestJobUpsertOne) UpdateStatus() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *IngestJobUpsertOne) SetAttempts(v int) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *IngestJobUpsertOne) AddAttempts(v int) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *IngestJobUpsertOne) UpdateAttempts() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetFailureStage sets the "failure_stage" field.
func (u *IngestJobUpsertOne) SetFailureStage(v string) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetFailureStage(v)
	})
}

// UpdateFailureStage sets the "failure_stage" field to the value that was provided on create.
func (u *IngestJobUpsertOne) UpdateFailureStage() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateFailureStage()
	})
}

// ClearFailureStage clears the value of the "failure_stage" field.
func (u *IngestJobUpsertOne) ClearFailureStage() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.ClearFailureStage()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *IngestJobUpsertOne) SetErrorMessage(v string) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *IngestJobUpsertOne) UpdateErrorMessage() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *IngestJobUpsertOne) ClearErrorMessage() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *IngestJobUpsertOne) SetClaimedAt(v time.Time) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *IngestJobUpsertOne) UpdateClaimedAt() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *IngestJobUpsertOne) ClearClaimedAt() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.ClearClaimedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *IngestJobUpsertOne) SetFinishedAt(v time.Time) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *IngestJobUpsertOne) UpdateFinishedAt() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *IngestJobUpsertOne) ClearFinishedAt() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetChunkCount sets the "chunk_count" field.
func (u *IngestJobUpsertOne) SetChunkCount(v int) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetChunkCount(v)
	})
}

// AddChunkCount adds v to the "chunk_count" field.
func (u *IngestJobUpsertOne) AddChunkCount(v int) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.AddChunkCount(v)
	})
}

// UpdateChunkCount sets the "chunk_count" field to the value that was provided on create.
func (u *IngestJobUpsertOne) UpdateChunkCount() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateChunkCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IngestJobUpsertOne) SetUpdatedAt(v time.Time) *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IngestJobUpsertOne) UpdateUpdatedAt() *IngestJobUpsertOne {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IngestJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IngestJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IngestJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IngestJobUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: IngestJobUpsertOne.ID is not supported by MySQL driver. Use IngestJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IngestJobUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IngestJobCreateBulk is the builder for creating many IngestJob entities in bulk.
type IngestJobCreateBulk struct {
	config
	err      error
	builders []*IngestJobCreate
	conflict []sql.ConflictOption
}

// Save creates the IngestJob entities in the database.
func (_c *IngestJobCreateBulk) Save(ctx context.Context) ([]*IngestJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *IngestJobCreateBulk) SaveX(ctx context.Context) []*IngestJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IngestJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IngestJobUpsert) {
//			SetBucket(v+v).
//		}).
//		Exec(ctx)
func (_c *IngestJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *IngestJobUpsertBulk {
	_c.conflict = opts
	return &IngestJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IngestJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IngestJobCreateBulk) OnConflictColumns(columns ...string) *IngestJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IngestJobUpsertBulk{
		create: _c,
	}
}

// IngestJobUpsertBulk is the builder for "upsert"-ing
// a bulk of IngestJob nodes.
type IngestJobUpsertBulk struct {
	create *IngestJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.IngestJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ingestjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IngestJobUpsertBulk) UpdateNewValues() *IngestJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ingestjob.FieldID)
			}
			if _, exists := b.mutation.Bucket(); exists {
				s.SetIgnore(ingestjob.FieldBucket)
			}
			if _, exists := b.mutation.ObjectKey(); exists {
				s.SetIgnore(ingestjob.FieldObjectKey)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(ingestjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IngestJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IngestJobUpsertBulk) Ignore() *IngestJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IngestJobUpsertBulk) DoNothing() *IngestJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IngestJobCreateBulk.OnConflict
// documentation for more info.
func (u *IngestJobUpsertBulk) Update(set func(*IngestJobUpsert)) *IngestJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IngestJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetEtag sets the "etag" field.
func (u *IngestJobUpsertBulk) SetEtag(v string) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetEtag(v)
	})
}

// UpdateEtag sets the "etag" field to the value that was provided on create.
func (u *IngestJobUpsertBulk) UpdateEtag() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateEtag()
	})
}

// ClearEtag clears the value of the "etag" field.
func (u *IngestJobUpsertBulk) ClearEtag() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.ClearEtag()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *IngestJobUpsertBulk) SetSizeBytes(v int64) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *IngestJobUpsertBulk) AddSizeBytes(v int64) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *IngestJobUpsertBulk) UpdateSizeBytes() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetStatus sets the "status" field.
func (u *IngestJobUpsertBulk) SetStatus(v string) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *IngestJobUpsertBulk) UpdateStatus() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *IngestJobUpsertBulk) SetAttempts(v int) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *IngestJobUpsertBulk) AddAttempts(v int) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *IngestJobUpsertBulk) UpdateAttempts() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetFailureStage sets the "failure_stage" field.
func (u *IngestJobUpsertBulk) SetFailureStage(v string) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetFailureStage(v)
	})
}

// UpdateFailureStage sets the "failure_stage" field to the value that was provided on create.
func (u *IngestJobUpsertBulk) UpdateFailureStage() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateFailureStage()
	})
}

// ClearFailureStage clears the value of the "failure_stage" field.
func (u *IngestJobUpsertBulk) ClearFailureStage() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.ClearFailureStage()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *IngestJobUpsertBulk) SetErrorMessage(v string) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *IngestJobUpsertBulk) UpdateErrorMessage() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *IngestJobUpsertBulk) ClearErrorMessage() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *IngestJobUpsertBulk) SetClaimedAt(v time.Time) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *IngestJobUpsertBulk) UpdateClaimedAt() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *IngestJobUpsertBulk) ClearClaimedAt() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.ClearClaimedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *IngestJobUpsertBulk) SetFinishedAt(v time.Time) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *IngestJobUpsertBulk) UpdateFinishedAt() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *IngestJobUpsertBulk) ClearFinishedAt() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetChunkCount sets the "chunk_count" field.
func (u *IngestJobUpsertBulk) SetChunkCount(v int) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetChunkCount(v)
	})
}

// AddChunkCount adds v to the "chunk_count" field.
func (u *IngestJobUpsertBulk) AddChunkCount(v int) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.AddChunkCount(v)
	})
}

// UpdateChunkCount sets the "chunk_count" field to the value that was provided on create.
func (u *IngestJobUpsertBulk) UpdateChunkCount() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateChunkCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IngestJobUpsertBulk) SetUpdatedAt(v time.Time) *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IngestJobUpsertBulk) UpdateUpdatedAt() *IngestJobUpsertBulk {
	return u.Update(func(s *IngestJobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IngestJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IngestJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IngestJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IngestJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
