// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/vid-summify/internal/ent/predicate"
	"github.com/fachebot/vid-summify/internal/ent/speechsetting"
)

// SpeechSettingDelete is the builder for deleting a SpeechSetting entity.
type SpeechSettingDelete struct {
	config
	hooks    []Hook
	mutation *SpeechSettingMutation
}

// Where appends a list predicates to the SpeechSettingDelete builder.
func (ssd *SpeechSettingDelete) Where(ps ...predicate.SpeechSetting) *SpeechSettingDelete {
	ssd.mutation.Where(ps...)
	return ssd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ssd *SpeechSettingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ssd.sqlExec, ssd.mutation, ssd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ssd *SpeechSettingDelete) ExecX(ctx context.Context) int {
	n, err := ssd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ssd *SpeechSettingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(speechsetting.Table, sqlgraph.NewFieldSpec(speechsetting.FieldID, field.TypeInt))
	if ps := ssd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ssd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ssd.mutation.done = true
	return affected, err
}

// SpeechSettingDeleteOne is the builder for deleting a single SpeechSetting entity.
type SpeechSettingDeleteOne struct {
	ssd *SpeechSettingDelete
}

// Where appends a list predicates to the SpeechSettingDelete builder.
func (ssdo *SpeechSettingDeleteOne) Where(ps ...predicate.SpeechSetting) *SpeechSettingDeleteOne {
	ssdo.ssd.mutation.Where(ps...)
	return ssdo
}

// Exec executes the deletion query.
func (ssdo *SpeechSettingDeleteOne) Exec(ctx context.Context) error {
	n, err := ssdo.ssd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{speechsetting.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ssdo *SpeechSettingDeleteOne) ExecX(ctx context.Context) {
	if err := ssdo.Exec(ctx); err != nil {
		panic(err)
	}
}
