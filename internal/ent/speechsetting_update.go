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
	"github.com/fachebot/vid-summify/internal/ent/predicate"
	"github.com/fachebot/vid-summify/internal/ent/speechsetting"
)

// SpeechSettingUpdate is the builder for updating SpeechSetting entities.
type SpeechSettingUpdate struct {
	config
	hooks    []Hook
	mutation *SpeechSettingMutation
}

// Where appends a list predicates to the SpeechSettingUpdate builder.
func (ssu *SpeechSettingUpdate) Where(ps ...predicate.SpeechSetting) *SpeechSettingUpdate {
	ssu.mutation.Where(ps...)
	return ssu
}

// SetUpdateTime sets the "update_time" field.
func (ssu *SpeechSettingUpdate) SetUpdateTime(t time.Time) *SpeechSettingUpdate {
	ssu.mutation.SetUpdateTime(t)
	return ssu
}

// SetRate sets the "rate" field.
func (ssu *SpeechSettingUpdate) SetRate(f float64) *SpeechSettingUpdate {
	ssu.mutation.ResetRate()
	ssu.mutation.SetRate(f)
	return ssu
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (ssu *SpeechSettingUpdate) SetNillableRate(f *float64) *SpeechSettingUpdate {
	if f != nil {
		ssu.SetRate(*f)
	}
	return ssu
}

// AddRate adds f to the "rate" field.
func (ssu *SpeechSettingUpdate) AddRate(f float64) *SpeechSettingUpdate {
	ssu.mutation.AddRate(f)
	return ssu
}

// SetPitch sets the "pitch" field.
func (ssu *SpeechSettingUpdate) SetPitch(f float64) *SpeechSettingUpdate {
	ssu.mutation.ResetPitch()
	ssu.mutation.SetPitch(f)
	return ssu
}

// SetNillablePitch sets the "pitch" field if the given value is not nil.
func (ssu *SpeechSettingUpdate) SetNillablePitch(f *float64) *SpeechSettingUpdate {
	if f != nil {
		ssu.SetPitch(*f)
	}
	return ssu
}

// AddPitch adds f to the "pitch" field.
func (ssu *SpeechSettingUpdate) AddPitch(f float64) *SpeechSettingUpdate {
	ssu.mutation.AddPitch(f)
	return ssu
}

// SetVoiceID sets the "voice_id" field.
func (ssu *SpeechSettingUpdate) SetVoiceID(s string) *SpeechSettingUpdate {
	ssu.mutation.SetVoiceID(s)
	return ssu
}

// SetNillableVoiceID sets the "voice_id" field if the given value is not nil.
func (ssu *SpeechSettingUpdate) SetNillableVoiceID(s *string) *SpeechSettingUpdate {
	if s != nil {
		ssu.SetVoiceID(*s)
	}
	return ssu
}

// Mutation returns the SpeechSettingMutation object of the builder.
func (ssu *SpeechSettingUpdate) Mutation() *SpeechSettingMutation {
	return ssu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ssu *SpeechSettingUpdate) Save(ctx context.Context) (int, error) {
	ssu.defaults()
	return withHooks(ctx, ssu.sqlSave, ssu.mutation, ssu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ssu *SpeechSettingUpdate) SaveX(ctx context.Context) int {
	affected, err := ssu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ssu *SpeechSettingUpdate) Exec(ctx context.Context) error {
	_, err := ssu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssu *SpeechSettingUpdate) ExecX(ctx context.Context) {
	if err := ssu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssu *SpeechSettingUpdate) defaults() {
	if _, ok := ssu.mutation.UpdateTime(); !ok {
		v := speechsetting.UpdateDefaultUpdateTime()
		ssu.mutation.SetUpdateTime(v)
	}
}

func (ssu *SpeechSettingUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(speechsetting.Table, speechsetting.Columns, sqlgraph.NewFieldSpec(speechsetting.FieldID, field.TypeInt))
	if ps := ssu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ssu.mutation.UpdateTime(); ok {
		_spec.SetField(speechsetting.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := ssu.mutation.Rate(); ok {
		_spec.SetField(speechsetting.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.AddedRate(); ok {
		_spec.AddField(speechsetting.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.Pitch(); ok {
		_spec.SetField(speechsetting.FieldPitch, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.AddedPitch(); ok {
		_spec.AddField(speechsetting.FieldPitch, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.VoiceID(); ok {
		_spec.SetField(speechsetting.FieldVoiceID, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ssu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{speechsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ssu.mutation.done = true
	return n, nil
}

// SpeechSettingUpdateOne is the builder for updating a single SpeechSetting entity.
type SpeechSettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpeechSettingMutation
}

// SetUpdateTime sets the "update_time" field.
func (ssuo *SpeechSettingUpdateOne) SetUpdateTime(t time.Time) *SpeechSettingUpdateOne {
	ssuo.mutation.SetUpdateTime(t)
	return ssuo
}

// SetRate sets the "rate" field.
func (ssuo *SpeechSettingUpdateOne) SetRate(f float64) *SpeechSettingUpdateOne {
	ssuo.mutation.ResetRate()
	ssuo.mutation.SetRate(f)
	return ssuo
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (ssuo *SpeechSettingUpdateOne) SetNillableRate(f *float64) *SpeechSettingUpdateOne {
	if f != nil {
		ssuo.SetRate(*f)
	}
	return ssuo
}

// AddRate adds f to the "rate" field.
func (ssuo *SpeechSettingUpdateOne) AddRate(f float64) *SpeechSettingUpdateOne {
	ssuo.mutation.AddRate(f)
	return ssuo
}

// SetPitch sets the "pitch" field.
func (ssuo *SpeechSettingUpdateOne) SetPitch(f float64) *SpeechSettingUpdateOne {
	ssuo.mutation.ResetPitch()
	ssuo.mutation.SetPitch(f)
	return ssuo
}

// SetNillablePitch sets the "pitch" field if the given value is not nil.
func (ssuo *SpeechSettingUpdateOne) SetNillablePitch(f *float64) *SpeechSettingUpdateOne {
	if f != nil {
		ssuo.SetPitch(*f)
	}
	return ssuo
}

// AddPitch adds f to the "pitch" field.
func (ssuo *SpeechSettingUpdateOne) AddPitch(f float64) *SpeechSettingUpdateOne {
	ssuo.mutation.AddPitch(f)
	return ssuo
}

// SetVoiceID sets the "voice_id" field.
func (ssuo *SpeechSettingUpdateOne) SetVoiceID(s string) *SpeechSettingUpdateOne {
	ssuo.mutation.SetVoiceID(s)
	return ssuo
}

// SetNillableVoiceID sets the "voice_id" field if the given value is not nil.
func (ssuo *SpeechSettingUpdateOne) SetNillableVoiceID(s *string) *SpeechSettingUpdateOne {
	if s != nil {
		ssuo.SetVoiceID(*s)
	}
	return ssuo
}

// Mutation returns the SpeechSettingMutation object of the builder.
func (ssuo *SpeechSettingUpdateOne) Mutation() *SpeechSettingMutation {
	return ssuo.mutation
}

// Where appends a list predicates to the SpeechSettingUpdate builder.
func (ssuo *SpeechSettingUpdateOne) Where(ps ...predicate.SpeechSetting) *SpeechSettingUpdateOne {
	ssuo.mutation.Where(ps...)
	return ssuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ssuo *SpeechSettingUpdateOne) Select(field string, fields ...string) *SpeechSettingUpdateOne {
	ssuo.fields = append([]string{field}, fields...)
	return ssuo
}

// Save executes the query and returns the updated SpeechSetting entity.
func (ssuo *SpeechSettingUpdateOne) Save(ctx context.Context) (*SpeechSetting, error) {
	ssuo.defaults()
	return withHooks(ctx, ssuo.sqlSave, ssuo.mutation, ssuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ssuo *SpeechSettingUpdateOne) SaveX(ctx context.Context) *SpeechSetting {
	node, err := ssuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ssuo *SpeechSettingUpdateOne) Exec(ctx context.Context) error {
	_, err := ssuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssuo *SpeechSettingUpdateOne) ExecX(ctx context.Context) {
	if err := ssuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssuo *SpeechSettingUpdateOne) defaults() {
	if _, ok := ssuo.mutation.UpdateTime(); !ok {
		v := speechsetting.UpdateDefaultUpdateTime()
		ssuo.mutation.SetUpdateTime(v)
	}
}

func (ssuo *SpeechSettingUpdateOne) sqlSave(ctx context.Context) (_node *SpeechSetting, err error) {
	_spec := sqlgraph.NewUpdateSpec(speechsetting.Table, speechsetting.Columns, sqlgraph.NewFieldSpec(speechsetting.FieldID, field.TypeInt))
	id, ok := ssuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SpeechSetting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ssuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, speechsetting.FieldID)
		for _, f := range fields {
			if !speechsetting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != speechsetting.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ssuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ssuo.mutation.UpdateTime(); ok {
		_spec.SetField(speechsetting.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := ssuo.mutation.Rate(); ok {
		_spec.SetField(speechsetting.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.AddedRate(); ok {
		_spec.AddField(speechsetting.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.Pitch(); ok {
		_spec.SetField(speechsetting.FieldPitch, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.AddedPitch(); ok {
		_spec.AddField(speechsetting.FieldPitch, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.VoiceID(); ok {
		_spec.SetField(speechsetting.FieldVoiceID, field.TypeString, value)
	}
	_node = &SpeechSetting{config: ssuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ssuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{speechsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ssuo.mutation.done = true
	return _node, nil
}
