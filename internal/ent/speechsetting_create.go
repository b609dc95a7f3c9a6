// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/vid-summify/internal/ent/speechsetting"
)

// SpeechSettingCreate is the builder for creating a SpeechSetting entity.
type SpeechSettingCreate struct {
	config
	mutation *SpeechSettingMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (ssc *SpeechSettingCreate) SetCreateTime(t time.Time) *SpeechSettingCreate {
	ssc.mutation.SetCreateTime(t)
	return ssc
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (ssc *SpeechSettingCreate) SetNillableCreateTime(t *time.Time) *SpeechSettingCreate {
	if t != nil {
		ssc.SetCreateTime(*t)
	}
	return ssc
}

// SetUpdateTime sets the "update_time" field.
func (ssc *SpeechSettingCreate) SetUpdateTime(t time.Time) *SpeechSettingCreate {
	ssc.mutation.SetUpdateTime(t)
	return ssc
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (ssc *SpeechSettingCreate) SetNillableUpdateTime(t *time.Time) *SpeechSettingCreate {
	if t != nil {
		ssc.SetUpdateTime(*t)
	}
	return ssc
}

// SetRate sets the "rate" field.
func (ssc *SpeechSettingCreate) SetRate(f float64) *SpeechSettingCreate {
	ssc.mutation.SetRate(f)
	return ssc
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (ssc *SpeechSettingCreate) SetNillableRate(f *float64) *SpeechSettingCreate {
	if f != nil {
		ssc.SetRate(*f)
	}
	return ssc
}

// SetPitch sets the "pitch" field.
func (ssc *SpeechSettingCreate) SetPitch(f float64) *SpeechSettingCreate {
	ssc.mutation.SetPitch(f)
	return ssc
}

// SetNillablePitch sets the "pitch" field if the given value is not nil.
func (ssc *SpeechSettingCreate) SetNillablePitch(f *float64) *SpeechSettingCreate {
	if f != nil {
		ssc.SetPitch(*f)
	}
	return ssc
}

// SetVoiceID sets the "voice_id" field.
func (ssc *SpeechSettingCreate) SetVoiceID(s string) *SpeechSettingCreate {
	ssc.mutation.SetVoiceID(s)
	return ssc
}

// SetNillableVoiceID sets the "voice_id" field if the given value is not nil.
func (ssc *SpeechSettingCreate) SetNillableVoiceID(s *string) *SpeechSettingCreate {
	if s != nil {
		ssc.SetVoiceID(*s)
	}
	return ssc
}

// Mutation returns the SpeechSettingMutation object of the builder.
func (ssc *SpeechSettingCreate) Mutation() *SpeechSettingMutation {
	return ssc.mutation
}

// Save creates the SpeechSetting in the database.
func (ssc *SpeechSettingCreate) Save(ctx context.Context) (*SpeechSetting, error) {
	ssc.defaults()
	return withHooks(ctx, ssc.sqlSave, ssc.mutation, ssc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ssc *SpeechSettingCreate) SaveX(ctx context.Context) *SpeechSetting {
	v, err := ssc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ssc *SpeechSettingCreate) Exec(ctx context.Context) error {
	_, err := ssc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssc *SpeechSettingCreate) ExecX(ctx context.Context) {
	if err := ssc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssc *SpeechSettingCreate) defaults() {
	if _, ok := ssc.mutation.CreateTime(); !ok {
		v := speechsetting.DefaultCreateTime()
		ssc.mutation.SetCreateTime(v)
	}
	if _, ok := ssc.mutation.UpdateTime(); !ok {
		v := speechsetting.DefaultUpdateTime()
		ssc.mutation.SetUpdateTime(v)
	}
	if _, ok := ssc.mutation.Rate(); !ok {
		v := speechsetting.DefaultRate
		ssc.mutation.SetRate(v)
	}
	if _, ok := ssc.mutation.Pitch(); !ok {
		v := speechsetting.DefaultPitch
		ssc.mutation.SetPitch(v)
	}
	if _, ok := ssc.mutation.VoiceID(); !ok {
		v := speechsetting.DefaultVoiceID
		ssc.mutation.SetVoiceID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssc *SpeechSettingCreate) check() error {
	if _, ok := ssc.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "SpeechSetting.create_time"`)}
	}
	if _, ok := ssc.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "SpeechSetting.update_time"`)}
	}
	if _, ok := ssc.mutation.Rate(); !ok {
		return &ValidationError{Name: "rate", err: errors.New(`ent: missing required field "SpeechSetting.rate"`)}
	}
	if _, ok := ssc.mutation.Pitch(); !ok {
		return &ValidationError{Name: "pitch", err: errors.New(`ent: missing required field "SpeechSetting.pitch"`)}
	}
	if _, ok := ssc.mutation.VoiceID(); !ok {
		return &ValidationError{Name: "voice_id", err: errors.New(`ent: missing required field "SpeechSetting.voice_id"`)}
	}
	return nil
}

func (ssc *SpeechSettingCreate) sqlSave(ctx context.Context) (*SpeechSetting, error) {
	if err := ssc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ssc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ssc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ssc.mutation.id = &_node.ID
	ssc.mutation.done = true
	return _node, nil
}

func (ssc *SpeechSettingCreate) createSpec() (*SpeechSetting, *sqlgraph.CreateSpec) {
	var (
		_node = &SpeechSetting{config: ssc.config}
		_spec = sqlgraph.NewCreateSpec(speechsetting.Table, sqlgraph.NewFieldSpec(speechsetting.FieldID, field.TypeInt))
	)
	if value, ok := ssc.mutation.CreateTime(); ok {
		_spec.SetField(speechsetting.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := ssc.mutation.UpdateTime(); ok {
		_spec.SetField(speechsetting.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := ssc.mutation.Rate(); ok {
		_spec.SetField(speechsetting.FieldRate, field.TypeFloat64, value)
		_node.Rate = value
	}
	if value, ok := ssc.mutation.Pitch(); ok {
		_spec.SetField(speechsetting.FieldPitch, field.TypeFloat64, value)
		_node.Pitch = value
	}
	if value, ok := ssc.mutation.VoiceID(); ok {
		_spec.SetField(speechsetting.FieldVoiceID, field.TypeString, value)
		_node.VoiceID = value
	}
	return _node, _spec
}

// SpeechSettingCreateBulk is the builder for creating many SpeechSetting entities in bulk.
type SpeechSettingCreateBulk struct {
	config
	err      error
	builders []*SpeechSettingCreate
}

// Save creates the SpeechSetting entities in the database.
func (sscb *SpeechSettingCreateBulk) Save(ctx context.Context) ([]*SpeechSetting, error) {
	if sscb.err != nil {
		return nil, sscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sscb.builders))
	nodes := make([]*SpeechSetting, len(sscb.builders))
	mutators := make([]Mutator, len(sscb.builders))
	for i := range sscb.builders {
		func(i int, root context.Context) {
			builder := sscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpeechSettingMutation)
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
					_, err = mutators[i+1].Mutate(root, sscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sscb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, sscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sscb *SpeechSettingCreateBulk) SaveX(ctx context.Context) []*SpeechSetting {
	v, err := sscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sscb *SpeechSettingCreateBulk) Exec(ctx context.Context) error {
	_, err := sscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sscb *SpeechSettingCreateBulk) ExecX(ctx context.Context) {
	if err := sscb.Exec(ctx); err != nil {
		panic(err)
	}
}
