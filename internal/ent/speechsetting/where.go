// Code generated by ent, DO NOT EDIT.

package speechsetting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/vid-summify/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEQ(FieldUpdateTime, v))
}

// Rate applies equality check predicate on the "rate" field. It's identical to RateEQ.
func Rate(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEQ(FieldRate, v))
}

// Pitch applies equality check predicate on the "pitch" field. It's identical to PitchEQ.
func Pitch(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEQ(FieldPitch, v))
}

// VoiceID applies equality check predicate on the "voice_id" field. It's identical to VoiceIDEQ.
func VoiceID(v string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEQ(FieldVoiceID, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldLTE(FieldUpdateTime, v))
}

// RateEQ applies the EQ predicate on the "rate" field.
func RateEQ(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEQ(FieldRate, v))
}

// RateNEQ applies the NEQ predicate on the "rate" field.
func RateNEQ(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldNEQ(FieldRate, v))
}

// RateIn applies the In predicate on the "rate" field.
func RateIn(vs ...float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldIn(FieldRate, vs...))
}

// RateNotIn applies the NotIn predicate on the "rate" field.
func RateNotIn(vs ...float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldNotIn(FieldRate, vs...))
}

// RateGT applies the GT predicate on the "rate" field.
func RateGT(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldGT(FieldRate, v))
}

// RateGTE applies the GTE predicate on the "rate" field.
func RateGTE(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldGTE(FieldRate, v))
}

// RateLT applies the LT predicate on the "rate" field.
func RateLT(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldLT(FieldRate, v))
}

// RateLTE applies the LTE predicate on the "rate" field.
func RateLTE(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldLTE(FieldRate, v))
}

// PitchEQ applies the EQ predicate on the "pitch" field.
func PitchEQ(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEQ(FieldPitch, v))
}

// PitchNEQ applies the NEQ predicate on the "pitch" field.
func PitchNEQ(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldNEQ(FieldPitch, v))
}

// PitchIn applies the In predicate on the "pitch" field.
func PitchIn(vs ...float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldIn(FieldPitch, vs...))
}

// PitchNotIn applies the NotIn predicate on the "pitch" field.
func PitchNotIn(vs ...float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldNotIn(FieldPitch, vs...))
}

// PitchGT applies the GT predicate on the "pitch" field.
func PitchGT(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldGT(FieldPitch, v))
}

// PitchGTE applies the GTE predicate on the "pitch" field.
func PitchGTE(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldGTE(FieldPitch, v))
}

// PitchLT applies the LT predicate on the "pitch" field.
func PitchLT(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldLT(FieldPitch, v))
}

// PitchLTE applies the LTE predicate on the "pitch" field.
func PitchLTE(v float64) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldLTE(FieldPitch, v))
}

// VoiceIDEQ applies the EQ predicate on the "voice_id" field.
func VoiceIDEQ(v string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEQ(FieldVoiceID, v))
}

// VoiceIDNEQ applies the NEQ predicate on the "voice_id" field.
func VoiceIDNEQ(v string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldNEQ(FieldVoiceID, v))
}

// VoiceIDIn applies the In predicate on the "voice_id" field.
func VoiceIDIn(vs ...string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldIn(FieldVoiceID, vs...))
}

// VoiceIDNotIn applies the NotIn predicate on the "voice_id" field.
func VoiceIDNotIn(vs ...string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldNotIn(FieldVoiceID, vs...))
}

// VoiceIDGT applies the GT predicate on the "voice_id" field.
func VoiceIDGT(v string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldGT(FieldVoiceID, v))
}

// VoiceIDGTE applies the GTE predicate on the "voice_id" field.
func VoiceIDGTE(v string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldGTE(FieldVoiceID, v))
}

// VoiceIDLT applies the LT predicate on the "voice_id" field.
func VoiceIDLT(v string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldLT(FieldVoiceID, v))
}

// VoiceIDLTE applies the LTE predicate on the "voice_id" field.
func VoiceIDLTE(v string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldLTE(FieldVoiceID, v))
}

// VoiceIDContains applies the Contains predicate on the "voice_id" field.
func VoiceIDContains(v string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldContains(FieldVoiceID, v))
}

// VoiceIDHasPrefix applies the HasPrefix predicate on the "voice_id" field.
func VoiceIDHasPrefix(v string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldHasPrefix(FieldVoiceID, v))
}

// VoiceIDHasSuffix applies the HasSuffix predicate on the "voice_id" field.
func VoiceIDHasSuffix(v string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldHasSuffix(FieldVoiceID, v))
}

// VoiceIDEqualFold applies the EqualFold predicate on the "voice_id" field.
func VoiceIDEqualFold(v string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldEqualFold(FieldVoiceID, v))
}

// VoiceIDContainsFold applies the ContainsFold predicate on the "voice_id" field.
func VoiceIDContainsFold(v string) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.FieldContainsFold(FieldVoiceID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SpeechSetting) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SpeechSetting) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SpeechSetting) predicate.SpeechSetting {
	return predicate.SpeechSetting(sql.NotPredicates(p))
}
