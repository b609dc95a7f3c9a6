// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/vid-summify/internal/ent/speechsetting"
)

// SpeechSetting is the model entity for the SpeechSetting schema.
type SpeechSetting struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 语速倍率
	Rate float64 `json:"rate,omitempty"`
	// 音调倍率
	Pitch float64 `json:"pitch,omitempty"`
	// 语音ID，空表示系统默认
	VoiceID      string `json:"voice_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SpeechSetting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case speechsetting.FieldRate, speechsetting.FieldPitch:
			values[i] = new(sql.NullFloat64)
		case speechsetting.FieldID:
			values[i] = new(sql.NullInt64)
		case speechsetting.FieldVoiceID:
			values[i] = new(sql.NullString)
		case speechsetting.FieldCreateTime, speechsetting.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SpeechSetting fields.
func (ss *SpeechSetting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case speechsetting.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ss.ID = int(value.Int64)
		case speechsetting.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				ss.CreateTime = value.Time
			}
		case speechsetting.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				ss.UpdateTime = value.Time
			}
		case speechsetting.FieldRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate", values[i])
			} else if value.Valid {
				ss.Rate = value.Float64
			}
		case speechsetting.FieldPitch:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pitch", values[i])
			} else if value.Valid {
				ss.Pitch = value.Float64
			}
		case speechsetting.FieldVoiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field voice_id", values[i])
			} else if value.Valid {
				ss.VoiceID = value.String
			}
		default:
			ss.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SpeechSetting.
// This includes values selected through modifiers, order, etc.
func (ss *SpeechSetting) Value(name string) (ent.Value, error) {
	return ss.selectValues.Get(name)
}

// Update returns a builder for updating this SpeechSetting.
// Note that you need to call SpeechSetting.Unwrap() before calling this method if this SpeechSetting
// was returned from a transaction, and the transaction was committed or rolled back.
func (ss *SpeechSetting) Update() *SpeechSettingUpdateOne {
	return NewSpeechSettingClient(ss.config).UpdateOne(ss)
}

// Unwrap unwraps the SpeechSetting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ss *SpeechSetting) Unwrap() *SpeechSetting {
	_tx, ok := ss.config.driver.(*txDriver)
	if !ok {
		panic("ent: SpeechSetting is not a transactional entity")
	}
	ss.config.driver = _tx.drv
	return ss
}

// String implements the fmt.Stringer.
func (ss *SpeechSetting) String() string {
	var builder strings.Builder
	builder.WriteString("SpeechSetting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ss.ID))
	builder.WriteString("create_time=")
	builder.WriteString(ss.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(ss.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("rate=")
	builder.WriteString(fmt.Sprintf("%v", ss.Rate))
	builder.WriteString(", ")
	builder.WriteString("pitch=")
	builder.WriteString(fmt.Sprintf("%v", ss.Pitch))
	builder.WriteString(", ")
	builder.WriteString("voice_id=")
	builder.WriteString(ss.VoiceID)
	builder.WriteByte(')')
	return builder.String()
}

// SpeechSettings is a parsable slice of SpeechSetting.
type SpeechSettings []*SpeechSetting
