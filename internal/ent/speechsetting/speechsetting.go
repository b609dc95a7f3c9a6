// Code generated by ent, DO NOT EDIT.

package speechsetting

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the speechsetting type in the database.
	Label = "speech_setting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreateTime holds the string denoting the create_time field in the database.
	FieldCreateTime = "create_time"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// FieldRate holds the string denoting the rate field in the database.
	FieldRate = "rate"
	// FieldPitch holds the string denoting the pitch field in the database.
	FieldPitch = "pitch"
	// FieldVoiceID holds the string denoting the voice_id field in the database.
	FieldVoiceID = "voice_id"
	// Table holds the table name of the speechsetting in the database.
	Table = "speech_settings"
)

// Columns holds all SQL columns for speechsetting fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldRate,
	FieldPitch,
	FieldVoiceID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreateTime holds the default value on creation for the "create_time" field.
	DefaultCreateTime func() time.Time
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
	// DefaultRate holds the default value on creation for the "rate" field.
	DefaultRate float64
	// DefaultPitch holds the default value on creation for the "pitch" field.
	DefaultPitch float64
	// DefaultVoiceID holds the default value on creation for the "voice_id" field.
	DefaultVoiceID string
)

// OrderOption defines the ordering options for the SpeechSetting queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreateTime orders the results by the create_time field.
func ByCreateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreateTime, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
}

// ByRate orders the results by the rate field.
func ByRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRate, opts...).ToFunc()
}

// ByPitch orders the results by the pitch field.
func ByPitch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPitch, opts...).ToFunc()
}

// ByVoiceID orders the results by the voice_id field.
func ByVoiceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVoiceID, opts...).ToFunc()
}
