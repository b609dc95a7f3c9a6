// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "access_token", Type: field.TypeString, Size: 2147483647},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "email", Type: field.TypeString, Default: ""},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
	}
	// SpeechSettingsColumns holds the columns for the "speech_settings" table.
	SpeechSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "rate", Type: field.TypeFloat64, Default: 1},
		{Name: "pitch", Type: field.TypeFloat64, Default: 1},
		{Name: "voice_id", Type: field.TypeString, Default: ""},
	}
	// SpeechSettingsTable holds the schema information for the "speech_settings" table.
	SpeechSettingsTable = &schema.Table{
		Name:       "speech_settings",
		Columns:    SpeechSettingsColumns,
		PrimaryKey: []*schema.Column{SpeechSettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SessionsTable,
		SpeechSettingsTable,
	}
)

func init() {
}
