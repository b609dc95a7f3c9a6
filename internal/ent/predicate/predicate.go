// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SpeechSetting is the predicate function for speechsetting builders.
type SpeechSetting func(*sql.Selector)
