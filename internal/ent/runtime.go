// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fachebot/vid-summify/internal/ent/schema"
	"github.com/fachebot/vid-summify/internal/ent/session"
	"github.com/fachebot/vid-summify/internal/ent/speechsetting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	sessionMixin := schema.Session{}.Mixin()
	sessionMixinFields0 := sessionMixin[0].Fields()
	_ = sessionMixinFields0
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreateTime is the schema descriptor for create_time field.
	sessionDescCreateTime := sessionMixinFields0[0].Descriptor()
	// session.DefaultCreateTime holds the default value on creation for the create_time field.
	session.DefaultCreateTime = sessionDescCreateTime.Default.(func() time.Time)
	// sessionDescUpdateTime is the schema descriptor for update_time field.
	sessionDescUpdateTime := sessionMixinFields0[1].Descriptor()
	// session.DefaultUpdateTime holds the default value on creation for the update_time field.
	session.DefaultUpdateTime = sessionDescUpdateTime.Default.(func() time.Time)
	// session.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	session.UpdateDefaultUpdateTime = sessionDescUpdateTime.UpdateDefault.(func() time.Time)
	// sessionDescUserID is the schema descriptor for user_id field.
	sessionDescUserID := sessionFields[1].Descriptor()
	// session.DefaultUserID holds the default value on creation for the user_id field.
	session.DefaultUserID = sessionDescUserID.Default.(string)
	// sessionDescEmail is the schema descriptor for email field.
	sessionDescEmail := sessionFields[2].Descriptor()
	// session.DefaultEmail holds the default value on creation for the email field.
	session.DefaultEmail = sessionDescEmail.Default.(string)
	speechsettingMixin := schema.SpeechSetting{}.Mixin()
	speechsettingMixinFields0 := speechsettingMixin[0].Fields()
	_ = speechsettingMixinFields0
	speechsettingFields := schema.SpeechSetting{}.Fields()
	_ = speechsettingFields
	// speechsettingDescCreateTime is the schema descriptor for create_time field.
	speechsettingDescCreateTime := speechsettingMixinFields0[0].Descriptor()
	// speechsetting.DefaultCreateTime holds the default value on creation for the create_time field.
	speechsetting.DefaultCreateTime = speechsettingDescCreateTime.Default.(func() time.Time)
	// speechsettingDescUpdateTime is the schema descriptor for update_time field.
	speechsettingDescUpdateTime := speechsettingMixinFields0[1].Descriptor()
	// speechsetting.DefaultUpdateTime holds the default value on creation for the update_time field.
	speechsetting.DefaultUpdateTime = speechsettingDescUpdateTime.Default.(func() time.Time)
	// speechsetting.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	speechsetting.UpdateDefaultUpdateTime = speechsettingDescUpdateTime.UpdateDefault.(func() time.Time)
	// speechsettingDescRate is the schema descriptor for rate field.
	speechsettingDescRate := speechsettingFields[0].Descriptor()
	// speechsetting.DefaultRate holds the default value on creation for the rate field.
	speechsetting.DefaultRate = speechsettingDescRate.Default.(float64)
	// speechsettingDescPitch is the schema descriptor for pitch field.
	speechsettingDescPitch := speechsettingFields[1].Descriptor()
	// speechsetting.DefaultPitch holds the default value on creation for the pitch field.
	speechsetting.DefaultPitch = speechsettingDescPitch.Default.(float64)
	// speechsettingDescVoiceID is the schema descriptor for voice_id field.
	speechsettingDescVoiceID := speechsettingFields[2].Descriptor()
	// speechsetting.DefaultVoiceID holds the default value on creation for the voice_id field.
	speechsetting.DefaultVoiceID = speechsettingDescVoiceID.Default.(string)
}
