package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// SpeechSetting holds the schema definition for the SpeechSetting entity.
type SpeechSetting struct {
	ent.Schema
}

func (SpeechSetting) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the SpeechSetting.
func (SpeechSetting) Fields() []ent.Field {
	return []ent.Field{
		field.Float("rate").Default(1.0).Comment("语速倍率"),
		field.Float("pitch").Default(1.0).Comment("音调倍率"),
		field.String("voice_id").Default("").Comment("语音ID，空表示系统默认"),
	}
}
