package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// Session holds the schema definition for the Session entity.
type Session struct {
	ent.Schema
}

func (Session) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.Text("access_token").Sensitive().Comment("访问令牌"),
		field.String("user_id").Default("").Comment("用户ID"),
		field.String("email").Default("").Comment("邮箱"),
		field.Time("expires_at").Optional().Nillable().Comment("过期时间"),
	}
}
