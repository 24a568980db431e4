package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// QuizEvent summarizes one finished climate quiz round.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}, PlayerMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id"),
		field.String("topic"),
		field.String("language").
			Comment("pt, en or es"),
		field.Int("questions").
			Default(0),
		field.Int("correct").
			Default(0),
		field.Int("points").
			Default(0),
		field.Bool("fallback").
			Default(false).
			Comment("Built-in questions were served instead of generated ones"),
	}
}
