package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageEvent records one report of a completed guardian stage.
type StageEvent struct {
	ent.Schema
}

func (StageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}, PlayerMixin{}}
}

func (StageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Default("").
			Comment("Journey run that reported the stage"),
		field.Int("guardian_id").
			Positive(),
		field.Int("stage").
			Positive().
			Comment("1-based stage number"),
		field.Int("points").
			Default(0).
			Comment("PN credited for the stage"),
		field.Bool("applied").
			Default(false).
			Comment("False when the stage had already been completed"),
	}
}

func (StageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("guardian_id"),
	}
}
