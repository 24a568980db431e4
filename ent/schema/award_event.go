package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AwardEvent records a change to a player's nature-point balance.
type AwardEvent struct {
	ent.Schema
}

func (AwardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}, PlayerMixin{}}
}

func (AwardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("source").
			Values("stage", "quiz", "unlock"),
		field.Int("amount").
			Comment("Signed PN delta; unlocks are negative"),
		field.Int("balance").
			NonNegative().
			Comment("Balance after the change"),
		field.String("reason").
			Default(""),
	}
}
