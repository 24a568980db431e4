package store

import (
	"testing"

	"entgo.io/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoamazonia/guardioes/ent/schema"
)

type entSchema interface {
	Fields() []ent.Field
	Mixin() []ent.Mixin
}

// The ent schemas document the event tables; the migration must create
// every field they declare.
func TestMigrationMatchesEntSchema(t *testing.T) {
	s := openTestStore(t)

	tables := map[string]entSchema{
		tableStageEvents: schema.StageEvent{},
		tableAwardEvents: schema.AwardEvent{},
		tableQuizEvents:  schema.QuizEvent{},
		tableLLMEvents:   schema.LLMRequestEvent{},
	}
	for table, sc := range tables {
		t.Run(table, func(t *testing.T) {
			cols := tableColumns(t, s, table)

			var fields []ent.Field
			for _, m := range sc.Mixin() {
				fields = append(fields, m.Fields()...)
			}
			fields = append(fields, sc.Fields()...)
			require.NotEmpty(t, fields)

			for _, f := range fields {
				name := f.Descriptor().Name
				assert.True(t, cols[name], "column %s missing from %s", name, table)
			}
		})
	}
}

func tableColumns(t *testing.T, s *Store, table string) map[string]bool {
	t.Helper()
	rows, err := s.DB().Query("SELECT name FROM pragma_table_info(?)", table)
	require.NoError(t, err)
	defer rows.Close()

	cols := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		cols[name] = true
	}
	require.NoError(t, rows.Err())
	return cols
}
