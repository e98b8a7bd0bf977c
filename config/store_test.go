package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeforge/logtree/level"
)

func TestResolveLevelMostSpecificWins(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetRule("app.*", level.Error))
	require.NoError(t, s.SetRule("app.database.*", level.Info))
	require.NoError(t, s.SetRule("app.database.repository.orders", level.Trace))

	assert.Equal(t, level.Trace, s.ResolveLevel("app.database.repository.orders"))
	assert.Equal(t, level.Info, s.ResolveLevel("app.database.connection"))
	assert.Equal(t, level.Error, s.ResolveLevel("app.ui.mainform"))
	assert.Equal(t, DefaultRootLevel, s.ResolveLevel("unrelated.service"))
}

func TestResolveLevelWildcardBoundary(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetRule("mqtt.*", level.Debug))

	assert.Equal(t, level.Debug, s.ResolveLevel("mqtt.client"))
	assert.Equal(t, level.Debug, s.ResolveLevel("mqtt.transport.ics"))
	// The bare prefix is not covered by the wildcard.
	assert.Equal(t, DefaultRootLevel, s.ResolveLevel("mqtt"))

	// An exact rule for the prefix coexists with the wildcard.
	require.NoError(t, s.SetRule("mqtt", level.Warn))
	assert.Equal(t, level.Warn, s.ResolveLevel("mqtt"))
	assert.Equal(t, level.Debug, s.ResolveLevel("mqtt.client"))
}

func TestResolveLevelCaseInsensitive(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetRule("App.Database.*", level.Debug))

	assert.Equal(t, level.Debug, s.ResolveLevel("app.DATABASE.connection"))
}

func TestSetRuleUpsert(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetRule("app.db", level.Debug))
	require.NoError(t, s.SetRule("app.db", level.Error))

	assert.Equal(t, level.Error, s.ResolveLevel("app.db"))
	// Only one rule besides root should remain.
	assert.Len(t, s.Rules(), 2)
}

func TestSetRuleRoot(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetRule("root", level.Warn))

	assert.Equal(t, level.Warn, s.Root())
	assert.Equal(t, level.Warn, s.ResolveLevel("anything"))
}

func TestSetRuleInvalidPattern(t *testing.T) {
	s := NewStore()
	assert.Error(t, s.SetRule("", level.Info))
	assert.Error(t, s.SetRule("app..db", level.Info))
	assert.Error(t, s.SetRule(".*", level.Info))
}

func TestDeleteRule(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetRule("app.db", level.Debug))
	require.NoError(t, s.SetRule("app.*", level.Error))

	assert.True(t, s.DeleteRule("app.db"))
	assert.False(t, s.DeleteRule("app.db"))
	assert.True(t, s.DeleteRule("app.*"))
	assert.Equal(t, DefaultRootLevel, s.ResolveLevel("app.db"))
}

func TestClearRestoresBaseline(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetRule("root", level.Error))
	require.NoError(t, s.SetRule("app.*", level.Trace))

	s.Clear()

	assert.Equal(t, DefaultRootLevel, s.Root())
	assert.Equal(t, DefaultRootLevel, s.ResolveLevel("app.db"))
	assert.Len(t, s.Rules(), 1)
}

func TestResolveLevelIsPure(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetRule("app.*", level.Debug))

	first := s.ResolveLevel("app.service")
	second := s.ResolveLevel("app.service")
	assert.Equal(t, first, second)
}

func TestRulesSnapshotSorted(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetRule("zeta.*", level.Debug))
	require.NoError(t, s.SetRule("alpha", level.Warn))

	rules := s.Rules()
	require.Len(t, rules, 3)
	for i := 1; i < len(rules); i++ {
		assert.Less(t, rules[i-1].Pattern, rules[i].Pattern)
	}
}

func TestStoreMarshalJSON(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetRule("app.*", level.Debug))

	data, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"app.*"`)
	assert.Contains(t, string(data), `"DEBUG"`)
	assert.Contains(t, string(data), `"root"`)
}
