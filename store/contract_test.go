package store_test

import (
	"context"
	"testing"

	"github.com/enetx/automaton"
	"github.com/enetx/automaton/store"
	"github.com/enetx/g"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument(t *testing.T) *automaton.Document {
	t.Helper()

	dfa := automaton.NewDFA().
		Start("start").
		Edge("start", "a", "s1").
		Edge("s1", "b", "accept").
		Accepting("accept")

	doc, err := automaton.NewDocument(dfa, automaton.Tests{
		Accept: g.SliceOf[g.String]("ab"),
		Reject: g.SliceOf[g.String]("", "a"),
	})
	require.NoError(t, err)

	return doc
}

// runContract checks the behavior every Store implementation shares.
func runContract(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.Load(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	doc := sampleDocument(t)
	require.NoError(t, s.Save(ctx, "beta", doc))
	require.NoError(t, s.Save(ctx, "alpha", doc))

	loaded, err := s.Load(ctx, "beta")
	require.NoError(t, err)
	assert.Equal(t, automaton.KindDFA, loaded.Kind)

	a, err := loaded.Build()
	require.NoError(t, err)
	assert.True(t, a.Accepts("ab"))
	assert.True(t, automaton.BulkTest(a, loaded.Tests).OK())

	// Loaded documents are copies.
	loaded.DFA.AcceptStates = nil
	again, err := s.Load(ctx, "beta")
	require.NoError(t, err)
	assert.Len(t, again.DFA.AcceptStates, 1)

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)

	require.NoError(t, s.Delete(ctx, "beta"))
	require.NoError(t, s.Delete(ctx, "beta"))

	_, err = s.Load(ctx, "beta")
	assert.ErrorIs(t, err, store.ErrNotFound)

	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, names)

	// Names that look like bookkeeping keys are ordinary documents.
	require.NoError(t, s.Save(ctx, "index", doc))
	loaded, err = s.Load(ctx, "index")
	require.NoError(t, err)
	assert.Equal(t, automaton.KindDFA, loaded.Kind)

	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "index"}, names)
}
