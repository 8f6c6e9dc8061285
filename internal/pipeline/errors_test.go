package pipeline

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestStageErrorClassification(t *testing.T) {
	t.Parallel()

	t.Run("KindOfReturnsOutermostKind", func(t *testing.T) {
		t.Parallel()
		inner := NewStageError(KindSearchUnavailable, "research", errors.New("connection refused"))
		outer := NewStageError(KindResearchFailed, "research", inner)

		kind, ok := KindOf(outer)
		require.True(t, ok)
		require.Equal(t, KindResearchFailed, kind)
	})

	t.Run("HasKindWalksTheChain", func(t *testing.T) {
		t.Parallel()
		inner := NewStageError(KindSearchUnavailable, "research", errors.New("timeout"))
		wrapped := errors.Wrap(inner, "stage research failed")
		outer := NewStageError(KindResearchFailed, "research", wrapped)

		require.True(t, HasKind(outer, KindResearchFailed))
		require.True(t, HasKind(outer, KindSearchUnavailable))
		require.False(t, HasKind(outer, KindGenerationUnavailable))
	})

	t.Run("UnclassifiedErrorHasNoKind", func(t *testing.T) {
		t.Parallel()
		_, ok := KindOf(errors.New("raw"))
		require.False(t, ok)
		require.False(t, HasKind(nil, KindInvalidInput))
	})

	t.Run("ErrorStringIncludesStageAndCause", func(t *testing.T) {
		t.Parallel()
		err := NewStageError(KindGenerationUnavailable, "writing", errors.New("boom"))
		require.Contains(t, err.Error(), "generation_unavailable")
		require.Contains(t, err.Error(), "writing")
		require.Contains(t, err.Error(), "boom")
	})
}
