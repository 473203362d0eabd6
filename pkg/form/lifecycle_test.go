package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	t.Run("accept path", func(t *testing.T) {
		l := newLifecycle()
		assert.Equal(t, PhaseIdle, l.Current())

		require.NoError(t, l.fire(triggerSubmit))
		assert.Equal(t, PhaseSubmitted, l.Current())
		require.NoError(t, l.fire(triggerAccept))
		assert.Equal(t, PhaseAccepted, l.Current())
		require.NoError(t, l.fire(triggerSettle))
		assert.Equal(t, PhaseIdle, l.Current())
	})

	t.Run("reject path", func(t *testing.T) {
		l := newLifecycle()
		require.NoError(t, l.fire(triggerSubmit))
		require.NoError(t, l.fire(triggerReject))
		assert.Equal(t, PhaseRejected, l.Current())
		require.NoError(t, l.fire(triggerSettle))
		assert.Equal(t, PhaseIdle, l.Current())
	})

	t.Run("out of order triggers fail", func(t *testing.T) {
		l := newLifecycle()
		assert.ErrorIs(t, l.fire(triggerAccept), ErrNoTransition)
		assert.ErrorIs(t, l.fire(triggerSettle), ErrNoTransition)

		require.NoError(t, l.fire(triggerSubmit))
		assert.ErrorIs(t, l.fire(triggerSubmit), ErrNoTransition)
		assert.Equal(t, PhaseSubmitted, l.Current())
	})

	t.Run("reset returns to idle", func(t *testing.T) {
		l := newLifecycle()
		require.NoError(t, l.fire(triggerSubmit))
		l.reset()
		assert.Equal(t, PhaseIdle, l.Current())
	})
}
