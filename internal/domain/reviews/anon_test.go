package reviews

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymizer_StablePerDoctor(t *testing.T) {
	a, err := NewAnonymizer("test-salt")
	require.NoError(t, err)

	h1 := a.Handle(10, 3)
	h2 := a.Handle(10, 3)
	assert.Equal(t, h1, h2, "same user on same doctor must keep the same handle")
}

func TestAnonymizer_UnlinkableAcrossDoctors(t *testing.T) {
	a, err := NewAnonymizer("test-salt")
	require.NoError(t, err)

	onDoctorA := a.Handle(10, 3)
	onDoctorB := a.Handle(10, 4)
	assert.NotEqual(t, onDoctorA, onDoctorB, "same user must get distinct handles per doctor")
}

func TestAnonymizer_DistinctUsers(t *testing.T) {
	a, err := NewAnonymizer("test-salt")
	require.NoError(t, err)

	assert.NotEqual(t, a.Handle(10, 3), a.Handle(11, 3))
}

func TestAnonymizer_SaltChangesHandles(t *testing.T) {
	a1, err := NewAnonymizer("salt-one")
	require.NoError(t, err)
	a2, err := NewAnonymizer("salt-two")
	require.NoError(t, err)

	assert.NotEqual(t, a1.Handle(10, 3), a2.Handle(10, 3))
}

func TestAnonymizer_HandleShape(t *testing.T) {
	a, err := NewAnonymizer("test-salt")
	require.NoError(t, err)

	h := a.Handle(1, 1)
	assert.True(t, strings.HasPrefix(h, "student-"))
	assert.GreaterOrEqual(t, len(strings.TrimPrefix(h, "student-")), 8)
}

func TestReview_Overall(t *testing.T) {
	rv := Review{Teaching: 5, Availability: 4, Communication: 3, Knowledge: 5, Fairness: 4}
	assert.InDelta(t, 4.2, rv.Overall(), 0.0001)

	rv = Review{Teaching: 1, Availability: 1, Communication: 1, Knowledge: 1, Fairness: 1}
	assert.Equal(t, 1.0, rv.Overall())
}
