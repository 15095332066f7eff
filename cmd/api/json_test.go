package main

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorValidation(t *testing.T) {
	type payload struct {
		Score int `validate:"factor"`
	}

	for _, score := range []int{1, 3, 5} {
		assert.NoError(t, Validate.Struct(payload{Score: score}), "score %d should pass", score)
	}

	for _, score := range []int{0, 6, -1, 100} {
		assert.Error(t, Validate.Struct(payload{Score: score}), "score %d should fail", score)
	}
}

func TestCreateReviewPayloadValidation(t *testing.T) {
	valid := CreateReviewPayload{
		Teaching:      5,
		Availability:  4,
		Communication: 3,
		Knowledge:     5,
		Fairness:      2,
		Comment:       "clear lectures, hard exams",
	}
	require.NoError(t, Validate.Struct(valid))

	missing := valid
	missing.Knowledge = 0
	assert.Error(t, Validate.Struct(missing), "zero factor should fail required")

	outOfRange := valid
	outOfRange.Teaching = 6
	assert.Error(t, Validate.Struct(outOfRange))

	atLimit := valid
	atLimit.Comment = strings.Repeat("x", 1000)
	assert.NoError(t, Validate.Struct(atLimit))

	longComment := valid
	longComment.Comment = strings.Repeat("x", 1001)
	assert.Error(t, Validate.Struct(longComment))
}

func TestReadJSONRejectsUnknownFields(t *testing.T) {
	var payload CreateUserTokenPayload

	r := httptest.NewRequest("POST", "/v1/auth/token", strings.NewReader(`{"email":"a@b.edu","password":"secret123","bogus":true}`))
	w := httptest.NewRecorder()

	err := readJSON(w, r, &payload)
	assert.Error(t, err)
}

func TestReadJSONDecodesPayload(t *testing.T) {
	var payload CreateUserTokenPayload

	r := httptest.NewRequest("POST", "/v1/auth/token", strings.NewReader(`{"email":"a@b.edu","password":"secret123"}`))
	w := httptest.NewRecorder()

	require.NoError(t, readJSON(w, r, &payload))
	assert.Equal(t, "a@b.edu", payload.Email)
	assert.Equal(t, "secret123", payload.Password)
}
