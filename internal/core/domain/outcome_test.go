package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeSucceed(t *testing.T) {
	o := NewOutcome[int64]()
	o.Succeed(42)

	res := <-o.Done()
	assert.True(t, res.OK)
	assert.Equal(t, int64(42), res.Value)
}

func TestOutcomeFail(t *testing.T) {
	o := NewOutcome[struct{}]()
	o.Fail(403, "forbidden")

	res := <-o.Done()
	assert.False(t, res.OK)
	assert.Equal(t, 403, res.Code)
	assert.Equal(t, "forbidden", res.Detail)
}

func TestOutcomeResolvesExactlyOnce(t *testing.T) {
	o := NewOutcome[bool]()
	o.Succeed(true)
	o.Fail(500, "late failure must be ignored")
	o.Succeed(false)

	res := <-o.Done()
	require.True(t, res.OK)
	assert.True(t, res.Value)

	select {
	case extra := <-o.Done():
		t.Fatalf("outcome delivered a second result: %+v", extra)
	default:
	}
}

func TestSucceededAndFailedConstructors(t *testing.T) {
	res := <-Succeeded("id").Done()
	assert.True(t, res.OK)
	assert.Equal(t, "id", res.Value)

	res2 := <-Failed[string](500, "boom").Done()
	assert.False(t, res2.OK)
	assert.Equal(t, 500, res2.Code)
	assert.Equal(t, "boom", res2.Detail)
}
