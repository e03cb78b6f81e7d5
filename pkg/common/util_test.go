package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("RF_TEST_STR", "  serial ")
	t.Setenv("RF_TEST_INT", "9600")
	t.Setenv("RF_TEST_FLOAT", "2.5")
	t.Setenv("RF_TEST_DUR", "250ms")
	t.Setenv("RF_TEST_BAD", "nope")

	assert.Equal(t, "serial", GetEnvOr("RF_TEST_STR", "mqtt"))
	assert.Equal(t, "mqtt", GetEnvOr("RF_TEST_MISSING", "mqtt"))
	assert.Equal(t, 9600, GetEnvInt("RF_TEST_INT", 0))
	assert.Equal(t, 7, GetEnvInt("RF_TEST_BAD", 7))
	assert.Equal(t, 2.5, GetEnvFloat("RF_TEST_FLOAT", 0))
	assert.Equal(t, 1.0, GetEnvFloat("RF_TEST_BAD", 1.0))
	assert.Equal(t, 250*time.Millisecond, GetEnvDuration("RF_TEST_DUR", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("RF_TEST_BAD", time.Second))
}

func TestMapperReducerFilter(t *testing.T) {
	codes := []string{"111", "", "222"}

	nonEmpty := Filter(codes, func(c string) bool { return c != "" })
	assert.Equal(t, []string{"111", "222"}, nonEmpty)

	lengths := Mapper(nonEmpty, func(c string) int { return len(c) })
	assert.Equal(t, []int{3, 3}, lengths)

	set := Reducer(nonEmpty, func(m map[string]bool, c string) map[string]bool {
		m[c] = true
		return m
	}, map[string]bool{})
	assert.Len(t, set, 2)
	assert.True(t, set["222"])
}
