package utils_test

import (
	"testing"

	"helperkit/core/utils"

	"github.com/stretchr/testify/assert"
)

func users() []utils.Record {
	return []utils.Record{
		{"id": 1, "name": "ada", "team": "core"},
		{"id": 2, "name": "linus", "team": "kernel"},
		{"id": float64(3), "name": "grace", "team": "core"},
	}
}

func TestFindByKey(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		r, ok := utils.FindByKey(users(), 2)
		assert.True(t, ok)
		assert.Equal(t, "linus", r["name"])
	})

	t.Run("DecodedNumber", func(t *testing.T) {
		r, ok := utils.FindByKey(users(), 3)
		assert.True(t, ok)
		assert.Equal(t, "grace", r["name"])
	})

	t.Run("Missing", func(t *testing.T) {
		r, ok := utils.FindByKey(users(), 99)
		assert.False(t, ok)
		assert.Nil(t, r)
	})

	t.Run("NilKey", func(t *testing.T) {
		_, ok := utils.FindByKey(users(), nil)
		assert.False(t, ok)
	})

	t.Run("NilRecords", func(t *testing.T) {
		_, ok := utils.FindByKey(nil, 1)
		assert.False(t, ok)
	})

	t.Run("CustomField", func(t *testing.T) {
		r, ok := utils.FindByField(users(), "team", "core")
		assert.True(t, ok)
		assert.Equal(t, "ada", r["name"], "first match wins")
	})
}

func TestFindMatching(t *testing.T) {
	t.Run("Overlap", func(t *testing.T) {
		candidates := []utils.Record{{"id": float64(3)}, {"id": 1}, {"id": 7}}
		got, ok := utils.FindMatching(users(), candidates)
		assert.True(t, ok)
		assert.Len(t, got, 2)
		assert.Equal(t, "ada", got[0]["name"], "order follows the first input")
		assert.Equal(t, "grace", got[1]["name"])
	})

	t.Run("NoOverlap", func(t *testing.T) {
		got, ok := utils.FindMatching(users(), []utils.Record{{"id": 42}})
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("NilInput", func(t *testing.T) {
		_, ok := utils.FindMatching(nil, users())
		assert.False(t, ok)
		_, ok = utils.FindMatching(users(), nil)
		assert.False(t, ok)
	})

	t.Run("ByField", func(t *testing.T) {
		got, ok := utils.FindMatchingBy(users(), []utils.Record{{"team": "kernel"}}, "team")
		assert.True(t, ok)
		assert.Equal(t, []utils.Record{users()[1]}, got)
	})
}

func TestLast(t *testing.T) {
	v, ok := utils.Last([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	s, ok := utils.Last([]string{})
	assert.False(t, ok)
	assert.Equal(t, "", s)
}
