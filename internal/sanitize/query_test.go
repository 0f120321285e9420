package sanitize

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestQueryParams(t *testing.T) {
	t.Run("unknown parameters dropped", func(t *testing.T) {
		values := url.Values{
			"keyword": {"diver"},
			"sort":    {"price"},
			"$where":  {"sleep(1000)"},
		}

		got := QueryParams(values)

		assert.Equal(t, map[string]string{"keyword": "diver"}, got)
	})

	t.Run("retained values sanitized", func(t *testing.T) {
		values := url.Values{"keyword": {" $gt diver "}}

		got := QueryParams(values)

		assert.Equal(t, "gt diver", got["keyword"])
	})

	t.Run("absent parameters omitted", func(t *testing.T) {
		got := QueryParams(url.Values{})
		assert.Empty(t, got)
	})
}

func TestBuildSafeQuery(t *testing.T) {
	t.Run("empty params match everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, BuildSafeQuery(map[string]string{}))
	})

	t.Run("keyword searches name and category", func(t *testing.T) {
		got := BuildSafeQuery(map[string]string{"keyword": "diver"})

		assert.Equal(t, bson.M{
			"$or": bson.A{
				bson.M{"name": bson.M{"$regex": "diver", "$options": "i"}},
				bson.M{"category": bson.M{"$regex": "diver", "$options": "i"}},
			},
		}, got)
	})

	t.Run("category is exact match", func(t *testing.T) {
		got := BuildSafeQuery(map[string]string{"category": "Chronograph"})
		assert.Equal(t, bson.M{"category": "Chronograph"}, got)
	})

	t.Run("All and Tout sentinels mean no category filter", func(t *testing.T) {
		assert.Equal(t, bson.M{}, BuildSafeQuery(map[string]string{"category": "All"}))
		assert.Equal(t, bson.M{}, BuildSafeQuery(map[string]string{"category": "Tout"}))
	})

	t.Run("price bounds", func(t *testing.T) {
		got := BuildSafeQuery(map[string]string{"min": "50", "max": "200"})
		assert.Equal(t, bson.M{"price": bson.M{"$gte": 50.0, "$lte": 200.0}}, got)
	})

	t.Run("lone min bound", func(t *testing.T) {
		got := BuildSafeQuery(map[string]string{"min": "50"})
		assert.Equal(t, bson.M{"price": bson.M{"$gte": 50.0}}, got)
	})

	t.Run("unparsable bounds ignored", func(t *testing.T) {
		got := BuildSafeQuery(map[string]string{"min": "cheap", "max": "expensive"})
		assert.Equal(t, bson.M{}, got)
	})

	t.Run("minimum rating", func(t *testing.T) {
		got := BuildSafeQuery(map[string]string{"rating": "4"})
		assert.Equal(t, bson.M{"rating": bson.M{"$gte": 4.0}}, got)
	})

	t.Run("unparsable rating ignored", func(t *testing.T) {
		got := BuildSafeQuery(map[string]string{"rating": "best"})
		assert.Equal(t, bson.M{}, got)
	})

	t.Run("keyword and category intersect", func(t *testing.T) {
		got := BuildSafeQuery(map[string]string{"keyword": "steel", "category": "Diver"})

		assert.Len(t, got, 2)
		assert.Equal(t, "Diver", got["category"])
		assert.Contains(t, got, "$or")
	})
}
