package sanitize

import (
	"net/url"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// allowedParams is the fixed set of catalog search parameters. Anything
// outside it is dropped, not repaired.
var allowedParams = []string{
	"keyword",
	"category",
	"min",
	"max",
	"rating",
	"pageNumber",
	"query",
}

// QueryParams filters values down to the allowlisted parameter names and
// sanitizes every retained value.
func QueryParams(values url.Values) map[string]string {
	sanitized := make(map[string]string)
	for _, param := range allowedParams {
		if !values.Has(param) {
			continue
		}
		sanitized[param] = String(values.Get(param))
	}
	return sanitized
}

// BuildSafeQuery constructs a catalog search filter from sanitized
// parameters.
//
// A keyword matches name or category as a case-insensitive substring. A
// category other than the "All"/"Tout" sentinels is an exact match and
// intersects with the keyword clause. Price bounds and the minimum rating
// are numeric; values that do not parse are ignored. With no recognized
// input the filter is empty and matches everything.
func BuildSafeQuery(params map[string]string) bson.M {
	query := bson.M{}

	if keyword := String(params["keyword"]); keyword != "" {
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": keyword, "$options": "i"}},
			bson.M{"category": bson.M{"$regex": keyword, "$options": "i"}},
		}
	}

	if category := params["category"]; category != "" && category != "All" && category != "Tout" {
		query["category"] = String(category)
	}

	if params["min"] != "" || params["max"] != "" {
		price := bson.M{}
		if min, err := strconv.ParseFloat(params["min"], 64); err == nil {
			price["$gte"] = min
		}
		if max, err := strconv.ParseFloat(params["max"], 64); err == nil {
			price["$lte"] = max
		}
		if len(price) > 0 {
			query["price"] = price
		}
	}

	if params["rating"] != "" {
		if rating, err := strconv.ParseFloat(params["rating"], 64); err == nil {
			query["rating"] = bson.M{"$gte": rating}
		}
	}

	return query
}
