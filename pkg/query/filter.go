package query

import (
	"net/url"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// reserved query parameters that never become filter fields.
var reservedParams = map[string]bool{
	"current":  true,
	"pageSize": true,
	"sort":     true,
	"fields":   true,
}

// Filter builds a document filter from query string values. Reserved
// pagination parameters are stripped; only fields named in allowed become
// filter conditions. Values of the form /expr/ turn into case-insensitive
// regex matches, everything else is an exact match.
//
//	?current=1&name=/engineer/&level=SENIOR
//
// with allowed "name" and "level" yields
//
//	{name: {$regex: "engineer", $options: "i"}, level: "SENIOR"}
func Filter(values url.Values, allowed ...string) bson.M {
	allowedSet := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		allowedSet[f] = true
	}

	filter := bson.M{}
	for key, vals := range values {
		if reservedParams[key] || !allowedSet[key] || len(vals) == 0 {
			continue
		}
		value := vals[0]
		if value == "" {
			continue
		}

		if expr, ok := regexValue(value); ok {
			filter[key] = bson.M{"$regex": expr, "$options": "i"}
			continue
		}
		filter[key] = value
	}
	return filter
}

// ExcludeDeleted adds the soft-delete exclusion to a filter, so listings
// only see live documents. $ne rather than false keeps documents written
// before the flag existed visible. A nil filter is allocated.
func ExcludeDeleted(filter bson.M) bson.M {
	if filter == nil {
		filter = bson.M{}
	}
	filter["isDeleted"] = bson.M{"$ne": true}
	return filter
}

// regexValue reports whether value is a /expr/ pattern and returns the
// quoted expression. Invalid patterns fall back to exact matching.
func regexValue(value string) (string, bool) {
	if len(value) < 3 || !strings.HasPrefix(value, "/") || !strings.HasSuffix(value, "/") {
		return "", false
	}
	expr := value[1 : len(value)-1]
	if _, err := regexp.Compile(expr); err != nil {
		return "", false
	}
	return expr, true
}

// Projection converts a comma-separated field list to a projection document.
// An empty expression returns nil, which selects all fields.
func Projection(expr string) bson.M {
	proj := bson.M{}
	for _, field := range strings.Split(expr, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if strings.HasPrefix(field, "-") {
			proj[field[1:]] = 0
			continue
		}
		proj[field] = 1
	}
	if len(proj) == 0 {
		return nil
	}
	return proj
}
