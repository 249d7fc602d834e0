package query

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ParseSort converts a comma-separated sort expression to a sort document.
// A leading minus marks descending order: "-updatedAt,name" sorts by
// updatedAt descending then name ascending. Empty expressions and blank
// segments are skipped.
func ParseSort(expr string) bson.D {
	var sort bson.D
	for _, field := range strings.Split(expr, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		order := int32(1)
		if strings.HasPrefix(field, "-") {
			order = -1
			field = field[1:]
		} else {
			field = strings.TrimPrefix(field, "+")
		}
		if field == "" {
			continue
		}

		sort = append(sort, bson.E{Key: field, Value: order})
	}
	return sort
}
