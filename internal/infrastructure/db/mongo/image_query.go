package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

// imageFields maps API field names to document fields.
var imageFields = map[string]string{
	domain.ImageFieldID:          "_id",
	domain.ImageFieldName:        "name",
	domain.ImageFieldDescription: "description",
	domain.ImageFieldURL:         "url",
	domain.ImageFieldUser:        "user",
	domain.ImageFieldCreatedAt:   "createdAt",
	domain.ImageFieldUpdatedAt:   "updatedAt",
}

// imageQuery builds the owner filter plus an optional case-insensitive
// literal search over name, description and url.
func imageQuery(f ports.ImageFilter) (bson.M, error) {
	owner, err := primitive.ObjectIDFromHex(f.UserID)
	if err != nil {
		return nil, domain.Invalid("user", "user must be a valid id")
	}

	q := bson.M{"user": owner}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"url": re},
		}
	}
	return q, nil
}

// imageSort orders by the requested field with _id as tie-breaker so pages
// are stable.
func imageSort(f ports.ImageFilter) bson.D {
	dir := -1
	if f.Asc {
		dir = 1
	}
	field, ok := imageFields[f.Sort]
	if !ok {
		field = "createdAt"
	}
	sort := bson.D{{Key: field, Value: dir}}
	if field != "_id" {
		sort = append(sort, bson.E{Key: "_id", Value: dir})
	}
	return sort
}

// imageProjection returns nil when every field is wanted.
func imageProjection(selected []string) bson.M {
	if len(selected) == 0 {
		return nil
	}
	p := bson.M{}
	for _, f := range selected {
		if field, ok := imageFields[f]; ok {
			p[field] = 1
		}
	}
	return p
}
