package services

import "go.mongodb.org/mongo-driver/bson"

// BuildListingQuery turns the optional locationType filter and free-text
// search into a Mongo query. Filter and search combine with AND; the search
// itself matches title, description, or location case-insensitively. With
// neither present the query matches every listing.
func BuildListingQuery(filter, searchQuery string) bson.M {
	query := bson.M{}

	if filter != "" {
		query["location_type"] = filter
	}

	if searchQuery != "" {
		query["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": searchQuery, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": searchQuery, "$options": "i"}},
			bson.M{"location": bson.M{"$regex": searchQuery, "$options": "i"}},
		}
	}

	return query
}

// BuildFilterQuery serves the filter-only middleware path, which reads the
// bracketed query key. Construction is identical to BuildListingQuery with no
// search text; only the parameter name at the boundary differs.
func BuildFilterQuery(filter string) bson.M {
	return BuildListingQuery(filter, "")
}
