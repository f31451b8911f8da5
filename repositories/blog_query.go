package repositories

import (
	"github.com/CPU-commits/Academy_BBackoffice/models"
	"go.mongodb.org/mongo-driver/bson"
)

func (b *BlogRepository) getLookupSeries() bson.D {
	return bson.D{
		{
			Key: "$lookup",
			Value: bson.M{
				"from":         models.SERIES_COLLECTION,
				"localField":   "series",
				"foreignField": "_id",
				"as":           "series",
				"pipeline": bson.A{bson.M{
					"$project": bson.M{
						"title":     1,
						"image_uri": 1,
						"active":    1,
					},
				}},
			},
		},
	}
}

func (b *BlogRepository) getLookupUser() bson.D {
	return bson.D{
		{
			Key: "$lookup",
			Value: bson.M{
				"from":         models.USERS_COLLECTION,
				"localField":   "user",
				"foreignField": "_id",
				"as":           "user",
				"pipeline": bson.A{bson.M{
					"$project": bson.M{
						"name":      1,
						"email":     1,
						"user_type": 1,
					},
				}},
			},
		},
	}
}
