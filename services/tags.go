package services

import (
	"fmt"
	"net/http"
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/db"
	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/CPU-commits/Academy_BBackoffice/models"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var tagsService *TagsService

type TagsService struct{}

func (t *TagsService) NewTag(tagData *forms.TagForm) (*models.Tag, *res.ErrorRes) {
	tagModelData := models.NewModelTag(tagData)
	inserted, err := tagModel.NewDocument(tagModelData)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	tagModelData.ID = inserted.InsertedID.(primitive.ObjectID)
	return tagModelData, nil
}

func (t *TagsService) GetTags() ([]models.Tag, *res.ErrorRes) {
	var tags []models.Tag

	cursor, err := tagModel.GetAll(bson.D{}, options.Find().SetSort(bson.D{{
		Key:   "name",
		Value: 1,
	}}))
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &tags); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return tags, nil
}

func (t *TagsService) UpdateTag(idTag string, tagData *forms.TagUpdateForm) *res.ErrorRes {
	idObjTag, err := primitive.ObjectIDFromHex(idTag)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	// Exists
	var tag *models.Tag
	cursor := tagModel.GetByID(idObjTag)
	if err := cursor.Decode(&tag); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return &res.ErrorRes{
				Err:        fmt.Errorf("no existe este tag"),
				StatusCode: http.StatusNotFound,
			}
		}
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	// Update
	set := bson.M{
		"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
	}
	if tagData.Name != nil {
		set["name"] = *tagData.Name
	}
	if tagData.Active != nil {
		set["active"] = *tagData.Active
	}
	_, err = tagModel.Use().UpdateByID(db.Ctx, idObjTag, bson.D{
		{
			Key:   "$set",
			Value: set,
		},
	})
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

func (t *TagsService) DeleteTag(idTag string) *res.ErrorRes {
	idObjTag, err := primitive.ObjectIDFromHex(idTag)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	// Exists
	var tag *models.Tag
	cursor := tagModel.GetByID(idObjTag)
	if err := cursor.Decode(&tag); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return &res.ErrorRes{
				Err:        fmt.Errorf("no existe este tag"),
				StatusCode: http.StatusNotFound,
			}
		}
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	_, err = tagModel.Use().DeleteOne(db.Ctx, bson.M{
		"_id": idObjTag,
	})
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

func NewTagsService() *TagsService {
	if tagsService == nil {
		tagsService = &TagsService{}
	}
	return tagsService
}
