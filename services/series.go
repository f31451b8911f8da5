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

var seriesService *SeriesService

type SeriesService struct{}

func (s *SeriesService) NewSeries(seriesData *forms.SeriesForm) (*models.Series, *res.ErrorRes) {
	seriesModelData := models.NewModelSeries(seriesData)
	inserted, err := seriesModel.NewDocument(seriesModelData)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	seriesModelData.ID = inserted.InsertedID.(primitive.ObjectID)
	return seriesModelData, nil
}

func (s *SeriesService) GetSeries() ([]models.Series, *res.ErrorRes) {
	var series []models.Series

	cursor, err := seriesModel.GetAll(bson.D{}, options.Find().SetSort(bson.D{{
		Key:   "updatedAt",
		Value: -1,
	}}))
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &series); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return series, nil
}

func (s *SeriesService) UpdateSeries(idSeries string, seriesData *forms.SeriesUpdateForm) *res.ErrorRes {
	idObjSeries, err := primitive.ObjectIDFromHex(idSeries)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	// Exists
	var series *models.Series
	cursor := seriesModel.GetByID(idObjSeries)
	if err := cursor.Decode(&series); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return &res.ErrorRes{
				Err:        fmt.Errorf("no existe esta serie"),
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
	if seriesData.Title != nil {
		set["title"] = *seriesData.Title
	}
	if seriesData.Description != nil {
		set["description"] = *seriesData.Description
	}
	if seriesData.ImageURI != nil {
		set["image_uri"] = *seriesData.ImageURI
	}
	if seriesData.Active != nil {
		set["active"] = *seriesData.Active
	}
	_, err = seriesModel.Use().UpdateByID(db.Ctx, idObjSeries, bson.D{
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

func (s *SeriesService) DeleteSeries(idSeries string) *res.ErrorRes {
	idObjSeries, err := primitive.ObjectIDFromHex(idSeries)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	// Exists
	var series *models.Series
	cursor := seriesModel.GetByID(idObjSeries)
	if err := cursor.Decode(&series); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return &res.ErrorRes{
				Err:        fmt.Errorf("no existe esta serie"),
				StatusCode: http.StatusNotFound,
			}
		}
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	_, err = seriesModel.Use().DeleteOne(db.Ctx, bson.M{
		"_id": idObjSeries,
	})
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

func NewSeriesService() *SeriesService {
	if seriesService == nil {
		seriesService = &SeriesService{}
	}
	return seriesService
}
