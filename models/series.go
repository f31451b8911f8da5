package models

import (
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/db"
	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const SERIES_COLLECTION = "series"

var seriesModel *SeriesModel

type Series struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Title       string             `json:"title" bson:"title" example:"Mongo internals"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageURI    string             `json:"image_uri,omitempty" bson:"image_uri,omitempty"`
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt   primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
	V           int32              `json:"__v" bson:"__v"`
}

type SeriesModel struct {
	CollectionName string
}

func NewModelSeries(series *forms.SeriesForm) *Series {
	now := primitive.NewDateTimeFromTime(time.Now())
	model := &Series{
		Title:       series.Title,
		Description: series.Description,
		ImageURI:    series.ImageURI,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if series.Active != nil {
		model.Active = *series.Active
	}
	return model
}

func (series *SeriesModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(series.CollectionName)
}

func (series *SeriesModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := series.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (series *SeriesModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := series.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (series *SeriesModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := series.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (series *SeriesModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := series.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (series *SeriesModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := series.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewSeriesModel() Collection {
	if seriesModel == nil {
		seriesModel = &SeriesModel{
			CollectionName: SERIES_COLLECTION,
		}
	}
	return seriesModel
}
