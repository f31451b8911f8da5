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

const TAGS_COLLECTION = "tags"

var tagModel *TagModel

type Tag struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Name      string             `json:"name" bson:"name" example:"devops"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
	V         int32              `json:"__v" bson:"__v"`
}

type TagModel struct {
	CollectionName string
}

func NewModelTag(tag *forms.TagForm) *Tag {
	now := primitive.NewDateTimeFromTime(time.Now())
	model := &Tag{
		Name:      tag.Name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if tag.Active != nil {
		model.Active = *tag.Active
	}
	return model
}

func (tag *TagModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(tag.CollectionName)
}

func (tag *TagModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := tag.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (tag *TagModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := tag.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (tag *TagModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := tag.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (tag *TagModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := tag.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (tag *TagModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := tag.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewTagModel() Collection {
	if tagModel == nil {
		tagModel = &TagModel{
			CollectionName: TAGS_COLLECTION,
		}
	}
	return tagModel
}
