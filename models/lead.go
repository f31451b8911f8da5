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

const LEADS_COLLECTION = "leads"

var leadModel *LeadModel

type Lead struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Name      string             `json:"name" bson:"name" example:"Jane Roe"`
	Email     string             `json:"email" bson:"email" example:"jane@example.com"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Course    string             `json:"course,omitempty" bson:"course,omitempty"`
	Message   string             `json:"message,omitempty" bson:"message,omitempty"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
	V         int32              `json:"__v" bson:"__v"`
}

type LeadModel struct {
	CollectionName string
}

func NewModelLead(lead *forms.LeadForm) *Lead {
	now := primitive.NewDateTimeFromTime(time.Now())
	return &Lead{
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Course:    lead.Course,
		Message:   lead.Message,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (lead *LeadModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(lead.CollectionName)
}

func (lead *LeadModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := lead.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (lead *LeadModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := lead.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (lead *LeadModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := lead.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (lead *LeadModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := lead.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (lead *LeadModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := lead.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewLeadModel() Collection {
	if leadModel == nil {
		leadModel = &LeadModel{
			CollectionName: LEADS_COLLECTION,
		}
	}
	return leadModel
}
