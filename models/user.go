package models

import (
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const USERS_COLLECTION = "users"

var userModel *UserModel

// User types
const (
	ADMIN  = "admin"
	EDITOR = "editor"
)

type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Name      string             `json:"name" bson:"name" example:"Jane Roe"`
	Email     string             `json:"email" bson:"email" example:"jane@example.com"`
	Password  string             `json:"-" bson:"password"`
	UserType  string             `json:"user_type" bson:"user_type" enums:"admin,editor"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
	V         int32              `json:"__v" bson:"__v"`
}

type SimpleUser struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	UserType string             `json:"user_type" bson:"user_type"`
}

type UserModel struct {
	CollectionName string
}

func NewModelUser(name, email, hashedPassword, userType string) *User {
	now := primitive.NewDateTimeFromTime(time.Now())
	return &User{
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		UserType:  userType,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (user *UserModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(user.CollectionName)
}

func (user *UserModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := user.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (user *UserModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := user.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (user *UserModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := user.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (user *UserModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := user.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (user *UserModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := user.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewUserModel() Collection {
	if userModel == nil {
		userModel = &UserModel{
			CollectionName: USERS_COLLECTION,
		}
	}
	return userModel
}
