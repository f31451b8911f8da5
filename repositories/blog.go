package repositories

import (
	"net/http"

	"github.com/CPU-commits/Academy_BBackoffice/db"
	"github.com/CPU-commits/Academy_BBackoffice/models"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var blogModel = models.NewBlogModel()

type BlogRepository struct{}

// BlogWithLookup joins the series and author referenced by a blog post
type BlogWithLookup struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Slug      string             `json:"slug" bson:"slug"`
	Content   string             `json:"content" bson:"content"`
	BannerURI string             `json:"banner_uri,omitempty" bson:"banner_uri,omitempty"`
	ImageURI  string             `json:"image_uri,omitempty" bson:"image_uri,omitempty"`
	Series    *models.Series     `json:"series,omitempty" bson:"series,omitempty"`
	Tags      []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	User      *models.SimpleUser `json:"user,omitempty" bson:"user,omitempty"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

func (b *BlogRepository) GetBlogFromId(idBlog primitive.ObjectID) (*models.Blog, error) {
	var blog *models.Blog
	cursor := blogModel.GetByID(idBlog)
	if err := cursor.Decode(&blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (b *BlogRepository) GetBlogs(
	filter bson.M,
	sortOrder int,
	skip,
	limit int64,
) ([]BlogWithLookup, *res.ErrorRes) {
	var blogs []BlogWithLookup

	match := bson.D{{
		Key:   "$match",
		Value: filter,
	}}
	sortBson := bson.D{{
		Key: "$sort",
		Value: bson.M{
			"updatedAt": sortOrder,
		},
	}}
	skipBson := bson.D{{
		Key:   "$skip",
		Value: skip,
	}}
	limitBson := bson.D{{
		Key:   "$limit",
		Value: limit,
	}}
	setFirst := bson.D{{
		Key: "$set",
		Value: bson.M{
			"series": bson.M{
				"$first": "$series",
			},
			"user": bson.M{
				"$first": "$user",
			},
		},
	}}
	cursor, err := blogModel.Aggreagate(mongo.Pipeline{
		match,
		sortBson,
		skipBson,
		limitBson,
		b.getLookupSeries(),
		b.getLookupUser(),
		setFirst,
	})
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &blogs); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return blogs, nil
}

func (b *BlogRepository) CountBlogs(filter bson.M) (int64, error) {
	return blogModel.Use().CountDocuments(db.Ctx, filter)
}
