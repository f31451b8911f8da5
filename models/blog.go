package models

import (
	"strings"
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/db"
	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BLOGS_COLLECTION = "blogs"
const BLOGS_INDEX = "blogs"

var blogModel *BlogModel

// MongoDB Struct
type Blog struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Title     string             `json:"title" bson:"title" example:"Scaling Mongo"`
	Slug      string             `json:"slug" bson:"slug" example:"scaling-mongo"`
	Content   string             `json:"content" bson:"content"`
	BannerURI string             `json:"banner_uri,omitempty" bson:"banner_uri,omitempty"`
	ImageURI  string             `json:"image_uri,omitempty" bson:"image_uri,omitempty"`
	Series    primitive.ObjectID `json:"series,omitempty" bson:"series,omitempty" extensions:"x-omitempty"`
	Tags      []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	User      primitive.ObjectID `json:"user,omitempty" bson:"user,omitempty" extensions:"x-omitempty"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
	V         int32              `json:"__v" bson:"__v"`
}

// ElasticSearch Struct - Blog content
type ContentBlog struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	Published time.Time `json:"published"`
}

type BlogModel struct {
	CollectionName string
}

// ToSlug derives the URL key from a title: lowercase, spaces to hyphens,
// everything outside [a-z0-9-] stripped
func ToSlug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r == ' ':
			b.WriteRune('-')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func NewModelBlog(blog *forms.BlogForm, user primitive.ObjectID) (*Blog, error) {
	now := primitive.NewDateTimeFromTime(time.Now())
	model := &Blog{
		Title:     blog.Title,
		Slug:      ToSlug(blog.Title),
		Content:   blog.Content,
		BannerURI: blog.BannerURI,
		ImageURI:  blog.ImageURI,
		Tags:      blog.Tags,
		User:      user,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if blog.Series != "" {
		seriesObjId, err := primitive.ObjectIDFromHex(blog.Series)
		if err != nil {
			return nil, err
		}
		model.Series = seriesObjId
	}
	return model, nil
}

// EnsureBlogIndexes creates the unique slug index. Called once at server init
func EnsureBlogIndexes() error {
	indexName := mongo.IndexModel{
		Keys: bson.D{
			{
				Key:   "slug",
				Value: 1,
			},
		},
		Options: options.Index().SetUnique(true),
	}
	_, err := NewBlogModel().Use().Indexes().CreateOne(db.Ctx, indexName)
	return err
}

// ElastichSearch Bulk
func NewBulkBlog() (esutil.BulkIndexer, error) {
	es, err := db.NewConnectionEs()
	if err != nil {
		return nil, err
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         BLOGS_INDEX,
		Client:        es,
		NumWorkers:    db.NUM_WORKERS,
		FlushBytes:    int(db.FLUSH_BYTES),
		FlushInterval: db.FLUSH_INTERVAL,
	})
	if err != nil {
		return nil, err
	}
	return bi, nil
}

func (blog *BlogModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(blog.CollectionName)
}

func (blog *BlogModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := blog.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (blog *BlogModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := blog.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (blog *BlogModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := blog.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (blog *BlogModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := blog.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (blog *BlogModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := blog.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewBlogModel() Collection {
	if blogModel == nil {
		blogModel = &BlogModel{
			CollectionName: BLOGS_COLLECTION,
		}
	}
	return blogModel
}
