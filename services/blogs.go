package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/db"
	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/CPU-commits/Academy_BBackoffice/models"
	"github.com/CPU-commits/Academy_BBackoffice/repositories"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/CPU-commits/Academy_BBackoffice/utils"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Default page size for blog listings
const BLOGS_PER_PAGE = 10

var blogsService *BlogsService
var blogRepository = &repositories.BlogRepository{}

type BlogsService struct{}

type BlogsRes struct {
	Blogs          []repositories.BlogWithLookup `json:"blogs"`
	Total          int64                         `json:"total"`
	LastMonthCount int64                         `json:"last_month_count"`
}

func getBlogsFilter(userId, slug, blogId, searchTerm string) (bson.M, error) {
	filter := bson.M{}
	if userId != "" {
		idObjUser, err := primitive.ObjectIDFromHex(userId)
		if err != nil {
			return nil, err
		}
		filter["user"] = idObjUser
	}
	if blogId != "" {
		idObjBlog, err := primitive.ObjectIDFromHex(blogId)
		if err != nil {
			return nil, err
		}
		filter["_id"] = idObjBlog
	}
	if slug != "" {
		filter["slug"] = slug
	}
	if searchTerm != "" {
		filter["$or"] = bson.A{
			bson.M{
				"title": bson.M{
					"$regex":   searchTerm,
					"$options": "i",
				},
			},
			bson.M{
				"content": bson.M{
					"$regex":   searchTerm,
					"$options": "i",
				},
			},
		}
	}
	return filter, nil
}

func getSortOrder(sortOrder string) int {
	if sortOrder == "asc" {
		return 1
	}
	return -1
}

func indexBlog(action, documentId string, content *models.ContentBlog) error {
	bi, err := models.NewBulkBlog()
	if err != nil {
		return err
	}
	item := esutil.BulkIndexerItem{
		Action:     action,
		DocumentID: documentId,
	}
	if content != nil {
		data, err := json.Marshal(content)
		if err != nil {
			return err
		}
		if action == "update" {
			data = []byte(fmt.Sprintf(`{"doc":%s}`, data))
		}
		item.Body = bytes.NewReader(data)
	}
	if err := bi.Add(context.Background(), item); err != nil {
		return err
	}
	return bi.Close(context.Background())
}

func (b *BlogsService) NewBlog(blogData *forms.BlogForm, claims *Claims) (*models.Blog, *res.ErrorRes) {
	idObjUser, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	blogModelData, err := models.NewModelBlog(blogData, idObjUser)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	// Insert blog mongoDB
	inserted, err := blogModel.NewDocument(blogModelData)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("ya existe un blog con este slug"),
				StatusCode: http.StatusConflict,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	blogModelData.ID = inserted.InsertedID.(primitive.ObjectID)
	// Insert blog ElasticSearch
	err = indexBlog("index", blogModelData.ID.Hex(), &models.ContentBlog{
		Title:     blogModelData.Title,
		Content:   blogModelData.Content,
		Slug:      blogModelData.Slug,
		Published: time.Now().Round(time.Second).UTC(),
	})
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	// Notification
	nats.PublishEncode("notify/backoffice", res.NotifyBackoffice{
		Title: blogModelData.Title,
		Link:  fmt.Sprintf("/blog/%s", blogModelData.Slug),
		Type:  res.BLOG,
	})
	return blogModelData, nil
}

// GetBlog resolves by slug first, then by the primary id
func (b *BlogsService) GetBlog(idOrSlug string) (*models.Blog, *res.ErrorRes) {
	var blog *models.Blog

	cursor := blogModel.GetOne(bson.D{
		{
			Key:   "slug",
			Value: idOrSlug,
		},
	})
	err := cursor.Decode(&blog)
	if err == nil {
		return blog, nil
	}
	if err.Error() != db.NO_SINGLE_DOCUMENT {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	idObjBlog, err := primitive.ObjectIDFromHex(idOrSlug)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("no existe este blog"),
			StatusCode: http.StatusNotFound,
		}
	}
	blog, err = blogRepository.GetBlogFromId(idObjBlog)
	if err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("no existe este blog"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return blog, nil
}

func (b *BlogsService) GetBlogs(
	userId,
	slug,
	blogId,
	searchTerm,
	sortOrder string,
	page int,
) (*BlogsRes, *res.ErrorRes) {
	filter, err := getBlogsFilter(userId, slug, blogId, searchTerm)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	if page < 1 {
		page = 1
	}
	blogs, errRes := blogRepository.GetBlogs(
		filter,
		getSortOrder(sortOrder),
		int64((page-1)*BLOGS_PER_PAGE),
		BLOGS_PER_PAGE,
	)
	if errRes != nil {
		return nil, errRes
	}
	// Totals
	total, err := blogRepository.CountBlogs(filter)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	monthAgo := primitive.NewDateTimeFromTime(time.Now().AddDate(0, -1, 0))
	lastMonthCount, err := blogRepository.CountBlogs(bson.M{
		"createdAt": bson.M{
			"$gte": monthAgo,
		},
	})
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return &BlogsRes{
		Blogs:          blogs,
		Total:          total,
		LastMonthCount: lastMonthCount,
	}, nil
}

func (b *BlogsService) UpdateBlog(idBlog string, blogData *forms.BlogUpdateForm) *res.ErrorRes {
	idObjBlog, err := primitive.ObjectIDFromHex(idBlog)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	// Exists
	blog, err := blogRepository.GetBlogFromId(idObjBlog)
	if err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return &res.ErrorRes{
				Err:        fmt.Errorf("no existe este blog"),
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
	if blogData.Title != nil {
		set["title"] = *blogData.Title
	}
	if blogData.Content != nil {
		set["content"] = *blogData.Content
	}
	if blogData.BannerURI != nil {
		set["banner_uri"] = *blogData.BannerURI
	}
	if blogData.ImageURI != nil {
		set["image_uri"] = *blogData.ImageURI
	}
	if blogData.Series != nil {
		idObjSeries, err := primitive.ObjectIDFromHex(*blogData.Series)
		if err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusBadRequest,
			}
		}
		set["series"] = idObjSeries
	}
	if blogData.Tags != nil {
		set["tags"] = blogData.Tags
	}
	if blogData.Active != nil {
		set["active"] = *blogData.Active
	}
	_, err = blogModel.Use().UpdateByID(db.Ctx, idObjBlog, bson.D{
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
	// Update content index
	if blogData.Title != nil || blogData.Content != nil {
		content := &models.ContentBlog{
			Title:   blog.Title,
			Content: blog.Content,
			Slug:    blog.Slug,
		}
		if blogData.Title != nil {
			content.Title = *blogData.Title
		}
		if blogData.Content != nil {
			content.Content = *blogData.Content
		}
		if err := indexBlog("update", idBlog, content); err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusServiceUnavailable,
			}
		}
	}
	return nil
}

func (b *BlogsService) DeleteBlog(idBlog string) *res.ErrorRes {
	idObjBlog, err := primitive.ObjectIDFromHex(idBlog)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	// Exists
	if _, err := blogRepository.GetBlogFromId(idObjBlog); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return &res.ErrorRes{
				Err:        fmt.Errorf("no existe este blog"),
				StatusCode: http.StatusNotFound,
			}
		}
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	// ElasticSearch
	if err := indexBlog("delete", idBlog, nil); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	// Mongodb
	_, err = blogModel.Use().DeleteOne(db.Ctx, bson.M{
		"_id": idObjBlog,
	})
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	nats.Publish("delete_notification", []byte(idBlog))
	return nil
}

func (b *BlogsService) Search(search string) (interface{}, *res.ErrorRes) {
	simpleQuery := fmt.Sprintf(
		`"bool": {"must": { "simple_query_string": { "query": "%s*", "analyzer": "standard" } } }`,
		search,
	)
	query := db.ConstructQuery(simpleQuery)

	es, err := db.NewConnectionEs()
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	response, err := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(models.BLOGS_INDEX),
		es.Search.WithBody(query),
		es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	defer response.Body.Close()

	var mapRes map[string]interface{}
	if err := json.NewDecoder(response.Body).Decode(&mapRes); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return mapRes["hits"], nil
}

// ReindexAll re-bulks every blog into the content index
func (b *BlogsService) ReindexAll() (int, *res.ErrorRes) {
	var blogs []models.Blog

	cursor, err := blogModel.GetAll(bson.D{}, nil)
	if err != nil {
		return 0, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &blogs); err != nil {
		return 0, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if len(blogs) == 0 {
		return 0, nil
	}
	bi, err := models.NewBulkBlog()
	if err != nil {
		return 0, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	errRes := utils.Concurrency(5, len(blogs), func(index int, setError func(errRes *res.ErrorRes)) {
		blog := blogs[index]
		data, err := json.Marshal(&models.ContentBlog{
			Title:     blog.Title,
			Content:   blog.Content,
			Slug:      blog.Slug,
			Published: blog.CreatedAt.Time().UTC(),
		})
		if err != nil {
			setError(&res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			})
			return
		}
		err = bi.Add(context.Background(), esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: blog.ID.Hex(),
			Body:       bytes.NewReader(data),
		})
		if err != nil {
			setError(&res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusServiceUnavailable,
			})
		}
	})
	if errRes != nil {
		return 0, errRes
	}
	if err := bi.Close(context.Background()); err != nil {
		return 0, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return len(blogs), nil
}

func NewBlogsService() *BlogsService {
	if blogsService == nil {
		blogsService = &BlogsService{}
	}
	return blogsService
}
