package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/db"
	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/CPU-commits/Academy_BBackoffice/models"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	natsPackage "github.com/nats-io/nats.go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fixed page size for course listings
const COURSES_PER_PAGE = 10

var coursesService *CoursesService

type CoursesService struct{}

func getCoursesFilter(category, level, language string) bson.D {
	filter := bson.D{}
	if category != "" {
		filter = append(filter, bson.E{
			Key:   "category",
			Value: category,
		})
	}
	if level != "" {
		filter = append(filter, bson.E{
			Key:   "level",
			Value: level,
		})
	}
	if language != "" {
		filter = append(filter, bson.E{
			Key:   "language",
			Value: language,
		})
	}
	/* Disabled upstream, keep out of the filter until the feature lands
	if isPaid != "" {
		filter = append(filter, bson.E{Key: "isPaid", Value: isPaid == "true"})
	}
	if mode != "" {
		filter = append(filter, bson.E{Key: "training_mode", Value: mode})
	}
	*/
	return filter
}

func getCoursesOptions(page int) *options.FindOptions {
	if page < 1 {
		page = 1
	}
	return options.Find().
		SetSort(bson.D{{
			Key:   "_id",
			Value: 1,
		}}).
		SetSkip(int64((page - 1) * COURSES_PER_PAGE)).
		SetLimit(COURSES_PER_PAGE).
		SetProjection(bson.D{
			{
				Key:   "assessment",
				Value: 0,
			},
			{
				Key:   "description",
				Value: 0,
			},
			{
				Key:   "training_metadata",
				Value: 0,
			},
			{
				Key:   "training_batch",
				Value: 0,
			},
			{
				Key:   "batch_sessions",
				Value: 0,
			},
		})
}

// courseUpdateDocument builds the $set document from the keys present in the
// update form. Nested subdocuments replace the stored value in full
func courseUpdateDocument(course *forms.CourseUpdateForm, now primitive.DateTime) bson.M {
	set := bson.M{
		"updatedAt": now,
	}
	if course.Title != nil {
		set["title"] = *course.Title
	}
	if course.URL != nil {
		set["url"] = *course.URL
	}
	if course.Level != nil {
		set["level"] = *course.Level
	}
	if course.Category != nil {
		set["category"] = *course.Category
	}
	if course.Duration != nil {
		set["duration"] = *course.Duration
	}
	if course.Language != nil {
		set["language"] = *course.Language
	}
	if course.Description != nil {
		set["description"] = *course.Description
	}
	if course.Assessment != nil {
		set["assessment"] = *course.Assessment
	}
	if course.OwnedBy != nil {
		set["owned_by"] = *course.OwnedBy
	}
	if course.EndorsedBy != nil {
		set["endorsed_by"] = *course.EndorsedBy
	}
	if course.Price != nil {
		set["price"] = *course.Price
	}
	if course.Currency != nil {
		set["currency"] = *course.Currency
	}
	if course.Discount != nil {
		set["discount"] = *course.Discount
	}
	if course.CouponCode != nil {
		set["coupon_code"] = *course.CouponCode
	}
	if course.PreviewImageURI != nil {
		set["preview_image_uri"] = *course.PreviewImageURI
	}
	if course.FileAttachmentURI != nil {
		set["file_attachment_uri"] = *course.FileAttachmentURI
	}
	if course.IsPaid != nil {
		set["isPaid"] = *course.IsPaid
	}
	if course.TrainingMode != nil {
		set["training_mode"] = *course.TrainingMode
	}
	if course.TrainingMetadata != nil {
		set["training_metadata"] = models.NewModelTrainingMetadata(course.TrainingMetadata)
	}
	if course.TrainingBatch != nil {
		set["training_batch"] = models.NewModelTrainingBatch(course.TrainingBatch)
	}
	if course.BatchSessions != nil {
		set["batch_sessions"] = models.NewModelBatchSessions(course.BatchSessions)
	}
	return set
}

func (c *CoursesService) NewCourse(courseData *forms.CourseForm) (*models.Course, *res.ErrorRes) {
	courseModelData := models.NewModelCourse(courseData)
	inserted, err := courseModel.NewDocument(courseModelData)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	courseModelData.ID = inserted.InsertedID.(primitive.ObjectID)
	return courseModelData, nil
}

// GetCourse resolves by the human-readable url first, then by the primary id
func (c *CoursesService) GetCourse(idOrUrl string) (*models.Course, *res.ErrorRes) {
	var course *models.Course

	cursor := courseModel.GetOne(bson.D{
		{
			Key:   "url",
			Value: idOrUrl,
		},
	})
	err := cursor.Decode(&course)
	if err == nil {
		return course, nil
	}
	if err.Error() != db.NO_SINGLE_DOCUMENT {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	// Fallback to primary id
	idObjCourse, err := primitive.ObjectIDFromHex(idOrUrl)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("no existe este curso"),
			StatusCode: http.StatusNotFound,
		}
	}
	cursor = courseModel.GetByID(idObjCourse)
	if err := cursor.Decode(&course); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("no existe este curso"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return course, nil
}

func (c *CoursesService) GetCourses(page int, category, level, language string) ([]models.SimpleCourse, *res.ErrorRes) {
	var courses []models.SimpleCourse

	cursor, err := courseModel.GetAll(
		getCoursesFilter(category, level, language),
		getCoursesOptions(page),
	)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &courses); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return courses, nil
}

func (c *CoursesService) GetCourseTitles() ([]models.CourseTitle, *res.ErrorRes) {
	var titles []models.CourseTitle

	cursor, err := courseModel.GetAll(bson.D{}, options.Find().SetProjection(bson.D{
		{
			Key:   "title",
			Value: 1,
		},
		{
			Key:   "url",
			Value: 1,
		},
	}))
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &titles); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return titles, nil
}

// GetCoursesLength counts every course document, ignoring list filters
func (c *CoursesService) GetCoursesLength() (int64, *res.ErrorRes) {
	total, err := courseModel.Use().CountDocuments(db.Ctx, bson.M{})
	if err != nil {
		return 0, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return total, nil
}

func (c *CoursesService) UpdateCourse(idCourse string, courseData *forms.CourseUpdateForm) *res.ErrorRes {
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	// Exists
	var course *models.Course
	cursor := courseModel.GetByID(idObjCourse)
	if err := cursor.Decode(&course); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return &res.ErrorRes{
				Err:        fmt.Errorf("no existe este curso"),
				StatusCode: http.StatusNotFound,
			}
		}
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	// Update
	now := primitive.NewDateTimeFromTime(time.Now())
	_, err = courseModel.Use().UpdateByID(db.Ctx, idObjCourse, bson.D{
		{
			Key:   "$set",
			Value: courseUpdateDocument(courseData, now),
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

func (c *CoursesService) DeleteCourse(idCourse string) *res.ErrorRes {
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	// Exists
	var course *models.Course
	cursor := courseModel.GetByID(idObjCourse)
	if err := cursor.Decode(&course); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return &res.ErrorRes{
				Err:        fmt.Errorf("no existe este curso"),
				StatusCode: http.StatusNotFound,
			}
		}
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	_, err = courseModel.Use().DeleteOne(db.Ctx, bson.M{
		"_id": idObjCourse,
	})
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

// GetCourseTitlesSubscriber answers title requests from the other services
func (c *CoursesService) GetCourseTitlesSubscriber() {
	nats.Subscribe("get_course_titles", func(m *natsPackage.Msg) {
		titles, errRes := c.GetCourseTitles()
		if errRes != nil {
			return
		}
		titlesJson, err := json.Marshal(titles)
		if err != nil {
			return
		}
		m.RespondMsg(&natsPackage.Msg{
			Data:    titlesJson,
			Reply:   m.Reply,
			Subject: m.Subject,
		})
	})
}

func NewCoursesService() *CoursesService {
	if coursesService == nil {
		coursesService = &CoursesService{}
	}
	return coursesService
}
