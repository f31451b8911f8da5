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

const COURSES_COLLECTION = "courses"

var courseModel *CourseModel

// Training modes
const (
	MODE_ONLINE    = "online"
	MODE_CLASSROOM = "classroom"
	MODE_HYBRID    = "hybrid"
)

// Batch status
const (
	BATCH_UPCOMING = "upcoming"
	BATCH_ONGOING  = "ongoing"
	BATCH_CLOSED   = "closed"
)

type TitleItem struct {
	Title string `json:"title" bson:"title" example:"Hands-on labs"`
}

type FAQ struct {
	Question string `json:"question" bson:"question" example:"Is this course certified?"`
	Answer   string `json:"answer" bson:"answer" example:"Yes, on completion"`
}

type SectionPart struct {
	Title string `json:"title" bson:"title"`
}

type CurriculumSection struct {
	Title        string        `json:"title" bson:"title" example:"Introduction"`
	VideoSection string        `json:"videoSection" bson:"videoSection"`
	SectionParts []SectionPart `json:"section_parts" bson:"section_parts"`
}

type TrainingMetadata struct {
	Headline              string              `json:"headline,omitempty" bson:"headline,omitempty"`
	Body                  string              `json:"body,omitempty" bson:"body,omitempty"`
	Overview              string              `json:"overview,omitempty" bson:"overview,omitempty"`
	PreviewVideoURI       string              `json:"preview_video_uri,omitempty" bson:"preview_video_uri,omitempty"`
	PreviewImageURI       string              `json:"preview_image_uri,omitempty" bson:"preview_image_uri,omitempty"`
	CertificationText     string              `json:"certification_text,omitempty" bson:"certification_text,omitempty"`
	CertificationImageURI string              `json:"certification_image_uri,omitempty" bson:"certification_image_uri,omitempty"`
	Objectives            []TitleItem         `json:"objectives,omitempty" bson:"objectives,omitempty"`
	Prerequisites         []TitleItem         `json:"prerequisites,omitempty" bson:"prerequisites,omitempty"`
	Audience              []TitleItem         `json:"audience,omitempty" bson:"audience,omitempty"`
	SkillsCovered         []TitleItem         `json:"skills_covered,omitempty" bson:"skills_covered,omitempty"`
	KeyFeatures           []TitleItem         `json:"key_features,omitempty" bson:"key_features,omitempty"`
	Benefits              []TitleItem         `json:"benefits,omitempty" bson:"benefits,omitempty"`
	Resources             []TitleItem         `json:"resources,omitempty" bson:"resources,omitempty"`
	Outcomes              []TitleItem         `json:"outcomes,omitempty" bson:"outcomes,omitempty"`
	WhoShouldAttend       []TitleItem         `json:"who_should_attend,omitempty" bson:"who_should_attend,omitempty"`
	FAQs                  []FAQ               `json:"faqs,omitempty" bson:"faqs,omitempty"`
	Curriculum            []CurriculumSection `json:"curriculum,omitempty" bson:"curriculum,omitempty"`
}

type TrainingBatch struct {
	BatchName         string             `json:"batch_name,omitempty" bson:"batch_name,omitempty"`
	IsPaid            bool               `json:"isPaid" bson:"isPaid"`
	Trainer           string             `json:"trainer,omitempty" bson:"trainer,omitempty"`
	StartTime         primitive.DateTime `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EnrollmentEndDate primitive.DateTime `json:"enrollment_end_date,omitempty" bson:"enrollment_end_date,omitempty"`
	EndDate           primitive.DateTime `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Capacity          int                `json:"capacity,omitempty" bson:"capacity,omitempty"`
	BatchStatus       string             `json:"batch_status,omitempty" bson:"batch_status,omitempty" enums:"upcoming,ongoing,closed"`
}

type BatchSession struct {
	Name      string             `json:"name" bson:"name"`
	StartTime primitive.DateTime `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EndTime   primitive.DateTime `json:"end_time,omitempty" bson:"end_time,omitempty"`
}

type BatchSessions struct {
	Batch    string         `json:"batch" bson:"batch"`
	Sessions []BatchSession `json:"sessions" bson:"sessions"`
}

type Course struct {
	ID                primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Title             string             `json:"title,omitempty" bson:"title,omitempty" example:"Cloud Architecture"`
	URL               string             `json:"url,omitempty" bson:"url,omitempty" example:"cloud-architecture"`
	Level             string             `json:"level,omitempty" bson:"level,omitempty" example:"advanced"`
	Category          string             `json:"category,omitempty" bson:"category,omitempty" example:"cloud"`
	Duration          string             `json:"duration,omitempty" bson:"duration,omitempty" example:"12 weeks"`
	Language          string             `json:"language,omitempty" bson:"language,omitempty" example:"en"`
	Description       string             `json:"description,omitempty" bson:"description,omitempty"`
	Assessment        string             `json:"assessment,omitempty" bson:"assessment,omitempty"`
	OwnedBy           string             `json:"owned_by,omitempty" bson:"owned_by,omitempty"`
	EndorsedBy        string             `json:"endorsed_by,omitempty" bson:"endorsed_by,omitempty"`
	Price             float64            `json:"price,omitempty" bson:"price,omitempty"`
	Currency          string             `json:"currency,omitempty" bson:"currency,omitempty" example:"USD"`
	Discount          float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	CouponCode        string             `json:"coupon_code,omitempty" bson:"coupon_code,omitempty"`
	PreviewImageURI   string             `json:"preview_image_uri,omitempty" bson:"preview_image_uri,omitempty"`
	FileAttachmentURI string             `json:"file_attachment_uri,omitempty" bson:"file_attachment_uri,omitempty"`
	IsPaid            bool               `json:"isPaid" bson:"isPaid"`
	TrainingMode      string             `json:"training_mode" bson:"training_mode" example:"online"`
	TrainingMetadata  *TrainingMetadata  `json:"training_metadata,omitempty" bson:"training_metadata,omitempty"`
	TrainingBatch     *TrainingBatch     `json:"training_batch,omitempty" bson:"training_batch,omitempty"`
	BatchSessions     []BatchSessions    `json:"batch_sessions,omitempty" bson:"batch_sessions,omitempty"`
	CreatedAt         primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt         primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
	V                 int32              `json:"__v" bson:"__v"`
}

// SimpleCourse is the list/browse projection, heavy fields stripped
type SimpleCourse struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	Title           string             `json:"title,omitempty" bson:"title,omitempty"`
	URL             string             `json:"url,omitempty" bson:"url,omitempty"`
	Level           string             `json:"level,omitempty" bson:"level,omitempty"`
	Category        string             `json:"category,omitempty" bson:"category,omitempty"`
	Duration        string             `json:"duration,omitempty" bson:"duration,omitempty"`
	Language        string             `json:"language,omitempty" bson:"language,omitempty"`
	Price           float64            `json:"price,omitempty" bson:"price,omitempty"`
	Currency        string             `json:"currency,omitempty" bson:"currency,omitempty"`
	Discount        float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	PreviewImageURI string             `json:"preview_image_uri,omitempty" bson:"preview_image_uri,omitempty"`
	IsPaid          bool               `json:"isPaid" bson:"isPaid"`
	TrainingMode    string             `json:"training_mode" bson:"training_mode"`
}

type CourseTitle struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id"`
	Title string             `json:"title" bson:"title"`
	URL   string             `json:"url,omitempty" bson:"url,omitempty"`
}

type CourseModel struct {
	CollectionName string
}

func NewModelTitleItems(items []forms.TitleItem) []TitleItem {
	if items == nil {
		return nil
	}
	titleItems := []TitleItem{}
	for _, item := range items {
		titleItems = append(titleItems, TitleItem{
			Title: item.Title,
		})
	}
	return titleItems
}

func NewModelTrainingMetadata(metadata *forms.TrainingMetadataForm) *TrainingMetadata {
	if metadata == nil {
		return nil
	}
	model := &TrainingMetadata{
		Headline:              metadata.Headline,
		Body:                  metadata.Body,
		Overview:              metadata.Overview,
		PreviewVideoURI:       metadata.PreviewVideoURI,
		PreviewImageURI:       metadata.PreviewImageURI,
		CertificationText:     metadata.CertificationText,
		CertificationImageURI: metadata.CertificationImageURI,
		Objectives:            NewModelTitleItems(metadata.Objectives),
		Prerequisites:         NewModelTitleItems(metadata.Prerequisites),
		Audience:              NewModelTitleItems(metadata.Audience),
		SkillsCovered:         NewModelTitleItems(metadata.SkillsCovered),
		KeyFeatures:           NewModelTitleItems(metadata.KeyFeatures),
		Benefits:              NewModelTitleItems(metadata.Benefits),
		Resources:             NewModelTitleItems(metadata.Resources),
		Outcomes:              NewModelTitleItems(metadata.Outcomes),
		WhoShouldAttend:       NewModelTitleItems(metadata.WhoShouldAttend),
	}
	for _, faq := range metadata.FAQs {
		model.FAQs = append(model.FAQs, FAQ{
			Question: faq.Question,
			Answer:   faq.Answer,
		})
	}
	for _, section := range metadata.Curriculum {
		sectionModel := CurriculumSection{
			Title:        section.Title,
			VideoSection: section.VideoSection,
		}
		for _, part := range section.SectionParts {
			sectionModel.SectionParts = append(sectionModel.SectionParts, SectionPart{
				Title: part.Title,
			})
		}
		model.Curriculum = append(model.Curriculum, sectionModel)
	}
	return model
}

func NewModelTrainingBatch(batch *forms.TrainingBatchForm) *TrainingBatch {
	if batch == nil {
		return nil
	}
	model := &TrainingBatch{
		BatchName:   batch.BatchName,
		Trainer:     batch.Trainer,
		Capacity:    batch.Capacity,
		BatchStatus: batch.BatchStatus,
	}
	if batch.IsPaid != nil {
		model.IsPaid = *batch.IsPaid
	}
	if batch.StartTime != nil {
		model.StartTime = primitive.NewDateTimeFromTime(*batch.StartTime)
	}
	if batch.EnrollmentEndDate != nil {
		model.EnrollmentEndDate = primitive.NewDateTimeFromTime(*batch.EnrollmentEndDate)
	}
	if batch.EndDate != nil {
		model.EndDate = primitive.NewDateTimeFromTime(*batch.EndDate)
	}
	return model
}

func NewModelBatchSessions(groups []forms.BatchSessionsForm) []BatchSessions {
	var sessions []BatchSessions
	for _, group := range groups {
		groupModel := BatchSessions{
			Batch: group.Batch,
		}
		for _, session := range group.Sessions {
			sessionModel := BatchSession{
				Name: session.Name,
			}
			if session.StartTime != nil {
				sessionModel.StartTime = primitive.NewDateTimeFromTime(*session.StartTime)
			}
			if session.EndTime != nil {
				sessionModel.EndTime = primitive.NewDateTimeFromTime(*session.EndTime)
			}
			groupModel.Sessions = append(groupModel.Sessions, sessionModel)
		}
		sessions = append(sessions, groupModel)
	}
	return sessions
}

func NewModelCourse(course *forms.CourseForm) *Course {
	now := primitive.NewDateTimeFromTime(time.Now())
	model := &Course{
		Title:             course.Title,
		URL:               course.URL,
		Level:             course.Level,
		Category:          course.Category,
		Duration:          course.Duration,
		Language:          course.Language,
		Description:       course.Description,
		Assessment:        course.Assessment,
		OwnedBy:           course.OwnedBy,
		EndorsedBy:        course.EndorsedBy,
		Price:             course.Price,
		Currency:          course.Currency,
		Discount:          course.Discount,
		CouponCode:        course.CouponCode,
		PreviewImageURI:   course.PreviewImageURI,
		FileAttachmentURI: course.FileAttachmentURI,
		TrainingMode:      course.TrainingMode,
		TrainingMetadata:  NewModelTrainingMetadata(course.TrainingMetadata),
		TrainingBatch:     NewModelTrainingBatch(course.TrainingBatch),
		BatchSessions:     NewModelBatchSessions(course.BatchSessions),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if course.IsPaid != nil {
		model.IsPaid = *course.IsPaid
	}
	return model
}

func (course *CourseModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(course.CollectionName)
}

func (course *CourseModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := course.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (course *CourseModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := course.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (course *CourseModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := course.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (course *CourseModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := course.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (course *CourseModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := course.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewCourseModel() Collection {
	if courseModel == nil {
		courseModel = &CourseModel{
			CollectionName: COURSES_COLLECTION,
		}
	}
	return courseModel
}
