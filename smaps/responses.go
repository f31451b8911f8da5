package smaps

import (
	"github.com/CPU-commits/Academy_BBackoffice/models"
	"github.com/CPU-commits/Academy_BBackoffice/repositories"
	"github.com/CPU-commits/Academy_BBackoffice/services"
)

type CourseMap struct {
	Course *models.Course `json:"course"`
}

type CoursesMap struct {
	Courses []models.SimpleCourse `json:"courses"`
}

type CourseTitlesMap struct {
	Titles []models.CourseTitle `json:"titles"`
}

type CoursesLengthMap struct {
	Total int64 `json:"total"`
}

type BlogMap struct {
	Blog *models.Blog `json:"blog"`
}

type BlogsMap struct {
	Blogs          []repositories.BlogWithLookup `json:"blogs"`
	Total          int64                         `json:"total"`
	LastMonthCount int64                         `json:"last_month_count"`
}

type SeriesMap struct {
	Series []models.Series `json:"series"`
}

type TagsMap struct {
	Tags []models.Tag `json:"tags"`
}

type LeadsMap struct {
	Leads []models.Lead `json:"leads"`
}

type UserMap struct {
	User *models.SimpleUser `json:"user"`
}

type UploadedFileMap struct {
	File *services.UploadedFile `json:"file"`
}

type IdInsertedMap struct {
	ID string `json:"_id"`
}
