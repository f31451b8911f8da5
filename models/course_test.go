package models

import (
	"testing"
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(b bool) *bool { return &b }

func TestNewModelCourse(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	course := NewModelCourse(&forms.CourseForm{
		Title:        "Cloud Architecture",
		URL:          "cloud-architecture",
		Level:        "advanced",
		Category:     "cloud",
		Language:     "en",
		Price:        499.99,
		Currency:     "USD",
		IsPaid:       boolPtr(true),
		TrainingMode: MODE_HYBRID,
		TrainingMetadata: &forms.TrainingMetadataForm{
			Headline:   "Design for scale",
			Objectives: []forms.TitleItem{{Title: "Understand regions"}},
			Curriculum: []forms.CurriculumSectionForm{
				{
					Title:        "Intro",
					SectionParts: []forms.TitleItem{{Title: "Welcome"}},
				},
			},
		},
		TrainingBatch: &forms.TrainingBatchForm{
			BatchName:   "2026-S2",
			IsPaid:      boolPtr(true),
			StartTime:   &start,
			Capacity:    30,
			BatchStatus: BATCH_UPCOMING,
		},
		BatchSessions: []forms.BatchSessionsForm{
			{
				Batch: "2026-S2",
				Sessions: []forms.BatchSessionForm{
					{Name: "Kickoff", StartTime: &start},
				},
			},
		},
	})

	if course.Title != "Cloud Architecture" || course.URL != "cloud-architecture" {
		t.Fatalf("identity fields not mapped: %+v", course)
	}
	if !course.IsPaid {
		t.Fatal("isPaid pointer not dereferenced")
	}
	if course.TrainingMode != MODE_HYBRID {
		t.Fatalf("training_mode = %q", course.TrainingMode)
	}
	if course.TrainingMetadata == nil {
		t.Fatal("training_metadata missing")
	}
	if len(course.TrainingMetadata.Objectives) != 1 ||
		course.TrainingMetadata.Objectives[0].Title != "Understand regions" {
		t.Fatalf("objectives not mapped: %+v", course.TrainingMetadata.Objectives)
	}
	if len(course.TrainingMetadata.Curriculum) != 1 ||
		len(course.TrainingMetadata.Curriculum[0].SectionParts) != 1 {
		t.Fatalf("curriculum not mapped: %+v", course.TrainingMetadata.Curriculum)
	}
	if course.TrainingBatch == nil || course.TrainingBatch.BatchName != "2026-S2" {
		t.Fatalf("training_batch not mapped: %+v", course.TrainingBatch)
	}
	if course.TrainingBatch.StartTime != primitive.NewDateTimeFromTime(start) {
		t.Fatalf("batch start_time = %v", course.TrainingBatch.StartTime)
	}
	if len(course.BatchSessions) != 1 || len(course.BatchSessions[0].Sessions) != 1 {
		t.Fatalf("batch_sessions not mapped: %+v", course.BatchSessions)
	}
	if course.CreatedAt != course.UpdatedAt {
		t.Fatal("createdAt and updatedAt must match on insert")
	}
}

func TestNewModelCourseOmitsNested(t *testing.T) {
	course := NewModelCourse(&forms.CourseForm{
		TrainingMode: MODE_ONLINE,
	})
	if course.TrainingMetadata != nil {
		t.Fatal("nil metadata form must stay nil")
	}
	if course.TrainingBatch != nil {
		t.Fatal("nil batch form must stay nil")
	}
	if course.BatchSessions != nil {
		t.Fatal("empty sessions must stay nil")
	}
	if course.IsPaid {
		t.Fatal("isPaid must default to false")
	}
}
