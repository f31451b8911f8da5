package services

import (
	"testing"
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/CPU-commits/Academy_BBackoffice/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPointer(b bool) *bool { return &b }

func TestGetCoursesFilter(t *testing.T) {
	filter := getCoursesFilter("", "", "")
	if len(filter) != 0 {
		t.Fatalf("empty params must build an empty filter, got %v", filter)
	}

	filter = getCoursesFilter("cloud", "advanced", "en")
	if len(filter) != 3 {
		t.Fatalf("expected 3 conditions, got %v", filter)
	}
	for _, e := range filter {
		switch e.Key {
		case "category":
			if e.Value != "cloud" {
				t.Fatalf("category = %v", e.Value)
			}
		case "level":
			if e.Value != "advanced" {
				t.Fatalf("level = %v", e.Value)
			}
		case "language":
			if e.Value != "en" {
				t.Fatalf("language = %v", e.Value)
			}
		default:
			t.Fatalf("unexpected filter key %q", e.Key)
		}
	}
}

func TestGetCoursesOptionsPagination(t *testing.T) {
	cases := []struct {
		page int
		skip int64
	}{
		{0, 0},
		{1, 0},
		{2, COURSES_PER_PAGE},
		{5, 4 * COURSES_PER_PAGE},
	}
	for _, c := range cases {
		opts := getCoursesOptions(c.page)
		if opts.Skip == nil || *opts.Skip != c.skip {
			t.Fatalf("page %d: skip = %v, want %d", c.page, opts.Skip, c.skip)
		}
		if opts.Limit == nil || *opts.Limit != COURSES_PER_PAGE {
			t.Fatalf("page %d: limit = %v", c.page, opts.Limit)
		}
	}
}

func TestGetCoursesOptionsProjection(t *testing.T) {
	opts := getCoursesOptions(1)
	projection, ok := opts.Projection.(bson.D)
	if !ok {
		t.Fatalf("projection type %T", opts.Projection)
	}
	excluded := map[string]bool{}
	for _, e := range projection {
		if e.Value != 0 {
			t.Fatalf("projection %q must exclude, got %v", e.Key, e.Value)
		}
		excluded[e.Key] = true
	}
	for _, key := range []string{
		"assessment",
		"description",
		"training_metadata",
		"training_batch",
		"batch_sessions",
	} {
		if !excluded[key] {
			t.Fatalf("heavy field %q not stripped from listings", key)
		}
	}
}

func TestCourseUpdateDocument(t *testing.T) {
	now := primitive.NewDateTimeFromTime(time.Now())
	set := courseUpdateDocument(&forms.CourseUpdateForm{
		Title: strPtr("New title"),
		Price: floatPtr(99),
	}, now)

	if set["title"] != "New title" {
		t.Fatalf("title = %v", set["title"])
	}
	if set["price"] != float64(99) {
		t.Fatalf("price = %v", set["price"])
	}
	if set["updatedAt"] != now {
		t.Fatal("updatedAt must always be set")
	}
	// Omitted keys must not appear in the $set document
	if len(set) != 3 {
		t.Fatalf("expected 3 keys, got %v", set)
	}
	if _, ok := set["url"]; ok {
		t.Fatal("omitted url must stay untouched")
	}
}

func TestCourseUpdateDocumentNestedReplace(t *testing.T) {
	now := primitive.NewDateTimeFromTime(time.Now())
	set := courseUpdateDocument(&forms.CourseUpdateForm{
		IsPaid: boolPointer(false),
		TrainingMetadata: &forms.TrainingMetadataForm{
			Headline: "Only this survives",
		},
	}, now)

	if set["isPaid"] != false {
		t.Fatalf("isPaid = %v", set["isPaid"])
	}
	metadata, ok := set["training_metadata"].(*models.TrainingMetadata)
	if !ok {
		t.Fatalf("training_metadata type %T", set["training_metadata"])
	}
	if metadata.Headline != "Only this survives" {
		t.Fatalf("headline = %q", metadata.Headline)
	}
	// The whole subdocument replaces the stored one, untouched nested
	// keys do not survive a partial nested form
	if metadata.Objectives != nil {
		t.Fatalf("objectives = %v, want nil", metadata.Objectives)
	}
	if _, ok := set["training_batch"]; ok {
		t.Fatal("omitted nested block must not be set")
	}
}
