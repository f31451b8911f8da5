package forms

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterValidation("trainingMode", TrainingMode)
	v.RegisterValidation("batchStatus", BatchStatus)
	v.RegisterValidation("sortOrder", SortOrder)
	v.RegisterValidation("userType", UserType)
	return v
}

func TestCourseFormTrainingMode(t *testing.T) {
	v := newValidator(t)

	for _, mode := range []string{"online", "classroom", "hybrid"} {
		form := CourseForm{TrainingMode: mode}
		if err := v.Struct(form); err != nil {
			t.Fatalf("mode %q must be valid: %v", mode, err)
		}
	}
	if err := v.Struct(CourseForm{TrainingMode: "remote"}); err == nil {
		t.Fatal("unknown training mode must be rejected")
	}
	if err := v.Struct(CourseForm{}); err == nil {
		t.Fatal("training_mode is required")
	}
}

func TestTrainingBatchStatus(t *testing.T) {
	v := newValidator(t)

	for _, status := range []string{"upcoming", "ongoing", "closed"} {
		form := TrainingBatchForm{BatchStatus: status}
		if err := v.Struct(form); err != nil {
			t.Fatalf("status %q must be valid: %v", status, err)
		}
	}
	if err := v.Struct(TrainingBatchForm{BatchStatus: "cancelled"}); err == nil {
		t.Fatal("unknown batch status must be rejected")
	}
	// Empty status is fine, the course may have no batch yet
	if err := v.Struct(TrainingBatchForm{}); err != nil {
		t.Fatalf("empty status must pass: %v", err)
	}
}

func TestBlogFormRequireds(t *testing.T) {
	v := newValidator(t)

	form := BlogForm{
		Title:   "Scaling Mongo",
		Content: "Lorem ipsum",
	}
	if err := v.Struct(form); err != nil {
		t.Fatalf("minimal blog form must pass: %v", err)
	}
	if err := v.Struct(BlogForm{Content: "Lorem ipsum"}); err == nil {
		t.Fatal("title is required")
	}
	if err := v.Struct(BlogForm{Title: "ab", Content: "Lorem"}); err == nil {
		t.Fatal("short titles must be rejected")
	}
	bad := form
	bad.Series = "short"
	if err := v.Struct(bad); err == nil {
		t.Fatal("series must be a 24 char hex id")
	}
}

func TestRegistrationFormUserType(t *testing.T) {
	v := newValidator(t)

	form := RegistrationForm{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "supersecret",
		UserType: "editor",
	}
	if err := v.Struct(form); err != nil {
		t.Fatalf("editor registration must pass: %v", err)
	}
	form.UserType = "admin"
	if err := v.Struct(form); err != nil {
		t.Fatalf("admin registration must pass: %v", err)
	}
	form.UserType = "superuser"
	if err := v.Struct(form); err == nil {
		t.Fatal("unknown user types must be rejected")
	}
	form.UserType = "admin"
	form.Password = "short"
	if err := v.Struct(form); err == nil {
		t.Fatal("short passwords must be rejected")
	}
}
