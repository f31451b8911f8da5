package models

import (
	"testing"

	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToSlug(t *testing.T) {
	cases := []struct {
		title string
		slug  string
	}{
		{"Scaling Mongo", "scaling-mongo"},
		{"Go 1.18 Generics!", "go-118-generics"},
		{"  Leading spaces", "--leading-spaces"},
		{"Ya-hyphenated-title", "ya-hyphenated-title"},
		{"¿Qué es DevOps?", "qu-es-devops"},
		{"UPPER case MIX", "upper-case-mix"},
		{"", ""},
	}
	for _, c := range cases {
		if got := ToSlug(c.title); got != c.slug {
			t.Fatalf("ToSlug(%q) = %q, want %q", c.title, got, c.slug)
		}
	}
}

func TestNewModelBlog(t *testing.T) {
	user := primitive.NewObjectID()
	series := primitive.NewObjectID()

	blog, err := NewModelBlog(&forms.BlogForm{
		Title:   "Scaling Mongo",
		Content: "Lorem ipsum",
		Series:  series.Hex(),
		Tags:    []string{"mongo", "scaling"},
	}, user)
	if err != nil {
		t.Fatalf("NewModelBlog returned error: %v", err)
	}
	if blog.Slug != "scaling-mongo" {
		t.Fatalf("slug = %q, want %q", blog.Slug, "scaling-mongo")
	}
	if blog.User != user {
		t.Fatalf("user = %v, want %v", blog.User, user)
	}
	if blog.Series != series {
		t.Fatalf("series = %v, want %v", blog.Series, series)
	}
	if !blog.Active {
		t.Fatal("new blogs must start active")
	}
	if blog.CreatedAt != blog.UpdatedAt {
		t.Fatal("createdAt and updatedAt must match on insert")
	}
}

func TestNewModelBlogBadSeries(t *testing.T) {
	_, err := NewModelBlog(&forms.BlogForm{
		Title:   "Broken",
		Content: "Lorem ipsum",
		Series:  "not-an-object-id",
	}, primitive.NewObjectID())
	if err == nil {
		t.Fatal("expected an error for a malformed series id")
	}
}
