package services

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetBlogsFilter(t *testing.T) {
	filter, err := getBlogsFilter("", "", "", "")
	if err != nil {
		t.Fatalf("empty params returned error: %v", err)
	}
	if len(filter) != 0 {
		t.Fatalf("empty params must build an empty filter, got %v", filter)
	}

	userId := primitive.NewObjectID()
	blogId := primitive.NewObjectID()
	filter, err = getBlogsFilter(userId.Hex(), "scaling-mongo", blogId.Hex(), "mongo")
	if err != nil {
		t.Fatalf("getBlogsFilter returned error: %v", err)
	}
	if filter["user"] != userId {
		t.Fatalf("user = %v", filter["user"])
	}
	if filter["_id"] != blogId {
		t.Fatalf("_id = %v", filter["_id"])
	}
	if filter["slug"] != "scaling-mongo" {
		t.Fatalf("slug = %v", filter["slug"])
	}
	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("$or = %v", filter["$or"])
	}
	title, ok := or[0].(bson.M)["title"].(bson.M)
	if !ok || title["$regex"] != "mongo" || title["$options"] != "i" {
		t.Fatalf("title regex = %v", or[0])
	}
}

func TestGetBlogsFilterBadIds(t *testing.T) {
	if _, err := getBlogsFilter("nope", "", "", ""); err == nil {
		t.Fatal("expected error for malformed userId")
	}
	if _, err := getBlogsFilter("", "", "nope", ""); err == nil {
		t.Fatal("expected error for malformed blogId")
	}
}

func TestGetSortOrder(t *testing.T) {
	if getSortOrder("asc") != 1 {
		t.Fatal("asc must sort ascending")
	}
	if getSortOrder("desc") != -1 {
		t.Fatal("desc must sort descending")
	}
	// Anything else falls back to newest first
	if getSortOrder("") != -1 || getSortOrder("bogus") != -1 {
		t.Fatal("unknown orders must fall back to descending")
	}
}
