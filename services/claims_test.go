package services

import (
	"testing"

	"github.com/CPU-commits/Academy_BBackoffice/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		UserType: models.EDITOR,
	}
	token, err := NewSignedToken(user)
	if err != nil {
		t.Fatalf("NewSignedToken returned error: %v", err)
	}
	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}
	if claims.ID != user.ID.Hex() {
		t.Fatalf("claims id = %q, want %q", claims.ID, user.ID.Hex())
	}
	if claims.Name != user.Name || claims.Email != user.Email {
		t.Fatalf("claims identity mismatch: %+v", claims)
	}
	if claims.UserType != models.EDITOR {
		t.Fatalf("claims user_type = %q", claims.UserType)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	if _, err := VerifyToken("not.a.token"); err == nil {
		t.Fatal("expected error for a malformed token")
	}
	if _, err := VerifyToken(""); err == nil {
		t.Fatal("expected error for an empty token")
	}
}
