package services

import (
	"fmt"
	"net/http"

	"github.com/CPU-commits/Academy_BBackoffice/db"
	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/CPU-commits/Academy_BBackoffice/models"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var usersService *UsersService

type UsersService struct{}

func (u *UsersService) Register(registration *forms.RegistrationForm) (*models.SimpleUser, *res.ErrorRes) {
	// Exists
	var existing *models.User
	cursor := userModel.GetOne(bson.D{
		{
			Key:   "email",
			Value: registration.Email,
		},
	})
	if err := cursor.Decode(&existing); err != nil && err.Error() != db.NO_SINGLE_DOCUMENT {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if existing != nil {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("ya existe un usuario con este email"),
			StatusCode: http.StatusConflict,
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(registration.Password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	userData := models.NewModelUser(
		registration.Name,
		registration.Email,
		string(hashedPassword),
		registration.UserType,
	)
	inserted, err := userModel.NewDocument(userData)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return &models.SimpleUser{
		ID:       inserted.InsertedID.(primitive.ObjectID),
		Name:     userData.Name,
		Email:    userData.Email,
		UserType: userData.UserType,
	}, nil
}

// Login validates credentials and returns the user next to a signed token
func (u *UsersService) Login(login *forms.LoginForm) (*models.SimpleUser, string, *res.ErrorRes) {
	var user *models.User

	cursor := userModel.GetOne(bson.D{
		{
			Key:   "email",
			Value: login.Email,
		},
	})
	if err := cursor.Decode(&user); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return nil, "", &res.ErrorRes{
				Err:        fmt.Errorf("credenciales inválidas"),
				StatusCode: http.StatusUnauthorized,
			}
		}
		return nil, "", &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if !user.Active {
		return nil, "", &res.ErrorRes{
			Err:        fmt.Errorf("credenciales inválidas"),
			StatusCode: http.StatusUnauthorized,
		}
	}
	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(login.Password),
	); err != nil {
		return nil, "", &res.ErrorRes{
			Err:        fmt.Errorf("credenciales inválidas"),
			StatusCode: http.StatusUnauthorized,
		}
	}

	token, err := NewSignedToken(user)
	if err != nil {
		return nil, "", &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &models.SimpleUser{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		UserType: user.UserType,
	}, token, nil
}

func (u *UsersService) GetUserFromClaims(claims *Claims) (*models.SimpleUser, *res.ErrorRes) {
	idObjUser, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	var user *models.User
	cursor := userModel.GetByID(idObjUser)
	if err := cursor.Decode(&user); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("no existe este usuario"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return &models.SimpleUser{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		UserType: user.UserType,
	}, nil
}

func NewUsersService() *UsersService {
	if usersService == nil {
		usersService = &UsersService{}
	}
	return usersService
}
