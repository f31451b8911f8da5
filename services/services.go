package services

import (
	"encoding/json"

	"github.com/CPU-commits/Academy_BBackoffice/aws_s3"
	"github.com/CPU-commits/Academy_BBackoffice/models"
	"github.com/CPU-commits/Academy_BBackoffice/settings"
	"github.com/CPU-commits/Academy_BBackoffice/stack"
	"github.com/google/uuid"
)

// Models
var courseModel = models.NewCourseModel()
var blogModel = models.NewBlogModel()
var seriesModel = models.NewSeriesModel()
var tagModel = models.NewTagModel()
var leadModel = models.NewLeadModel()
var userModel = models.NewUserModel()

// Packages
var nats = stack.NewNats()
var aws = aws_s3.NewAWSS3()

// Settings
var settingsData = settings.GetSettings()

func formatRequestToNestjsNats(data interface{}) ([]byte, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}
	request := make(map[string]interface{})
	request["id"] = id.String()
	if data != nil {
		request["data"] = data
	}
	jsonMarshal, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}
	return jsonMarshal, nil
}
