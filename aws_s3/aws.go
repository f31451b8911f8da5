package aws_s3

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"

	"github.com/CPU-commits/Academy_BBackoffice/settings"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

var settingsData = settings.GetSettings()
var awsS3 *AWSS3

type AWSS3 struct {
	sess *session.Session
}

// UploadFile stores a multipart file under a uuid key and returns the key
// and the public object URL
func (a *AWSS3) UploadFile(fileHeader *multipart.FileHeader) (string, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	id, err := uuid.NewUUID()
	if err != nil {
		return "", "", err
	}
	key := id.String() + filepath.Ext(fileHeader.Filename)

	uploader := s3manager.NewUploader(a.sess)
	result, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(settingsData.AWS_BUCKET),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return "", "", err
	}
	return key, result.Location, nil
}

func (a *AWSS3) GetFile(key string) (io.ReadCloser, error) {
	client := s3.New(a.sess)
	object, err := client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(settingsData.AWS_BUCKET),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return object.Body, nil
}

func (a *AWSS3) DeleteFile(key string) error {
	client := s3.New(a.sess)
	_, err := client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(settingsData.AWS_BUCKET),
		Key:    aws.String(key),
	})
	return err
}

// ObjectURL rebuilds the public URL for a stored key
func (a *AWSS3) ObjectURL(key string) string {
	return fmt.Sprintf(
		"https://%s.s3.%s.amazonaws.com/%s",
		settingsData.AWS_BUCKET,
		settingsData.AWS_REGION,
		key,
	)
}

func NewAWSS3() *AWSS3 {
	if awsS3 == nil {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(settingsData.AWS_REGION),
		})
		if err != nil {
			log.Fatalf("AWS session error: %v", err)
		}
		awsS3 = &AWSS3{
			sess: sess,
		}
	}
	return awsS3
}
