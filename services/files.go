package services

import (
	"mime/multipart"
	"net/http"

	"github.com/CPU-commits/Academy_BBackoffice/res"
)

var filesService *FilesService

type FilesService struct{}

type UploadedFile struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (f *FilesService) UploadFile(fileHeader *multipart.FileHeader) (*UploadedFile, *res.ErrorRes) {
	key, location, err := aws.UploadFile(fileHeader)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return &UploadedFile{
		Key: key,
		URL: location,
	}, nil
}

func (f *FilesService) DeleteFile(key string) *res.ErrorRes {
	if err := aws.DeleteFile(key); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}

func NewFilesService() *FilesService {
	if filesService == nil {
		filesService = &FilesService{}
	}
	return filesService
}
