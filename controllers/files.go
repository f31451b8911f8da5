package controllers

import (
	"net/http"

	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/CPU-commits/Academy_BBackoffice/services"
	"github.com/gin-gonic/gin"
)

// Services
var filesService = services.NewFilesService()

type FilesController struct{}

// Feed
// UploadFile godoc
// @Summary     Upload file
// @Description Store a multipart file and return its key and public URL
// @Tags        files
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "File"
// @Success     201  {object} res.Response{body=smaps.UploadedFileMap}
// @Failure     400  {object} res.Response{} "Bad form"
// @Failure     503  {object} res.Response{} "Storage Service Unavailable"
// @Router      /upload [post]
func (file *FilesController) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Upload
	uploaded, errRes := filesService.UploadFile(fileHeader)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["file"] = uploaded
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data:    response,
	})
}

// DeleteFile godoc
// @Summary     Delete file
// @Description Delete a stored object by key
// @Tags        files
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Param       key path     string true "Storage key"
// @Success     200 {object} res.Response{}
// @Failure     503 {object} res.Response{} "Storage Service Unavailable"
// @Router      /delete-file/{key} [delete]
func (file *FilesController) DeleteFile(c *gin.Context) {
	key := c.Param("key")
	// Delete
	if errRes := filesService.DeleteFile(key); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
	})
}
