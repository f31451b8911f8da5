package controllers

import (
	"net/http"

	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/CPU-commits/Academy_BBackoffice/services"
	"github.com/gin-gonic/gin"
)

// Services
var tagsService = services.NewTagsService()

type TagsController struct{}

// Query
// GetTags godoc
// @Summary     Get tags
// @Tags        tags
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.TagsMap}
// @Failure     503 {object} res.Response{} "DB Service Unavailable"
// @Router      /get-tags [get]
func (tag *TagsController) GetTags(c *gin.Context) {
	tags, errRes := tagsService.GetTags()
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["tags"] = tags
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Feed
// NewTag godoc
// @Summary     Create tag
// @Tags        tags
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Success     201 {object} res.Response{}
// @Failure     400 {object} res.Response{} "Bad body"
// @Router      /create-tag [post]
func (tag *TagsController) NewTag(c *gin.Context) {
	var tagData *forms.TagForm
	if err := c.BindJSON(&tagData); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Insert
	inserted, errRes := tagsService.NewTag(tagData)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["tag"] = inserted
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data:    response,
	})
}

// UpdateTag godoc
// @Summary     Edit tag
// @Tags        tags
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Param       idTag path     string true "MongoID"
// @Success     200   {object} res.Response{}
// @Failure     404   {object} res.Response{} "No existe este tag"
// @Router      /edit-tag/{idTag} [put]
func (tag *TagsController) UpdateTag(c *gin.Context) {
	idTag := c.Param("idTag")
	var tagData *forms.TagUpdateForm
	if err := c.BindJSON(&tagData); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Update
	if errRes := tagsService.UpdateTag(idTag, tagData); errRes != nil {
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

// DeleteTag godoc
// @Summary     Delete tag
// @Tags        tags
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Param       idTag path     string true "MongoID"
// @Success     200   {object} res.Response{}
// @Failure     404   {object} res.Response{} "No existe este tag"
// @Router      /delete-tag/{idTag} [delete]
func (tag *TagsController) DeleteTag(c *gin.Context) {
	idTag := c.Param("idTag")
	// Delete
	if errRes := tagsService.DeleteTag(idTag); errRes != nil {
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
