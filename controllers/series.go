package controllers

import (
	"net/http"

	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/CPU-commits/Academy_BBackoffice/services"
	"github.com/gin-gonic/gin"
)

// Services
var seriesService = services.NewSeriesService()

type SeriesController struct{}

// Query
// GetSeries godoc
// @Summary     Get series
// @Description Get every blog series
// @Tags        series
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.SeriesMap}
// @Failure     503 {object} res.Response{} "DB Service Unavailable"
// @Router      /get-series [get]
func (series *SeriesController) GetSeries(c *gin.Context) {
	seriesData, errRes := seriesService.GetSeries()
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["series"] = seriesData
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Feed
// NewSeries godoc
// @Summary     Create series
// @Tags        series
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Success     201 {object} res.Response{}
// @Failure     400 {object} res.Response{} "Bad body"
// @Router      /create-series [post]
func (series *SeriesController) NewSeries(c *gin.Context) {
	var seriesData *forms.SeriesForm
	if err := c.BindJSON(&seriesData); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Insert
	inserted, errRes := seriesService.NewSeries(seriesData)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["series"] = inserted
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data:    response,
	})
}

// UpdateSeries godoc
// @Summary     Edit series
// @Tags        series
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Param       idSeries path     string true "MongoID"
// @Success     200      {object} res.Response{}
// @Failure     404      {object} res.Response{} "No existe esta serie"
// @Router      /edit-series/{idSeries} [put]
func (series *SeriesController) UpdateSeries(c *gin.Context) {
	idSeries := c.Param("idSeries")
	var seriesData *forms.SeriesUpdateForm
	if err := c.BindJSON(&seriesData); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Update
	if errRes := seriesService.UpdateSeries(idSeries, seriesData); errRes != nil {
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

// DeleteSeries godoc
// @Summary     Delete series
// @Tags        series
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Param       idSeries path     string true "MongoID"
// @Success     200      {object} res.Response{}
// @Failure     404      {object} res.Response{} "No existe esta serie"
// @Router      /delete-series/{idSeries} [delete]
func (series *SeriesController) DeleteSeries(c *gin.Context) {
	idSeries := c.Param("idSeries")
	// Delete
	if errRes := seriesService.DeleteSeries(idSeries); errRes != nil {
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
