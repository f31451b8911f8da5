package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/CPU-commits/Academy_BBackoffice/services"
	"github.com/gin-gonic/gin"
)

// Services
var coursesService = services.NewCoursesService()

type CoursesController struct{}

// Query
// GetCourse godoc
// @Summary     Get course
// @Description Get a single course by MongoID or by its url slug
// @Tags        courses
// @Accept      json
// @Produce     json
// @Param       id  path     string true "MongoID || Url"
// @Success     200 {object} res.Response{body=smaps.CourseMap}
// @Failure     404 {object} res.Response{} "No existe este curso"
// @Failure     503 {object} res.Response{} "DB Service Unavailable"
// @Router      /get-course/{id} [get]
func (course *CoursesController) GetCourse(c *gin.Context) {
	id := c.Param("id")
	// Get
	courseData, errRes := coursesService.GetCourse(id)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["course"] = courseData
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// GetCourses godoc
// @Summary     Get courses
// @Description Paginated course list with optional category, level and language filters
// @Tags        courses
// @Accept      json
// @Produce     json
// @Param       page     query    integer false "Page, starts at 0"
// @Param       category query    string  false "Category"
// @Param       level    query    string  false "Level"
// @Param       language query    string  false "Language"
// @Success     200      {object} res.Response{body=smaps.CoursesMap}
// @Failure     503      {object} res.Response{} "DB Service Unavailable"
// @Router      /get-courses [get]
func (course *CoursesController) GetCourses(c *gin.Context) {
	page := c.DefaultQuery("page", "0")
	category := c.DefaultQuery("category", "")
	level := c.DefaultQuery("level", "")
	language := c.DefaultQuery("language", "")

	pageNumber, err := strconv.Atoi(page)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	courses, errRes := coursesService.GetCourses(pageNumber, category, level, language)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["courses"] = courses
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// GetCourseTitles godoc
// @Summary     Get course titles
// @Description Lightweight id + title + url list for pickers
// @Tags        courses
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.CourseTitlesMap}
// @Failure     503 {object} res.Response{} "DB Service Unavailable"
// @Router      /get-course-title [get]
func (course *CoursesController) GetCourseTitles(c *gin.Context) {
	titles, errRes := coursesService.GetCourseTitles()
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["titles"] = titles
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// GetCoursesLength godoc
// @Summary     Get courses length
// @Description Total course count
// @Tags        courses
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.CoursesLengthMap}
// @Failure     503 {object} res.Response{} "DB Service Unavailable"
// @Router      /getCoursesLength [get]
func (course *CoursesController) GetCoursesLength(c *gin.Context) {
	total, errRes := coursesService.GetCoursesLength()
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["total"] = total
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Feed
// NewCourse godoc
// @Summary     Create course
// @Description Insert a new course
// @Tags        courses
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Success     201 {object} res.Response{body=smaps.CourseMap}
// @Failure     400 {object} res.Response{} "Bad body"
// @Failure     401 {object} res.Response{} "Unauthorized"
// @Failure     503 {object} res.Response{} "DB Service Unavailable"
// @Router      /create-course [post]
func (course *CoursesController) NewCourse(c *gin.Context) {
	var courseData *forms.CourseForm
	if err := c.BindJSON(&courseData); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Insert
	inserted, errRes := coursesService.NewCourse(courseData)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["course"] = inserted
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data:    response,
	})
}

// UpdateCourse godoc
// @Summary     Edit course
// @Description Partial update, nested blocks are replaced wholesale
// @Tags        courses
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Param       idCourse path     string true "MongoID"
// @Success     200      {object} res.Response{}
// @Failure     400      {object} res.Response{} "Bad body"
// @Failure     404      {object} res.Response{} "No existe este curso"
// @Failure     503      {object} res.Response{} "DB Service Unavailable"
// @Router      /edit-course/{idCourse} [put]
func (course *CoursesController) UpdateCourse(c *gin.Context) {
	idCourse := c.Param("idCourse")
	var courseData *forms.CourseUpdateForm
	if err := c.BindJSON(&courseData); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Update
	if errRes := coursesService.UpdateCourse(idCourse, courseData); errRes != nil {
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

// DeleteCourse godoc
// @Summary     Delete course
// @Description Delete a course by MongoID
// @Tags        courses
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Param       idCourse path     string true "MongoID"
// @Success     200      {object} res.Response{}
// @Failure     404      {object} res.Response{} "No existe este curso"
// @Failure     503      {object} res.Response{} "DB Service Unavailable"
// @Router      /delete-course/{idCourse} [delete]
func (course *CoursesController) DeleteCourse(c *gin.Context) {
	idCourse := c.Param("idCourse")
	// Delete
	if errRes := coursesService.DeleteCourse(idCourse); errRes != nil {
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

// ExportCourse godoc
// @Summary     Export course
// @Description Export a course summary as PDF
// @Tags        courses
// @Tags        roles.admin
// @Tags        roles.editor
// @Produce     application/pdf
// @Param       idCourse path string true "MongoID"
// @Success     200
// @Failure     404 {object} res.Response{} "No existe este curso"
// @Router      /export-course/{idCourse} [get]
func (course *CoursesController) ExportCourse(c *gin.Context) {
	idCourse := c.Param("idCourse")
	c.Writer.Header().Set("Content-type", "application/pdf")
	c.Stream(func(w io.Writer) bool {
		if errRes := coursesService.ExportCoursePDF(idCourse, w); errRes != nil {
			c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
				Success: false,
				Message: errRes.Err.Error(),
			})
			return false
		}
		c.Writer.Header().Set(
			"Content-Disposition",
			"attachment; filename='course.pdf'",
		)
		return false
	})
}

// DownloadResources godoc
// @Summary     Download course resources
// @Description Zip with every storage object attached to the course
// @Tags        courses
// @Tags        roles.admin
// @Tags        roles.editor
// @Produce     application/octet-stream
// @Param       idCourse path string true "MongoID"
// @Success     200
// @Failure     400 {object} res.Response{} "Este curso no tiene recursos descargables"
// @Router      /download-resources/{idCourse} [get]
func (course *CoursesController) DownloadResources(c *gin.Context) {
	idCourse := c.Param("idCourse")
	c.Writer.Header().Set("Content-type", "application/octet-stream")
	c.Stream(func(w io.Writer) bool {
		ar, errRes := coursesService.DownloadCourseResources(idCourse, w)
		if errRes != nil {
			c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
				Success: false,
				Message: errRes.Err.Error(),
			})
			return false
		}
		c.Writer.Header().Set(
			"Content-Disposition",
			"attachment; filename='resources.zip'",
		)
		ar.Close()
		return false
	})
}
