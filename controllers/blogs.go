package controllers

import (
	"net/http"
	"strconv"

	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/CPU-commits/Academy_BBackoffice/services"
	"github.com/gin-gonic/gin"
)

// Services
var blogsService = services.NewBlogsService()

type BlogsController struct{}

// Query
// GetBlog godoc
// @Summary     Get blog
// @Description Get a single blog by slug or MongoID
// @Tags        blogs
// @Accept      json
// @Produce     json
// @Param       idOrSlug path     string true "Slug || MongoID"
// @Success     200      {object} res.Response{body=smaps.BlogMap}
// @Failure     404      {object} res.Response{} "No existe este blog"
// @Failure     503      {object} res.Response{} "DB Service Unavailable"
// @Router      /get-blog/{idOrSlug} [get]
func (blog *BlogsController) GetBlog(c *gin.Context) {
	idOrSlug := c.Param("idOrSlug")
	// Get
	blogData, errRes := blogsService.GetBlog(idOrSlug)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["blog"] = blogData
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// GetBlogs godoc
// @Summary     Get blogs
// @Description Paginated blog list with filters, total and last month count
// @Tags        blogs
// @Accept      json
// @Produce     json
// @Param       page       query    integer false "Page, starts at 0"
// @Param       userId     query    string  false "Author MongoID"
// @Param       slug       query    string  false "Exact slug"
// @Param       blogId     query    string  false "MongoID"
// @Param       searchTerm query    string  false "Matches title or content"
// @Param       sortOrder  query    string  false "asc || desc over updatedAt"
// @Success     200        {object} res.Response{body=smaps.BlogsMap}
// @Failure     503        {object} res.Response{} "DB Service Unavailable"
// @Router      /get-blogs [get]
func (blog *BlogsController) GetBlogs(c *gin.Context) {
	page := c.DefaultQuery("page", "0")
	userId := c.DefaultQuery("userId", "")
	slug := c.DefaultQuery("slug", "")
	blogId := c.DefaultQuery("blogId", "")
	searchTerm := c.DefaultQuery("searchTerm", "")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	pageNumber, err := strconv.Atoi(page)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	blogs, errRes := blogsService.GetBlogs(
		userId,
		slug,
		blogId,
		searchTerm,
		sortOrder,
		pageNumber,
	)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["blogs"] = blogs.Blogs
	response["total"] = blogs.Total
	response["last_month_count"] = blogs.LastMonthCount
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// SearchBlogs godoc
// @Summary     Search blogs
// @Description Full text search over indexed blogs
// @Tags        blogs
// @Accept      json
// @Produce     json
// @Param       search query    string true "Search terms"
// @Success     200    {object} res.Response{}
// @Failure     503    {object} res.Response{} "Search Service Unavailable"
// @Router      /search-blogs [get]
func (blog *BlogsController) SearchBlogs(c *gin.Context) {
	search := c.DefaultQuery("search", "")

	hits, errRes := blogsService.Search(search)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["hits"] = hits
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Feed
// NewBlog godoc
// @Summary     Create blog
// @Description Insert a new blog, the slug is derived from the title
// @Tags        blogs
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Success     201 {object} res.Response{body=smaps.BlogMap}
// @Failure     400 {object} res.Response{} "Bad body"
// @Failure     409 {object} res.Response{} "Ya existe un blog con este slug"
// @Failure     503 {object} res.Response{} "DB Service Unavailable"
// @Router      /create-blog [post]
func (blog *BlogsController) NewBlog(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)
	var blogData *forms.BlogForm
	if err := c.BindJSON(&blogData); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Insert
	inserted, errRes := blogsService.NewBlog(blogData, claims)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["blog"] = inserted
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data:    response,
	})
}

// UpdateBlog godoc
// @Summary     Edit blog
// @Description Partial update, the slug never changes after creation
// @Tags        blogs
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Param       idBlog path     string true "MongoID"
// @Success     200    {object} res.Response{}
// @Failure     400    {object} res.Response{} "Bad body"
// @Failure     404    {object} res.Response{} "No existe este blog"
// @Failure     503    {object} res.Response{} "DB Service Unavailable"
// @Router      /edit-blog/{idBlog} [put]
func (blog *BlogsController) UpdateBlog(c *gin.Context) {
	idBlog := c.Param("idBlog")
	var blogData *forms.BlogUpdateForm
	if err := c.BindJSON(&blogData); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Update
	if errRes := blogsService.UpdateBlog(idBlog, blogData); errRes != nil {
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

// DeleteBlog godoc
// @Summary     Delete blog
// @Description Delete a blog by MongoID
// @Tags        blogs
// @Tags        roles.admin
// @Tags        roles.editor
// @Accept      json
// @Produce     json
// @Param       idBlog path     string true "MongoID"
// @Success     200    {object} res.Response{}
// @Failure     404    {object} res.Response{} "No existe este blog"
// @Failure     503    {object} res.Response{} "DB Service Unavailable"
// @Router      /delete-blog/{idBlog} [delete]
func (blog *BlogsController) DeleteBlog(c *gin.Context) {
	idBlog := c.Param("idBlog")
	// Delete
	if errRes := blogsService.DeleteBlog(idBlog); errRes != nil {
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

// ReindexBlogs godoc
// @Summary     Reindex blogs
// @Description Rebuild the search index from the stored blogs
// @Tags        blogs
// @Tags        roles.admin
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{}
// @Failure     503 {object} res.Response{} "Search Service Unavailable"
// @Router      /reindex-blogs [post]
func (blog *BlogsController) ReindexBlogs(c *gin.Context) {
	indexed, errRes := blogsService.ReindexAll()
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["indexed"] = indexed
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}
