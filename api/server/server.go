package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/controllers"
	"github.com/CPU-commits/Academy_BBackoffice/middlewares"
	"github.com/CPU-commits/Academy_BBackoffice/models"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/CPU-commits/Academy_BBackoffice/services"
	"github.com/CPU-commits/Academy_BBackoffice/settings"
	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, &res.Response{
		Success: false,
		Message: "Too many requests. Try again in" + time.Until(info.ResetTime).String(),
	})
}

var settingsData = settings.GetSettings()

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func Init() {
	router := gin.New()
	// Proxies
	router.SetTrustedProxies([]string{"localhost"})
	// Zap looger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
	}))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(string); ok {
			c.String(http.StatusInternalServerError, fmt.Sprintf("Server Internal Error: %s", err))
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, res.Response{
			Success: false,
			Message: "Server Internal Error",
		})
	}))
	// CORS
	httpOrigin := "http://" + settingsData.CLIENT_URL
	httpsOrigin := "https://" + settingsData.CLIENT_URL
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{httpOrigin, httpsOrigin},
		AllowMethods:     []string{"GET", "OPTIONS", "PUT", "DELETE", "POST"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		AllowWebSockets:  false,
		MaxAge:           12 * time.Hour,
	}))
	// Secure
	sslUrl := "ssl." + settingsData.CLIENT_URL
	secureConfig := secure.Config{
		SSLHost:              sslUrl,
		STSSeconds:           315360000,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		IENoOpen:             true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		SSLProxyHeaders: map[string]string{
			"X-Fowarded-Proto": "https",
		},
	}
	router.Use(secure.New(secureConfig))
	// Rate limit
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: 7,
	})
	mw := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: ErrorHandler,
		KeyFunc:      keyFunc,
	})
	router.Use(mw)
	// Validators
	InitValidators()
	// Indexes
	if err := models.EnsureBlogIndexes(); err != nil {
		logger.Sugar().Errorf("blog index error: %v", err)
	}
	// NATS responders
	services.NewCoursesService().GetCourseTitlesSubscriber()
	// Routes
	backoffice := router.Group("/api/l/backoffice")
	protected := router.Group(
		"/api/l/backoffice",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(models.ADMIN, models.EDITOR),
	)
	{
		// Init controllers
		coursesController := new(controllers.CoursesController)
		blogsController := new(controllers.BlogsController)
		seriesController := new(controllers.SeriesController)
		tagsController := new(controllers.TagsController)
		leadsController := new(controllers.LeadsController)
		usersController := new(controllers.UsersController)
		filesController := new(controllers.FilesController)
		// Users
		backoffice.POST("/registration", usersController.Register)
		backoffice.POST("/login", usersController.Login)
		backoffice.GET("/logout", usersController.Logout)
		backoffice.POST("/auth", middlewares.JWTMiddleware(), usersController.Auth)
		// Courses
		backoffice.GET("/get-course/:id", coursesController.GetCourse)
		backoffice.GET("/get-courses", coursesController.GetCourses)
		backoffice.GET("/get-course-title", coursesController.GetCourseTitles)
		backoffice.GET("/getCoursesLength", coursesController.GetCoursesLength)
		protected.POST("/create-course", coursesController.NewCourse)
		protected.PUT("/edit-course/:idCourse", coursesController.UpdateCourse)
		protected.DELETE("/delete-course/:idCourse", coursesController.DeleteCourse)
		protected.GET("/export-course/:idCourse", coursesController.ExportCourse)
		protected.GET("/download-resources/:idCourse", coursesController.DownloadResources)
		// Blogs
		backoffice.GET("/get-blog/:idOrSlug", blogsController.GetBlog)
		backoffice.GET("/get-blogs", blogsController.GetBlogs)
		backoffice.GET("/search-blogs", blogsController.SearchBlogs)
		protected.POST("/create-blog", blogsController.NewBlog)
		protected.PUT("/edit-blog/:idBlog", blogsController.UpdateBlog)
		protected.DELETE("/delete-blog/:idBlog", blogsController.DeleteBlog)
		protected.POST(
			"/reindex-blogs",
			middlewares.RolesMiddleware(models.ADMIN),
			blogsController.ReindexBlogs,
		)
		// Series
		protected.GET("/get-series", seriesController.GetSeries)
		protected.POST("/create-series", seriesController.NewSeries)
		protected.PUT("/edit-series/:idSeries", seriesController.UpdateSeries)
		protected.DELETE("/delete-series/:idSeries", seriesController.DeleteSeries)
		// Tags
		protected.GET("/get-tags", tagsController.GetTags)
		protected.POST("/create-tag", tagsController.NewTag)
		protected.PUT("/edit-tag/:idTag", tagsController.UpdateTag)
		protected.DELETE("/delete-tag/:idTag", tagsController.DeleteTag)
		// Leads
		backoffice.POST("/create-lead", leadsController.NewLead)
		protected.GET("/get-leads", leadsController.GetLeads)
		protected.PUT("/edit-lead/:idLead", leadsController.UpdateLead)
		protected.DELETE("/delete-lead/:idLead", leadsController.DeleteLead)
		protected.GET("/export-leads", leadsController.ExportLeads)
		// Files
		protected.POST("/upload", filesController.UploadFile)
		protected.POST("/upload-file", filesController.UploadFile)
		protected.DELETE("/delete-file/:key", filesController.DeleteFile)
	}
	// No route
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(404, res.Response{
			Success: false,
			Message: "Not found",
		})
	})
	// Init server
	if err := router.Run(); err != nil {
		log.Fatalf("Error init server")
	}
}
