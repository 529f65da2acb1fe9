package handler

import (
	"github.com/BlogStand/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Handler struct {
	services *service.Service
	logger   *zap.Logger
}

func New(services *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(h.requestIDMiddleware)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET"},
		AllowCredentials: true,
	}))

	r.LoadHTMLGlob(templatesGlob())
	r.Static("/static", staticDir())

	r.GET("/", h.postsIndex)
	r.GET("/about", h.aboutPage)
	r.GET("/contact", h.contactPage)

	r.GET("/new_post", h.postsNewForm)
	r.POST("/new_post", h.postsCreate)
	r.GET("/edit-post/:postID", h.postsEditForm)
	r.POST("/edit-post/:postID", h.postsEdit)
	r.GET("/delete/:postID", h.postsDelete)
	r.GET("/:postID", h.postsShow)

	return r
}

func templatesGlob() string {
	if glob := viper.GetString("app.templates"); glob != "" {
		return glob
	}
	return "web/templates/*.html"
}

func staticDir() string {
	if dir := viper.GetString("app.static"); dir != "" {
		return dir
	}
	return "web/static"
}
