package router

import (
	"cboard/controller"
	docs "cboard/docs"
	"cboard/logger"
	"cboard/middleware"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers and session dependencies the route table is built from.
type Services struct {
	Member  *controller.MemberHandler
	Board   *controller.BoardHandler
	Post    *controller.PostHandler
	Comment *controller.CommentHandler

	Session gin.HandlerFunc
}

func New(svc *Services) *gin.Engine {
	if viper.GetString("server.mode") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		logger.GinLogger(),
		logger.GinRecovery(true),
		middleware.CORF(viper.GetString("CORF.frontend_path")),
		middleware.RateLimit(viper.GetFloat64("ratelimit.rate"), viper.GetInt64("ratelimit.capacity")),
	)

	basePath := viper.GetString("server.base_path")

	/* Swagger */
	if viper.GetBool("service.swagger.enable") {
		docs.SwaggerInfo.BasePath = basePath
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	}

	api := router.Group(basePath)
	api.Use(svc.Session)
	login := middleware.RequireLogin()

	/* Member */
	memberGrp := api.Group("/member")
	memberGrp.POST("/join", svc.Member.JoinHandler)
	memberGrp.POST("/login", svc.Member.LoginHandler)
	memberGrp.POST("/logout", svc.Member.LogoutHandler)
	memberGrp.DELETE("/logout", svc.Member.LogoutHandler)
	memberGrp.GET("", login, svc.Member.ProfileHandler)
	memberGrp.PUT("", login, svc.Member.ProfileUpdateHandler)

	/* Board */
	boardGrp := api.Group("/board")
	boardGrp.GET("", svc.Board.ListHandler)
	boardGrp.POST("", login, svc.Board.CreateCategoryHandler)
	boardGrp.POST("/create", login, svc.Board.CreateCategoryHandler)
	boardGrp.GET("/category", svc.Board.CategoryListHandler)
	boardGrp.GET("/info", svc.Board.InfoHandler)

	/* Post */
	postGrp := api.Group("/post")
	postGrp.GET("", svc.Post.ReadHandler)
	postGrp.GET("/user/:userId", svc.Post.RecentByUserHandler)
	postGrp.POST("", login, svc.Post.WriteHandler)
	postGrp.PUT("", login, svc.Post.UpdateHandler)
	postGrp.POST("/delete", login, svc.Post.DeleteHandler)
	postGrp.DELETE("/delete", login, svc.Post.DeleteHandler)

	voteGrp := postGrp.Group("", login, middleware.RateLimit2(viper.GetInt("ratelimit.vote_rps")))
	voteGrp.POST("/like", svc.Post.LikeHandler)
	voteGrp.POST("/dislike", svc.Post.DislikeHandler)

	/* Comment */
	commentGrp := api.Group("/comment")
	commentGrp.GET("", svc.Comment.ListHandler)
	commentGrp.POST("", login, svc.Comment.CreateHandler)
	commentGrp.PATCH("", login, svc.Comment.UpdateHandler)
	commentGrp.DELETE("", login, svc.Comment.RemoveHandler)

	return router
}

func NewServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", viper.GetString("server.ip"), viper.GetInt("server.port")),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
