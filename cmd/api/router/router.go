package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"movie-review/cmd/api/handlers"
	"movie-review/cmd/api/middleware"
	"movie-review/cmd/api/services"
	_ "movie-review/docs"
)

// Services 는 라우터가 필요로 하는 서비스 묶음이다.
type Services struct {
	Movies   *services.MovieService
	Analysis *services.AnalysisService
	YouTube  *services.YouTubeService
	Health   *services.HealthService
}

// New 는 모든 라우트를 루트와 /api 아래에 동일하게 등록한다.
func New(svcs Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	register(&r.RouterGroup, svcs)
	register(r.Group("/api"), svcs)

	return r
}

func register(g *gin.RouterGroup, svcs Services) {
	g.GET("/health", handlers.HealthHandler(svcs.Health))

	g.GET("/search", handlers.SearchMoviesHandler(svcs.Movies))
	g.GET("/discover", handlers.DiscoverMoviesHandler(svcs.Movies))
	g.GET("/genres", handlers.ListGenresHandler(svcs.Movies))
	g.GET("/actors", handlers.SearchActorsHandler(svcs.Movies))

	g.GET("/analyze/:movieId", handlers.AnalyzeMovieHandler(svcs.Analysis))

	yt := g.Group("/youtube")
	{
		yt.GET("/search", handlers.SearchYouTubeHandler(svcs.YouTube))
		yt.GET("/comments", handlers.YouTubeCommentsHandler(svcs.YouTube))
		yt.GET("/health", handlers.YouTubeHealthHandler(svcs.YouTube))
	}
}
