package routes

import (
	"github.com/Serdar-Sara/FitnessTracker/config"
	"github.com/Serdar-Sara/FitnessTracker/controllers"
	"github.com/Serdar-Sara/FitnessTracker/middlewares"
	"github.com/Serdar-Sara/FitnessTracker/repositories"
	"github.com/Serdar-Sara/FitnessTracker/services"
	"github.com/Serdar-Sara/FitnessTracker/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(log *zap.Logger) *gin.Engine {
	r := gin.Default()

	diet := controllers.NewDietController(repositories.NewDietRepository(config.DB), log)
	exercise := controllers.NewExerciseController(repositories.NewExerciseRepository(config.DB), log)
	progress := controllers.NewProgressController(repositories.NewProgressRepository(config.DB), log)
	home := controllers.NewHomeController(services.NewDashboardService(config.DB), log)
	auth := controllers.NewAuthController(utils.NewLogEmailSender(log), log)

	// Public dashboard
	r.GET("/", home.Index)

	// Public auth routes
	a := r.Group("/auth")
	{
		a.POST("/register", auth.Register)
		a.POST("/login", auth.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.RequireAuth())
	{
		user.GET("/profile", controllers.GetProfile)
	}

	// Resource routes resolve the current user when a token is present;
	// the handlers themselves decide between 200 and 401
	d := r.Group("/Diet")
	d.Use(middlewares.CurrentUser())
	{
		d.GET("/Get", diet.Get)
		d.GET("/Add", diet.AddForm)
		d.POST("/Add", diet.Add)
		d.GET("/Edit", diet.EditForm)
		d.POST("/Edit", diet.Edit)
		d.POST("/Delete", diet.Delete)
	}

	e := r.Group("/Exercise")
	e.Use(middlewares.CurrentUser())
	{
		e.GET("/Get", exercise.Get)
		e.GET("/Add", exercise.AddForm)
		e.POST("/Add", exercise.Add)
		e.GET("/Edit", exercise.EditForm)
		e.POST("/Edit", exercise.Edit)
		e.POST("/Delete", exercise.Delete)
	}

	p := r.Group("/Progress")
	p.Use(middlewares.CurrentUser())
	{
		p.GET("/Get", progress.Get)
		p.GET("/Add", progress.AddForm)
		p.POST("/Add", progress.Add)
		p.GET("/Edit", progress.EditForm)
		p.POST("/Edit", progress.Edit)
		p.POST("/Delete", progress.Delete)
	}

	return r
}
