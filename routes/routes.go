package routes

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/controllers"
	"github.com/nandini9934/MyApi/middlewares"
	"github.com/nandini9934/MyApi/services"
)

// SetupRouter wires every controller onto a fresh engine. Tests call this
// with a sqlite handle and nil mailer/uploader.
func SetupRouter(db *gorm.DB, mailer services.Mailer, uploader controllers.Uploader) *gin.Engine {
	authSvc := services.NewAuthService(db, mailer)
	oauthSvc := services.NewOAuthService()
	nutritionistSvc := services.NewNutritionistService(db)
	foodSvc := services.NewFoodItemService(db)
	foodTemplateSvc := services.NewFoodTemplateService(db)
	dietPlanSvc := services.NewDietPlanService(db)
	dietTemplateSvc := services.NewDietTemplateService(db)
	trackingSvc := services.NewTrackingService(db)
	exerciseSvc := services.NewExerciseService(db)
	appointmentSvc := services.NewAppointmentService(db)
	userSvc := services.NewUserService(db)
	flyerSvc := services.NewFlyerService(db)
	faqSvc := services.NewFAQService(db)

	auth := controllers.NewAuthController(authSvc, oauthSvc)
	nutritionists := controllers.NewNutritionistController(nutritionistSvc)
	foods := controllers.NewFoodItemController(foodSvc)
	foodTemplates := controllers.NewFoodTemplateController(foodTemplateSvc)
	dietPlans := controllers.NewDietPlanController(dietPlanSvc)
	dietTemplates := controllers.NewDietTemplateController(dietTemplateSvc)
	tracking := controllers.NewTrackingController(trackingSvc)
	exercises := controllers.NewExerciseController(exerciseSvc)
	appointments := controllers.NewAppointmentController(appointmentSvc)
	users := controllers.NewUserController(userSvc)
	media := controllers.NewMediaController(flyerSvc, faqSvc, uploader)

	r := gin.Default()
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			os.Getenv("FRONTEND_URL"),
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	// Public
	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)
	api.GET("/auth/google", auth.GoogleLogin)
	api.GET("/auth/google/callback", auth.GoogleCallback)
	api.POST("/forgot-password", auth.ForgotPassword)
	api.POST("/reset-password", auth.ResetPassword)
	api.POST("/verify-token", auth.VerifyToken)
	api.POST("/nutritionists/signup", nutritionists.Signup)
	api.POST("/nutritionists/login", nutritionists.Login)
	api.GET("/flyer", media.ListFlyers)
	api.GET("/faq", media.ListFAQs)

	// User-facing, bearer token required
	user := api.Group("/", middlewares.AuthMiddleware())
	{
		user.POST("/delete-account", auth.DeleteAccount)
		user.POST("/deactivate-subscription", auth.DeactivateSubscription)
		user.GET("/metadata", users.Metadata)
		user.PUT("/metadata", users.UpdateMetadata)
		user.POST("/userdata", users.SaveData)

		user.GET("/fooditems", foods.List)
		user.GET("/fooditems/mealtype/:mealType", foods.ListByMealType)

		user.POST("/target", tracking.AddTarget)
		user.GET("/target/:date", tracking.TargetForDate)
		user.DELETE("/target", tracking.RemoveTarget)
		user.POST("/consumed", tracking.MarkConsumed)
		user.GET("/consumed/:date", tracking.ConsumedForDate)
		user.DELETE("/consumed", tracking.UnmarkConsumed)
		user.GET("/water-sleep/:date", tracking.WaterSleep)
		user.POST("/water/:date", tracking.SetWater)
		user.POST("/sleep/:date", tracking.SetSleep)

		user.GET("/exercise", exercises.List)
		user.POST("/add-exercise", exercises.Assign)
		user.DELETE("/remove-exercise", exercises.Unassign)
		user.GET("/user-exercises/:date", exercises.ForDate)

		user.GET("/appointments/user", appointments.Upcoming)
		user.GET("/appointments/available-slots/:date", appointments.AvailableSlots)
		user.POST("/appointments", appointments.Book)
		user.PUT("/appointments/:appointmentId/cancel", appointments.Cancel)

		user.POST("/uploads", media.Upload)
	}

	// Dashboard, nutritionist role required
	pro := api.Group("/", middlewares.AuthMiddleware("nutritionist"))
	{
		pro.GET("/nutritionists", nutritionists.List)
		pro.GET("/nutritionists/:id", nutritionists.GetByID)
		pro.POST("/nutritionists", nutritionists.Create)
		pro.PUT("/nutritionists/:id", nutritionists.Update)
		pro.DELETE("/nutritionists/:id", nutritionists.Delete)
		pro.GET("/nutritionists/:id/clients", nutritionists.ListClients)
		pro.POST("/nutritionists/:id/clients", nutritionists.AddClient)
		pro.PUT("/nutritionists/:id/clients/:clientId", nutritionists.UpdateClient)
		pro.DELETE("/nutritionists/:id/clients/:clientId", nutritionists.RemoveClient)

		pro.POST("/fooditems", foods.Create)
		pro.PUT("/fooditems/:id", foods.Update)
		pro.DELETE("/fooditems/:id", foods.Delete)

		pro.POST("/foodtemplates", foodTemplates.Create)
		pro.GET("/foodtemplates/nutritionist/:nutritionistId", foodTemplates.ListByNutritionist)
		pro.GET("/foodtemplates/:id", foodTemplates.GetByID)
		pro.PUT("/foodtemplates/:id", foodTemplates.Update)
		pro.DELETE("/foodtemplates/:id", foodTemplates.Delete)

		pro.POST("/dietplans", dietPlans.Create)
		pro.GET("/dietplans/nutritionist/:nutritionistId", dietPlans.ListByNutritionist)
		pro.GET("/dietplans/:id", dietPlans.GetByID)
		pro.PUT("/dietplans/:id", dietPlans.Update)
		pro.DELETE("/dietplans/:id", dietPlans.Delete)

		pro.POST("/diettemplates", dietTemplates.Create)
		pro.GET("/diettemplates/nutritionist/:nutritionistId", dietTemplates.ListByNutritionist)
		pro.GET("/diettemplates/:id", dietTemplates.GetByID)
		pro.PUT("/diettemplates/:id", dietTemplates.Update)
		pro.DELETE("/diettemplates/:id", dietTemplates.Delete)

		pro.POST("/exercise", exercises.Create)
		pro.PUT("/exercise/:id", exercises.Update)

		pro.POST("/flyer", media.CreateFlyer)
		pro.POST("/faq", media.CreateFAQ)
		pro.DELETE("/faq/:id", media.DeleteFAQ)
	}

	return r
}
