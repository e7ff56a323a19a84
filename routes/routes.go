package routes

import (
	"github.com/diploma-nedashkivska/pet-care-service/controllers"
	"github.com/diploma-nedashkivska/pet-care-service/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the full route table at process start.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(), gin.Recovery())

	// Public auth routes
	r.POST("/signup", controllers.SignUp)
	r.POST("/signin", controllers.SignIn)

	api := r.Group("/api")
	{
		api.POST("/token/refresh", controllers.RefreshToken)
		api.POST("/logout", middlewares.AuthMiddleware(), controllers.Logout)
	}

	profile := r.Group("/profile")
	profile.Use(middlewares.AuthMiddleware())
	{
		profile.GET("", controllers.GetProfile)
		profile.PUT("", controllers.UpdateProfile)
		profile.PATCH("", controllers.PatchProfile)
	}

	pets := r.Group("/pets")
	pets.Use(middlewares.AuthMiddleware())
	{
		pets.GET("", controllers.ListPets)
		pets.POST("", controllers.CreatePet)
		pets.GET("/:id", controllers.GetPet)
		pets.PUT("/:id", controllers.UpdatePet)
		pets.PATCH("/:id", controllers.PatchPet)
		pets.DELETE("/:id", controllers.DeletePet)
	}

	calendar := r.Group("/calendar")
	calendar.Use(middlewares.AuthMiddleware())
	{
		calendar.GET("", controllers.ListEvents)
		calendar.POST("", controllers.CreateEvent)
		calendar.GET("/:id", controllers.GetEvent)
		calendar.PUT("/:id", controllers.UpdateEvent)
		calendar.PATCH("/:id", controllers.PatchEvent)
		calendar.DELETE("/:id", controllers.DeleteEvent)
	}

	journal := r.Group("/journal")
	journal.Use(middlewares.AuthMiddleware())
	{
		journal.GET("", controllers.ListEntries)
		journal.POST("", controllers.CreateEntry)
		journal.GET("/:id", controllers.GetEntry)
		journal.PUT("/:id", controllers.UpdateEntry)
		journal.PATCH("/:id", controllers.PatchEntry)
		journal.DELETE("/:id", controllers.DeleteEntry)
	}

	partners := r.Group("/partners")
	partners.Use(middlewares.AuthMiddleware())
	{
		partners.GET("", controllers.ListPartners)
		partners.GET("/watchlist", controllers.ListWatchlist)
		partners.POST("/watchlist/:id", controllers.AddToWatchlist)
		partners.DELETE("/watchlist/:id", controllers.RemoveFromWatchlist)
	}

	// Forum reads are public; writes require a token.
	forum := r.Group("/forum")
	{
		forum.GET("", controllers.ListPosts)
		forum.GET("/:id", controllers.GetPost)
		forum.GET("/:id/comments", controllers.ListComments)

		authed := forum.Group("")
		authed.Use(middlewares.AuthMiddleware())
		{
			authed.POST("", controllers.CreatePost)
			authed.DELETE("/:id", controllers.DeletePost)
			authed.POST("/:id/comments", controllers.CreateComment)
			authed.DELETE("/:id/comments/:commentId", controllers.DeleteComment)
			authed.POST("/:id/like", controllers.ToggleLike)
		}
	}

	return r
}
