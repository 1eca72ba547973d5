package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-backoffice/controllers"
	"hotel-backoffice/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	uc *controllers.UserController,
	cc *controllers.CategoryController,
	rc *controllers.RoomController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Users & auth
	r.POST("/users", uc.Register)
	r.GET("/verify-user/:token", uc.Verify)
	r.POST("/login", uc.Login)
	r.POST("/oauth/login", uc.OAuthLogin)
	r.GET("/users", middleware.Authenticate(), uc.GetAll)
	r.PATCH("/make-admin/:id", middleware.Authenticate(), middleware.RequireSuperAdmin(), uc.MakeAdmin)

	// Categories
	r.POST("/category", middleware.Authenticate(), middleware.RequireAdmin(), cc.CreateCategory)
	r.GET("/category", cc.GetAll)

	// Rooms. Mutation endpoints are deliberately left unauthenticated to
	// match observed behavior.
	r.POST("/room/:categoryId", rc.CreateRoom)
	r.DELETE("/room/:roomId/:imageId", rc.DeleteRoomImage)
	r.PATCH("/roomthesecond/:roomId/:imageId", rc.UpdateRoomImage)

	return r
}
