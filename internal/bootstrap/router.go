package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/projtrackr/projtrackr-backend/internal/api/http"
	apimw "github.com/projtrackr/projtrackr-backend/internal/api/http/middleware"
	"github.com/projtrackr/projtrackr-backend/internal/auth"
	authhttp "github.com/projtrackr/projtrackr-backend/internal/auth/http"
	authmw "github.com/projtrackr/projtrackr-backend/internal/auth/middleware"
	authservice "github.com/projtrackr/projtrackr-backend/internal/auth/service"
	profilehttp "github.com/projtrackr/projtrackr-backend/internal/profile/http"
	profilerepo "github.com/projtrackr/projtrackr-backend/internal/profile/repository"
	projecthttp "github.com/projtrackr/projtrackr-backend/internal/projects/http"
	projectrepo "github.com/projtrackr/projtrackr-backend/internal/projects/repository"
	projectservice "github.com/projtrackr/projtrackr-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	BasePath    string
	Auth        auth.Provider
	KV          *redis.Client
	SignupRPS   float64
	SignupBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimw.RequestID())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.KV)
	healthHandler.RegisterRoutes(r)

	api := r.Group(dep.BasePath)

	signupHandler := authhttp.New(authservice.NewSignupService(dep.Auth))
	anon := api.Group("")
	anon.Use(apimw.RateLimit(dep.SignupRPS, dep.SignupBurst))
	signupHandler.Register(anon)

	projectService := projectservice.NewProjectService(projectrepo.NewRepo(dep.KV))
	profileHandler := profilehttp.New(profilerepo.NewRepo(dep.KV), dep.Auth)

	authed := api.Group("")
	authed.Use(authmw.RequireUser(dep.Auth))

	projecthttp.New(projectService).Register(authed.Group("/projects"))
	profileHandler.Register(authed)

	return r
}
