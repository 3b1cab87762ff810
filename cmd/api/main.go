package main

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/projtrackr/projtrackr-backend/config"
	"github.com/projtrackr/projtrackr-backend/internal/auth"
	"github.com/projtrackr/projtrackr-backend/internal/bootstrap"
	"github.com/projtrackr/projtrackr-backend/internal/metrics"
	storage "github.com/projtrackr/projtrackr-backend/internal/storage/redis"
)

const serviceName = "projtrackr-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	authClient, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		log.Fatalf("failed to initialize identity provider: %v", err)
	}
	provider := auth.NewFirebaseProvider(authClient)

	kv, err := storage.NewClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("failed to connect to key-value store: %v", err)
	}
	defer kv.Close()

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		BasePath:    cfg.Server.BasePath,
		Auth:        provider,
		KV:          kv,
		SignupRPS:   cfg.Signup.RateRPS,
		SignupBurst: cfg.Signup.RateBurst,
	})

	log.Printf("%s %s listening on :%s", serviceName, cfg.App.Version, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
