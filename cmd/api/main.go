package main

import (
	"context"
	"log"

	"github.com/trekfolio/brochure-backend/config"
	"github.com/trekfolio/brochure-backend/internal/assets"
	"github.com/trekfolio/brochure-backend/internal/auth"
	"github.com/trekfolio/brochure-backend/internal/bootstrap"
	"github.com/trekfolio/brochure-backend/internal/drafts"
	"github.com/trekfolio/brochure-backend/internal/projects"
	"github.com/trekfolio/brochure-backend/internal/users"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	ctx := context.Background()

	deps := bootstrap.RouterDeps{
		ServiceName:    "brochure-backend",
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateRPS:        25,
	}

	app, err := auth.InitializeApp(&cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}

	if cfg.Firebase.CredentialsPath == "" {
		// Development: header identities against an emulator or ADC.
		log.Println("FIREBASE_CREDENTIALS_PATH not set, running with dev header identities")
	} else {
		deps.AuthClient, err = auth.NewAuthClient(app)
		if err != nil {
			log.Fatalf("firebase auth: %v", err)
		}
	}

	fsClient, err := bootstrap.OpenFirestore(ctx, app)
	if err != nil {
		log.Fatalf("firestore: %v", err)
	}
	defer fsClient.Close()

	if cfg.Database.DSN != "" {
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pool.Close()
		deps.DB = pool
		deps.Users = users.NewRepo(pool)
	} else {
		log.Println("DB_DSN not set, user mirror disabled")
	}

	var draftRepo *drafts.Repo
	if cfg.Redis.Addr != "" {
		rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
		deps.Redis = rdb
		draftRepo = drafts.NewRepo(rdb)
	} else {
		log.Println("REDIS_ADDR not set, draft recovery disabled")
	}

	sessions := projects.NewManager(projects.NewRepo(fsClient), draftRepo, projects.ManagerOptions{
		AutosaveDelay: cfg.Autosave.Delay,
		IdleTTL:       cfg.Session.IdleTTL,
	})
	sessions.StartJanitor()
	defer sessions.Close()
	deps.Sessions = sessions

	deps.Assets, err = assets.NewService(ctx, cfg.Assets)
	if err != nil {
		log.Fatalf("assets: %v", err)
	}

	r := bootstrap.BuildRouter(deps)

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
