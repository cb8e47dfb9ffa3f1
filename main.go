package main

import (
	"fmt"
	"os"

	"github.com/fotoflo/cloudhunter/app/controllers"
	"github.com/fotoflo/cloudhunter/app/cron"
	"github.com/fotoflo/cloudhunter/app/queries"
	"github.com/fotoflo/cloudhunter/app/routes"
	"github.com/fotoflo/cloudhunter/pkg/database"
	"github.com/fotoflo/cloudhunter/pkg/middleware"
	"github.com/fotoflo/cloudhunter/pkg/session"
	"github.com/fotoflo/cloudhunter/pkg/signer"
	"github.com/fotoflo/cloudhunter/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/godruoyi/go-snowflake"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	r := gin.New()

	// Every dependency is constructed exactly once here and passed down,
	// nothing re-initializes for the process lifetime.
	store, err := database.Connect(os.Getenv("MONGO_URI"), os.Getenv("DB_NAME"), storeRootPath())
	if err != nil {
		utils.Logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer store.Close()

	tokenSigner, err := signer.FromEnv()
	if err != nil {
		utils.Logger.Fatal("Failed to load service account signer", zap.Error(err))
	}

	snowflake.SetMachineID(uint16(utils.Atoi(os.Getenv("MACHINE_ID"))))
	utils.InitValidator()

	sessions := queries.NewSessionQueries(store)
	users := queries.NewUserQueries(store)

	deps := routes.Dependencies{
		Store:    store,
		Sessions: session.NewStoreValidator(sessions, users),
		Tokens:   queries.NewTokenCache(store),
		Accounts: queries.NewAccountQueries(store),
		Sweeper:  cron.NewReaper(sessions),
		Signer:   tokenSigner,
		TokenConfig: controllers.CustomTokenConfig{
			Method: os.Getenv("TOKEN_ENDPOINT_METHOD"),
		},
		Cleanup: controllers.CleanupDefaults{
			Limit:         utils.Atoi(os.Getenv("SESSION_SWEEP_LIMIT")),
			MaxConcurrent: utils.Atoi(os.Getenv("SESSION_SWEEP_MAX_CONCURRENT")),
		},
	}

	utils.PrintAppBanner()

	r.Use(middleware.RequestID())
	// use custom logger
	r.Use(middleware.CustomLogger())

	routes.APIRoute(r, deps)

	if err := r.Run(); err != nil {
		fmt.Printf("Server failed to start: %v\n", err)
	}
}

func storeRootPath() string {
	root := os.Getenv("STORE_ROOT_PATH")
	if root == "" {
		root = "auth_store"
	}
	return root
}
