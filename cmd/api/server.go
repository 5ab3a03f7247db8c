package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/cmwalshWVU/prompt-pad-api/internal/api/handlers/auth"
	"github.com/cmwalshWVU/prompt-pad-api/internal/api/handlers/groups"
	"github.com/cmwalshWVU/prompt-pad-api/internal/api/handlers/openai"
	"github.com/cmwalshWVU/prompt-pad-api/internal/api/handlers/prompts"
	mw "github.com/cmwalshWVU/prompt-pad-api/internal/api/middlewares"
	"github.com/cmwalshWVU/prompt-pad-api/internal/api/routers"
	"github.com/cmwalshWVU/prompt-pad-api/internal/config"
	"github.com/cmwalshWVU/prompt-pad-api/internal/repositories/supabase"
	"github.com/cmwalshWVU/prompt-pad-api/internal/services"
	"github.com/cmwalshWVU/prompt-pad-api/internal/token"
	cronjobs "github.com/cmwalshWVU/prompt-pad-api/pkg/cron"
	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.Logger.Fatal("configuration failed: ", err)
	}

	verifier, err := token.NewVerifier(cfg)
	if err != nil {
		utils.Logger.Fatal("token verifier setup failed: ", err)
	}

	db := supabase.New(cfg)
	openaiClient := services.NewOpenAIClient(cfg)
	mailer := &utils.Mailer{
		From: cfg.SMTPEmail,
		Pass: cfg.SMTPPass,
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
	}

	router := routers.MainRouter(routers.Handlers{
		Auth:    auth.NewHandler(db),
		Groups:  groups.NewHandler(db, mailer),
		Prompts: prompts.NewHandler(db),
		OpenAI:  openai.NewHandler(openaiClient),
	})

	jwtMiddleware := mw.MiddlewaresExcludePaths(mw.JWTMiddleware(verifier), "/auth/signin", "/auth/signup", "/health")

	secureMux := mw.Cors(jwtMiddleware(mw.SecurityHeaders(router)))

	c := cronjobs.StartCronJob(db)
	defer c.Stop()

	server := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: secureMux,
	}

	fmt.Println("Server is running on port", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalln("Error starting the server", err)
	}
}
