package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"brewpub-assistant/configs"
	httpAdapter "brewpub-assistant/internal/adapters/input/http"
	"brewpub-assistant/internal/adapters/output/llm"
	"brewpub-assistant/internal/adapters/output/memory"
	"brewpub-assistant/internal/adapters/output/postgres"
	"brewpub-assistant/internal/application"
	"brewpub-assistant/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		configs.GetViper().Postgres.Host,
		configs.GetViper().Postgres.Port,
		configs.GetViper().Postgres.Username,
		configs.GetViper().Postgres.Password,
		configs.GetViper().Postgres.DbName,
		configs.GetViper().Postgres.SSLMode,
	)
	if err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapters (repositories)
	orderRepo := postgres.NewOrderRepository(dbConGorm.Postgres)
	menuRepo := postgres.NewMenuRepository(dbConGorm.Postgres)
	faqRepo := postgres.NewFAQRepository(dbConGorm.Postgres)
	// Output adapter (completion client, serves extraction and phrasing)
	llmClient, err := llm.NewClientAdapter(configs.GetViper().LLM)
	if err != nil {
		logrus.Fatalf("Failed to create completion client: %v", err)
	}
	// Output adapter (session store)
	sessionStore := memory.NewMemorySessionStore(
		time.Duration(configs.GetViper().Session.Timeout)*time.Minute,
		configs.GetViper().Session.HistoryCapacity,
	)
	// Application service (use case)
	srv := application.NewAssistantService(llmClient, llmClient, sessionStore, menuRepo, faqRepo, orderRepo,
		application.AssistantConfig{
			SessionTimeout:  sessionStore.GetTimeout(),
			HistoryCapacity: sessionStore.GetHistoryCapacity(),
			CallTimeout:     time.Duration(configs.GetViper().LLM.Timeout) * time.Second,
			BusinessName:    configs.GetViper().Assistant.BusinessName,
			ContactPhone:    configs.GetViper().Assistant.ContactPhone,
			SummaryWords:    configs.GetViper().Assistant.SummaryWords,
		})
	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(srv, dbConGorm.Postgres)

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)

	magnolia := app.Group("/v1/api")
	{
		magnolia.Post("/assistant/turn", hdl.HandleTurn)
		magnolia.Delete("/assistant/session/:id", hdl.ResetSession)
		magnolia.Get("/menu", hdl.GetMenu)
		magnolia.Get("/orders/:id", hdl.GetOrder)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
