package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	addressapp "github.com/muhammadheryan/contact-management/application/address"
	authapp "github.com/muhammadheryan/contact-management/application/auth"
	contactapp "github.com/muhammadheryan/contact-management/application/contact"
	userapp "github.com/muhammadheryan/contact-management/application/user"
	"github.com/muhammadheryan/contact-management/cmd/config"
	redisclient "github.com/muhammadheryan/contact-management/cmd/redis"
	addressRepo "github.com/muhammadheryan/contact-management/repository/address"
	contactRepo "github.com/muhammadheryan/contact-management/repository/contact"
	redisRepo "github.com/muhammadheryan/contact-management/repository/redis"
	txRepo "github.com/muhammadheryan/contact-management/repository/tx"
	userRepo "github.com/muhammadheryan/contact-management/repository/user"
	"github.com/muhammadheryan/contact-management/thirdparty/rabbitmq"
	"github.com/muhammadheryan/contact-management/transport"
	"github.com/muhammadheryan/contact-management/utils/logger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client (optional token cache)
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize audit publisher when messaging is enabled
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ContactRepo := contactRepo.NewContactRepository(db)
	AddressRepo := addressRepo.NewAddressRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, RedisRepo)
	UserApp := userapp.NewUserApp(UserRepo)
	ContactApp := contactapp.NewContactApp(TxRepo, ContactRepo, AddressRepo, publisher)
	AddressApp := addressapp.NewAddressApp(TxRepo, ContactRepo, AddressRepo, publisher)

	httpTransport := transport.NewTransport(AuthApp, UserApp, ContactApp, AddressApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
