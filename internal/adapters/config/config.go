package config

import (
	"fmt"
	"log"
	"os"
	"time"

	postgresStorage "github.com/Badsnus/qrage/internal/adapters/database/postgres"
	"github.com/Badsnus/qrage/internal/adapters/database/redis"
	"github.com/Badsnus/qrage/internal/domain/utils/location"
	"github.com/Badsnus/qrage/pkg/logger"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type Config struct {
	Database   *gorm.DB
	Redis      *redis.Client
	SMTPDialer *gomail.Dialer
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if err := os.Setenv("BOT_TOKEN", viper.GetString("bot.token")); err != nil {
		panic(err)
	}
}

func setDefaults() {
	viper.SetDefault("bot.locale", "en")
	viper.SetDefault("settings.timezone", "UTC")
	viper.SetDefault("settings.logging.locale", "en")
	viper.SetDefault("settings.qr.size", 400)
	viper.SetDefault("settings.qr.history-limit", 20)
	viper.SetDefault("settings.qr.session-ttl", "24h")
	viper.SetDefault("settings.qr.history-retention", "720h")
	viper.SetDefault("settings.qr.cleanup-interval", "1h")
	viper.SetDefault("service.redis.port", "6379")
	viper.SetDefault("service.database.port", 5432)
	viper.SetDefault("service.smtp.port", 587)
}

func Get() *Config {
	initConfig()

	loc, err := location.Load(viper.GetString("settings.timezone"))
	if err != nil {
		panic(err)
	}

	err = logger.Init(logger.Config{
		Debug:        viper.GetBool("settings.debug"),
		TimeLocation: loc,
		LogToFile:    viper.GetBool("settings.log-to-file"),
		LogsDir:      viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	var gormConfig *gorm.Config
	if viper.GetBool("settings.debug") {
		newLogger := gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold: time.Second,
				LogLevel:      gormLogger.Info,
				Colorful:      true,
			},
		)
		gormConfig = &gorm.Config{
			Logger: newLogger,
		}
	} else {
		gormConfig = &gorm.Config{}
	}

	dsn := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=disable TimeZone=%s",
		viper.GetString("service.database.user"),
		viper.GetString("service.database.password"),
		viper.GetString("service.database.name"),
		viper.GetString("service.database.host"),
		viper.GetInt("service.database.port"),
		loc.String(),
	)

	database, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		logger.Log.Panicf("Failed to connect to the database: %v", err)
	} else {
		logger.Log.Info("Successfully connected to the database")
	}

	errMigrate := database.AutoMigrate(postgresStorage.Migrations...)
	if errMigrate != nil {
		logger.Log.Panicf("Failed to migrate database: %v", errMigrate)
	}

	redisClient, err := redis.New(redis.Options{
		Host:       viper.GetString("service.redis.host"),
		Port:       viper.GetString("service.redis.port"),
		Password:   viper.GetString("service.redis.password"),
		SessionTTL: viper.GetDuration("settings.qr.session-ttl"),
	})
	if err != nil {
		logger.Log.Panicf("Failed to connect to redis: %v", err)
	} else {
		logger.Log.Info("Successfully connected to redis")
	}

	var dialer *gomail.Dialer
	if host := viper.GetString("service.smtp.host"); host != "" {
		dialer = gomail.NewDialer(
			host,
			viper.GetInt("service.smtp.port"),
			viper.GetString("service.smtp.username"),
			viper.GetString("service.smtp.password"),
		)
	} else {
		logger.Log.Info("SMTP is not configured, e-mail export is disabled")
	}

	return &Config{
		Database:   database,
		Redis:      redisClient,
		SMTPDialer: dialer,
	}
}
