package main

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Sh4dowyy/podoloog-sub000/config"
	"github.com/Sh4dowyy/podoloog-sub000/controllers"
	"github.com/Sh4dowyy/podoloog-sub000/database"
	"github.com/Sh4dowyy/podoloog-sub000/routes"
	"github.com/Sh4dowyy/podoloog-sub000/services"
	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Printf("failed to init file loggers: %v", err)
	}

	// Подключение к PostgreSQL. Отсутствующая конфигурация не валит сервис:
	// контентные ручки в этом режиме отвечают 503 "service unavailable".
	if cfg.HasDB() {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to connect to postgres, running degraded: %v", err)
		} else {
			log.Println("Connected to PostgreSQL")
			utils.SetDB(db)

			if err := database.Migrate(db); err != nil {
				log.Fatalf("failed to migrate: %v", err)
			}
			log.Println("Migration complete")

			if err := database.SeedAdmin(db, cfg); err != nil {
				log.Fatalf("failed to seed admin: %v", err)
			}
			if err := database.SeedValues(db); err != nil {
				log.Fatalf("failed to seed values: %v", err)
			}
			log.Println("Seeding complete")

			// ночная чистка осиротевших загрузок
			services.StartUploadSweepCron(db)
		}
	} else {
		log.Println("Database is not configured, running degraded")
	}

	// Подключение к Redis (чёрный список токенов, rate limit отзывов).
	// Без Redis эти проверки просто не применяются.
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("failed to connect to redis, continuing without it: %v", err)
		} else {
			utils.SetRedis(rdb)
			log.Println("Connected to Redis")
		}
	}

	controllers.InitGoogleOAuth()

	r := routes.SetupRouter(cfg)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
