package utils

import "github.com/go-redis/redis/v8"

// Глобальный клиент Redis (чёрный список токенов, rate limit отзывов).
// nil допустим — соответствующие проверки просто пропускаются.
var redisClient *redis.Client

func SetRedis(client *redis.Client) {
	redisClient = client
}

func GetRedis() *redis.Client {
	return redisClient
}
