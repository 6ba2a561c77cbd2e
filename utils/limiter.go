package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Лимиты на публичную отправку отзывов с одного IP.
const (
	reviewMinuteLimit = 1
	reviewHourLimit   = 5
)

// CanSubmitReview проверяет лимиты отправки отзыва для IP.
// Без Redis (деградированный режим) лимит не применяется.
func CanSubmitReview(rdb *redis.Client, ip string) (bool, string) {
	if rdb == nil {
		return true, ""
	}
	ctx := context.Background()
	minuteKey := fmt.Sprintf("review_minute_%s", ip)
	hourKey := fmt.Sprintf("review_hour_%s", ip)
	if rdb.Exists(ctx, minuteKey).Val() >= reviewMinuteLimit {
		return false, "Отзыв можно отправлять не чаще 1 раза в 60 секунд"
	}
	cnt, _ := rdb.Get(ctx, hourKey).Int()
	if cnt >= reviewHourLimit {
		return false, "Слишком много отзывов, попробуйте позже"
	}
	return true, ""
}

func MarkReviewSubmitted(rdb *redis.Client, ip string) {
	if rdb == nil {
		return
	}
	ctx := context.Background()
	rdb.Set(ctx, fmt.Sprintf("review_minute_%s", ip), 1, 60*time.Second)
	hourKey := fmt.Sprintf("review_hour_%s", ip)
	rdb.Incr(ctx, hourKey)
	rdb.Expire(ctx, hourKey, time.Hour)
}
