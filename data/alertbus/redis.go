package alertbus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/KotFed0t/crypto_dashboard/internal/model"
	"github.com/KotFed0t/crypto_dashboard/utils"
	"github.com/redis/go-redis/v9"
)

// Publisher is the subset of redis.Cmdable the bus needs.
type Publisher interface {
	Pipeline() redis.Pipeliner
}

type RedisAlertBus struct {
	redis   Publisher
	channel string
}

func NewRedisAlertBus(redisClient Publisher, channel string) *RedisAlertBus {
	return &RedisAlertBus{redis: redisClient, channel: channel}
}

func (r *RedisAlertBus) PublishAlerts(ctx context.Context, alerts []model.Alert) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Debug("start PublishAlerts", slog.String("rqID", rqID), slog.Int("alerts", len(alerts)))

	payloads, err := EncodeAlerts(alerts)
	if err != nil {
		slog.Error("can't marshall alerts in PublishAlerts", slog.String("rqID", rqID), slog.String("err", err.Error()))
		return errors.New("can't marshall alert")
	}

	pipe := r.redis.Pipeline()
	for _, payload := range payloads {
		pipe.Publish(ctx, r.channel, payload)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		slog.Error("failed on pipe.Exec", slog.String("rqID", rqID), slog.String("err", err.Error()))
		return err
	}

	slog.Debug("PublishAlerts completed", slog.String("rqID", rqID), slog.String("channel", r.channel))

	return nil
}

func EncodeAlerts(alerts []model.Alert) ([][]byte, error) {
	res := make([][]byte, 0, len(alerts))
	for _, alert := range alerts {
		alertJson, err := json.Marshal(alert)
		if err != nil {
			return nil, err
		}
		res = append(res, alertJson)
	}
	return res, nil
}
