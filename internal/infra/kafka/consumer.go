package kafka

import (
	"context"
	"encoding/json"
	"time"

	"foodgram-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ResultHandler 处理缩略图结果的回调函数
type ResultHandler func(result *ThumbnailResult) error

// NewReader 创建消费者 Reader
func NewReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})
}

// StartThumbnailResultConsumer 启动缩略图结果消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartThumbnailResultConsumer(ctx context.Context, brokers []string, topic, groupID string, handler ResultHandler) {
	reader := NewReader(brokers, topic, groupID)

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka thumbnail result consumer stopped")
	}()

	logger.Info("Kafka thumbnail result consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var result ThumbnailResult
		if err := json.Unmarshal(msg.Value, &result); err != nil {
			logger.Error("Failed to unmarshal thumbnail result",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		logger.Info("Received thumbnail result",
			zap.Int64("recipe_id", result.RecipeID),
			zap.String("status", result.Status),
		)

		if err := handler(&result); err != nil {
			logger.Error("Failed to handle thumbnail result",
				zap.Int64("recipe_id", result.RecipeID),
				zap.Error(err),
			)
		}
	}
}
