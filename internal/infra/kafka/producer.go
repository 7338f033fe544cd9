package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodgram-go/internal/config"
	"foodgram-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// ThumbnailTask 缩略图生成任务消息体
type ThumbnailTask struct {
	RecipeID   int64  `json:"recipe_id"`
	ObjectName string `json:"object_name"`
	Bucket     string `json:"bucket"`
}

// ThumbnailResult 缩略图生成结果消息体
type ThumbnailResult struct {
	RecipeID     int64  `json:"recipe_id"`
	Status       string `json:"status"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Error        string `json:"error,omitempty"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendThumbnailTask 发送缩略图任务到 Kafka
func SendThumbnailTask(ctx context.Context, topic string, task *ThumbnailTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal thumbnail task: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("recipe-%d", task.RecipeID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send thumbnail task: %w", err)
	}

	logger.Info("Thumbnail task sent",
		zap.Int64("recipe_id", task.RecipeID),
		zap.String("topic", topic),
		zap.String("object", task.ObjectName),
	)

	return nil
}

// SendThumbnailResult 发送缩略图结果到 Kafka
func SendThumbnailResult(ctx context.Context, topic string, result *ThumbnailResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal thumbnail result: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("recipe-%d", result.RecipeID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send thumbnail result: %w", err)
	}
	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
