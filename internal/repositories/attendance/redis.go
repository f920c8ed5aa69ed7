package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/seojun-park/injeungbot/internal/models"
)

const (
	// Key prefixes for Redis
	recordKeyPrefix  = "attendance:record:"
	messageKeyPrefix = "attendance:message:"
)

// ErrRecordNotFound is returned when no record exists for a week
var ErrRecordNotFound = errors.New("attendance record not found")

// ErrMessageRefNotFound is returned when no summary message has been posted for a week
var ErrMessageRefNotFound = errors.New("challenge message reference not found")

// Config holds configuration for the Redis attendance repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed attendance repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetRecord retrieves a week's attendance record
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.AttendanceRecord, error) {
	if input == nil || input.WeekID == "" {
		return nil, errors.New("week ID cannot be empty")
	}

	data, err := r.client.Get(ctx, recordKeyPrefix+input.WeekID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	var record models.AttendanceRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &record, nil
}

// SaveRecord persists a week's attendance record
func (r *redisRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("record cannot be nil")
	}

	if input.Record.WeekID == "" {
		return errors.New("record week ID cannot be empty")
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := r.client.Set(ctx, recordKeyPrefix+input.Record.WeekID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// GetMessageRef retrieves a week's summary-message reference
func (r *redisRepository) GetMessageRef(ctx context.Context, input *GetMessageRefInput) (*models.ChallengeMessage, error) {
	if input == nil || input.WeekID == "" {
		return nil, errors.New("week ID cannot be empty")
	}

	data, err := r.client.Get(ctx, messageKeyPrefix+input.WeekID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMessageRefNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message reference: %w", err)
	}

	var message models.ChallengeMessage
	if err := json.Unmarshal([]byte(data), &message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message reference: %w", err)
	}

	return &message, nil
}

// SaveMessageRef persists a week's summary-message reference
func (r *redisRepository) SaveMessageRef(ctx context.Context, input *SaveMessageRefInput) error {
	if input == nil || input.Message == nil {
		return errors.New("message cannot be nil")
	}

	if input.Message.WeekID == "" {
		return errors.New("message week ID cannot be empty")
	}

	data, err := json.Marshal(input.Message)
	if err != nil {
		return fmt.Errorf("failed to marshal message reference: %w", err)
	}

	if err := r.client.Set(ctx, messageKeyPrefix+input.Message.WeekID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save message reference: %w", err)
	}

	return nil
}

// DeleteWeek removes a week's record and message reference
func (r *redisRepository) DeleteWeek(ctx context.Context, input *DeleteWeekInput) (*DeleteWeekOutput, error) {
	if input == nil || input.WeekID == "" {
		return nil, errors.New("week ID cannot be empty")
	}

	deleted, err := r.client.Del(ctx, recordKeyPrefix+input.WeekID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to delete record: %w", err)
	}

	if err := r.client.Del(ctx, messageKeyPrefix+input.WeekID).Err(); err != nil {
		return nil, fmt.Errorf("failed to delete message reference: %w", err)
	}

	return &DeleteWeekOutput{
		DeletedCount: deleted,
	}, nil
}
