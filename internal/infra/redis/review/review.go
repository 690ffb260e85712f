package infra_redis_review

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis"
	"github.com/goccy/go-json"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
)

// Driver keeps each movie's reviews as a Redis list of JSON documents,
// appended in submission order.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Store(ctx context.Context, review model.Review) error {
	payload, err := json.Marshal(fromDomain(review))
	if err != nil {
		return fmt.Errorf("failed to encode review: %w", err)
	}

	if err := d.client.WithContext(ctx).RPush(d.listKey(review.MovieID), payload).Err(); err != nil {
		return err
	}

	return nil
}

func (d *Driver) LoadByMovieID(ctx context.Context, movieID int64) ([]model.Review, error) {
	vals, err := d.client.WithContext(ctx).LRange(d.listKey(movieID), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.Review{}, nil
		}
		return nil, err
	}

	reviews := make([]model.Review, 0, len(vals))
	for _, v := range vals {
		var dto reviewDTO
		if err := json.Unmarshal([]byte(v), &dto); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, dto.toDomain())
	}

	return reviews, nil
}

func (d *Driver) listKey(movieID int64) string {
	return d.getFullKey("movie:" + strconv.FormatInt(movieID, 10) + ":reviews")
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
