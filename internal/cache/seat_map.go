package cache

import (
	"cinema-booking/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SeatMapCache 場次已佔用座位的快取視圖，給座位表查詢用。
// 純粹是讀取加速：訂票的正確性永遠以資料庫的唯一索引為準，
// 快取失效或過期只會讓查詢多打一次 DB。
type SeatMapCache interface {
	// 讀取：回傳 (座位列表, 是否命中)
	GetTakenSeats(ctx context.Context, showtimeID int) ([]model.SeatRef, bool, error)
	// 回填：寫入已佔用座位，帶 TTL
	SetTakenSeats(ctx context.Context, showtimeID int, seats []model.SeatRef, ttl time.Duration) error
	// 失效：訂票成功後清掉該場次的快取
	Invalidate(ctx context.Context, showtimeID int) error
}

type SeatMapCacheImpl struct {
	client *redis.Client
}

func NewSeatMapCache(client *redis.Client) SeatMapCache {
	return &SeatMapCacheImpl{
		client: client,
	}
}

func (c *SeatMapCacheImpl) getKey(showtimeID int) string {
	return fmt.Sprintf("showtime:%d:seatmap", showtimeID)
}

func (c *SeatMapCacheImpl) GetTakenSeats(ctx context.Context, showtimeID int) ([]model.SeatRef, bool, error) {
	val, err := c.client.Get(ctx, c.getKey(showtimeID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var seats []model.SeatRef
	if err := json.Unmarshal([]byte(val), &seats); err != nil {
		return nil, false, fmt.Errorf("unmarshal seat map: %w", err)
	}

	return seats, true, nil
}

func (c *SeatMapCacheImpl) SetTakenSeats(ctx context.Context, showtimeID int, seats []model.SeatRef, ttl time.Duration) error {
	if seats == nil {
		seats = []model.SeatRef{}
	}
	data, err := json.Marshal(seats)
	if err != nil {
		return fmt.Errorf("marshal seat map: %w", err)
	}

	return c.client.Set(ctx, c.getKey(showtimeID), string(data), ttl).Err()
}

func (c *SeatMapCacheImpl) Invalidate(ctx context.Context, showtimeID int) error {
	return c.client.Del(ctx, c.getKey(showtimeID)).Err()
}
