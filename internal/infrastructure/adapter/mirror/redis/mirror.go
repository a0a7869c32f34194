package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
	goredis "github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "docqa"
	creditsField     = "credits"
)

// KEYS[1] account hash. ARGV[1] delta, ARGV[2] ttl in milliseconds.
var adjustBalanceScript = goredis.NewScript(`
if redis.call('HEXISTS', KEYS[1], 'credits') == 0 then
  return 0
end
redis.call('HINCRBY', KEYS[1], 'credits', ARGV[1])
if tonumber(ARGV[2]) > 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return 1
`)

// KEYS[1] payment ID set, KEYS[2] record hash, KEYS[3] loaded marker.
// ARGV[1] score, ARGV[2] payment ID, ARGV[3] record, ARGV[4] ttl in milliseconds.
var addPaymentScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[3]) == 0 then
  return 0
end
if redis.call('HSETNX', KEYS[2], ARGV[2], ARGV[3]) == 0 then
  return 0
end
redis.call('ZADD', KEYS[1], ARGV[1], ARGV[2])
if tonumber(ARGV[4]) > 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[4])
  redis.call('PEXPIRE', KEYS[2], ARGV[4])
  redis.call('PEXPIRE', KEYS[3], ARGV[4])
end
return 1
`)

// paymentRecord is the JSON value stored per payment ID in the record hash
type paymentRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Mirror keeps account views in redis. Balances live in a hash per user.
// Payment IDs live in a sorted set scored by creation time, and their records
// in a hash keyed by payment ID.
type Mirror struct {
	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ service.Mirror = (*Mirror)(nil)

// NewMirror creates a redis mirror; ttl 0 keeps entries until invalidated
func NewMirror(client goredis.UniversalClient, keyPrefix string, ttl time.Duration) *Mirror {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &Mirror{client: client, prefix: keyPrefix, ttl: ttl}
}

func (m *Mirror) accountKey(userID string) string {
	return fmt.Sprintf("%s:account:%s", m.prefix, userID)
}

func (m *Mirror) paymentsKey(userID string) string {
	return fmt.Sprintf("%s:payments:%s", m.prefix, userID)
}

func (m *Mirror) paymentRecordsKey(userID string) string {
	return fmt.Sprintf("%s:payments:%s:records", m.prefix, userID)
}

// paymentsLoadedKey marks a mirrored payment list, which may be empty
func (m *Mirror) paymentsLoadedKey(userID string) string {
	return fmt.Sprintf("%s:payments:%s:loaded", m.prefix, userID)
}

func (m *Mirror) expire(ctx context.Context, pipe goredis.Pipeliner, keys ...string) {
	if m.ttl <= 0 {
		return
	}
	for _, key := range keys {
		pipe.Expire(ctx, key, m.ttl)
	}
}

// SetBalance replaces the mirrored balance
func (m *Mirror) SetBalance(ctx context.Context, userID string, credits int64) error {
	key := m.accountKey(userID)
	_, err := m.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key, creditsField, credits)
		m.expire(ctx, pipe, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set mirrored balance: %w", err)
	}
	return nil
}

// AdjustBalance applies delta with HINCRBY when a balance is mirrored
func (m *Mirror) AdjustBalance(ctx context.Context, userID string, delta int64) error {
	err := adjustBalanceScript.Run(ctx, m.client,
		[]string{m.accountKey(userID)},
		delta, m.ttl.Milliseconds(),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to adjust mirrored balance: %w", err)
	}
	return nil
}

// Balance returns the mirrored balance
func (m *Mirror) Balance(ctx context.Context, userID string) (int64, bool, error) {
	credits, err := m.client.HGet(ctx, m.accountKey(userID), creditsField).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read mirrored balance: %w", err)
	}
	return credits, true, nil
}

// SetPayments replaces the mirrored payment list
func (m *Mirror) SetPayments(ctx context.Context, userID string, payments []entity.Payment) error {
	members := make([]goredis.Z, 0, len(payments))
	records := make(map[string]any, len(payments))
	for _, p := range payments {
		if _, seen := records[p.ID]; seen {
			continue
		}
		record, err := encodePayment(p)
		if err != nil {
			return err
		}
		members = append(members, goredis.Z{Score: score(p), Member: p.ID})
		records[p.ID] = record
	}

	key := m.paymentsKey(userID)
	recordsKey := m.paymentRecordsKey(userID)
	loaded := m.paymentsLoadedKey(userID)
	_, err := m.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, key, recordsKey)
		if len(members) > 0 {
			pipe.ZAdd(ctx, key, members...)
			pipe.HSet(ctx, recordsKey, records)
		}
		pipe.Set(ctx, loaded, 1, m.ttl)
		m.expire(ctx, pipe, key, recordsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set mirrored payments: %w", err)
	}
	return nil
}

// AddPayment inserts a payment when a list is mirrored and its ID is not yet listed
func (m *Mirror) AddPayment(ctx context.Context, userID string, payment entity.Payment) error {
	record, err := encodePayment(payment)
	if err != nil {
		return err
	}

	err = addPaymentScript.Run(ctx, m.client,
		[]string{m.paymentsKey(userID), m.paymentRecordsKey(userID), m.paymentsLoadedKey(userID)},
		score(payment), payment.ID, record, m.ttl.Milliseconds(),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to add mirrored payment: %w", err)
	}
	return nil
}

// Payments returns the mirrored payments newest first
func (m *Mirror) Payments(ctx context.Context, userID string) ([]entity.Payment, bool, error) {
	var (
		loaded  *goredis.IntCmd
		ids     *goredis.StringSliceCmd
		records *goredis.MapStringStringCmd
	)
	_, err := m.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		loaded = pipe.Exists(ctx, m.paymentsLoadedKey(userID))
		ids = pipe.ZRevRange(ctx, m.paymentsKey(userID), 0, -1)
		records = pipe.HGetAll(ctx, m.paymentRecordsKey(userID))
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read mirrored payments: %w", err)
	}
	if loaded.Val() == 0 {
		return nil, false, nil
	}

	byID := records.Val()
	payments := make([]entity.Payment, 0, len(ids.Val()))
	for _, id := range ids.Val() {
		record, ok := byID[id]
		if !ok {
			// a partially expired view is a miss
			return nil, false, nil
		}
		p, err := decodePayment(record)
		if err != nil {
			return nil, false, err
		}
		payments = append(payments, p)
	}
	return payments, true, nil
}

// Invalidate deletes every key held for the user
func (m *Mirror) Invalidate(ctx context.Context, userID string) error {
	err := m.client.Del(ctx,
		m.accountKey(userID),
		m.paymentsKey(userID),
		m.paymentRecordsKey(userID),
		m.paymentsLoadedKey(userID),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to invalidate mirror: %w", err)
	}
	return nil
}

func score(p entity.Payment) float64 {
	return float64(p.CreatedAt.UnixNano())
}

func encodePayment(p entity.Payment) (string, error) {
	data, err := json.Marshal(paymentRecord{
		ID:        p.ID,
		UserID:    p.UserID,
		Amount:    p.Amount,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt.UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode mirrored payment: %w", err)
	}
	return string(data), nil
}

func decodePayment(member string) (entity.Payment, error) {
	var record paymentRecord
	if err := json.Unmarshal([]byte(member), &record); err != nil {
		return entity.Payment{}, fmt.Errorf("failed to decode mirrored payment: %w", err)
	}
	return entity.Payment{
		ID:        record.ID,
		UserID:    record.UserID,
		Amount:    record.Amount,
		Status:    entity.PaymentStatus(record.Status),
		CreatedAt: record.CreatedAt,
	}, nil
}
