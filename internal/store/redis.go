package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on a Redis backend. Documents are JSON values
// at doc:<collection>:<id>, with membership tracked in a per-collection set.
// Query and StreamAll load the member set and filter in process, matching
// the single-predicate limitation of the Store contract.
type RedisStore struct {
	client *redis.Client
	// uniqueFields maps a collection to the field claimed via SETNX on
	// insert and released on delete.
	uniqueFields map[string]string
}

// RedisOpt configures a RedisStore.
type RedisOpt func(*RedisStore)

// WithUniqueField registers a uniqueness-claimed field for a collection.
func WithUniqueField(collection, field string) RedisOpt {
	return func(s *RedisStore) { s.uniqueFields[collection] = field }
}

// NewRedisStore creates a Store backed by the given Redis client.
func NewRedisStore(client *redis.Client, opts ...RedisOpt) *RedisStore {
	s := &RedisStore{
		client:       client,
		uniqueFields: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func docKey(collection, id string) string {
	return fmt.Sprintf("doc:%s:%s", collection, id)
}

func collKey(collection string) string {
	return fmt.Sprintf("coll:%s", collection)
}

func claimKey(collection, field string, value any) string {
	return fmt.Sprintf("unique:%s:%s:%v", collection, field, value)
}

func (s *RedisStore) Get(ctx context.Context, collection, id string) (Document, error) {
	val, err := s.client.Get(ctx, docKey(collection, id)).Result()
	if err == redis.Nil {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, err
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(val), &fields); err != nil {
		return Document{}, err
	}
	return Document{ID: id, Fields: fields}, nil
}

func (s *RedisStore) Put(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.NewString()
	if err := s.write(ctx, collection, id, fields); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) PutUnique(ctx context.Context, collection, uniqueField string, fields map[string]any) (string, error) {
	id := uuid.NewString()

	claimed, err := s.client.SetNX(ctx, claimKey(collection, uniqueField, fields[uniqueField]), id, 0).Result()
	if err != nil {
		return "", err
	}
	if !claimed {
		return "", ErrConflict
	}

	if err := s.write(ctx, collection, id, fields); err != nil {
		s.client.Del(ctx, claimKey(collection, uniqueField, fields[uniqueField]))
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Set(ctx context.Context, collection, id string, fields map[string]any, ifAbsent bool) error {
	if ifAbsent {
		data, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		stored, err := s.client.SetNX(ctx, docKey(collection, id), data, 0).Result()
		if err != nil {
			return err
		}
		if !stored {
			return ErrConflict
		}
		return s.client.SAdd(ctx, collKey(collection), id).Err()
	}
	return s.write(ctx, collection, id, fields)
}

func (s *RedisStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	doc, err := s.Get(ctx, collection, id)
	if err != nil {
		return err
	}
	for k, v := range fields {
		doc.Fields[k] = v
	}
	return s.write(ctx, collection, id, doc.Fields)
}

func (s *RedisStore) Delete(ctx context.Context, collection, id string) error {
	doc, err := s.Get(ctx, collection, id)
	if err != nil {
		return err
	}

	if field, ok := s.uniqueFields[collection]; ok {
		if err := s.client.Del(ctx, claimKey(collection, field, doc.Fields[field])).Err(); err != nil {
			return err
		}
	}

	if err := s.client.Del(ctx, docKey(collection, id)).Err(); err != nil {
		return err
	}
	return s.client.SRem(ctx, collKey(collection), id).Err()
}

func (s *RedisStore) Query(ctx context.Context, collection string, eq *Filter, orderDesc string) ([]Document, error) {
	ids, err := s.client.SMembers(ctx, collKey(collection)).Result()
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		doc, err := s.Get(ctx, collection, id)
		if err == ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		if eq != nil && fmt.Sprint(doc.Fields[eq.Field]) != fmt.Sprint(eq.Value) {
			continue
		}
		docs = append(docs, doc)
	}

	SortDocs(docs, orderDesc)
	return docs, nil
}

func (s *RedisStore) StreamAll(ctx context.Context, collection string) ([]Document, error) {
	return s.Query(ctx, collection, nil, "")
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) write(ctx context.Context, collection, id string, fields map[string]any) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, docKey(collection, id), data, 0).Err(); err != nil {
		return err
	}
	return s.client.SAdd(ctx, collKey(collection), id).Err()
}
