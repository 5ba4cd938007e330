package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreGetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db, "test")

	mock.ExpectGet("test:entry:k").SetVal(`[1,2]`)

	val, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1,2]`, string(val))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreGetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db, "test")

	mock.ExpectGet("test:entry:k").RedisNil()

	val, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestRedisStoreGetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db, "test")

	mock.ExpectGet("test:entry:k").SetErr(errors.New("connection refused"))

	_, ok, err := s.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisStoreSetIndexesTags(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db, "test")
	value := []byte(`{"ok":true}`)

	mock.ExpectTxPipeline()
	mock.ExpectSet("test:entry:k", value, time.Minute).SetVal("OK")
	mock.ExpectSAdd("test:tag:standings-272", "test:entry:k").SetVal(1)
	mock.ExpectExpire("test:tag:standings-272", defaultTagTTL).SetVal(true)
	mock.ExpectTxPipelineExec()

	err := s.Set(context.Background(), "k", value, time.Minute, "standings-272")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreInvalidateTag(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db, "test")

	mock.ExpectSMembers("test:tag:teams-272").SetVal([]string{"test:entry:a", "test:entry:b"})
	mock.ExpectDel("test:entry:a", "test:entry:b").SetVal(2)
	mock.ExpectDel("test:tag:teams-272").SetVal(1)
	mock.ExpectPublish("test:revalidate", "teams-272").SetVal(0)

	removed, err := s.InvalidateTag(context.Background(), "teams-272")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreInvalidateEmptyTag(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db, "")

	mock.ExpectSMembers("superliga:tag:news").SetVal([]string{})
	mock.ExpectDel("superliga:tag:news").SetVal(0)
	mock.ExpectPublish("superliga:revalidate", "news").SetVal(0)

	removed, err := s.InvalidateTag(context.Background(), "news")
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreInvalidateSurfacesErrors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db, "test")

	mock.ExpectSMembers("test:tag:news").SetErr(errors.New("timeout"))

	_, err := s.InvalidateTag(context.Background(), "news")
	assert.ErrorContains(t, err, "redis smembers")
}
