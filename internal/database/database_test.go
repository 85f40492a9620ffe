package database

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestConnectRedis(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client, err := ConnectRedis(context.Background(), m.Addr(), "", 0, time.Second)
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	v, err := m.Get("k")
	require.NoError(t, err)
	require.Equal(t, "v", v)
}

func TestConnectRedisUnreachable(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	addr := m.Addr()
	m.Close()

	_, err = ConnectRedis(context.Background(), addr, "", 0, 200*time.Millisecond)
	require.Error(t, err)
}

func TestConnectMongoInvalidURI(t *testing.T) {
	_, err := ConnectMongo(context.Background(), "not-a-mongo-uri", 200*time.Millisecond)
	require.Error(t, err)
}

func TestConnectMongoWithRetryGivesUp(t *testing.T) {
	_, err := ConnectMongoWithRetry(context.Background(), "not-a-mongo-uri", 100*time.Millisecond, 2, time.Millisecond)
	require.Error(t, err)
	require.Contains(t, err.Error(), "after 2 attempts")
}
