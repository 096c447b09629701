package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolAcquireRelease(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := New(dsn, 2, 100*time.Millisecond)
	require.NoError(t, err)
	defer db.Close()

	conn, err := db.Acquire()
	require.NoError(t, err)
	require.NotNil(t, conn)

	_, err = conn.ExecContext(context.Background(), "SELECT 1")
	assert.NoError(t, err)

	db.Release(conn)

	conn, err = db.Acquire()
	require.NoError(t, err)
	assert.NotNil(t, conn)
	db.Release(conn)
}

func TestPoolExhaustionOpensFreshConnection(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := New(dsn, 1, 50*time.Millisecond)
	require.NoError(t, err)
	defer db.Close()

	first, err := db.Acquire()
	require.NoError(t, err)

	// pool is empty now; this waits out the timeout and opens a fresh handle
	second, err := db.Acquire()
	require.NoError(t, err)
	require.NotNil(t, second)

	_, err = second.ExecContext(context.Background(), "SELECT 1")
	assert.NoError(t, err)

	db.Release(first)
	db.Release(second)
}

func TestPoolReleaseBeyondCapacity(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := New(dsn, 1, 50*time.Millisecond)
	require.NoError(t, err)
	defer db.Close()

	first, err := db.Acquire()
	require.NoError(t, err)
	second, err := db.Acquire()
	require.NoError(t, err)

	db.Release(first)
	db.Release(second)

	conn, err := db.Acquire()
	require.NoError(t, err)
	_, err = conn.ExecContext(context.Background(), "SELECT 1")
	assert.NoError(t, err)
	db.Release(conn)
}
