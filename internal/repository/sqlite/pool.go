package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

// Pool keeps a bounded set of pre-opened connections. Checkout removes the
// connection from the pool, so a connection is never shared by two callers.
// When the pool is drained past its acquire timeout, or a pooled connection
// fails its probe, a fresh connection is opened instead of failing the
// caller.
type Pool struct {
	db      *sql.DB
	conns   chan *sql.Conn
	timeout time.Duration
}

// NewPool pre-opens size connections against db.
func NewPool(db *sql.DB, size int, timeout time.Duration) (*Pool, error) {
	p := &Pool{
		db:      db,
		conns:   make(chan *sql.Conn, size),
		timeout: timeout,
	}

	for i := 0; i < size; i++ {
		conn, err := db.Conn(context.Background())
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("failed to pre-open connection: %w", err)
		}
		p.conns <- conn
	}

	return p, nil
}

// Acquire blocks up to the pool's timeout for a pooled connection. A stale
// pooled connection is closed and replaced with a fresh one; on timeout a
// fresh connection is opened as well.
func (p *Pool) Acquire() (*sql.Conn, error) {
	select {
	case conn := <-p.conns:
		if err := probe(conn); err != nil {
			conn.Close()
			log.Printf("Stale connection retrieved from pool, opening a fresh one: %v", err)
			return p.open()
		}
		return conn, nil
	case <-time.After(p.timeout):
		log.Printf("Connection pool exhausted, opening a fresh connection")
		return p.open()
	}
}

// Release validates the connection and returns it to the pool. Invalid
// connections are closed; if the pool is already full the connection is
// closed rather than leaked.
func (p *Pool) Release(conn *sql.Conn) {
	if conn == nil {
		return
	}
	if err := probe(conn); err != nil {
		conn.Close()
		return
	}
	select {
	case p.conns <- conn:
	default:
		conn.Close()
	}
}

// Close drains and closes every pooled connection.
func (p *Pool) Close() {
	for {
		select {
		case conn := <-p.conns:
			conn.Close()
		default:
			return
		}
	}
}

func (p *Pool) open() (*sql.Conn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}
	return conn, nil
}

func probe(conn *sql.Conn) error {
	_, err := conn.ExecContext(context.Background(), "SELECT 1")
	return err
}
