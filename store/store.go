package store

import (
	"context"
	"fmt"
	"time"

	"github.com/bitmark-inc/commerce-survey/schema"
)

const defaultTimeout = 10 * time.Second

const (
	OpAppend  = "append"
	OpRead    = "read"
	OpPing    = "ping"
	OpPrepare = "prepare"
)

// ResponseStore - append-only table of survey rows
type ResponseStore interface {
	Appender
	Reader
	Pinger
	Closer
}

// Appender - add one positional row at the end of the table
type Appender interface {
	Append(ctx context.Context, row []string) error
}

// Reader - read every row keyed by the header, in insertion order
type Reader interface {
	ReadAll(ctx context.Context) ([]schema.Record, error)
}

// Pinger - check the backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Closer - release backend connections
type Closer interface {
	Close()
}

// Preparer - create whatever the backend needs before the first append
type Preparer interface {
	Prepare(ctx context.Context, header []string) error
}

// Error is the single failure category of every backend. The cause is kept
// for logs only.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store %s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

func withDefaultTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, defaultTimeout)
}
