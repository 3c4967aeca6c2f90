package config

import (
	"context"
	"io"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// Closers are released in order during Shutdown, keyed by a display name
	Closers []NamedCloser
}

type NamedCloser struct {
	Name   string
	Closer io.Closer
}

func (b *Bootstrap) AddCloser(name string, closer io.Closer) {
	if closer == nil {
		return
	}
	b.Closers = append(b.Closers, NamedCloser{Name: name, Closer: closer})
}

// Shutdown closes every registered resource, returning the first error after
// attempting all of them.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var firstErr error
	for _, named := range b.Closers {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := named.Closer.Close()
		if err != nil {
			logrus.Errorf("Failed closing %s: %v", named.Name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		logrus.Printf("Successfully closing %s", named.Name)
	}

	if b.Logger != nil {
		b.Logger.Sync()
		logrus.Println("Successfully closing Logger")
	}

	return firstErr
}
