// Package storage defines the persistence interface and its implementations.
package storage

import (
	"context"
	"errors"

	"quicksave/internal/model"
)

// ErrNotFound is returned by GetSave when no save has the given ID.
var ErrNotFound = errors.New("save not found")

// ErrEmptyURL is returned by CreateSave when the URL is blank. It is
// raised before any database interaction.
var ErrEmptyURL = errors.New("url is required")

// Storage is the interface for all persistence operations.
type Storage interface {
	CreateSave(ctx context.Context, s *model.Save) error
	GetSave(ctx context.Context, id int64) (*model.Save, error)
	ListSaves(ctx context.Context) ([]model.Save, error)
	SearchSaves(ctx context.Context, query string) ([]model.Save, error)
	ListByType(ctx context.Context, t string) ([]model.Save, error)
	DeleteSave(ctx context.Context, id int64) error
	CountSaves(ctx context.Context) (int, error)
	GetStats(ctx context.Context) (model.Stats, error)

	Close() error
}
