// Package store provides the generic CRUD store backing every association table.
//
// A Store is instantiated once per model. Every operation runs in its own
// transaction; nothing spans more than one call.
package store

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned when no row has the requested id.
	ErrNotFound = errors.New("entity not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrIDNil is returned by Patch when the id to merge into is missing.
	ErrIDNil = errors.New("entity id is nil")
)

// Model is implemented by pointers to the gorm models a Store can manage.
type Model[T any] interface {
	*T
	GetID() *int64
	SetID(id *int64)
	Merge(patch *T)
}

// Order sorts FindAll by one column.
type Order struct {
	Column string
	Desc   bool
}

// Store is a CRUD store for one model.
type Store[T any, P Model[T]] struct {
	db     *gorm.DB
	entity string
}

// New returns a store for T. entity names the model in errors and metrics.
func New[T any, P Model[T]](db *gorm.DB, entity string) *Store[T, P] {
	return &Store[T, P]{db: db, entity: entity}
}

// Entity returns the name the store was created with.
func (s *Store[T, P]) Entity() string {
	return s.entity
}

// Save inserts e when it has no id, which assigns one, and overwrites the row with e's id otherwise.
func (s *Store[T, P]) Save(ctx context.Context, e P) (P, error) {
	err := s.run(ctx, "save", func(tx *gorm.DB) error {
		return tx.Save(e).Error
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

// ExistsByID reports whether a row with id exists.
func (s *Store[T, P]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64

	err := s.run(ctx, "exists", func(tx *gorm.DB) error {
		return tx.Model(P(new(T))).Where("id = ?", id).Count(&count).Error
	})

	return count > 0, err
}

// FindByID returns the row with id or ErrNotFound.
func (s *Store[T, P]) FindByID(ctx context.Context, id int64) (P, error) {
	e := P(new(T))

	err := s.run(ctx, "find", func(tx *gorm.DB) error {
		return first(tx, e, id)
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

// FindAll returns every row, sorted by orders or by id when none are given.
func (s *Store[T, P]) FindAll(ctx context.Context, orders ...Order) ([]T, error) {
	rows := make([]T, 0)

	err := s.run(ctx, "find_all", func(tx *gorm.DB) error {
		if len(orders) == 0 {
			orders = []Order{{Column: "id"}}
		}

		for _, o := range orders {
			tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
		}

		return tx.Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// DeleteByID removes the row with id. Deleting a missing id is not an error.
func (s *Store[T, P]) DeleteByID(ctx context.Context, id int64) error {
	return s.run(ctx, "delete", func(tx *gorm.DB) error {
		return tx.Delete(P(new(T)), id).Error
	})
}

// Count returns the number of rows.
func (s *Store[T, P]) Count(ctx context.Context) (int64, error) {
	var count int64

	err := s.run(ctx, "count", func(tx *gorm.DB) error {
		return tx.Model(P(new(T))).Count(&count).Error
	})

	return count, err
}

// Patch loads the row with patch's id, merges the non-nil fields of patch into it and saves it.
// Load, merge and save share one transaction. ErrNotFound is returned when the row is missing.
func (s *Store[T, P]) Patch(ctx context.Context, patch P) (P, error) {
	id := patch.GetID()
	if id == nil {
		return nil, ErrIDNil
	}

	existing := P(new(T))

	err := s.run(ctx, "patch", func(tx *gorm.DB) error {
		if err := first(tx, existing, *id); err != nil {
			return err
		}

		existing.Merge((*T)(patch))

		return tx.Save(existing).Error
	})
	if err != nil {
		return nil, err
	}

	return existing, nil
}

func first(tx *gorm.DB, dest any, id int64) error {
	err := tx.Where("id = ?", id).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return err
}

// run executes fn in a transaction and counts the outcome.
func (s *Store[T, P]) run(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	if s.db == nil {
		return ErrDBNil
	}

	err := s.db.WithContext(ctx).Transaction(fn)

	switch {
	case err == nil:
		operations.WithLabelValues(s.entity, op, resultOK).Inc()
	case errors.Is(err, ErrNotFound):
		operations.WithLabelValues(s.entity, op, resultNotFound).Inc()
		return err
	default:
		operations.WithLabelValues(s.entity, op, resultError).Inc()
		return pkgerrors.Wrapf(err, "%s %s", op, s.entity)
	}

	return nil
}
