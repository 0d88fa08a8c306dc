package repository

import (
	"context"

	"wineapi/internal/model"
)

// WineRepository is the record store for wine records. It holds no business
// logic: classification and anonymization happen before a record reaches it.
type WineRepository interface {
	// Insert stores rec, ignoring rec.ID, and returns the id assigned by the store.
	// Ids increase monotonically and are never reused.
	Insert(ctx context.Context, rec *model.WineRecord) (int64, error)

	// List returns every record ordered by id.
	List(ctx context.Context) ([]model.WineRecord, error)

	// Update replaces all fields of the record with the given id. It reports
	// whether a row matched; a missing id is not an error at this layer.
	Update(ctx context.Context, id int64, rec *model.WineRecord) (bool, error)

	// Delete removes the record with the given id and reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
