package store

import (
	"github.com/MKhiriev/farm-ledger/internal/config"
	"github.com/MKhiriev/farm-ledger/internal/logger"
)

// Storages bundles every persistence-layer dependency the service layer
// needs: the four repositories over PostgreSQL and the object store adapter.
type Storages struct {
	UserRepository    UserRepository
	SaleRepository    SaleRepository
	NoteRepository    NoteRepository
	ExpenseRepository ExpenseRepository
	BlobStore         BlobStore
}

// NewStorages wires all repositories to the shared database connection and
// attaches the given blob store.
func NewStorages(db *DB, blobStore BlobStore, cfg config.Storage, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		SaleRepository:    NewSaleRepository(db, logger),
		NoteRepository:    NewNoteRepository(db, cfg.DB, logger),
		ExpenseRepository: NewExpenseRepository(db, logger),
		BlobStore:         blobStore,
	}
}
