package service

import (
	"github.com/MKhiriev/farm-ledger/internal/config"
	"github.com/MKhiriev/farm-ledger/internal/logger"
	"github.com/MKhiriev/farm-ledger/internal/store"
)

type Services struct {
	AuthService    AuthService
	SaleService    SaleService
	NoteService    NoteService
	ExpenseService ExpenseService
	BlobService    BlobService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		SaleService:    NewSaleService(storages.SaleRepository, storages.BlobStore, logger),
		NoteService:    NewNoteService(storages.NoteRepository, logger),
		ExpenseService: NewExpenseService(storages.ExpenseRepository, logger),
		BlobService:    NewBlobService(storages.BlobStore, logger),
	}
}
