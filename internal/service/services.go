package service

import (
	"github.com/MKhiriev/go-cyr-records/internal/adapter"
	"github.com/MKhiriev/go-cyr-records/internal/logger"
	"github.com/MKhiriev/go-cyr-records/internal/session"
	"github.com/MKhiriev/go-cyr-records/internal/store"
)

type Services struct {
	RecordService RecordService
	AuthService   AuthService
	FlashService  FlashService
}

func NewServices(recordStore adapter.RecordStore, sess *session.Session, flashes store.FlashRepository, logger *logger.Logger) *Services {
	return &Services{
		RecordService: NewRecordService(recordStore, logger),
		AuthService:   NewAuthService(recordStore, sess, logger),
		FlashService:  NewFlashService(flashes, logger),
	}
}
