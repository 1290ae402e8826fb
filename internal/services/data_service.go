package services

import (
	"context"

	"pos_terminal/internal/repository"

	"go.uber.org/zap"
)

type DataService interface {
	ClearAllData(ctx context.Context) error
}

type dataService struct {
	maintenanceRepo repository.MaintenanceRepository
	logger          *zap.Logger
}

func NewDataService(maintenanceRepo repository.MaintenanceRepository, logger *zap.Logger) DataService {
	return &dataService{maintenanceRepo: maintenanceRepo, logger: logger}
}

// ClearAllData wipes the catalog, payment types, sales and the dashboard PIN.
func (s *dataService) ClearAllData(ctx context.Context) error {
	if err := s.maintenanceRepo.PurgeAll(ctx); err != nil {
		s.logger.Error("failed to clear data", zap.Error(err))
		return err
	}

	s.logger.Warn("all data cleared")
	return nil
}
