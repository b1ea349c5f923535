package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "employee-requests-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Request{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Request")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
