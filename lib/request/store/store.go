package requeststore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"employee-requests-backend/models"
	dbmodels "employee-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Request) (id uint, err error)
	GetByID(id uint) (rec *dbmodels.Request, err error)
	Update(id uint, updMap map[string]interface{}) error
	SetReviewed(id, managerID uint, approved bool) error
	Close(id uint) error
	ListByCreator(userID uint) (list []dbmodels.Request, err error)
	ListByAssignee(userID uint) (list []dbmodels.Request, err error)
	ListByManager(managerID uint) (list []dbmodels.Request, err error)
	ListByAssigneeManager(managerID uint) (list []dbmodels.Request, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Request) (id uint, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Request, error) {
	rec := dbmodels.Request{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id uint, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Request{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrRequestNotFound
	}
	return nil
}

// SetReviewed фиксирует решение руководителя одним условным UPDATE.
// Условие manager_approval IS NULL закрывает гонку двух одновременных
// рассмотрений: второе не находит строку и получает конфликт.
func (i impl) SetReviewed(id, managerID uint, approved bool) error {
	status := models.RequestStatusApproved
	if !approved {
		status = models.RequestStatusRejected
	}
	tx := i.db.
		Model(&dbmodels.Request{}).
		Where("id = ?", id).
		Where("manager_approval IS NULL").
		Where("status = ?", models.RequestStatusPending).
		Updates(map[string]interface{}{
			"manager_approval": approved,
			"manager_id":       managerID,
			"status":           status,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrAlreadyReviewed
	}
	return nil
}

func (i impl) Close(id uint) error {
	tx := i.db.
		Model(&dbmodels.Request{}).
		Where("id = ?", id).
		Where("status = ?", models.RequestStatusInProgress).
		Updates(map[string]interface{}{
			"status":    models.RequestStatusClosed,
			"closed_at": time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotInProgress
	}
	return nil
}

func (i impl) ListByCreator(userID uint) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	err = i.db.
		Where("created_by = ?", userID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByAssignee(userID uint) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	err = i.db.
		Where("assigned_to = ?", userID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByManager(managerID uint) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	err = i.db.
		Where("manager_id = ?", managerID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListByAssigneeManager - заявки, исполнители которых подчинены руководителю.
func (i impl) ListByAssigneeManager(managerID uint) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	err = i.db.
		Joins("JOIN users ON users.id = requests.assigned_to").
		Where("users.manager_id = ?", managerID).
		Order("requests.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
