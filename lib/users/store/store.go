package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "employee-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id uint, err error)
	GetByID(id uint) (rec *dbmodels.User, err error)
	GetByEmail(email string) (rec *dbmodels.User, err error)
	ExistByEmail(email string) (bool, error)
	ListByManager(managerID uint) (list []dbmodels.User, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id uint, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.User, error) {
	rec := dbmodels.User{}
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

func (i impl) GetByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("email = ?", email).
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

func (i impl) ExistByEmail(email string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.User{}).
		Where("email = ?", email).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) ListByManager(managerID uint) (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
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
