package usershandler

import (
	log "github.com/sirupsen/logrus"

	"employee-requests-backend/db"
	usersstore "employee-requests-backend/lib/users/store"
	authapimodels "employee-requests-backend/models/api/auth"
	dbmodels "employee-requests-backend/models/db"
)

type Provider interface {
	ListEmployees(managerID uint) (list []authapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) ListEmployees(managerID uint) ([]authapimodels.UserView, error) {
	list, err := i.store.ListByManager(managerID)
	if err != nil {
		log.WithField("manager_id", managerID).WithError(err).Error("ошибка получения списка подчиненных")
		return nil, err
	}
	result := make([]authapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, userConvert(rec))
	}
	return result, nil
}

func userConvert(rec dbmodels.User) authapimodels.UserView {
	return authapimodels.UserView{
		ID:        rec.ID,
		Email:     rec.Email,
		Name:      rec.Name,
		Role:      rec.Role,
		ManagerID: rec.ManagerID,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
