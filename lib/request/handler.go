package requesthandler

import (
	log "github.com/sirupsen/logrus"

	"employee-requests-backend/db"
	requeststore "employee-requests-backend/lib/request/store"
	usersstore "employee-requests-backend/lib/users/store"
	"employee-requests-backend/models"
	requestapimodels "employee-requests-backend/models/api/request"
	dbmodels "employee-requests-backend/models/db"
)

type Provider interface {
	Create(userID uint, data requestapimodels.RequestCreateData) (item requestapimodels.RequestView, err error)
	Approve(id, managerID uint) (item requestapimodels.RequestView, err error)
	Reject(id, managerID uint) (item requestapimodels.RequestView, err error)
	Update(id, userID uint, data requestapimodels.RequestEditData) (item requestapimodels.RequestView, err error)
	GetByID(id, userID uint, role models.UserRole) (item requestapimodels.RequestView, err error)
	List(userID uint, role models.UserRole) (list []requestapimodels.RequestView, err error)
	ListMy(userID uint) (list []requestapimodels.RequestView, err error)
	ListAssigned(userID uint) (list []requestapimodels.RequestView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      requeststore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
}

// NewHandlerWithStores используется в тестах.
func NewHandlerWithStores(store requeststore.Provider, usersStore usersstore.Provider) Provider {
	return impl{
		store:      store,
		usersStore: usersStore,
	}
}

type impl struct {
	store      requeststore.Provider
	usersStore usersstore.Provider
}

func (i impl) Create(userID uint, data requestapimodels.RequestCreateData) (requestapimodels.RequestView, error) {
	logger := log.
		WithField("user_id", userID).
		WithField("assigned_to", data.AssignedTo)
	if data.AssignedTo == userID {
		return requestapimodels.RequestView{}, models.ErrSelfAssign
	}
	assignee, err := i.usersStore.GetByID(data.AssignedTo)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска исполнителя")
		return requestapimodels.RequestView{}, err
	}
	if assignee == nil {
		return requestapimodels.RequestView{}, models.ErrAssigneeNotFound
	}

	rec := dbmodels.Request{
		Title:       data.Title,
		Description: data.Description,
		CreatedBy:   userID,
		AssignedTo:  data.AssignedTo,
		Status:      models.RequestStatusPending,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания заявки")
		return requestapimodels.RequestView{}, err
	}
	logger.
		WithField("rec_id", id).
		Info("создана заявка")
	return i.getView(id)
}

func (i impl) Approve(id, managerID uint) (requestapimodels.RequestView, error) {
	return i.review(id, managerID, true)
}

func (i impl) Reject(id, managerID uint) (requestapimodels.RequestView, error) {
	return i.review(id, managerID, false)
}

// review - решение руководителя по заявке. Руководителем считается
// непосредственный руководитель исполнителя на момент рассмотрения.
func (i impl) review(id, managerID uint, approved bool) (requestapimodels.RequestView, error) {
	logger := log.
		WithField("rec_id", id).
		WithField("manager_id", managerID)
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.RequestView{}, err
	}
	assignee, err := i.usersStore.GetByID(rec.AssignedTo)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска исполнителя")
		return requestapimodels.RequestView{}, err
	}
	if assignee == nil {
		return requestapimodels.RequestView{}, models.ErrAssigneeNotFound
	}
	if !assignee.HasManager(managerID) {
		return requestapimodels.RequestView{}, models.ErrNotPermitted
	}
	if rec.Approval().IsReviewed() {
		return requestapimodels.RequestView{}, models.ErrAlreadyReviewed
	}
	// повторная проверка выполняется в условии UPDATE,
	// параллельное рассмотрение получит ErrAlreadyReviewed
	err = i.store.SetReviewed(id, managerID, approved)
	if err != nil {
		if err != models.ErrAlreadyReviewed {
			logger.WithError(err).Error("ошибка сохранения решения по заявке")
		}
		return requestapimodels.RequestView{}, err
	}
	if approved {
		logger.Info("заявка согласована")
	} else {
		logger.Info("заявка отклонена")
	}
	return i.getView(id)
}

func (i impl) Update(id, userID uint, data requestapimodels.RequestEditData) (requestapimodels.RequestView, error) {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", userID)
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.RequestView{}, err
	}
	if rec.AssignedTo != userID {
		return requestapimodels.RequestView{}, models.ErrNotPermitted
	}
	switch rec.Approval() {
	case models.ApprovalRejected:
		return requestapimodels.RequestView{}, models.ErrReviewRejected
	case models.ApprovalNotReviewed:
		return requestapimodels.RequestView{}, models.ErrNotApprovedYet
	}
	if !rec.Status.AllowEdit() {
		return requestapimodels.RequestView{}, models.ErrEditNotAllowed
	}

	if data.Status != nil && !rec.Status.IsAllowChange(*data.Status) {
		if *data.Status == models.RequestStatusInProgress {
			return requestapimodels.RequestView{}, models.ErrNotApproved
		}
		return requestapimodels.RequestView{}, models.ErrNotInProgress
	}

	updMap := map[string]interface{}{}
	if data.Title != nil {
		updMap["title"] = *data.Title
	}
	if data.Description != nil {
		updMap["description"] = *data.Description
	}
	closing := data.Status != nil && *data.Status == models.RequestStatusClosed
	if data.Status != nil && !closing {
		updMap["status"] = *data.Status
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления заявки")
		return requestapimodels.RequestView{}, err
	}
	if closing {
		err = i.store.Close(id)
		if err != nil {
			logger.WithError(err).Error("ошибка закрытия заявки")
			return requestapimodels.RequestView{}, err
		}
		logger.Info("заявка закрыта")
	} else {
		logger.Info("заявка обновлена")
	}
	return i.getView(id)
}

func (i impl) GetByID(id, userID uint, role models.UserRole) (requestapimodels.RequestView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.RequestView{}, err
	}
	isAuthorized := rec.CreatedBy == userID ||
		rec.AssignedTo == userID ||
		(role.IsManager() && rec.ManagerID != nil && *rec.ManagerID == userID)
	if !isAuthorized {
		// чужая заявка не раскрывается, для клиента её не существует
		return requestapimodels.RequestView{}, models.ErrRequestNotFound
	}
	return requestapimodels.RequestConvert(*rec), nil
}

func (i impl) List(userID uint, role models.UserRole) ([]requestapimodels.RequestView, error) {
	logger := log.WithField("user_id", userID)
	var first, second []dbmodels.Request
	var err error
	if role.IsManager() {
		// заявки подчинённых на рассмотрении + уже рассмотренные этим руководителем
		first, err = i.store.ListByAssigneeManager(userID)
		if err == nil {
			second, err = i.store.ListByManager(userID)
		}
	} else {
		first, err = i.store.ListByCreator(userID)
		if err == nil {
			second, err = i.store.ListByAssignee(userID)
		}
	}
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка заявок")
		return nil, err
	}
	return mergeUnique(first, second), nil
}

func (i impl) ListMy(userID uint) ([]requestapimodels.RequestView, error) {
	list, err := i.store.ListByCreator(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка получения списка созданных заявок")
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListAssigned(userID uint) ([]requestapimodels.RequestView, error) {
	list, err := i.store.ListByAssignee(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка получения списка назначенных заявок")
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) getRec(id uint) (*dbmodels.Request, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка поиска заявки")
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrRequestNotFound
	}
	return rec, nil
}

func (i impl) getView(id uint) (requestapimodels.RequestView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.RequestView{}, err
	}
	return requestapimodels.RequestConvert(*rec), nil
}

// mergeUnique объединяет выборки, убирая дубли по ид.
// Остаётся первое вхождение, порядок выборок сохраняется.
func mergeUnique(lists ...[]dbmodels.Request) []requestapimodels.RequestView {
	seen := make(map[uint]struct{})
	result := []requestapimodels.RequestView{}
	for _, list := range lists {
		for _, rec := range list {
			if _, exist := seen[rec.ID]; exist {
				continue
			}
			seen[rec.ID] = struct{}{}
			result = append(result, requestapimodels.RequestConvert(rec))
		}
	}
	return result
}

func convertList(list []dbmodels.Request) []requestapimodels.RequestView {
	result := make([]requestapimodels.RequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, requestapimodels.RequestConvert(rec))
	}
	return result
}
