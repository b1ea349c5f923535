package requesthandler

import (
	"sort"
	"time"

	"employee-requests-backend/models"
	dbmodels "employee-requests-backend/models/db"
)

// Моки хранилищ. Повторяют контракт стора, включая условные UPDATE.

type usersStoreMock struct {
	seq   uint
	users map[uint]dbmodels.User
}

func newUsersStoreMock() *usersStoreMock {
	return &usersStoreMock{users: map[uint]dbmodels.User{}}
}

func (m *usersStoreMock) Create(rec dbmodels.User) (uint, error) {
	m.seq++
	rec.ID = m.seq
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	m.users[rec.ID] = rec
	return rec.ID, nil
}

func (m *usersStoreMock) GetByID(id uint) (*dbmodels.User, error) {
	if rec, exist := m.users[id]; exist {
		return &rec, nil
	}
	return nil, nil
}

func (m *usersStoreMock) GetByEmail(email string) (*dbmodels.User, error) {
	for _, rec := range m.users {
		if rec.Email == email {
			return &rec, nil
		}
	}
	return nil, nil
}

func (m *usersStoreMock) ExistByEmail(email string) (bool, error) {
	rec, _ := m.GetByEmail(email)
	return rec != nil, nil
}

func (m *usersStoreMock) ListByManager(managerID uint) ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	for _, rec := range m.users {
		if rec.HasManager(managerID) {
			list = append(list, rec)
		}
	}
	return list, nil
}

type requestStoreMock struct {
	seq      uint
	requests map[uint]dbmodels.Request
	users    *usersStoreMock
}

func newRequestStoreMock(users *usersStoreMock) *requestStoreMock {
	return &requestStoreMock{
		requests: map[uint]dbmodels.Request{},
		users:    users,
	}
}

func (m *requestStoreMock) Create(rec dbmodels.Request) (uint, error) {
	m.seq++
	rec.ID = m.seq
	rec.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Millisecond)
	rec.UpdatedAt = rec.CreatedAt
	m.requests[rec.ID] = rec
	return rec.ID, nil
}

func (m *requestStoreMock) GetByID(id uint) (*dbmodels.Request, error) {
	if rec, exist := m.requests[id]; exist {
		return &rec, nil
	}
	return nil, nil
}

func (m *requestStoreMock) Update(id uint, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	rec, exist := m.requests[id]
	if !exist {
		return models.ErrRequestNotFound
	}
	if v, ok := updMap["title"]; ok {
		rec.Title = v.(string)
	}
	if v, ok := updMap["description"]; ok {
		rec.Description = v.(string)
	}
	if v, ok := updMap["status"]; ok {
		rec.Status = v.(models.RequestStatus)
	}
	rec.UpdatedAt = time.Now()
	m.requests[id] = rec
	return nil
}

func (m *requestStoreMock) SetReviewed(id, managerID uint, approved bool) error {
	rec, exist := m.requests[id]
	if !exist || rec.ManagerApproval != nil || rec.Status != models.RequestStatusPending {
		return models.ErrAlreadyReviewed
	}
	rec.ManagerApproval = &approved
	rec.ManagerID = &managerID
	if approved {
		rec.Status = models.RequestStatusApproved
	} else {
		rec.Status = models.RequestStatusRejected
	}
	m.requests[id] = rec
	return nil
}

func (m *requestStoreMock) Close(id uint) error {
	rec, exist := m.requests[id]
	if !exist || rec.Status != models.RequestStatusInProgress {
		return models.ErrNotInProgress
	}
	now := time.Now()
	rec.Status = models.RequestStatusClosed
	rec.ClosedAt = &now
	m.requests[id] = rec
	return nil
}

func (m *requestStoreMock) list(match func(dbmodels.Request) bool) []dbmodels.Request {
	list := []dbmodels.Request{}
	for _, rec := range m.requests {
		if match(rec) {
			list = append(list, rec)
		}
	}
	sort.Slice(list, func(a, b int) bool {
		return list[a].CreatedAt.After(list[b].CreatedAt)
	})
	return list
}

func (m *requestStoreMock) ListByCreator(userID uint) ([]dbmodels.Request, error) {
	return m.list(func(rec dbmodels.Request) bool { return rec.CreatedBy == userID }), nil
}

func (m *requestStoreMock) ListByAssignee(userID uint) ([]dbmodels.Request, error) {
	return m.list(func(rec dbmodels.Request) bool { return rec.AssignedTo == userID }), nil
}

func (m *requestStoreMock) ListByManager(managerID uint) ([]dbmodels.Request, error) {
	return m.list(func(rec dbmodels.Request) bool {
		return rec.ManagerID != nil && *rec.ManagerID == managerID
	}), nil
}

func (m *requestStoreMock) ListByAssigneeManager(managerID uint) ([]dbmodels.Request, error) {
	return m.list(func(rec dbmodels.Request) bool {
		assignee, _ := m.users.GetByID(rec.AssignedTo)
		return assignee != nil && assignee.HasManager(managerID)
	}), nil
}
