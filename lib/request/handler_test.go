package requesthandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"employee-requests-backend/models"
	requestapimodels "employee-requests-backend/models/api/request"
	dbmodels "employee-requests-backend/models/db"
)

type testEnv struct {
	handler    Provider
	users      *usersStoreMock
	requests   *requestStoreMock
	creator    uint // сотрудник A, автор
	assignee   uint // сотрудник B, исполнитель
	manager    uint // M, руководитель B
	outsiderMg uint // M2, чужой руководитель
}

func newTestEnv(t *testing.T) testEnv {
	users := newUsersStoreMock()
	manager, err := users.Create(dbmodels.User{Email: "m@corp.ru", Name: "М", Role: models.UserRoleManager})
	require.Nil(t, err)
	outsider, err := users.Create(dbmodels.User{Email: "m2@corp.ru", Name: "М2", Role: models.UserRoleManager})
	require.Nil(t, err)
	creator, err := users.Create(dbmodels.User{Email: "a@corp.ru", Name: "А", Role: models.UserRoleEmployee, ManagerID: &manager})
	require.Nil(t, err)
	assignee, err := users.Create(dbmodels.User{Email: "b@corp.ru", Name: "Б", Role: models.UserRoleEmployee, ManagerID: &manager})
	require.Nil(t, err)

	requests := newRequestStoreMock(users)
	return testEnv{
		handler:    NewHandlerWithStores(requests, users),
		users:      users,
		requests:   requests,
		creator:    creator,
		assignee:   assignee,
		manager:    manager,
		outsiderMg: outsider,
	}
}

func (e testEnv) createRequest(t *testing.T) requestapimodels.RequestView {
	item, err := e.handler.Create(e.creator, requestapimodels.RequestCreateData{
		Title:       "Настроить стенд",
		Description: "Поднять тестовый стенд для команды",
		AssignedTo:  e.assignee,
	})
	require.Nil(t, err)
	return item
}

func statusPtr(v models.RequestStatus) *models.RequestStatus { return &v }
func strPtr(v string) *string                                { return &v }

func TestCreate(t *testing.T) {
	t.Run("новая заявка ожидает согласования", func(t *testing.T) {
		env := newTestEnv(t)
		item := env.createRequest(t)
		require.Equal(t, models.RequestStatusPending, item.Status)
		require.Equal(t, models.ApprovalNotReviewed, item.ManagerApproval)
		require.Nil(t, item.ManagerID)
		require.Nil(t, item.ClosedAt)
	})

	t.Run("нельзя назначить себе", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.handler.Create(env.creator, requestapimodels.RequestCreateData{
			Title:       "Настроить стенд",
			Description: "Поднять тестовый стенд для команды",
			AssignedTo:  env.creator,
		})
		require.ErrorIs(t, err, models.ErrSelfAssign)
		require.Empty(t, env.requests.requests)
	})

	t.Run("исполнитель должен существовать", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.handler.Create(env.creator, requestapimodels.RequestCreateData{
			Title:       "Настроить стенд",
			Description: "Поднять тестовый стенд для команды",
			AssignedTo:  99,
		})
		require.ErrorIs(t, err, models.ErrAssigneeNotFound)
	})
}

func TestReview(t *testing.T) {
	t.Run("согласование руководителем исполнителя", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.createRequest(t)
		item, err := env.handler.Approve(rec.ID, env.manager)
		require.Nil(t, err)
		require.Equal(t, models.RequestStatusApproved, item.Status)
		require.Equal(t, models.ApprovalApproved, item.ManagerApproval)
		require.Equal(t, env.manager, *item.ManagerID)
	})

	t.Run("отклонение терминально", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.createRequest(t)
		item, err := env.handler.Reject(rec.ID, env.manager)
		require.Nil(t, err)
		require.Equal(t, models.RequestStatusRejected, item.Status)
		require.Equal(t, models.ApprovalRejected, item.ManagerApproval)

		// исполнитель не может взять отклонённую заявку в работу
		_, err = env.handler.Update(rec.ID, env.assignee, requestapimodels.RequestEditData{
			Status: statusPtr(models.RequestStatusInProgress),
		})
		require.ErrorIs(t, err, models.ErrReviewRejected)
	})

	t.Run("повторное рассмотрение запрещено", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.createRequest(t)
		_, err := env.handler.Approve(rec.ID, env.manager)
		require.Nil(t, err)
		_, err = env.handler.Approve(rec.ID, env.manager)
		require.ErrorIs(t, err, models.ErrAlreadyReviewed)
		_, err = env.handler.Reject(rec.ID, env.manager)
		require.ErrorIs(t, err, models.ErrAlreadyReviewed)
	})

	t.Run("чужой руководитель не рассматривает", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.createRequest(t)
		_, err := env.handler.Approve(rec.ID, env.outsiderMg)
		require.ErrorIs(t, err, models.ErrNotPermitted)

		// состояние заявки не изменилось
		item, err := env.handler.GetByID(rec.ID, env.creator, models.UserRoleEmployee)
		require.Nil(t, err)
		require.Equal(t, models.RequestStatusPending, item.Status)
		require.Equal(t, models.ApprovalNotReviewed, item.ManagerApproval)
	})

	t.Run("несуществующая заявка", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.handler.Approve(42, env.manager)
		require.ErrorIs(t, err, models.ErrRequestNotFound)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("полный жизненный цикл до закрытия", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.createRequest(t)
		_, err := env.handler.Approve(rec.ID, env.manager)
		require.Nil(t, err)

		item, err := env.handler.Update(rec.ID, env.assignee, requestapimodels.RequestEditData{
			Status: statusPtr(models.RequestStatusInProgress),
		})
		require.Nil(t, err)
		require.Equal(t, models.RequestStatusInProgress, item.Status)
		require.Nil(t, item.ClosedAt)

		item, err = env.handler.Update(rec.ID, env.assignee, requestapimodels.RequestEditData{
			Status: statusPtr(models.RequestStatusClosed),
		})
		require.Nil(t, err)
		require.Equal(t, models.RequestStatusClosed, item.Status)
		require.NotNil(t, item.ClosedAt)

		// после закрытия правки недоступны
		_, err = env.handler.Update(rec.ID, env.assignee, requestapimodels.RequestEditData{
			Title: strPtr("Другая тема"),
		})
		require.ErrorIs(t, err, models.ErrEditNotAllowed)
	})

	t.Run("до согласования действия недоступны", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.createRequest(t)
		_, err := env.handler.Update(rec.ID, env.assignee, requestapimodels.RequestEditData{
			Status: statusPtr(models.RequestStatusInProgress),
		})
		// сообщение отличается от случая отклонённой заявки
		require.ErrorIs(t, err, models.ErrNotApprovedYet)
		require.NotEqual(t, models.ErrReviewRejected.Error(), err.Error())
	})

	t.Run("закрыть можно только из работы", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.createRequest(t)
		_, err := env.handler.Approve(rec.ID, env.manager)
		require.Nil(t, err)
		_, err = env.handler.Update(rec.ID, env.assignee, requestapimodels.RequestEditData{
			Status: statusPtr(models.RequestStatusClosed),
		})
		require.ErrorIs(t, err, models.ErrNotInProgress)
	})

	t.Run("повторно в работу не берётся", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.createRequest(t)
		_, err := env.handler.Approve(rec.ID, env.manager)
		require.Nil(t, err)
		_, err = env.handler.Update(rec.ID, env.assignee, requestapimodels.RequestEditData{
			Status: statusPtr(models.RequestStatusInProgress),
		})
		require.Nil(t, err)
		_, err = env.handler.Update(rec.ID, env.assignee, requestapimodels.RequestEditData{
			Status: statusPtr(models.RequestStatusInProgress),
		})
		require.ErrorIs(t, err, models.ErrNotApproved)
	})

	t.Run("обновляет только исполнитель", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.createRequest(t)
		_, err := env.handler.Approve(rec.ID, env.manager)
		require.Nil(t, err)
		_, err = env.handler.Update(rec.ID, env.creator, requestapimodels.RequestEditData{
			Title: strPtr("Другая тема"),
		})
		require.ErrorIs(t, err, models.ErrNotPermitted)
	})

	t.Run("правка полей по согласованной заявке", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.createRequest(t)
		_, err := env.handler.Approve(rec.ID, env.manager)
		require.Nil(t, err)
		item, err := env.handler.Update(rec.ID, env.assignee, requestapimodels.RequestEditData{
			Title:       strPtr("Уточнённая тема"),
			Description: strPtr("Уточнённое описание задачи"),
		})
		require.Nil(t, err)
		require.Equal(t, "Уточнённая тема", item.Title)
		require.Equal(t, "Уточнённое описание задачи", item.Description)
		require.Equal(t, models.RequestStatusApproved, item.Status)
	})
}

func TestGetByID(t *testing.T) {
	env := newTestEnv(t)
	rec := env.createRequest(t)
	_, err := env.handler.Approve(rec.ID, env.manager)
	require.Nil(t, err)

	t.Run("доступ автора, исполнителя и рассмотревшего руководителя", func(t *testing.T) {
		for _, userID := range []uint{env.creator, env.assignee} {
			_, err := env.handler.GetByID(rec.ID, userID, models.UserRoleEmployee)
			require.Nil(t, err)
		}
		_, err := env.handler.GetByID(rec.ID, env.manager, models.UserRoleManager)
		require.Nil(t, err)
	})

	t.Run("чужая заявка не раскрывается", func(t *testing.T) {
		_, err := env.handler.GetByID(rec.ID, env.outsiderMg, models.UserRoleManager)
		require.ErrorIs(t, err, models.ErrRequestNotFound)
	})
}

func TestList(t *testing.T) {
	t.Run("списки сотрудника без дублей", func(t *testing.T) {
		env := newTestEnv(t)
		first := env.createRequest(t)
		// встречная заявка: исполнитель становится автором
		second, err := env.handler.Create(env.assignee, requestapimodels.RequestCreateData{
			Title:       "Ответная задача",
			Description: "Проверить результаты настройки стенда",
			AssignedTo:  env.creator,
		})
		require.Nil(t, err)

		list, err := env.handler.List(env.creator, models.UserRoleEmployee)
		require.Nil(t, err)
		require.Len(t, list, 2)
		seen := map[uint]int{}
		for _, item := range list {
			seen[item.ID]++
		}
		require.Equal(t, 1, seen[first.ID])
		require.Equal(t, 1, seen[second.ID])

		my, err := env.handler.ListMy(env.creator)
		require.Nil(t, err)
		require.Len(t, my, 1)
		require.Equal(t, first.ID, my[0].ID)

		assigned, err := env.handler.ListAssigned(env.creator)
		require.Nil(t, err)
		require.Len(t, assigned, 1)
		require.Equal(t, second.ID, assigned[0].ID)
	})

	t.Run("список руководителя без дублей", func(t *testing.T) {
		env := newTestEnv(t)
		first := env.createRequest(t)
		second, err := env.handler.Create(env.assignee, requestapimodels.RequestCreateData{
			Title:       "Ответная задача",
			Description: "Проверить результаты настройки стенда",
			AssignedTo:  env.creator,
		})
		require.Nil(t, err)

		// рассмотренная заявка попадает под оба запроса выборки
		_, err = env.handler.Approve(first.ID, env.manager)
		require.Nil(t, err)

		list, err := env.handler.List(env.manager, models.UserRoleManager)
		require.Nil(t, err)
		require.Len(t, list, 2)
		seen := map[uint]int{}
		for _, item := range list {
			seen[item.ID]++
		}
		require.Equal(t, 1, seen[first.ID])
		require.Equal(t, 1, seen[second.ID])

		// чужому руководителю заявки не видны
		other, err := env.handler.List(env.outsiderMg, models.UserRoleManager)
		require.Nil(t, err)
		require.Empty(t, other)
	})
}
