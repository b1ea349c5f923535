package models

import "github.com/pkg/errors"

// Доменные ошибки. Базовый контроллер мапит их на HTTP статусы.
var (
	ErrRequestNotFound  = errors.New("заявка не найдена")
	ErrUserNotFound     = errors.New("пользователь не найден")
	ErrAssigneeNotFound = errors.New("исполнитель заявки не найден")
	ErrSelfAssign       = errors.New("нельзя назначить заявку самому себе")
	ErrNotPermitted     = errors.New("операция недоступна")

	// Конфликты жизненного цикла.
	ErrAlreadyReviewed = errors.New("заявка уже рассмотрена руководителем")
	ErrNotApprovedYet  = errors.New("заявка ещё не согласована руководителем")
	ErrReviewRejected  = errors.New("заявка отклонена руководителем, действия по ней недоступны")
	ErrNotInProgress   = errors.New("закрыть можно только заявку в работе")
	ErrNotApproved     = errors.New("взять в работу можно только согласованную заявку")
	ErrEditNotAllowed  = errors.New("редактирование доступно только по согласованной заявке или заявке в работе")

	// Ошибки аутентификации/регистрации.
	ErrEmailTaken         = errors.New("пользователь с такой почтой уже существует")
	ErrManagerNotFound    = errors.New("руководитель не найден")
	ErrNotAManager        = errors.New("указанный пользователь не является руководителем")
	ErrInvalidCredentials = errors.New("неверная почта или пароль")
)

// IsConflict - нарушение порядка жизненного цикла, отдаётся клиенту как 400.
func IsConflict(err error) bool {
	switch errors.Cause(err) {
	case ErrAlreadyReviewed, ErrNotApprovedYet, ErrReviewRejected,
		ErrNotInProgress, ErrNotApproved, ErrEditNotAllowed, ErrSelfAssign:
		return true
	}
	return false
}

// IsNotFound - неизвестный идентификатор, отдаётся как 404.
// Отсутствующий исполнитель или руководитель в теле запроса -
// ошибка входных данных, а не 404, поэтому их здесь нет.
func IsNotFound(err error) bool {
	switch errors.Cause(err) {
	case ErrRequestNotFound, ErrUserNotFound:
		return true
	}
	return false
}
