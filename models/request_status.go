package models

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusApproved   RequestStatus = "approved"
	RequestStatusRejected   RequestStatus = "rejected"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusClosed     RequestStatus = "closed"
)

var requestStatusHumanName = map[RequestStatus]string{
	RequestStatusPending:    "Ожидает согласования",
	RequestStatusApproved:   "Согласована",
	RequestStatusRejected:   "Отклонена",
	RequestStatusInProgress: "В работе",
	RequestStatusClosed:     "Закрыта",
}

func (s RequestStatus) ToHuman() string {
	if human, exist := requestStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsAllowChange проверяет допустимость перехода статуса.
// pending -> approved/rejected, approved -> in_progress, in_progress -> closed.
// Этапы не перескакиваются и не откатываются.
func (s RequestStatus) IsAllowChange(newStatus RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return newStatus == RequestStatusApproved || newStatus == RequestStatusRejected
	case RequestStatusApproved:
		return newStatus == RequestStatusInProgress
	case RequestStatusInProgress:
		return newStatus == RequestStatusClosed
	}
	return false
}

// AllowEdit - редактирование полей доступно только по согласованной заявке.
func (s RequestStatus) AllowEdit() bool {
	return s == RequestStatusApproved || s == RequestStatusInProgress
}

func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusClosed || s == RequestStatusRejected
}

// ManagerApproval - тройственный признак решения руководителя.
// В БД хранится как nullable bool, в коде - явный вариант,
// чтобы "не рассмотрено" не путалось с "отклонено".
type ManagerApproval string

const (
	ApprovalNotReviewed ManagerApproval = "not_reviewed"
	ApprovalApproved    ManagerApproval = "approved"
	ApprovalRejected    ManagerApproval = "rejected"
)

func ApprovalFromBool(v *bool) ManagerApproval {
	if v == nil {
		return ApprovalNotReviewed
	}
	if *v {
		return ApprovalApproved
	}
	return ApprovalRejected
}

func (a ManagerApproval) IsReviewed() bool {
	return a != ApprovalNotReviewed
}
