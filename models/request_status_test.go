package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestStatus(t *testing.T) {
	t.Run("переходы статусов", func(t *testing.T) {
		require.True(t, RequestStatusPending.IsAllowChange(RequestStatusApproved))
		require.True(t, RequestStatusPending.IsAllowChange(RequestStatusRejected))
		require.True(t, RequestStatusApproved.IsAllowChange(RequestStatusInProgress))
		require.True(t, RequestStatusInProgress.IsAllowChange(RequestStatusClosed))

		// этапы не перескакиваются
		require.False(t, RequestStatusPending.IsAllowChange(RequestStatusInProgress))
		require.False(t, RequestStatusPending.IsAllowChange(RequestStatusClosed))
		require.False(t, RequestStatusApproved.IsAllowChange(RequestStatusClosed))

		// и не откатываются
		require.False(t, RequestStatusInProgress.IsAllowChange(RequestStatusApproved))
		require.False(t, RequestStatusClosed.IsAllowChange(RequestStatusInProgress))

		// терминальные статусы
		require.False(t, RequestStatusRejected.IsAllowChange(RequestStatusInProgress))
		require.False(t, RequestStatusRejected.IsAllowChange(RequestStatusApproved))
		require.False(t, RequestStatusClosed.IsAllowChange(RequestStatusClosed))
	})

	t.Run("редактирование полей", func(t *testing.T) {
		require.True(t, RequestStatusApproved.AllowEdit())
		require.True(t, RequestStatusInProgress.AllowEdit())
		require.False(t, RequestStatusPending.AllowEdit())
		require.False(t, RequestStatusRejected.AllowEdit())
		require.False(t, RequestStatusClosed.AllowEdit())
	})

	t.Run("терминальность", func(t *testing.T) {
		require.True(t, RequestStatusClosed.IsTerminal())
		require.True(t, RequestStatusRejected.IsTerminal())
		require.False(t, RequestStatusPending.IsTerminal())
		require.False(t, RequestStatusApproved.IsTerminal())
		require.False(t, RequestStatusInProgress.IsTerminal())
	})
}

func TestManagerApproval(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }

	require.Equal(t, ApprovalNotReviewed, ApprovalFromBool(nil))
	require.Equal(t, ApprovalApproved, ApprovalFromBool(boolPtr(true)))
	require.Equal(t, ApprovalRejected, ApprovalFromBool(boolPtr(false)))

	require.False(t, ApprovalNotReviewed.IsReviewed())
	require.True(t, ApprovalApproved.IsReviewed())
	require.True(t, ApprovalRejected.IsReviewed())
}

func TestUserRole(t *testing.T) {
	require.Nil(t, UserRoleEmployee.Validate())
	require.Nil(t, UserRoleManager.Validate())
	require.Error(t, UserRole("admin").Validate())
	require.True(t, UserRoleManager.IsManager())
	require.False(t, UserRoleEmployee.IsManager())
}
