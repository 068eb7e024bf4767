package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed_CapabilityMatrix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role       Role
		capability Capability
		want       bool
	}{
		{RoleAdmin, CapabilityWorkerManage, true},
		{RoleAdmin, CapabilityPunchAdjust, true},
		{RoleAdmin, CapabilityPayrollView, true},

		{RoleManager, CapabilityWorkerManage, false},
		{RoleManager, CapabilityWorkerView, true},
		{RoleManager, CapabilityPunchAdjust, true},
		{RoleManager, CapabilityPunchApprove, true},
		{RoleManager, CapabilityShiftManage, true},
		{RoleManager, CapabilityPayrollView, true},
		{RoleManager, CapabilityPunchSelf, true},

		{RoleEmployee, CapabilityPunchSelf, true},
		{RoleEmployee, CapabilityPunchViewAll, false},
		{RoleEmployee, CapabilityPunchAdjust, false},
		{RoleEmployee, CapabilityPunchApprove, false},
		{RoleEmployee, CapabilityShiftView, false},
		{RoleEmployee, CapabilityShiftManage, false},
		{RoleEmployee, CapabilityWorkerView, false},
		{RoleEmployee, CapabilityWorkerManage, false},
		{RoleEmployee, CapabilityPayrollView, false},
	}

	for _, tc := range cases {
		got := Allowed(tc.role, tc.capability)
		assert.Equal(t, tc.want, got, "%s / %s", tc.role, tc.capability)
	}
}

func TestAllowed_UnknownRole(t *testing.T) {
	t.Parallel()

	assert.False(t, Allowed(Role("intern"), CapabilityPunchSelf))
}

func TestWorkerRoleHelpers(t *testing.T) {
	t.Parallel()

	admin := Worker{Role: RoleAdmin}
	manager := Worker{Role: RoleManager}
	employee := Worker{Role: RoleEmployee}

	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.IsManager())
	assert.False(t, manager.IsAdmin())
	assert.True(t, manager.IsManager())
	assert.False(t, employee.IsAdmin())
	assert.False(t, employee.IsManager())
}
