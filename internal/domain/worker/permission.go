package worker

type Capability string

const (
	// Punch Ledger
	CapabilityPunchSelf    Capability = "punch.self"
	CapabilityPunchViewAll Capability = "punch.view_all"

	// Approval Workflow
	CapabilityPunchAdjust  Capability = "punch.adjust"
	CapabilityPunchApprove Capability = "punch.approve"

	// Shift Planner
	CapabilityShiftView   Capability = "shift.view"
	CapabilityShiftManage Capability = "shift.manage"

	// Identity Directory
	CapabilityWorkerView   Capability = "worker.view"
	CapabilityWorkerManage Capability = "worker.manage"

	// Payroll Aggregator
	CapabilityPayrollView Capability = "payroll.view"
)

// RoleCapabilities maps roles to their capabilities
var RoleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		// Admin has all capabilities
		CapabilityPunchSelf,
		CapabilityPunchViewAll,
		CapabilityPunchAdjust,
		CapabilityPunchApprove,
		CapabilityShiftView,
		CapabilityShiftManage,
		CapabilityWorkerView,
		CapabilityWorkerManage,
		CapabilityPayrollView,
	},
	RoleManager: {
		CapabilityPunchSelf,
		CapabilityPunchViewAll,
		CapabilityPunchAdjust,
		CapabilityPunchApprove,
		CapabilityShiftView,
		CapabilityShiftManage,
		CapabilityWorkerView,
		CapabilityPayrollView,
	},
	RoleEmployee: {
		CapabilityPunchSelf,
	},
}

// Allowed checks if a role has a specific capability
func Allowed(role Role, capability Capability) bool {
	capabilities, exists := RoleCapabilities[role]
	if !exists {
		return false
	}

	for _, c := range capabilities {
		if c == capability {
			return true
		}
	}

	return false
}
