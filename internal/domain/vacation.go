package domain

type VacationStatus string

const (
	VacationStatusPending  VacationStatus = "pending"
	VacationStatusApproved VacationStatus = "approved"
	VacationStatusRejected VacationStatus = "rejected"
)

func (s VacationStatus) Valid() bool {
	switch s {
	case VacationStatusPending, VacationStatusApproved, VacationStatusRejected:
		return true
	}
	return false
}

type StatusChange struct {
	Status    VacationStatus `json:"status"`
	Timestamp string         `json:"timestamp"`
}

// Vacation 中的日期均为字符串，不做格式和范围校验
type Vacation struct {
	ID            string         `json:"id"`
	EmployeeEmail string         `json:"employeeEmail"`
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	Status        VacationStatus `json:"status"`
	RequestedAt   string         `json:"requestedAt"`
	History       []StatusChange `json:"history,omitempty"` // 第一次变更状态前不存在
}
