package domain

const (
	MailTypeVacationRequested     = "vacation_requested"
	MailTypeVacationStatusChanged = "vacation_status_changed"
)

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type VacationRequestedMailData struct {
	VacationID    string `json:"vacationId"`
	EmployeeEmail string `json:"employeeEmail"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
}

type VacationStatusChangedMailData struct {
	VacationID string         `json:"vacationId"`
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	Status     VacationStatus `json:"status"`
}
