package repository

import (
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
)

// 毫秒精度的 RFC 3339 UTC 时间
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type VacationFilter struct {
	EmployeeEmail string
	Status        domain.VacationStatus
}

func (f VacationFilter) match(v *domain.Vacation) bool {
	if f.EmployeeEmail != "" && v.EmployeeEmail != f.EmployeeEmail {
		return false
	}
	if f.Status != "" && v.Status != f.Status {
		return false
	}
	return true
}

func (r *Repository) GetVacations(filter VacationFilter) ([]domain.Vacation, error) {
	vacations := make([]domain.Vacation, 0)

	err := r.withRead(func(doc *domain.Document) error {
		for i := range doc.Vacations {
			if filter.match(&doc.Vacations[i]) {
				vacations = append(vacations, doc.Vacations[i])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return vacations, nil
}

// CreateVacation 原样保存调用方提供的记录，不检查 id 是否重复
func (r *Repository) CreateVacation(vacation *domain.Vacation) error {
	if vacation.Status == "" {
		vacation.Status = domain.VacationStatusPending
	}
	if vacation.RequestedAt == "" {
		vacation.RequestedAt = r.timestamp()
	}

	return r.withWrite(func(doc *domain.Document) error {
		doc.Vacations = append(doc.Vacations, *vacation)
		return nil
	})
}

// UpdateVacationStatus 修改第一条 id 匹配的记录，并在 history 中追加一条变更
func (r *Repository) UpdateVacationStatus(id string, status domain.VacationStatus) (*domain.Vacation, error) {
	var updated *domain.Vacation

	err := r.withWrite(func(doc *domain.Document) error {
		for i := range doc.Vacations {
			v := &doc.Vacations[i]
			if v.ID != id {
				continue
			}

			if err := r.policy(v.Status, status); err != nil {
				return err
			}

			v.Status = status
			v.History = append(v.History, domain.StatusChange{
				Status:    status,
				Timestamp: r.timestamp(),
			})

			copied := *v
			copied.History = append([]domain.StatusChange(nil), v.History...)
			updated = &copied
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *Repository) timestamp() string {
	return r.now().UTC().Format(timestampLayout)
}
