package repository

import (
	"fmt"

	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
)

// TransitionPolicy 决定一次状态变更是否合法，是唯一的校验点
type TransitionPolicy func(from, to domain.VacationStatus) error

// AllowAnyTransition 不做任何限制，重复设置同一个状态也会被接受
func AllowAnyTransition(from, to domain.VacationStatus) error {
	return nil
}

// StrictTransitions 只允许从 pending 变为 approved 或 rejected
func StrictTransitions(from, to domain.VacationStatus) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: 未知的状态 %q -> %q", ErrIllegalTransition, from, to)
	}
	if from == domain.VacationStatusPending && (to == domain.VacationStatusApproved || to == domain.VacationStatusRejected) {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}
