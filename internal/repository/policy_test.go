package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/config"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
)

func TestStrictTransitions(t *testing.T) {
	tests := []struct {
		from, to domain.VacationStatus
		allowed  bool
	}{
		{domain.VacationStatusPending, domain.VacationStatusApproved, true},
		{domain.VacationStatusPending, domain.VacationStatusRejected, true},
		{domain.VacationStatusPending, domain.VacationStatusPending, false},
		{domain.VacationStatusApproved, domain.VacationStatusApproved, false},
		{domain.VacationStatusApproved, domain.VacationStatusRejected, false},
		{domain.VacationStatusRejected, domain.VacationStatusPending, false},
		{domain.VacationStatusPending, domain.VacationStatus("cancelled"), false},
		{domain.VacationStatus(""), domain.VacationStatusApproved, false},
	}

	for _, tt := range tests {
		err := StrictTransitions(tt.from, tt.to)
		if tt.allowed {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", tt.from, tt.to)
		}
	}
}

func TestAllowAnyTransition(t *testing.T) {
	assert.NoError(t, AllowAnyTransition(domain.VacationStatusApproved, domain.VacationStatusPending))
	assert.NoError(t, AllowAnyTransition(domain.VacationStatusRejected, domain.VacationStatusRejected))
}

func TestNewRepository_PolicyFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Vacation.StrictTransitions = true
	repo := NewRepository(cfg, nil)
	assert.ErrorIs(t, repo.policy(domain.VacationStatusApproved, domain.VacationStatusPending), ErrIllegalTransition)

	repo = NewRepository(&config.Config{}, nil)
	assert.NoError(t, repo.policy(domain.VacationStatusApproved, domain.VacationStatusPending))
}
