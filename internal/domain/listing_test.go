package domain_test

import (
	"testing"

	"github.com/hirestack/job-board/backend/internal/domain"
)

func TestJobTypeValid(t *testing.T) {
	valid := []domain.JobType{
		domain.JobTypeInternship,
		domain.JobTypeFullTime,
		domain.JobTypePartTime,
		domain.JobTypeContractual,
	}
	for _, jt := range valid {
		if !jt.Valid() {
			t.Errorf("JobType(%q).Valid() should be true", jt)
		}
	}

	for _, jt := range []domain.JobType{"", "full-time", "Freelance", "FULL-TIME"} {
		if jt.Valid() {
			t.Errorf("JobType(%q).Valid() should be false", jt)
		}
	}
}

func TestWorkModeValid(t *testing.T) {
	for _, m := range []domain.WorkMode{domain.WorkModeRemote, domain.WorkModeInOffice} {
		if !m.Valid() {
			t.Errorf("WorkMode(%q).Valid() should be true", m)
		}
	}

	for _, m := range []domain.WorkMode{"", "remote", "Hybrid", "Office"} {
		if m.Valid() {
			t.Errorf("WorkMode(%q).Valid() should be false", m)
		}
	}
}
