package domain

import (
	"time"
)

type JobType string

const (
	JobTypeInternship  JobType = "Internship"
	JobTypeFullTime    JobType = "Full-Time"
	JobTypePartTime    JobType = "Part-Time"
	JobTypeContractual JobType = "Contractual"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeInternship, JobTypeFullTime, JobTypePartTime, JobTypeContractual:
		return true
	default:
		return false
	}
}

type WorkMode string

const (
	WorkModeRemote   WorkMode = "Remote"
	WorkModeInOffice WorkMode = "In-Office"
)

func (m WorkMode) Valid() bool {
	switch m {
	case WorkModeRemote, WorkModeInOffice:
		return true
	default:
		return false
	}
}

type Listing struct {
	ID             int64     `json:"id"`
	CompanyName    string    `json:"companyName"`
	CompanyLogoURL *string   `json:"companyLogoUrl"`
	JobPosition    string    `json:"jobPosition"`
	MonthlySalary  *int64    `json:"monthlySalary"`
	JobType        JobType   `json:"jobType"`
	Remote         WorkMode  `json:"remote"`
	Location       *string   `json:"location"`
	JobDescription string    `json:"jobDescription"`
	AboutCompany   string    `json:"aboutCompany"`
	SkillsRequired string    `json:"skillsRequired"`
	AdditionalInfo string    `json:"additionalInfo"`
	UserID         int64     `json:"userId"`
	CreatedAt      time.Time `json:"createdAt"`
}
