package utils

import (
	"fmt"
	"math/rand"

	"github.com/hirestack/job-board/backend/internal/domain"
)

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var companyNames = []string{
	"Brightwave Labs", "Nimbus Works", "Quanta Systems", "Vertex Digital", "Lumen Analytics",
	"Orbit Software", "Crestline Tech", "Harborview Solutions", "Pinewood Studios", "Atlas Cloud",
}

var jobPositions = []string{
	"Frontend Developer", "Backend Developer", "Full Stack Developer", "UI/UX Designer",
	"Data Engineer", "DevOps Engineer", "QA Engineer", "Product Manager",
}

var locations = []string{
	"Hyderabad", "Mumbai", "Bangalore", "Ahmedabad", "Chennai", "Pune", "Delhi",
}

var jobTypes = []domain.JobType{
	domain.JobTypeInternship,
	domain.JobTypeFullTime,
	domain.JobTypePartTime,
	domain.JobTypeContractual,
}

var workModes = []domain.WorkMode{
	domain.WorkModeRemote,
	domain.WorkModeInOffice,
}

// GenerateRandomListing 生成一条随机的职位记录，只在 seed 工具中使用。
func GenerateRandomListing(userID int64) *domain.Listing {
	salary := int64((rand.Intn(50) + 10) * 1000)
	location := locations[rand.Intn(len(locations))]

	return &domain.Listing{
		CompanyName:    companyNames[rand.Intn(len(companyNames))],
		JobPosition:    jobPositions[rand.Intn(len(jobPositions))],
		MonthlySalary:  &salary,
		JobType:        jobTypes[rand.Intn(len(jobTypes))],
		Remote:         workModes[rand.Intn(len(workModes))],
		Location:       &location,
		JobDescription: "Auto-generated listing for local development.",
		AboutCompany:   "Auto-generated company profile.",
		SkillsRequired: "Communication, Teamwork",
		AdditionalInfo: "",
		UserID:         userID,
	}
}
