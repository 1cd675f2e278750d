package seed

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hirestack/job-board/backend/internal/config"
	"github.com/hirestack/job-board/backend/internal/domain"
	"github.com/hirestack/job-board/backend/internal/repository"
	"github.com/hirestack/job-board/backend/internal/utils"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS job_listings (
		id BIGSERIAL PRIMARY KEY,
		company_name TEXT NOT NULL,
		company_logo_url TEXT,
		job_position TEXT NOT NULL,
		monthly_salary BIGINT,
		job_type TEXT NOT NULL CHECK (job_type IN ('Internship', 'Full-Time', 'Part-Time', 'Contractual')),
		remote TEXT NOT NULL CHECK (remote IN ('Remote', 'In-Office')),
		location TEXT,
		job_description TEXT NOT NULL DEFAULT '',
		about_company TEXT NOT NULL DEFAULT '',
		skills_required TEXT NOT NULL DEFAULT '',
		additional_info TEXT NOT NULL DEFAULT '',
		user_id BIGINT NOT NULL REFERENCES users (id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// 注意 bookmarks 表故意不加外键约束和 (job_id, user_id) 的唯一约束：
	// 允许收藏不存在的职位，也允许重复收藏，这是当前的产品契约
	`CREATE TABLE IF NOT EXISTS bookmarks (
		id BIGSERIAL PRIMARY KEY,
		job_id BIGINT NOT NULL,
		user_id BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema 在启动时建表，表已存在时什么都不做。
func EnsureSchema(cfg *config.Config, dbpool *sql.DB) error {
	for _, stmt := range schemaStatements {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.QueryTimeout)*time.Second)
		_, err := dbpool.ExecContext(ctx, stmt)
		cancel()
		if err != nil {
			return err
		}
	}

	return nil
}

// SeedDefaultData 在用户表为空时插入默认用户，在职位表为空时插入示例职位。
// 任何一步失败都只记日志，不中断启动。
func SeedDefaultData(cfg *config.Config, repo *repository.Repository) {
	userCount, err := repo.CountUsers()
	if err != nil {
		slog.Error("无法统计用户数量", "error", err)
		return
	}

	if userCount == 0 {
		password, generated := resolveAdminPassword(cfg.Seed.AdminPassword, cfg.Seed.AdminPasswordLength)
		if generated {
			slog.Info("未配置默认用户密码，已随机生成", "password", password)
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("无法生成默认用户密码哈希", "error", err)
			return
		}

		defaultUser := &domain.User{
			Username:     cfg.Seed.AdminUsername,
			Email:        cfg.Seed.AdminEmail,
			PasswordHash: string(passwordHash),
		}
		if err := repo.CreateUser(defaultUser); err != nil {
			slog.Error("无法插入默认用户", "error", err)
			return
		}

		slog.Info("已插入默认用户", "username", defaultUser.Username)
	}

	listingCount, err := repo.CountListings()
	if err != nil {
		slog.Error("无法统计职位数量", "error", err)
		return
	}

	if listingCount == 0 {
		owner, err := repo.GetUserByEmail(cfg.Seed.AdminEmail)
		if err != nil {
			slog.Error("无法获取默认用户", "error", err)
			return
		}

		inserted := 0
		for _, listing := range defaultListings(owner.ID) {
			if err := repo.CreateListing(listing); err != nil {
				slog.Error("无法插入示例职位", "company", listing.CompanyName, "error", err)
				continue
			}
			inserted++
		}

		slog.Info("已插入示例职位", "count", inserted)
	}
}

// resolveAdminPassword 优先使用环境变量里配置的密码，没有配置时生成一个随机密码。
func resolveAdminPassword(configured string, length int) (password string, generated bool) {
	if configured != "" {
		return configured, false
	}

	return utils.GenerateRandomPassword(length), true
}

func strPtr(s string) *string { return &s }

func intPtr(i int64) *int64 { return &i }

func defaultListings(ownerID int64) []*domain.Listing {
	return []*domain.Listing{
		{
			CompanyName:    "Tech Innovators Inc.",
			CompanyLogoURL: strPtr("https://logo.clearbit.com/amazon.com"),
			JobPosition:    "Frontend Developer",
			MonthlySalary:  intPtr(25000),
			JobType:        domain.JobTypeFullTime,
			Remote:         domain.WorkModeRemote,
			Location:       strPtr("Hyderabad"),
			JobDescription: "We are looking for a skilled Frontend Developer to join our team. The ideal candidate will be responsible for developing user-facing features, ensuring high performance and responsiveness of the application.",
			AboutCompany:   "Tech Innovators Inc. provides technology-based services to help businesses and organizations achieve their goals. We offer a wide range of services, including software development, system integration, network and security services, cloud computing, and data analytics.",
			SkillsRequired: "HTML5, CSS, JavaScript, React, Angular, Vue.js",
			AdditionalInfo: "Experience with responsive design and cross-browser compatibility is a plus.",
			UserID:         ownerID,
		},
		{
			CompanyName:    "Cloud Solutions Ltd.",
			CompanyLogoURL: strPtr("https://logo.clearbit.com/cloudsolutions.com"),
			JobPosition:    "Backend Developer",
			MonthlySalary:  intPtr(36000),
			JobType:        domain.JobTypeFullTime,
			Remote:         domain.WorkModeRemote,
			Location:       strPtr("Mumbai"),
			JobDescription: "We are seeking a Backend Developer to design, implement, and manage server-side logic. The candidate will work on optimizing database interactions and ensuring high performance and responsiveness.",
			AboutCompany:   "Cloud Solutions Ltd. specializes in providing cloud infrastructure services to businesses worldwide. We help organizations migrate to the cloud, optimize their cloud environments, and ensure data security and compliance.",
			SkillsRequired: "Node.js, Python, Java, SQL, MongoDB, REST APIs",
			AdditionalInfo: "Experience with microservices architecture and containerization is highly desirable.",
			UserID:         ownerID,
		},
		{
			CompanyName:    "Data Insights Corp.",
			CompanyLogoURL: strPtr("https://logo.clearbit.com/tesla.com"),
			JobPosition:    "Full Stack Developer",
			MonthlySalary:  intPtr(40000),
			JobType:        domain.JobTypeFullTime,
			Remote:         domain.WorkModeRemote,
			Location:       strPtr("Bangalore"),
			JobDescription: "We are hiring a Full Stack Developer to work on both frontend and backend development. The candidate will be responsible for building end-to-end solutions and ensuring seamless integration between the two.",
			AboutCompany:   "Data Insights Corp. is a leading provider of data-driven solutions. We help businesses harness the power of data to make informed decisions, improve operational efficiency, and drive growth.",
			SkillsRequired: "React, Node.js, Express, MongoDB, REST APIs, JavaScript",
			AdditionalInfo: "Experience with DevOps practices and CI/CD pipelines is a plus.",
			UserID:         ownerID,
		},
		{
			CompanyName:    "Design Studio Pro",
			CompanyLogoURL: strPtr("https://logo.clearbit.com/adobe.com"),
			JobPosition:    "UI/UX Designer",
			MonthlySalary:  intPtr(45000),
			JobType:        domain.JobTypeFullTime,
			Remote:         domain.WorkModeInOffice,
			Location:       strPtr("Ahmedabad"),
			JobDescription: "We are looking for a creative UI/UX Designer to design user interfaces for our digital products. The candidate will be responsible for creating wireframes, prototypes, and high-fidelity designs.",
			AboutCompany:   "Design Studio Pro specializes in modern design solutions for businesses. We focus on creating user-centric designs that enhance user experience and drive engagement.",
			SkillsRequired: "Figma, Sketch, Adobe XD, User Research, Prototyping",
			AdditionalInfo: "Experience with AR/VR design is a plus.",
			UserID:         ownerID,
		},
		{
			CompanyName:    "Marketing Pro Agency",
			CompanyLogoURL: strPtr("https://logo.clearbit.com/marketingpro.com"),
			JobPosition:    "Digital Marketing Specialist",
			MonthlySalary:  intPtr(40000),
			JobType:        domain.JobTypePartTime,
			Remote:         domain.WorkModeRemote,
			Location:       strPtr("Chennai"),
			JobDescription: "We are hiring a Digital Marketing Specialist to manage our online marketing campaigns. The candidate will be responsible for SEO, SEM, social media marketing, and content creation.",
			AboutCompany:   "Marketing Pro Agency is a leading digital marketing agency. We help businesses grow their online presence through innovative marketing strategies and data-driven campaigns.",
			SkillsRequired: "SEO, SEM, Social Media Marketing, Google Analytics",
			AdditionalInfo: "Experience with email marketing and automation tools is a plus.",
			UserID:         ownerID,
		},
	}
}
