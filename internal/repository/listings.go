package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hirestack/job-board/backend/internal/domain"
)

var (
	ErrInvalidEnumValue = errors.New("非法的枚举值")
	ErrInvalidSortField = errors.New("非法的排序字段")
	ErrInvalidSortOrder = errors.New("非法的排序方向")
)

const listingColumns = `
	id, company_name, company_logo_url, job_position, monthly_salary,
	job_type, remote, location, job_description, about_company,
	skills_required, additional_info, user_id, created_at
`

func (r *Repository) CreateListing(listing *domain.Listing) error {
	// 枚举值在入库前再检查一次，防止绕过 handler 校验的调用方写入非法数据
	if !listing.JobType.Valid() || !listing.Remote.Valid() {
		return ErrInvalidEnumValue
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO job_listings (
			company_name, company_logo_url, job_position, monthly_salary,
			job_type, remote, location, job_description, about_company,
			skills_required, additional_info, user_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	args := []any{
		listing.CompanyName, listing.CompanyLogoURL, listing.JobPosition, listing.MonthlySalary,
		listing.JobType, listing.Remote, listing.Location, listing.JobDescription, listing.AboutCompany,
		listing.SkillsRequired, listing.AdditionalInfo, listing.UserID,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&listing.ID, &listing.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetListingByID(id int64) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM job_listings WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	listing := &domain.Listing{}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(listingDst(listing)...); err != nil {
		return nil, err
	}

	return listing, nil
}

// UpdateListing 整体替换职位的全部可变字段，所有权已经在上游的中间件中校验，
// 这里只按 id 更新。返回值表示是否有行被更新，没有则说明职位不存在。
func (r *Repository) UpdateListing(listing *domain.Listing) (bool, error) {
	if !listing.JobType.Valid() || !listing.Remote.Valid() {
		return false, ErrInvalidEnumValue
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE job_listings SET
			company_name = $1, company_logo_url = $2, job_position = $3, monthly_salary = $4,
			job_type = $5, remote = $6, location = $7, job_description = $8, about_company = $9,
			skills_required = $10, additional_info = $11
		WHERE id = $12
	`

	args := []any{
		listing.CompanyName, listing.CompanyLogoURL, listing.JobPosition, listing.MonthlySalary,
		listing.JobType, listing.Remote, listing.Location, listing.JobDescription, listing.AboutCompany,
		listing.SkillsRequired, listing.AdditionalInfo, listing.ID,
	}
	result, err := r.dbpool.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *Repository) DeleteListing(id int64) (bool, error) {
	query := `
		DELETE FROM job_listings WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

type ListListingsOptions struct {
	Search   string
	Location string
	JobType  string
	Remote   string
	Sort     string
	Order    string
	Page     int
	Limit    int
}

// 允许排序的字段白名单，键为 API 中的字段名，值为真实的列名。
// 排序字段只能从这里取，绝不能把调用方传入的字符串直接拼进 SQL。
var sortableColumns = map[string]string{
	"id":            "id",
	"createdAt":     "created_at",
	"companyName":   "company_name",
	"jobPosition":   "job_position",
	"monthlySalary": "monthly_salary",
}

// normalize 填充缺省的排序和分页参数，并把 limit 限制在配置的上限内。
func (o *ListListingsOptions) normalize(defaultLimit, maxLimit int) {
	if o.Sort == "" {
		o.Sort = "createdAt"
	}
	if o.Order == "" {
		o.Order = "DESC"
	}
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = defaultLimit
	}
	if o.Limit > maxLimit {
		o.Limit = maxLimit
	}
}

// buildListListingsQuery 把筛选条件拼成一条带占位符的查询。
// 所有筛选条件之间是 AND 关系，缺省的条件不参与筛选。
func buildListListingsQuery(opts ListListingsOptions) (string, []any, error) {
	column, ok := sortableColumns[opts.Sort]
	if !ok {
		return "", nil, ErrInvalidSortField
	}

	order := strings.ToUpper(opts.Order)
	if order != "ASC" && order != "DESC" {
		return "", nil, ErrInvalidSortOrder
	}

	query := `SELECT ` + listingColumns + ` FROM job_listings`
	conditions := []string{}
	params := []any{}

	if opts.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(company_name ILIKE $%d OR job_position ILIKE $%d)", len(params)+1, len(params)+2))
		pattern := "%" + opts.Search + "%"
		params = append(params, pattern, pattern)
	}

	if opts.Location != "" {
		conditions = append(conditions, fmt.Sprintf("location = $%d", len(params)+1))
		params = append(params, opts.Location)
	}

	if opts.JobType != "" {
		conditions = append(conditions, fmt.Sprintf("job_type = $%d", len(params)+1))
		params = append(params, opts.JobType)
	}

	if opts.Remote != "" {
		conditions = append(conditions, fmt.Sprintf("remote = $%d", len(params)+1))
		params = append(params, opts.Remote)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", column, order, len(params)+1, len(params)+2)
	params = append(params, opts.Limit, (opts.Page-1)*opts.Limit)

	return query, params, nil
}

func (r *Repository) ListListings(opts ListListingsOptions) ([]*domain.Listing, error) {
	opts.normalize(r.cfg.Jobs.DefaultPageSize, r.cfg.Jobs.MaxPageSize)

	query, params, err := buildListListingsQuery(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]*domain.Listing, 0)
	for rows.Next() {
		listing := &domain.Listing{}
		if err := rows.Scan(listingDst(listing)...); err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}

func (r *Repository) CountListings() (int64, error) {
	query := `
		SELECT COUNT(*) FROM job_listings
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var count int64
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func listingDst(listing *domain.Listing) []any {
	return []any{
		&listing.ID, &listing.CompanyName, &listing.CompanyLogoURL, &listing.JobPosition, &listing.MonthlySalary,
		&listing.JobType, &listing.Remote, &listing.Location, &listing.JobDescription, &listing.AboutCompany,
		&listing.SkillsRequired, &listing.AdditionalInfo, &listing.UserID, &listing.CreatedAt,
	}
}
