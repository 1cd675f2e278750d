package repository

import (
	"context"
	"time"

	"github.com/hirestack/job-board/backend/internal/domain"
)

// CreateBookmark 无条件插入收藏记录：既不检查职位是否存在，
// 也不去重，同一个用户可以重复收藏同一个职位。
func (r *Repository) CreateBookmark(bookmark *domain.Bookmark) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO bookmarks (job_id, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	if err := r.dbpool.QueryRowContext(ctx, query, bookmark.JobID, bookmark.UserID).Scan(&bookmark.ID, &bookmark.CreatedAt); err != nil {
		return err
	}

	return nil
}

// GetBookmarkedListings 返回用户收藏的、当前仍然存在的职位。
// 内连接使得指向已删除职位的收藏记录自然地从结果中消失。
func (r *Repository) GetBookmarkedListings(userID int64) ([]*domain.Listing, error) {
	query := `
		SELECT
			jl.id, jl.company_name, jl.company_logo_url, jl.job_position, jl.monthly_salary,
			jl.job_type, jl.remote, jl.location, jl.job_description, jl.about_company,
			jl.skills_required, jl.additional_info, jl.user_id, jl.created_at
		FROM job_listings jl
		INNER JOIN bookmarks b ON jl.id = b.job_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
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
