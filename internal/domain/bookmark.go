package domain

import (
	"time"
)

// Bookmark 只记录 (jobId, userId) 的关联，不保证被收藏的职位仍然存在，
// 职位被删除后对应的收藏记录会保留，但不会出现在收藏列表的查询结果中。
type Bookmark struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"jobId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
