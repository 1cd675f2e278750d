package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hirestack/job-board/backend/internal/config"
	"github.com/hirestack/job-board/backend/internal/repository"
	"github.com/hirestack/job-board/backend/internal/seed"
	"github.com/hirestack/job-board/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var email string

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入默认用户和示例职位, 2: 插入随机职位)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.StringVar(&email, "email", "", "随机职位的发布者邮箱，缺省时使用默认用户")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 确保表已存在
	if err := seed.EnsureSchema(cfg, dbpool); err != nil {
		logger.Error("无法初始化数据库表", "error", err)
		return
	}

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		seed.SeedDefaultData(cfg, repo)
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的职位数量")
			return
		}

		ownerEmail := email
		if ownerEmail == "" {
			ownerEmail = cfg.Seed.AdminEmail
		}

		owner, err := repo.GetUserByEmail(ownerEmail)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				slog.Error("指定的发布者不存在", slog.String("email", ownerEmail))
			default:
				slog.Error("无法获取发布者", slog.String("error", err.Error()))
			}
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			listing := utils.GenerateRandomListing(owner.ID)
			if err := repo.CreateListing(listing); err != nil {
				slog.Error("无法插入职位", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入职位成功", slog.Int("count", n-cnt))
	default:
		slog.Error("指定的操作非法")
	}
}
