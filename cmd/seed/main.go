package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/config"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/repository"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/seed"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/utils"
)

func main() {
	var op int
	var n int
	var csvPath string

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 初始化空文档, 2: 插入随机用户, 3: 为员工插入随机请假, 4: 从 CSV 导入用户)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.StringVar(&csvPath, "csv", "./data/users.csv", "导入用户的 CSV 文件，表头需包含 email 和 role")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 打开存储后端
	backend, closeBackend, err := repository.OpenBackend(cfg)
	if err != nil {
		logger.Error("无法打开存储后端", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	defer closeBackend()

	// 创建 repository
	repo := repository.NewRepository(cfg, backend)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		created, err := repo.EnsureDocument()
		if err != nil {
			slog.Error("无法初始化文档", slog.String("error", err.Error()))
			return
		}
		if created {
			slog.Info("已创建空文档")
		} else {
			slog.Info("文档已存在，未做修改")
		}
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的用户数量")
			return
		}

		users := make([]domain.User, 0, n)
		for i := 0; i < n; i++ {
			users = append(users, utils.GenerateRandomUser(cfg.Seed.UserDomain))
		}

		cnt, err := repo.InsertUsers(users)
		if err != nil {
			slog.Error("无法插入用户", slog.String("error", err.Error()))
			return
		}

		slog.Info("插入用户成功", slog.Int("count", cnt))
	case 3:
		if n <= 0 {
			slog.Error("请输入合法的请假数量")
			return
		}

		// 先获取所有员工
		employees, err := repo.GetUsersByRole(domain.RoleEmployee)
		if err != nil {
			slog.Error("无法获取员工列表", slog.String("error", err.Error()))
			return
		}
		if len(employees) == 0 {
			slog.Error("没有员工，请先插入用户")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			// 随机选一个员工
			employee := employees[rand.Intn(len(employees))]

			vacation := utils.GenerateRandomVacation(employee.Email, time.Now())
			if err := repo.CreateVacation(&vacation); err != nil {
				slog.Error("无法插入请假记录", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("插入请假记录成功", slog.Int("count", cnt))
	case 4:
		cnt, err := seed.ImportUsersCSV(repo, csvPath)
		if err != nil {
			slog.Error("无法导入用户", slog.String("path", csvPath), slog.String("error", err.Error()))
			return
		}

		slog.Info("导入用户成功", slog.Int("count", cnt))
	default:
		slog.Error("指定的操作非法")
	}
}
