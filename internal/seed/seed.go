package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/repository"
)

var requiredHeaders = []string{"email", "role"}

// ReadUsersCSV 读取带表头的 CSV，必须包含 email 和 role 两列，列的顺序不限
// 角色非法或邮箱为空的行会被跳过
func ReadUsersCSV(reader io.Reader) ([]domain.User, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	// 读取表头
	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("读取表头失败: %w", err)
	}
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}
	for _, h := range requiredHeaders {
		if !slices.Contains(headers, h) {
			return nil, fmt.Errorf("没有找到 %s 列", h)
		}
	}
	emailIdx := slices.Index(headers, "email")
	roleIdx := slices.Index(headers, "role")

	// 读取数据
	users := make([]domain.User, 0)
	line := 1
	for {
		row, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("读取文件失败: %w", err)
		}
		line++

		user := domain.User{
			Email: strings.TrimSpace(row[emailIdx]),
			Role:  domain.Role(strings.ToLower(strings.TrimSpace(row[roleIdx]))),
		}
		if user.Email == "" || !user.Role.Valid() {
			slog.Warn("跳过非法的用户记录", "line", line, "email", user.Email, "role", user.Role)
			continue
		}

		users = append(users, user)
	}

	return users, nil
}

func ImportUsersCSV(r *repository.Repository, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	users, err := ReadUsersCSV(file)
	if err != nil {
		return 0, err
	}

	return r.InsertUsers(users)
}
