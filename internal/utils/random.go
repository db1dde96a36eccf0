package utils

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

// GenerateEmailFromChineseName 用姓名拼音加随机数字生成邮箱，例如 zhangwei12@example.com
func GenerateEmailFromChineseName(chineseName string, emailDomainName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	localPart := ""

	for _, p := range pinyinArray {
		localPart += p
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		localPart += string(digits[rand.Intn(len(digits))])
	}

	return localPart + "@" + emailDomainName
}

var roles = []domain.Role{
	domain.RoleEmployee,
	domain.RoleEmployee,
	domain.RoleEmployee,
	domain.RoleManager, // 员工和经理大约 3:1
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

func GenerateRandomUser(emailDomainName string) domain.User {
	return domain.User{
		Email: GenerateEmailFromChineseName(GenerateRandomChineseName(), emailDomainName),
		Role:  GenerateRandomRole(),
	}
}

var statuses = []domain.VacationStatus{
	domain.VacationStatusPending,
	domain.VacationStatusApproved,
	domain.VacationStatusRejected,
}

// GenerateRandomVacation 生成从 now 起 90 天内开始、持续 1~14 天的请假
// 非 pending 的记录会带上一条对应的 history
func GenerateRandomVacation(employeeEmail string, now time.Time) domain.Vacation {
	start := now.AddDate(0, 0, rand.Intn(90)+1)
	end := start.AddDate(0, 0, rand.Intn(14))
	requestedAt := now.Add(-time.Duration(rand.Intn(72)) * time.Hour).UTC()

	v := domain.Vacation{
		ID:            uuid.NewString(),
		EmployeeEmail: employeeEmail,
		StartDate:     start.Format(time.DateOnly),
		EndDate:       end.Format(time.DateOnly),
		Status:        statuses[rand.Intn(len(statuses))],
		RequestedAt:   requestedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}

	if v.Status != domain.VacationStatusPending {
		v.History = []domain.StatusChange{{
			Status:    v.Status,
			Timestamp: requestedAt.Add(time.Hour).Format("2006-01-02T15:04:05.000Z07:00"),
		}}
	}

	return v
}
