package repository

import (
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
)

// GetUserByEmail 找不到用户时返回 nil, nil
func (r *Repository) GetUserByEmail(email string) (*domain.User, error) {
	var user *domain.User

	err := r.withRead(func(doc *domain.Document) error {
		for i := range doc.Users {
			if doc.Users[i].Email == email {
				u := doc.Users[i]
				user = &u
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUsersByRole(role domain.Role) ([]domain.User, error) {
	users := make([]domain.User, 0)

	err := r.withRead(func(doc *domain.Document) error {
		for _, u := range doc.Users {
			if u.Role == role {
				users = append(users, u)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// InsertUsers 仅供 seed 工具使用，邮箱已存在的用户会被跳过
func (r *Repository) InsertUsers(users []domain.User) (int, error) {
	inserted := 0

	err := r.withWrite(func(doc *domain.Document) error {
		existing := make(map[string]bool, len(doc.Users))
		for _, u := range doc.Users {
			existing[u.Email] = true
		}

		for _, u := range users {
			if existing[u.Email] {
				continue
			}
			doc.Users = append(doc.Users, u)
			existing[u.Email] = true
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}
