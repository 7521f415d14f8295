package models

type UserRole string

const (
	UserRoleCandidate UserRole = "CANDIDATE"
	UserRoleRecruiter UserRole = "RECRUITER"
	UserRoleAdmin     UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	UserRoleCandidate: "Кандидат",
	UserRoleRecruiter: "Рекрутер",
	UserRoleAdmin:     "Администратор",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsStaff() bool {
	return r == UserRoleRecruiter || r == UserRoleAdmin
}

const SystemUser = "Система"
