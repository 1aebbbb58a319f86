package model

import "time"

type UserID string   // opaque account id
type Username string // login handle, also the key for messaging overlays

type UserStatus int

const (
	UserStatusPending UserStatus = iota
	UserStatusActive
	UserStatusLocked
	UserStatusDeleted
)

type UserType string

const (
	UserTypeAttendee  UserType = "attendee"
	UserTypeOrganizer UserType = "organizer"
	UserTypeSpeaker   UserType = "speaker"
	UserTypeVIP       UserType = "vip"
	UserTypeAdmin     UserType = "admin"
)

var UserTypes = []UserType{
	UserTypeAttendee,
	UserTypeOrganizer,
	UserTypeSpeaker,
	UserTypeVIP,
	UserTypeAdmin,
}

func ParseUserType(s string) (UserType, bool) {
	for _, t := range UserTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

type CreateUserParams struct {
	Handle   Username
	Password string
	Type     UserType
}

type User struct {
	ID        UserID     `db:"ID"`
	CreatedAt time.Time  `db:"CreatedAt"`
	UpdatedAt *time.Time `db:"UpdatedAt"`
	Status    UserStatus `db:"Status"`
	Handle    Username   `db:"Handle"`
	Type      UserType   `db:"Type"`
	Password  string     `db:"Password"`
}
