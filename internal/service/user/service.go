package user

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"

	"uk.co.dudmesh.convene/internal/boot"
	"uk.co.dudmesh.convene/internal/model"
	"uk.co.dudmesh.convene/internal/userstore"
)

// Directory is the persistence the service needs. userstore satisfies it.
type Directory interface {
	Create(user *model.User) error
	FetchByHandle(handle model.Username) (*model.User, error)
	Exists(handle model.Username) (bool, error)
	ListByType(userType model.UserType) ([]model.Username, error)
	Close() error
}

type service struct {
	directory Directory
}

func New(config *boot.Config) (*service, error) {
	store, err := userstore.Open(config)
	if err != nil {
		return nil, fmt.Errorf("opening userstore: %w", err)
	}
	return &service{store}, nil
}

func (s *service) Close() error {
	return s.directory.Close()
}

func (s *service) Create(params *model.CreateUserParams) (*model.User, error) {
	if params.Handle == "" {
		return nil, fmt.Errorf("creating user: empty username")
	}
	if _, ok := model.ParseUserType(string(params.Type)); !ok {
		return nil, fmt.Errorf("creating user: unknown user type %q", params.Type)
	}

	exists, err := s.directory.Exists(params.Handle)
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if exists {
		return nil, model.ErrorUserExists
	}

	passwordBytes, err := bcrypt.GenerateFromPassword([]byte(params.Password), 10)
	if err != nil {
		return nil, fmt.Errorf("generating encoded password: %w", err)
	}
	encodedPassword := base64.StdEncoding.EncodeToString(passwordBytes)

	user := &model.User{
		ID:        model.NewUserID(),
		CreatedAt: time.Now().UTC(),
		Status:    model.UserStatusActive,
		Handle:    params.Handle,
		Type:      params.Type,
		Password:  encodedPassword,
	}

	if err := s.directory.Create(user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	log.Infof("created %s user %s", user.Type, user.Handle)

	return user, nil
}

// Authenticate never says which of username or password was wrong.
func (s *service) Authenticate(handle model.Username, password string) (*model.User, error) {
	user, err := s.directory.FetchByHandle(handle)
	if err != nil {
		if errors.Is(err, model.ErrorUserNotFound) {
			return nil, model.ErrorInvalidUsernameOrPassword
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	if user.Status != model.UserStatusActive {
		return nil, model.ErrorInvalidUsernameOrPassword
	}

	hash, err := base64.StdEncoding.DecodeString(user.Password)
	if err != nil {
		return nil, fmt.Errorf("decoding password: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, model.ErrorInvalidUsernameOrPassword
	}

	return user, nil
}

func (s *service) Exists(handle model.Username) (bool, error) {
	return s.directory.Exists(handle)
}

func (s *service) TypeOf(handle model.Username) (model.UserType, error) {
	user, err := s.directory.FetchByHandle(handle)
	if err != nil {
		return "", err
	}
	return user.Type, nil
}

// FilterExisting keeps the handles that belong to a registered user, in
// their original order, without duplicates.
func (s *service) FilterExisting(handles []model.Username) ([]model.Username, error) {
	seen := map[model.Username]bool{}
	existing := []model.Username{}
	for _, handle := range handles {
		if seen[handle] {
			continue
		}
		seen[handle] = true

		ok, err := s.directory.Exists(handle)
		if err != nil {
			return nil, fmt.Errorf("checking recipient %s: %w", handle, err)
		}
		if ok {
			existing = append(existing, handle)
		}
	}
	return existing, nil
}

func (s *service) UsernamesOfType(userType model.UserType) ([]model.Username, error) {
	return s.directory.ListByType(userType)
}
