package service

import (
	"github.com/retriever-essentials/pantry/internal/hash"
	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/result"
	"github.com/retriever-essentials/pantry/internal/store"
	"github.com/retriever-essentials/pantry/internal/validate"
)

type AppUserService struct {
	users store.UserStore
}

func NewAppUserService(users store.UserStore) *AppUserService {
	return &AppUserService{users: users}
}

func (s *AppUserService) FindAll() ([]models.AppUser, error) {
	return s.users.FindAll()
}

func (s *AppUserService) FindByID(appUserID int) (*models.AppUser, error) {
	return s.users.FindByID(appUserID)
}

func (s *AppUserService) FindByEmail(email string) (*models.AppUser, error) {
	return s.users.FindByEmail(email)
}

func (s *AppUserService) Add(user *models.AppUser, password string) (*result.Result[models.AppUser], error) {
	res := result.New[models.AppUser]()

	if user == nil {
		res.AddMessage(result.Invalid, "User cannot be null.")
		return res, nil
	}

	if validate.IsNullOrBlank(user.Email) {
		res.AddMessage(result.Invalid, "Email is required.")
	} else if !validate.IsValidEmail(user.Email) {
		res.AddMessage(result.Invalid, "Email is not valid.")
	}

	if validate.IsNullOrBlank(password) {
		res.AddMessage(result.Invalid, "Password is required.")
	}

	if user.Role != models.RoleAdmin && user.Role != models.RoleAuthority {
		res.AddMessage(result.Invalid, "Role must be ADMIN or AUTHORITY.")
	}

	if !res.IsSuccess() {
		return res, nil
	}

	existing, err := s.users.FindByEmail(user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		res.AddMessage(result.Invalid, "Email already in use.")
		return res, nil
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hashed

	if err := s.users.Add(user); err != nil {
		return nil, err
	}
	res.SetPayload(*user)
	return res, nil
}

func (s *AppUserService) ChangePassword(appUserID int, newPassword string) (*result.Result[models.AppUser], error) {
	res := result.New[models.AppUser]()

	if len(newPassword) < 6 {
		res.AddMessage(result.Invalid, "Password must be at least 6 characters.")
		return res, nil
	}

	hashed, err := hash.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.UpdatePassword(appUserID, hashed)
	if err != nil {
		return nil, err
	}
	if !updated {
		res.AddMessage(result.NotFound, "User not found.")
	}

	return res, nil
}

func (s *AppUserService) EnableByID(appUserID int) (*result.Result[models.AppUser], error) {
	res := result.New[models.AppUser]()

	enabled, err := s.users.EnableByID(appUserID)
	if err != nil {
		return nil, err
	}
	if !enabled {
		res.AddMessage(result.NotFound, "User not found.")
	}

	return res, nil
}

func (s *AppUserService) DisableByID(appUserID int) (*result.Result[models.AppUser], error) {
	res := result.New[models.AppUser]()

	disabled, err := s.users.DisableByID(appUserID)
	if err != nil {
		return nil, err
	}
	if !disabled {
		res.AddMessage(result.NotFound, "User not found.")
	}

	return res, nil
}
