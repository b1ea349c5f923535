package authhandler

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"employee-requests-backend/db"
	usersstore "employee-requests-backend/lib/users/store"
	authutils "employee-requests-backend/lib/utils/auth-utils"
	"employee-requests-backend/models"
	authapimodels "employee-requests-backend/models/api/auth"
	dbmodels "employee-requests-backend/models/db"
)

type Provider interface {
	Register(data authapimodels.RegisterRequest) (resp authapimodels.AuthResponse, err error)
	Login(email, password string) (resp authapimodels.AuthResponse, err error)
	Profile(userID uint) (user authapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

// NewHandlerWithStore используется в тестах.
func NewHandlerWithStore(usersStore usersstore.Provider) Provider {
	return impl{
		usersStore: usersStore,
	}
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) Register(data authapimodels.RegisterRequest) (authapimodels.AuthResponse, error) {
	logger := log.WithField("email", data.Email)
	exist, err := i.usersStore.ExistByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки почты")
		return authapimodels.AuthResponse{}, err
	}
	if exist {
		return authapimodels.AuthResponse{}, models.ErrEmailTaken
	}
	if data.ManagerID != nil {
		manager, err := i.usersStore.GetByID(*data.ManagerID)
		if err != nil {
			logger.WithError(err).Error("ошибка поиска руководителя")
			return authapimodels.AuthResponse{}, err
		}
		if manager == nil {
			return authapimodels.AuthResponse{}, models.ErrManagerNotFound
		}
		if !manager.Role.IsManager() {
			return authapimodels.AuthResponse{}, models.ErrNotAManager
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.WithError(err).Error("ошибка хеширования пароля")
		return authapimodels.AuthResponse{}, err
	}
	rec := dbmodels.User{
		Email:     data.Email,
		Password:  string(hash),
		Name:      data.Name,
		Role:      data.Role,
		ManagerID: data.ManagerID,
	}
	id, err := i.usersStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания пользователя")
		return authapimodels.AuthResponse{}, err
	}
	user, err := i.usersStore.GetByID(id)
	if err != nil || user == nil {
		logger.WithError(err).Error("ошибка получения созданного пользователя")
		return authapimodels.AuthResponse{}, models.ErrUserNotFound
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.AuthResponse{}, err
	}
	logger.
		WithField("user_id", user.ID).
		Info("зарегистрирован пользователь")
	return authapimodels.AuthResponse{
		User:  userConvert(*user),
		Token: token,
	}, nil
}

func (i impl) Login(email, password string) (authapimodels.AuthResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.usersStore.GetByEmail(email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пользователя по почте")
		return authapimodels.AuthResponse{}, err
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.AuthResponse{}, models.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.AuthResponse{}, models.ErrInvalidCredentials
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.AuthResponse{}, err
	}
	logger.
		WithField("user_id", user.ID).
		Info("пользователь вошел в систему")
	return authapimodels.AuthResponse{
		User:  userConvert(*user),
		Token: token,
	}, nil
}

func (i impl) Profile(userID uint) (authapimodels.UserView, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка поиска пользователя")
		return authapimodels.UserView{}, err
	}
	if user == nil {
		return authapimodels.UserView{}, models.ErrUserNotFound
	}
	return userConvert(*user), nil
}

func userConvert(rec dbmodels.User) authapimodels.UserView {
	return authapimodels.UserView{
		ID:        rec.ID,
		Email:     rec.Email,
		Name:      rec.Name,
		Role:      rec.Role,
		ManagerID: rec.ManagerID,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
