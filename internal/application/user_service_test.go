package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/litreview-go/internal/api/middleware"
	"github.com/linskybing/litreview-go/internal/domain/user"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	return NewUserService(repos), mockUser
}

func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.UID = 5
		return nil
	})

	usr, err := svc.RegisterUser(user.CreateUserInput{Username: "alice", Password: "123456"})
	assert.NoError(t, err)
	assert.Equal(t, uint(5), usr.UID)
	assert.NotEqual(t, "123456", usr.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte("123456")))
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{UID: 1}, nil)

	_, err := svc.RegisterUser(user.CreateUserInput{Username: "alice", Password: "123456"})
	assert.Equal(t, ErrUsernameTaken, err)
}

func TestRegisterUser_LookupFailure(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	boom := errors.New("db down")

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, boom)

	_, err := svc.RegisterUser(user.CreateUserInput{Username: "alice", Password: "123456"})
	assert.ErrorIs(t, err, boom)
}

func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByUsername("bob").Return(user.User{UID: 2, Username: "bob", Password: string(hashed)}, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(uid uint, username string, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.LoginUser("bob", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByUsername("bob").Return(user.User{UID: 2, Username: "bob", Password: string(hashed)}, nil)

	u, token, err := svc.LoginUser("bob", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, user.User{}, u)
	assert.Empty(t, token)
}

func TestLoginUser_UserNotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, token, err := svc.LoginUser("ghost", "123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestFindUserByID(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1, Username: "alice"}, nil)
	mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{}, gorm.ErrRecordNotFound)

	u, err := svc.FindUserByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = svc.FindUserByID(2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
