package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ritrovo/ritrovo/internal/errdef"
	"github.com/ritrovo/ritrovo/pkg/model"

	"golang.org/x/crypto/scrypt"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(userRepository userRepository, groupService groupService) *Service {
	return &Service{
		userRepository: userRepository,
		groupService:   groupService,
	}
}

type userRepository interface {
	create(ctx context.Context, user *model.User) error
	findByNickname(ctx context.Context, groupID uint, nickname string) (*model.User, error)
}

type groupService interface {
	FindBySlug(ctx context.Context, slug string) (*model.Group, error)
}

type Service struct {
	userRepository userRepository
	groupService   groupService
}

// SignUp stores a new user in the named group. The plaintext password never
// leaves this function unhashed.
func (s Service) SignUp(ctx context.Context, groupSlug string, nickname string, password string) (*model.User, error) {
	group, err := s.groupService.FindBySlug(ctx, groupSlug)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %s", err)
	}

	user := &model.User{
		GroupID:  group.ID,
		Nickname: nickname,
		Password: hashedPassword,
	}

	err = s.userRepository.create(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn verifies the nickname/password pair within the named group. Missing
// user and wrong password answer with the same message so nicknames can't be
// probed through the login form.
func (s Service) SignIn(ctx context.Context, groupSlug string, nickname string, password string) (*model.User, error) {
	unauthorizedError := "invalid nickname and password combination"

	group, err := s.groupService.FindBySlug(ctx, groupSlug)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.findByNickname(ctx, group.ID, nickname)
	if err != nil {
		if errdef.IsNotFound(err) {
			return nil, errdef.NewUnauthorized("%s", unauthorizedError)
		}
		return nil, err
	}

	match, err := comparePasswords(user.Password, password)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %s", err)
	}

	if !match {
		return nil, errdef.NewUnauthorized("%s", unauthorizedError)
	}

	return user, nil
}

// FindByNickname resolves the user a session identity points at.
func (s Service) FindByNickname(ctx context.Context, groupID uint, nickname string) (*model.User, error) {
	return s.userRepository.findByNickname(ctx, groupID, nickname)
}

func hashPassword(password string) (string, error) {
	// example for making salt - https://play.golang.org/p/_Aw6WeWC42I
	salt := make([]byte, 32)
	_, err := rand.Read(salt)
	if err != nil {
		return "", err
	}

	// using recommended cost parameters from - https://godoc.org/golang.org/x/crypto/scrypt
	hash, err := scrypt.Key([]byte(password), salt, 32768, 8, 1, 32)
	if err != nil {
		return "", err
	}

	hashedPassword := fmt.Sprintf("%s.%s", hex.EncodeToString(hash), hex.EncodeToString(salt))

	return hashedPassword, nil
}

func comparePasswords(storedPassword string, suppliedPassword string) (bool, error) {
	passwordAndSalt := strings.Split(storedPassword, ".")
	if len(passwordAndSalt) != 2 {
		return false, fmt.Errorf("wrong password/salt format")
	}

	salt, err := hex.DecodeString(passwordAndSalt[1])
	if err != nil {
		return false, fmt.Errorf("unable to verify user password")
	}

	hash, err := scrypt.Key([]byte(suppliedPassword), salt, 32768, 8, 1, 32)
	if err != nil {
		return false, err
	}

	return hex.EncodeToString(hash) == passwordAndSalt[0], nil
}
