package service

import (
	"context"
	"fmt"
	"regexp"

	apperrors "github.com/spec-kit/fastfood-service/pkg/util"
)

var (
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9.+_-]+@[A-Za-z0-9._-]+\.[a-zA-Z]*$`)
	namePattern     = regexp.MustCompile(`^[A-Za-z\s]{4,30}$`)
	contactPattern  = regexp.MustCompile(`^[0-9]{10,13}$`)
	passwordPattern = regexp.MustCompile(`^[A-Za-z0-9]{6,}$`)
)

func (s *AuthService) validateRegistration(ctx context.Context, in RegisterInput) error {
	if !passwordPattern.MatchString(in.Password) {
		return apperrors.NewValidationError(
			"Password is wrong. It should be at-least 6 characters long, and alphanumeric.", nil)
	}
	if !emailPattern.MatchString(in.Email) {
		return apperrors.NewValidationError(
			fmt.Sprintf("User email %s is wrong, It should be in the format (xxxxx@xxxx.xxx)", in.Email), nil)
	}
	if !namePattern.MatchString(in.UserName) {
		return apperrors.NewValidationError(
			"A name should consist of only alphabetic characters", nil)
	}
	if !contactPattern.MatchString(in.Contact) {
		return apperrors.NewValidationError(
			fmt.Sprintf("Contact %s is wrong. should be in the form, (070******) and between 10 and 13 digits", in.Contact), nil)
	}
	if !in.Role.Valid() {
		return apperrors.NewValidationError(
			fmt.Sprintf("User type %s does not exist", in.Role), nil)
	}

	emailTaken, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if emailTaken {
		return apperrors.NewConflict("email already exists", nil)
	}

	nameTaken, err := s.users.ExistsByUserName(ctx, in.UserName)
	if err != nil {
		return err
	}
	if nameTaken {
		return apperrors.NewConflict("Username already taken", nil)
	}
	return nil
}
