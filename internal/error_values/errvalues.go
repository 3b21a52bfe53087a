package errorvalues

import "errors"

// Not found
var (
	ErrUserNotFound        = errors.New("user doesn't exists")
	ErrCategoryNotFound    = errors.New("category doesn't exists")
	ErrPresetHabitNotFound = errors.New("preset habit doesn't exists")
	ErrCustomHabitNotFound = errors.New("custom habit doesn't exists")
	ErrHabitListNotFound   = errors.New("habit list doesn't exists")
	ErrHabitNotInList      = errors.New("habit not found in habit list")
)

// Conflicts
var (
	ErrUserExists            = errors.New("such user already exists")
	ErrCategoryExists        = errors.New("such category already exists")
	ErrHabitAlreadyCompleted = errors.New("habit is already completed")
)

// Access
var (
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("resource has different owner")
	ErrAdminRequired    = errors.New("administration rights required")
)

// Input
var (
	ErrValidation = errors.New("validation error")
	ErrEmptyPatch = errors.New("nothing to update")
)
