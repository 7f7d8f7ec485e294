package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dtroode/fostr-server/internal/logger"
	"github.com/dtroode/fostr-server/internal/model"
	"github.com/dtroode/fostr-server/internal/policy"
	"github.com/dtroode/fostr-server/internal/validation"
)

// PictureStore saves and releases profile pictures.
type PictureStore interface {
	Default() string
	Save(ctx context.Context, up model.Upload) (string, error)
	Release(ctx context.Context, ref string)
	Read(ctx context.Context, ref string) ([]byte, error)
}

// PasswordPolicy controls how the password field is treated on update.
type PasswordPolicy string

const (
	// PasswordAlways requires and rehashes the submitted password on every
	// update.
	PasswordAlways PasswordPolicy = "always"
	// PasswordKeepWhenBlank keeps the stored hash when the password and its
	// confirmation are both left empty.
	PasswordKeepWhenBlank PasswordPolicy = "keep-when-blank"
)

// ParsePasswordPolicy converts s into a PasswordPolicy.
func ParsePasswordPolicy(s string) (PasswordPolicy, error) {
	switch p := PasswordPolicy(s); p {
	case PasswordAlways, PasswordKeepWhenBlank:
		return p, nil
	default:
		return "", fmt.Errorf("unknown password update policy %q", s)
	}
}

// Users implements role-scoped management of user records.
type Users struct {
	store          model.UserStore
	hasher         model.PasswordHasher
	pictures       PictureStore
	validator      *validation.Validator
	passwordPolicy PasswordPolicy
	logger         *logger.Logger
}

func NewUsers(
	store model.UserStore,
	hasher model.PasswordHasher,
	pictures PictureStore,
	validator *validation.Validator,
	passwordPolicy PasswordPolicy,
	logger *logger.Logger,
) *Users {
	return &Users{
		store:          store,
		hasher:         hasher,
		pictures:       pictures,
		validator:      validator,
		passwordPolicy: passwordPolicy,
		logger:         logger,
	}
}

// ListVisible returns every record the actor may see, in store order.
func (s *Users) ListVisible(ctx context.Context, actor model.User) ([]model.User, error) {
	s.logger.Debug("Users service: listing users",
		"actor", actor.Username,
		"role", actor.Role)

	scope := policy.ListScope(policy.ActorOf(actor))

	var (
		users []model.User
		err   error
	)
	switch scope.Kind {
	case policy.ScopeAll:
		users, err = s.store.GetAll(ctx)
	case policy.ScopeRole:
		users, err = s.store.GetByRole(ctx, scope.Role)
	case policy.ScopeSelf:
		var u model.User
		u, err = s.store.GetByUsername(ctx, scope.Username)
		switch {
		case err == nil:
			users = []model.User{u}
		case errors.Is(err, model.ErrNotFound):
			users, err = []model.User{}, nil
		}
	default:
		return nil, policy.Authorize(policy.ActorOf(actor), policy.ActionList, policy.Target{})
	}
	if err != nil {
		s.logger.Error("Users service: failed to list users",
			"actor", actor.Username,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// GetVisible returns the record named username. role is the role the caller
// claims for it and is only used for the access decision.
func (s *Users) GetVisible(ctx context.Context, actor model.User, role model.Role, username string) (model.User, error) {
	s.logger.Debug("Users service: getting user",
		"actor", actor.Username,
		"username", username)

	if err := policy.Authorize(policy.ActorOf(actor), policy.ActionView, policy.Target{Role: role, Username: username}); err != nil {
		s.logger.Info("Users service: view denied",
			"actor", actor.Username,
			"username", username,
			"error", err.Error())
		return model.User{}, err
	}

	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// CreateUser validates form and stores a new record.
func (s *Users) CreateUser(ctx context.Context, actor model.User, form model.UserForm) (model.User, error) {
	s.logger.Debug("Users service: creating user",
		"actor", actor.Username,
		"username", form.Username)

	if err := policy.Authorize(policy.ActorOf(actor), policy.ActionCreate, policy.Target{}); err != nil {
		return model.User{}, err
	}

	cand, err := s.validator.Form(ctx, form, validation.Options{Lookup: s.store.GetByUsername})
	if err != nil {
		s.logger.Info("Users service: create rejected",
			"username", form.Username,
			"error", err.Error())
		return model.User{}, err
	}

	hash, err := s.hasher.Hash(cand.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	picture := s.pictures.Default()
	if cand.Picture != nil {
		if picture, err = s.pictures.Save(ctx, *cand.Picture); err != nil {
			return model.User{}, fmt.Errorf("failed to save picture: %w", err)
		}
	}

	user := model.User{
		Username:       cand.Username,
		PasswordHash:   hash,
		Role:           cand.Role,
		Name:           cand.Name,
		Age:            cand.Age,
		Gender:         cand.Gender,
		Interests:      cand.Interests,
		Hobbies:        cand.Hobbies,
		DateEntered:    cand.DateEntered,
		ProfilePicture: picture,
	}

	var saved model.User
	err = s.store.InTx(ctx, func(tx model.UserStore) error {
		var err error
		saved, err = tx.Create(ctx, user)
		return err
	})
	if err != nil {
		if cand.Picture != nil {
			s.pictures.Release(ctx, picture)
		}
		s.logger.Error("Users service: failed to store user",
			"username", user.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Users service: user created",
		"actor", actor.Username,
		"username", saved.Username,
		"role", saved.Role)

	return saved, nil
}

// UpdateUser replaces the fields of the record named target. The username
// itself cannot change.
func (s *Users) UpdateUser(ctx context.Context, actor model.User, target string, form model.UserForm) (model.User, error) {
	s.logger.Debug("Users service: updating user",
		"actor", actor.Username,
		"username", target)

	if err := policy.Authorize(policy.ActorOf(actor), policy.ActionUpdate, policy.Target{}); err != nil {
		return model.User{}, err
	}

	existing, err := s.store.GetByUsername(ctx, target)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if strings.TrimSpace(form.Username) != existing.Username {
		return model.User{}, &model.ForbiddenError{
			Action:    string(policy.ActionUpdate),
			ActorRole: actor.Role,
			Reason:    "Cannot change username!",
		}
	}

	cand, err := s.validator.Form(ctx, form, validation.Options{
		AllowBlankPassword: s.passwordPolicy == PasswordKeepWhenBlank,
	})
	if err != nil {
		s.logger.Info("Users service: update rejected",
			"username", target,
			"error", err.Error())
		return model.User{}, err
	}

	hash := existing.PasswordHash
	if !cand.KeepPassword {
		if hash, err = s.hasher.Hash(cand.Password); err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	picture := existing.ProfilePicture
	if cand.Picture != nil {
		if picture, err = s.pictures.Save(ctx, *cand.Picture); err != nil {
			return model.User{}, fmt.Errorf("failed to save picture: %w", err)
		}
	}

	user := existing
	user.PasswordHash = hash
	user.Role = cand.Role
	user.Name = cand.Name
	user.Age = cand.Age
	user.Gender = cand.Gender
	user.Interests = cand.Interests
	user.Hobbies = cand.Hobbies
	user.DateEntered = cand.DateEntered
	user.ProfilePicture = picture

	var saved model.User
	err = s.store.InTx(ctx, func(tx model.UserStore) error {
		var err error
		saved, err = tx.Update(ctx, user)
		return err
	})
	if err != nil {
		if cand.Picture != nil {
			s.pictures.Release(ctx, picture)
		}
		s.logger.Error("Users service: failed to store user",
			"username", target,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	if cand.Picture != nil {
		s.pictures.Release(ctx, existing.ProfilePicture)
	}

	s.logger.Info("Users service: user updated",
		"actor", actor.Username,
		"username", saved.Username,
		"role", saved.Role)

	return saved, nil
}

// DeleteUser removes the record named target and releases its picture.
func (s *Users) DeleteUser(ctx context.Context, actor model.User, target string) error {
	s.logger.Debug("Users service: deleting user",
		"actor", actor.Username,
		"username", target)

	if err := policy.Authorize(policy.ActorOf(actor), policy.ActionDelete, policy.Target{}); err != nil {
		return err
	}

	existing, err := s.store.GetByUsername(ctx, target)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	err = s.store.InTx(ctx, func(tx model.UserStore) error {
		return tx.Delete(ctx, existing.ID)
	})
	if err != nil {
		s.logger.Error("Users service: failed to delete user",
			"username", target,
			"error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.pictures.Release(ctx, existing.ProfilePicture)

	s.logger.Info("Users service: user deleted",
		"actor", actor.Username,
		"username", target)

	return nil
}

// Picture returns the stored bytes of a profile picture.
func (s *Users) Picture(ctx context.Context, ref string) ([]byte, error) {
	return s.pictures.Read(ctx, ref)
}
