package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/fostr-server/internal/logger"
	"github.com/dtroode/fostr-server/internal/model"
)

// Seed pictures shipped with the development data set.
const (
	AdminPicture  = "admin.png"
	ParentPicture = "puser.png"
	ChildPicture  = "cuser.png"
	Child2Picture = "cuser2.png"
)

// SeedPictures lists the pictures referenced by DevUsers.
var SeedPictures = []string{AdminPicture, ParentPicture, ChildPicture, Child2Picture}

// DevUser is a development account with its plaintext password.
type DevUser struct {
	User     model.User
	Password string
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DevUsers returns the development accounts in insertion order.
func DevUsers() []DevUser {
	return []DevUser{
		{Password: "cuser", User: model.User{
			Username: "cuser", Role: model.RoleChild, Name: "Miles", Age: 12, Gender: model.GenderMale,
			Interests:   []string{"Sports", "Video Games"},
			Hobbies:     []string{"Messing up databases", "Soccer"},
			DateEntered: day(2021, time.November, 22), ProfilePicture: ChildPicture,
		}},
		{Password: "cuser2", User: model.User{
			Username: "cuser2", Role: model.RoleChild, Name: "Valkyria", Age: 11, Gender: model.GenderFemale,
			Interests:   []string{"Movies", "TV Shows"},
			Hobbies:     []string{"collecting popcans", "Painting Gundams"},
			DateEntered: day(2021, time.November, 22), ProfilePicture: Child2Picture,
		}},
		{Password: "puser", User: model.User{
			Username: "puser", Role: model.RoleParent, Name: "Ricardo", Age: 35, Gender: model.GenderFemale,
			Interests:   []string{"Gaming", "Video game design"},
			Hobbies:     []string{"Managing gamers"},
			DateEntered: day(2021, time.November, 22), ProfilePicture: ParentPicture,
		}},
		{Password: "nimda", User: model.User{
			Username: "admin", Role: model.RoleAdmin, Name: "Superuser", Age: 45, Gender: model.GenderMale,
			Interests:   []string{"administrative"},
			Hobbies:     []string{"Managing databases"},
			DateEntered: day(2021, time.November, 19), ProfilePicture: AdminPicture,
		}},
	}
}

// Seeder resets the user table to the development data set.
type Seeder struct {
	store  model.UserStore
	hasher model.PasswordHasher
	logger *logger.Logger
}

func NewSeeder(store model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *Seeder {
	return &Seeder{store: store, hasher: hasher, logger: logger}
}

// Seed deletes every user and inserts DevUsers in one transaction.
func (s *Seeder) Seed(ctx context.Context) ([]model.User, error) {
	devUsers := DevUsers()
	for i := range devUsers {
		hash, err := s.hasher.Hash(devUsers[i].Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", devUsers[i].User.Username, err)
		}
		devUsers[i].User.PasswordHash = hash
	}

	created := make([]model.User, 0, len(devUsers))
	err := s.store.InTx(ctx, func(tx model.UserStore) error {
		if err := tx.DeleteAll(ctx); err != nil {
			return err
		}
		for _, du := range devUsers {
			saved, err := tx.Create(ctx, du.User)
			if err != nil {
				return err
			}
			created = append(created, saved)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Seeder: failed to seed users",
			"error", err.Error())
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}

	for _, u := range created {
		s.logger.Info("Seeder: added user",
			"username", u.Username,
			"role", u.Role,
			"name", u.Name)
	}

	return created, nil
}
