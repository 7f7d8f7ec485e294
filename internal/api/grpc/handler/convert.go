package handler

import (
	"github.com/dtroode/fostr-server/internal/api/grpc/fostrpb"
	"github.com/dtroode/fostr-server/internal/model"
	"github.com/dtroode/fostr-server/internal/validation"
)

func toProtoUser(u model.User) *fostrpb.User {
	out := &fostrpb.User{
		Id:             u.ID,
		Username:       u.Username,
		Role:           string(u.Role),
		Name:           u.Name,
		Age:            int32(u.Age),
		Gender:         string(u.Gender),
		Interests:      u.Interests,
		Hobbies:        u.Hobbies,
		ProfilePicture: u.ProfilePicture,
	}
	if !u.DateEntered.IsZero() {
		out.DateEntered = u.DateEntered.Format(validation.DateLayout)
	}
	return out
}

func toProtoUsers(users []model.User) []*fostrpb.User {
	out := make([]*fostrpb.User, 0, len(users))
	for _, u := range users {
		out = append(out, toProtoUser(u))
	}
	return out
}

func fromProtoForm(f *fostrpb.UserForm) model.UserForm {
	form := model.UserForm{
		Username:        f.Username,
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
		Role:            f.Role,
		Name:            f.Name,
		Age:             f.Age,
		Gender:          f.Gender,
		Interests:       f.Interests,
		Hobbies:         f.Hobbies,
		DateEntered:     f.DateEntered,
	}
	if f.Picture != nil && len(f.Picture.Data) > 0 {
		form.Picture = &model.Upload{Filename: f.Picture.Filename, Data: f.Picture.Data}
	}
	return form
}
