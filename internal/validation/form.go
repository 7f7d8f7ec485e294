package validation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/fostr-server/internal/model"
)

// Form field names used in FieldError.Field.
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldRole            = "role"
	FieldName            = "name"
	FieldAge             = "age"
	FieldGender          = "gender"
	FieldInterests       = "interests"
	FieldHobbies         = "hobbies"
	FieldDateEntered     = "date_entered"
	FieldPicture         = "picture"
)

var fieldOrder = []string{
	FieldUsername,
	FieldPassword,
	FieldConfirmPassword,
	FieldRole,
	FieldName,
	FieldAge,
	FieldGender,
	FieldInterests,
	FieldHobbies,
	FieldDateEntered,
	FieldPicture,
}

// DateLayout is the accepted date_entered format (DD/MM/YYYY).
const DateLayout = "02/01/2006"

// maxPasswordBytes is the longest input bcrypt accepts. The limit is in
// bytes, not characters.
const maxPasswordBytes = 72

type profileFields struct {
	Username    string `json:"username" validate:"required,max=256"`
	Role        string `json:"role" validate:"required,oneof=Admin Parent Child"`
	Name        string `json:"name" validate:"required,max=128"`
	Age         string `json:"age" validate:"required"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female"`
	Interests   string `json:"interests" validate:"required"`
	Hobbies     string `json:"hobbies" validate:"required"`
	DateEntered string `json:"date_entered" validate:"required"`
}

// Options control how a form is checked.
type Options struct {
	// Lookup enables the username availability rule. It is nil on update
	// where the username cannot change.
	Lookup UsernameLookup
	// AllowBlankPassword accepts an empty password with an empty
	// confirmation and marks the candidate as keeping its current hash.
	AllowBlankPassword bool
}

// Candidate is a form that passed every rule.
type Candidate struct {
	Username     string
	Password     string
	KeepPassword bool
	Role         model.Role
	Name         string
	Age          int
	Gender       model.Gender
	Interests    []string
	Hobbies      []string
	DateEntered  time.Time
	Picture      *model.Upload
}

// Validator checks raw user forms.
type Validator struct {
	validate          *validator.Validate
	allowedExtensions []string
	maxPictureBytes   int
}

// New creates a Validator accepting pictures with the given extensions
// (without dot) up to maxPictureBytes. A zero maxPictureBytes disables the
// size limit.
func New(allowedExtensions []string, maxPictureBytes int) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	exts := make([]string, 0, len(allowedExtensions))
	for _, e := range allowedExtensions {
		exts = append(exts, strings.ToLower(strings.TrimPrefix(e, ".")))
	}

	return &Validator{validate: v, allowedExtensions: exts, maxPictureBytes: maxPictureBytes}
}

// Form runs every rule over form and returns the typed candidate. Rule
// failures are reported together as model.ValidationErrors, one entry per
// field. Any other error comes from the username lookup.
func (v *Validator) Form(ctx context.Context, form model.UserForm, opts Options) (Candidate, error) {
	fields := profileFields{
		Username:    strings.TrimSpace(form.Username),
		Role:        strings.TrimSpace(form.Role),
		Name:        strings.TrimSpace(form.Name),
		Age:         strings.TrimSpace(form.Age),
		Gender:      strings.TrimSpace(form.Gender),
		Interests:   strings.TrimSpace(form.Interests),
		Hobbies:     strings.TrimSpace(form.Hobbies),
		DateEntered: strings.TrimSpace(form.DateEntered),
	}

	failed := make(map[string]*model.FieldError)
	record := func(err error) {
		var fe *model.FieldError
		if errors.As(err, &fe) {
			if _, ok := failed[fe.Field]; !ok {
				failed[fe.Field] = fe
			}
		}
	}

	if err := v.validate.Struct(fields); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Candidate{}, fmt.Errorf("failed to validate form: %w", err)
		}
		for _, fe := range verrs {
			record(fromValidator(fe.Field(), fe))
		}
	}

	cand := Candidate{
		Username: fields.Username,
		Role:     model.Role(fields.Role),
		Name:     fields.Name,
		Gender:   model.Gender(fields.Gender),
		Picture:  form.Picture,
	}

	v.checkPassword(form, opts, &cand, record)

	if failed[FieldAge] == nil {
		age, err := Age(fields.Age)
		record(err)
		cand.Age = age
	}
	if failed[FieldInterests] == nil {
		items, err := DelimitedList(form.Interests, ListDelimiter, "interest")
		record(asField(err, FieldInterests))
		cand.Interests = items
	}
	if failed[FieldHobbies] == nil {
		items, err := DelimitedList(form.Hobbies, ListDelimiter, "hobby")
		record(asField(err, FieldHobbies))
		cand.Hobbies = items
	}
	if failed[FieldDateEntered] == nil {
		d, err := time.Parse(DateLayout, fields.DateEntered)
		if err != nil {
			record(&model.FieldError{Kind: model.ErrInvalidFormat, Field: FieldDateEntered, Index: -1, Message: "Not a valid date value."})
		}
		cand.DateEntered = d
	}
	if form.Picture != nil && len(form.Picture.Data) > 0 {
		record(v.Picture(*form.Picture))
	} else {
		cand.Picture = nil
	}

	if opts.Lookup != nil && failed[FieldUsername] == nil {
		err := UsernameAvailable(ctx, cand.Username, opts.Lookup)
		var fe *model.FieldError
		if err != nil && !errors.As(err, &fe) {
			return Candidate{}, err
		}
		record(err)
	}

	if len(failed) > 0 {
		errs := make(model.ValidationErrors, 0, len(failed))
		for _, name := range fieldOrder {
			if fe, ok := failed[name]; ok {
				errs = append(errs, fe)
			}
		}
		return Candidate{}, errs
	}

	return cand, nil
}

func (v *Validator) checkPassword(form model.UserForm, opts Options, cand *Candidate, record func(error)) {
	if opts.AllowBlankPassword && form.Password == "" && form.ConfirmPassword == "" {
		cand.KeepPassword = true
		return
	}

	if err := v.validate.Var(form.Password, "required"); err != nil {
		record(fromVarError(FieldPassword, err))
		return
	}
	if len(form.Password) > maxPasswordBytes {
		record(&model.FieldError{
			Kind:    model.ErrOutOfRange,
			Field:   FieldPassword,
			Index:   -1,
			Message: fmt.Sprintf("Field cannot be longer than %d bytes.", maxPasswordBytes),
		})
		return
	}
	if err := v.validate.Var(form.ConfirmPassword, "required"); err != nil {
		record(fromVarError(FieldConfirmPassword, err))
		return
	}
	if err := v.validate.VarWithValue(form.ConfirmPassword, form.Password, "eqfield"); err != nil {
		record(fromVarError(FieldConfirmPassword, err))
		return
	}
	cand.Password = form.Password
}

// Picture checks an uploaded image's extension, size and encoding.
func (v *Validator) Picture(up model.Upload) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(up.Filename), "."))
	if !slices.Contains(v.allowedExtensions, ext) {
		return &model.FieldError{
			Kind:    model.ErrInvalidFormat,
			Field:   FieldPicture,
			Index:   -1,
			Message: "File does not have an approved extension: " + strings.Join(v.allowedExtensions, ", "),
		}
	}
	if v.maxPictureBytes > 0 && len(up.Data) > v.maxPictureBytes {
		return &model.FieldError{
			Kind:    model.ErrOutOfRange,
			Field:   FieldPicture,
			Index:   -1,
			Message: fmt.Sprintf("File is larger than %d bytes.", v.maxPictureBytes),
		}
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(up.Data)); err != nil {
		return &model.FieldError{Kind: model.ErrInvalidFormat, Field: FieldPicture, Index: -1, Message: "File is not a valid image."}
	}
	return nil
}

// FormFromUser fills a form with a stored user's values, joining list fields
// with ListDelimiter. Passwords are left blank.
func FormFromUser(u model.User) model.UserForm {
	return model.UserForm{
		Username:    u.Username,
		Role:        string(u.Role),
		Name:        u.Name,
		Age:         fmt.Sprintf("%d", u.Age),
		Gender:      string(u.Gender),
		Interests:   JoinList(u.Interests, ListDelimiter),
		Hobbies:     JoinList(u.Hobbies, ListDelimiter),
		DateEntered: u.DateEntered.Format(DateLayout),
	}
}

func asField(err error, field string) error {
	var fe *model.FieldError
	if errors.As(err, &fe) {
		fe.Field = field
		return fe
	}
	return err
}

func fromVarError(field string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fromValidator(field, verrs[0])
	}
	return &model.FieldError{Kind: model.ErrInvalidFormat, Field: field, Index: -1, Message: err.Error()}
}

func fromValidator(field string, fe validator.FieldError) *model.FieldError {
	switch fe.Tag() {
	case "required":
		return &model.FieldError{Kind: model.ErrRequired, Field: field, Index: -1, Message: "This field is required."}
	case "max":
		return &model.FieldError{
			Kind:    model.ErrOutOfRange,
			Field:   field,
			Index:   -1,
			Message: fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param()),
		}
	case "oneof":
		return &model.FieldError{Kind: model.ErrInvalidFormat, Field: field, Index: -1, Message: "Not a valid choice."}
	case "eqfield":
		return &model.FieldError{Kind: model.ErrInvalidFormat, Field: field, Index: -1, Message: "Field must be equal to password."}
	default:
		return &model.FieldError{Kind: model.ErrInvalidFormat, Field: field, Index: -1, Message: fe.Error()}
	}
}
