package handler

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/fostr-server/internal/model"
)

// handleError converts a service error into a gRPC status.
func handleError(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	var (
		verrs     model.ValidationErrors
		forbidden *model.ForbiddenError
	)
	switch {
	case errors.As(err, &verrs):
		code := codes.InvalidArgument
		if errors.Is(err, model.ErrUsernameTaken) {
			code = codes.AlreadyExists
		}
		return validationStatus(code, verrs)
	case errors.As(err, &forbidden):
		return status.Error(codes.PermissionDenied, forbidden.Reason)
	case errors.Is(err, model.ErrDuplicateKey):
		return status.Error(codes.AlreadyExists, "user already exists")
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "user not found")
	case errors.Is(err, model.ErrAuthFailure):
		return status.Error(codes.Unauthenticated, "Invalid login credentials!")
	case errors.Is(err, model.ErrTokenInvalid),
		errors.Is(err, model.ErrTokenRevoked),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenMismatch):
		return status.Error(codes.Unauthenticated, "invalid refresh token")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

func validationStatus(code codes.Code, verrs model.ValidationErrors) error {
	st := status.New(code, verrs.Error())

	br := &errdetails.BadRequest{}
	for _, fe := range verrs {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       fe.Field,
			Description: fe.Message,
		})
	}

	detailed, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
