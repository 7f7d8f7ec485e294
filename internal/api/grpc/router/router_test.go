package router

import (
	"context"
	"net"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	grpccontext "github.com/dtroode/fostr-server/internal/api/grpc/context"
	"github.com/dtroode/fostr-server/internal/api/grpc/fostrpb"
	"github.com/dtroode/fostr-server/internal/mocks"
	"github.com/dtroode/fostr-server/internal/model"
	"github.com/dtroode/fostr-server/internal/testutil"
)

var admin = model.User{ID: 4, Username: "admin", Role: model.RoleAdmin, Name: "Superuser"}

type routerDeps struct {
	auth   *mocks.AuthService
	users  *mocks.UserService
	tokens *mocks.TokenService
}

func startRouter(t *testing.T, opts ...grpc.ServerOption) (fostrpb.AuthClient, fostrpb.UsersClient, routerDeps) {
	t.Helper()

	d := routerDeps{
		auth:   mocks.NewAuthService(t),
		users:  mocks.NewUserService(t),
		tokens: mocks.NewTokenService(t),
	}
	s := New(d.auth, d.users, d.tokens, grpccontext.NewManager(), testutil.MakeNoopLogger()).Register(opts...)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return fostrpb.NewAuthClient(conn), fostrpb.NewUsersClient(conn), d
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func (d routerDeps) authenticated(token string, user model.User) {
	d.tokens.On("GetUserID", mock.Anything, token).Return(user.ID, nil)
	d.auth.On("Identify", mock.Anything, user.ID).Return(user, nil)
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	s := New(nil, nil, nil, mocks.NewContextManager(t), testutil.MakeNoopLogger()).Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, fostrpb.Auth_ServiceDesc.ServiceName)
	assert.Contains(t, info, fostrpb.Users_ServiceDesc.ServiceName)
}

func TestAuthSkip(t *testing.T) {
	t.Parallel()

	assert.False(t, authSkip(context.Background(), interceptors.NewServerCallMeta(fostrpb.Auth_Login_FullMethodName, nil, nil)))
	assert.True(t, authSkip(context.Background(), interceptors.NewServerCallMeta(fostrpb.Users_List_FullMethodName, nil, nil)))
}

func TestRouter_LoginWithoutToken(t *testing.T) {
	t.Parallel()

	authClient, _, d := startRouter(t)
	d.auth.On("Login", mock.Anything, "admin", "nimda").Return(model.Session{
		User:         admin,
		AccessToken:  "acc",
		RefreshToken: "ref",
	}, nil).Once()

	out, err := authClient.Login(context.Background(), &fostrpb.LoginRequest{Username: "admin", Password: "nimda"})
	require.NoError(t, err)
	assert.Equal(t, "acc", out.AccessToken)
	assert.Equal(t, "admin", out.User.Username)
}

func TestRouter_Logout(t *testing.T) {
	t.Parallel()

	authClient, _, d := startRouter(t)
	d.tokens.On("RevokeByToken", mock.Anything, "ref").Return(nil).Once()

	_, err := authClient.Logout(context.Background(), &fostrpb.LogoutRequest{RefreshToken: "ref"})
	require.NoError(t, err)
}

func TestRouter_UsersRequireToken(t *testing.T) {
	t.Parallel()

	_, usersClient, d := startRouter(t)

	_, err := usersClient.Me(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	d.tokens.On("GetUserID", mock.Anything, "expired").Return(int64(0), model.ErrTokenInvalid).Once()
	_, err = usersClient.Me(withToken("expired"), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRouter_Me(t *testing.T) {
	t.Parallel()

	_, usersClient, d := startRouter(t)
	d.authenticated("tok", admin)

	out, err := usersClient.Me(withToken("tok"), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.Id)
	assert.Equal(t, "Superuser", out.Name)
}

func TestRouter_Forbidden(t *testing.T) {
	t.Parallel()

	child := model.User{ID: 1, Username: "cuser", Role: model.RoleChild}
	_, usersClient, d := startRouter(t)
	d.authenticated("tok", child)
	d.users.On("GetVisible", mock.Anything, child, model.RoleChild, "cuser2").
		Return(model.User{}, &model.ForbiddenError{Action: "view", ActorRole: model.RoleChild, Reason: "Child can only see themselves!"}).Once()

	_, err := usersClient.Get(withToken("tok"), &fostrpb.GetUserRequest{Role: "Child", Username: "cuser2"})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.PermissionDenied, st.Code())
	assert.Equal(t, "Child can only see themselves!", st.Message())
}

func TestRouter_ValidationDetails(t *testing.T) {
	t.Parallel()

	_, usersClient, d := startRouter(t)
	d.authenticated("tok", admin)
	d.users.On("CreateUser", mock.Anything, admin, mock.Anything).Return(model.User{}, model.ValidationErrors{
		{Kind: model.ErrInvalidFormat, Field: "age", Index: -1, Message: "Not an age!"},
	}).Once()

	_, err := usersClient.Create(withToken("tok"), &fostrpb.CreateUserRequest{Form: &fostrpb.UserForm{Age: "twelve"}})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())

	require.Len(t, st.Details(), 1)
	br, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)
	assert.Equal(t, "age", br.FieldViolations[0].Field)
	assert.Equal(t, "Not an age!", br.FieldViolations[0].Description)
}

func TestMessageLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		uploadBytes int
		want        int
	}{
		{name: "default upload limit", uploadBytes: 5 << 20, want: 6 << 20},
		{name: "small upload keeps grpc default", uploadBytes: 1 << 20, want: 4 << 20},
		{name: "zero", uploadBytes: 0, want: 4 << 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MessageLimit(tt.uploadBytes))
		})
	}
}

func TestRouter_LargePictureUpload(t *testing.T) {
	t.Parallel()

	const uploadBytes = 5 << 20

	tests := []struct {
		name           string
		opts           []grpc.ServerOption
		reachesService bool
		wantCode       codes.Code
	}{
		{
			name:           "limit derived from upload size",
			opts:           []grpc.ServerOption{grpc.MaxRecvMsgSize(MessageLimit(uploadBytes))},
			reachesService: true,
			wantCode:       codes.InvalidArgument,
		},
		{
			name:     "grpc default limit",
			wantCode: codes.ResourceExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, usersClient, d := startRouter(t, tt.opts...)
			if tt.reachesService {
				d.authenticated("tok", admin)
				d.users.On("CreateUser", mock.Anything, admin, mock.MatchedBy(func(f model.UserForm) bool {
					return f.Picture != nil && len(f.Picture.Data) == uploadBytes
				})).Return(model.User{}, model.ValidationErrors{
					{Kind: model.ErrInvalidFormat, Field: "picture", Index: -1, Message: "Not an image!"},
				}).Once()
			}

			form := &fostrpb.UserForm{
				Username: "cuser",
				Picture:  &fostrpb.Picture{Filename: "me.png", Data: make([]byte, uploadBytes)},
			}
			_, err := usersClient.Create(withToken("tok"), &fostrpb.CreateUserRequest{Form: form})
			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}
