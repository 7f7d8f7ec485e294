package fostrpb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestFileDescriptor_Services(t *testing.T) {
	t.Parallel()

	services := File_fostr_proto.Services()
	require.Equal(t, 2, services.Len())

	tests := []struct {
		service string
		methods []protoreflect.Name
	}{
		{service: Auth_ServiceDesc.ServiceName, methods: []protoreflect.Name{"Login", "Refresh", "Logout"}},
		{service: Users_ServiceDesc.ServiceName, methods: []protoreflect.Name{"List", "Get", "Create", "Update", "Delete", "Me", "GetPicture"}},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			t.Parallel()

			sd := services.ByName(protoreflect.FullName(tt.service).Name())
			require.NotNil(t, sd)
			assert.Equal(t, protoreflect.FullName(tt.service), sd.FullName())
			require.Equal(t, len(tt.methods), sd.Methods().Len())
			for i, name := range tt.methods {
				assert.Equal(t, name, sd.Methods().Get(i).Name())
			}
		})
	}
}

func TestUser_WireRoundTrip(t *testing.T) {
	t.Parallel()

	in := &User{
		Id:          7,
		Username:    "cuser",
		Role:        "Child",
		Age:         12,
		Interests:   []string{"chess", "lego"},
		DateEntered: "2024-03-01",
	}

	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &User{}
	require.NoError(t, proto.Unmarshal(b, out))
	assert.True(t, proto.Equal(in, out))
}

func TestCreateUserRequest_Picture(t *testing.T) {
	t.Parallel()

	in := &CreateUserRequest{Form: &UserForm{
		Username: "cuser",
		Age:      "12",
		Picture:  &Picture{Filename: "me.png", Data: []byte{0x89, 'P', 'N', 'G'}},
	}}

	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &CreateUserRequest{}
	require.NoError(t, proto.Unmarshal(b, out))
	assert.Equal(t, "me.png", out.GetForm().GetPicture().GetFilename())
	assert.Equal(t, in.Form.Picture.Data, out.Form.Picture.Data)
}
