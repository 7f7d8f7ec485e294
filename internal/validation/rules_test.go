package validation

import (
	"context"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/fostr-server/internal/model"
)

func TestAge(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr error
	}{
		{name: "zero", raw: "0", want: 0},
		{name: "positive", raw: "12", want: 12},
		{name: "surrounding whitespace", raw: " 45 ", want: 45},
		{name: "explicit plus", raw: "+7", want: 7},
		{name: "negative", raw: "-1", wantErr: model.ErrOutOfRange},
		{name: "word", raw: "twelve", wantErr: model.ErrInvalidFormat},
		{name: "fraction", raw: "1.5", wantErr: model.ErrInvalidFormat},
		{name: "empty", raw: "", wantErr: model.ErrInvalidFormat},
		{name: "largest storable", raw: "2147483647", want: math.MaxInt32},
		{name: "beyond column range", raw: "3000000000", wantErr: model.ErrOutOfRange},
		{name: "beyond int64", raw: "99999999999999999999", wantErr: model.ErrOutOfRange},
		{name: "very negative", raw: "-3000000000", wantErr: model.ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Age(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAge_Range(t *testing.T) {
	for a := -50; a <= 50; a++ {
		got, err := Age(strconv.Itoa(a))
		if a < 0 {
			require.ErrorIs(t, err, model.ErrOutOfRange, "age %d", a)
			continue
		}
		require.NoError(t, err, "age %d", a)
		assert.Equal(t, a, got)
	}
}

func TestAge_Messages(t *testing.T) {
	_, err := Age("abc")
	var fe *model.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Not an age!", fe.Message)
	assert.Equal(t, FieldAge, fe.Field)

	_, err = Age("-3")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Age is less than 0!", fe.Message)

	_, err = Age("3000000000")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Age is greater than 2147483647!", fe.Message)
}

func TestDelimitedList(t *testing.T) {
	got, err := DelimitedList("Sports; Video Games", ";", "interest")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sports", "Video Games"}, got)

	got, err = DelimitedList("Reading", ";", "hobby")
	require.NoError(t, err)
	assert.Equal(t, []string{"Reading"}, got)
}

func TestDelimitedList_TrailingDelimiter(t *testing.T) {
	for _, raw := range []string{";", "a;", "a; b;", " x ;"} {
		_, err := DelimitedList(raw, ";", "interest")
		require.ErrorIs(t, err, model.ErrTrailingDelimiter, raw)

		var fe *model.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "Remove last semicolon", fe.Message)
	}

	_, err := DelimitedList("a,b,", ",", "tag")
	require.ErrorIs(t, err, model.ErrTrailingDelimiter)
}

func TestDelimitedList_EmptyItem(t *testing.T) {
	_, err := DelimitedList("a;;b", ";", "x")
	require.ErrorIs(t, err, model.ErrEmptyItem)

	var fe *model.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 1, fe.Index)
	assert.Equal(t, "x", fe.Field)
	assert.Equal(t, "No data for x 2", fe.Message)
}

func TestDelimitedList_WhitespaceItem(t *testing.T) {
	_, err := DelimitedList(" ;b", ";", "hobby")
	var fe *model.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, fe.Index)
	assert.ErrorIs(t, err, model.ErrEmptyItem)
}

func TestSplitJoinList_RoundTrip(t *testing.T) {
	for _, s := range []string{"a", "Sports;Video Games", "one;two;three", "x y;z"} {
		assert.Equal(t, s, JoinList(SplitList(s, ";"), ";"))
	}
}

func TestUsernameAvailable(t *testing.T) {
	ctx := context.Background()
	existing := map[string]model.User{"cuser": {ID: 1, Username: "cuser"}}
	lookup := func(_ context.Context, username string) (model.User, error) {
		u, ok := existing[username]
		if !ok {
			return model.User{}, model.ErrNotFound
		}
		return u, nil
	}

	require.NoError(t, UsernameAvailable(ctx, "cuser3", lookup))

	err := UsernameAvailable(ctx, "cuser", lookup)
	require.ErrorIs(t, err, model.ErrUsernameTaken)
	var fe *model.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Username cuser is taken.", fe.Message)
}

func TestUsernameAvailable_LookupError(t *testing.T) {
	lookup := func(context.Context, string) (model.User, error) {
		return model.User{}, assert.AnError
	}
	err := UsernameAvailable(context.Background(), "x", lookup)
	require.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, model.ErrUsernameTaken)
}
