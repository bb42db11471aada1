package form_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruFelix/hesper/pkg/calendar"
	"github.com/ruFelix/hesper/pkg/dao"
	"github.com/ruFelix/hesper/pkg/form"
	"github.com/ruFelix/hesper/pkg/primitive"
	"github.com/ruFelix/hesper/pkg/validator"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	decl, err := form.LoadFile("testdata/signup.yaml")
	require.NoError(t, err)

	want := form.Declaration{
		Name: "signup",
		Fields: []form.FieldDeclaration{
			{Name: "birthday", Kind: "date", Mode: "married", Required: true, Min: "1900-01-01", Max: "2020-12-31"},
			{Name: "starts_at", Kind: "timestamp", Mode: "single", Default: "2024-01-01 09:00:00"},
			{Name: "referrer", Kind: "identifier", Class: "User", Method: "GetByEmail"},
		},
	}
	if diff := cmp.Diff(want, decl); diff != "" {
		t.Errorf("declaration mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclaration_Build(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	decl, err := form.LoadFile("testdata/signup.yaml")
	require.NoError(t, err)

	f, err := decl.Build(registry(t))
	require.NoError(t, err)
	assert.Equal(t, "signup", f.Name())

	birthday, err := f.Date("birthday")
	require.NoError(t, err)
	assert.Equal(t, primitive.ModeMarried, birthday.Mode())
	assert.True(t, birthday.Required())
	assert.Equal(t, "1900-01-01", birthday.Min().String())
	assert.Equal(t, "2020-12-31", birthday.Max().String())

	startsAt, err := f.Date("starts_at")
	require.NoError(t, err)
	assert.Equal(t, primitive.KindTimestamp, startsAt.Kind())
	assert.IsType(t, calendar.Timestamp{}, startsAt.SafeValue())

	err = f.Import(ctx, primitive.Scope{
		"birthday":  map[string]any{"day": "29", "month": "2", "year": "2000"},
		"starts_at": "2024-05-06 07:08:09",
		"referrer":  "bob@example.com",
	})
	require.NoError(t, err)

	referrer, err := f.Identifier("referrer")
	require.NoError(t, err)
	assert.Equal(t, int64(2), referrer.Value().ID())

	want := primitive.Scope{
		"birthday":  map[string]any{"day": 29, "month": 2, "year": 2000},
		"starts_at": "2024-05-06 07:08:09",
		"referrer":  "bob@example.com",
	}
	if diff := cmp.Diff(want, f.Export()); diff != "" {
		t.Errorf("export mismatch (-want +got):\n%s", diff)
	}

	err = f.Import(ctx, primitive.Scope{
		"birthday": map[string]any{"day": "29", "month": "2", "year": "2001"},
		"referrer": "nobody@example.com",
	})
	verrs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"birthday", "referrer"}, verrs.Fields())
}

func TestDeclaration_BuildErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		decl form.Declaration
		want error
	}{
		{
			name: "unknown class",
			decl: form.Declaration{Name: "x", Fields: []form.FieldDeclaration{
				{Name: "a", Kind: "identifier", Class: "Team"},
			}},
			want: dao.ErrClassNotFound,
		},
		{
			name: "unknown method",
			decl: form.Declaration{Name: "x", Fields: []form.FieldDeclaration{
				{Name: "a", Kind: "identifier", Class: "User", Method: "GetBySlug"},
			}},
			want: dao.ErrMethodNotFound,
		},
		{
			name: "inverted bounds",
			decl: form.Declaration{Name: "x", Fields: []form.FieldDeclaration{
				{Name: "a", Kind: "date", Min: "2021-01-01", Max: "2020-01-01"},
			}},
			want: primitive.ErrInvalidRange,
		},
		{
			name: "unknown kind",
			decl: form.Declaration{Name: "x", Fields: []form.FieldDeclaration{
				{Name: "a", Kind: "money"},
			}},
			want: form.ErrUnknownKind,
		},
		{
			name: "bad mode",
			decl: form.Declaration{Name: "x", Fields: []form.FieldDeclaration{
				{Name: "a", Kind: "date", Mode: "divorced"},
			}},
			want: primitive.ErrUnknownMode,
		},
		{
			name: "bad literal",
			decl: form.Declaration{Name: "x", Fields: []form.FieldDeclaration{
				{Name: "a", Kind: "date", Min: "yesterday"},
			}},
			want: calendar.ErrInvalidArgument,
		},
		{
			name: "identifier without class",
			decl: form.Declaration{Name: "x", Fields: []form.FieldDeclaration{
				{Name: "a", Kind: "identifier"},
			}},
			want: form.ErrInvalidDeclaration,
		},
		{
			name: "duplicate field",
			decl: form.Declaration{Name: "x", Fields: []form.FieldDeclaration{
				{Name: "a", Kind: "date"},
				{Name: "a", Kind: "timestamp"},
			}},
			want: form.ErrDuplicateField,
		},
		{
			name: "bad descriptor",
			decl: form.Declaration{Name: "x", Fields: []form.FieldDeclaration{
				{Name: "a", Kind: "identifier", Class: "User", Method: "User::"},
			}},
			want: dao.ErrBadDescriptor,
		},
		{
			name: "missing name",
			decl: form.Declaration{},
			want: form.ErrInvalidDeclaration,
		},
	}

	reg := registry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.decl.Build(reg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := form.Decode(strings.NewReader("name: x\nfields:\n  - name: a\n    kind: date\n    format: iso\n"))
		assert.ErrorIs(t, err, form.ErrInvalidDeclaration)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := form.Decode(strings.NewReader("fields: []\n"))
		assert.ErrorIs(t, err, form.ErrInvalidDeclaration)
	})

	t.Run("unquoted date literals", func(t *testing.T) {
		decl, err := form.Decode(strings.NewReader("name: x\nfields:\n  - name: a\n    kind: date\n    min: 2020-01-01\n"))
		require.NoError(t, err)
		assert.Equal(t, "2020-01-01", decl.Fields[0].Min)
	})
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"signup.yaml":   {Data: []byte("fields:\n  - name: birthday\n    kind: date\n")},
		"booking.yml":   {Data: []byte("name: reservation\nfields:\n  - name: at\n    kind: timestamp\n")},
		"README.md":     {Data: []byte("# forms")},
		"nested/x.yaml": {Data: []byte("name: nested\n")},
	}

	decls, err := form.LoadDir(fsys)
	require.NoError(t, err)
	assert.Len(t, decls, 2)
	assert.Contains(t, decls, "signup")
	assert.Contains(t, decls, "reservation")

	fsys["dup.yaml"] = &fstest.MapFile{Data: []byte("name: signup\n")}
	_, err = form.LoadDir(fsys)
	assert.ErrorIs(t, err, form.ErrInvalidDeclaration)

	fsys["dup.yaml"] = &fstest.MapFile{Data: []byte("name: [\n")}
	_, err = form.LoadDir(fsys)
	assert.ErrorIs(t, err, form.ErrInvalidDeclaration)
}
