package primitive_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruFelix/hesper/pkg/dao"
	"github.com/ruFelix/hesper/pkg/primitive"
)

type article struct {
	id   int64
	slug string
}

func (a *article) ID() any {
	return a.id
}

type author struct {
	id int64
}

func (a *author) ID() any {
	return a.id
}

type articles struct {
	*dao.Memory[*article]
}

func (a articles) GetBySlug(_ context.Context, slug string) (*article, error) {
	for _, id := range []int64{1, 2, 3} {
		e, err := a.GetByID(context.Background(), id)
		if err == nil && e.(*article).slug == slug {
			return e.(*article), nil
		}
	}
	return nil, dao.ErrNotFound
}

// countingDAO records how many lookups reached it.
type countingDAO struct {
	dao.DAO
	calls int
}

func (c *countingDAO) GetByID(ctx context.Context, id any) (dao.Entity, error) {
	c.calls++
	return c.DAO.GetByID(ctx, id)
}

func (c *countingDAO) Unwrap() dao.DAO {
	return c.DAO
}

func fixtures(t *testing.T) (*dao.Registry, *countingDAO) {
	t.Helper()

	reg := dao.NewRegistry()
	store := &countingDAO{DAO: articles{dao.NewMemory(
		&article{id: 1, slug: "hello"},
		&article{id: 2, slug: "world"},
	)}}
	_, err := reg.Register("Article", &article{}, store)
	require.NoError(t, err)
	_, err = reg.Register("Author", &author{}, dao.NewMemory(&author{id: 1}))
	require.NoError(t, err)
	return reg, store
}

func newArticleField(t *testing.T) (*primitive.Identifier, *countingDAO) {
	t.Helper()
	reg, store := fixtures(t)
	f := primitive.NewIdentifier("article", primitive.WithRegistry(reg))
	require.NoError(t, f.Of("Article"))
	return f, store
}

func TestIdentifier_Import(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("resolves a known id", func(t *testing.T) {
		f, _ := newArticleField(t)
		for _, raw := range []any{"1", 1, int64(1), float64(1), " 1 "} {
			res, err := f.Import(ctx, primitive.Scope{"article": raw})
			require.NoError(t, err)
			require.Equal(t, primitive.ResultImported, res, raw)
			assert.Equal(t, int64(1), f.Value().ID())
			assert.Equal(t, raw, f.Export())
			assert.True(t, f.IsImported())
		}
	})

	t.Run("unknown id fails", func(t *testing.T) {
		f, _ := newArticleField(t)
		res, err := f.Import(ctx, primitive.Scope{"article": "42"})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultFailed, res)
		assert.Nil(t, f.Value())
		assert.Nil(t, f.Export())
		assert.ErrorIs(t, f.Reason(), dao.ErrNotFound)
	})

	t.Run("blank is empty", func(t *testing.T) {
		f, store := newArticleField(t)
		f.SetRequired(true)
		for _, scope := range []primitive.Scope{{}, {"article": ""}, {"article": nil}, {"article": "0"}} {
			res, err := f.Import(ctx, scope)
			require.NoError(t, err)
			assert.Equal(t, primitive.ResultEmpty, res)
			assert.Nil(t, f.Value())
		}
		assert.Zero(t, store.calls)
	})

	t.Run("entity of the class is taken without lookup", func(t *testing.T) {
		f, store := newArticleField(t)
		a := &article{id: 7, slug: "detached"}
		res, err := f.Import(ctx, primitive.Scope{"article": a})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultImported, res)
		assert.Same(t, a, f.Value())
		assert.Equal(t, int64(7), f.Export())
		assert.Zero(t, store.calls)
	})

	t.Run("entity of another class fails without lookup", func(t *testing.T) {
		f, store := newArticleField(t)
		res, err := f.Import(ctx, primitive.Scope{"article": &author{id: 1}})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultFailed, res)
		assert.ErrorIs(t, f.Reason(), primitive.ErrWrongType)
		assert.Nil(t, f.Value())
		assert.Zero(t, store.calls)
	})

	t.Run("failure clears a previous value", func(t *testing.T) {
		f, _ := newArticleField(t)
		res, err := f.Import(ctx, primitive.Scope{"article": "2"})
		require.NoError(t, err)
		require.Equal(t, primitive.ResultImported, res)

		res, err = f.Import(ctx, primitive.Scope{"article": "3"})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultFailed, res)
		assert.Nil(t, f.Value())
		assert.False(t, f.IsImported())
		assert.Equal(t, "3", f.Raw())
	})
}

func TestIdentifier_ClassNotSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := primitive.NewIdentifier("article", primitive.WithRegistry(dao.NewRegistry()))

	res, err := f.Import(ctx, primitive.Scope{"article": "1"})
	assert.Equal(t, primitive.ResultFailed, res)
	assert.ErrorIs(t, err, primitive.ErrClassNotSet)

	_, err = f.ImportValue(ctx, "1")
	assert.ErrorIs(t, err, primitive.ErrClassNotSet)

	_, err = f.DAO()
	assert.ErrorIs(t, err, primitive.ErrClassNotSet)

	assert.ErrorIs(t, f.SetMethodName("GetBySlug"), primitive.ErrClassNotSet)
	assert.Nil(t, f.Class())
}

func TestIdentifier_Of(t *testing.T) {
	t.Parallel()

	reg, store := fixtures(t)

	t.Run("by name, sample and class", func(t *testing.T) {
		for _, ref := range []any{"Article", `\Article`, &article{}} {
			f := primitive.NewIdentifier("article", primitive.WithRegistry(reg))
			require.NoError(t, f.Of(ref), ref)
			assert.Equal(t, "Article", f.Class().Name())

			d, err := f.DAO()
			require.NoError(t, err)
			assert.Same(t, store, d)
		}
	})

	t.Run("unknown class", func(t *testing.T) {
		f := primitive.NewIdentifier("article", primitive.WithRegistry(reg))
		assert.ErrorIs(t, f.Of("Comment"), dao.ErrClassNotFound)
		assert.Nil(t, f.Class())
	})

	t.Run("class without a DAO", func(t *testing.T) {
		r := dao.NewRegistry()
		_, err := r.Register("Author", &author{}, nil)
		require.NoError(t, err)

		f := primitive.NewIdentifier("author", primitive.WithRegistry(r))
		assert.ErrorIs(t, f.Of("Author"), dao.ErrNotConnected)
	})

	t.Run("resets the resolution method", func(t *testing.T) {
		ctx := context.Background()
		f := primitive.NewIdentifier("article", primitive.WithRegistry(reg))
		require.NoError(t, f.Of("Article"))
		require.NoError(t, f.SetMethodName("GetBySlug"))

		res, err := f.Import(ctx, primitive.Scope{"article": "hello"})
		require.NoError(t, err)
		require.Equal(t, primitive.ResultImported, res)

		require.NoError(t, f.Of("Article"))
		res, err = f.Import(ctx, primitive.Scope{"article": "hello"})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultFailed, res)
		assert.ErrorIs(t, f.Reason(), dao.ErrNotFound)
	})
}

func TestIdentifier_SetMethodName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("dao method name", func(t *testing.T) {
		f, _ := newArticleField(t)
		require.NoError(t, f.SetMethodName("GetBySlug"))

		res, err := f.Import(ctx, primitive.Scope{"article": "world"})
		require.NoError(t, err)
		require.Equal(t, primitive.ResultImported, res)
		assert.Equal(t, int64(2), f.Value().ID())
		assert.Equal(t, "world", f.Export())

		res, err = f.Import(ctx, primitive.Scope{"article": "missing"})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultFailed, res)
	})

	t.Run("default method name", func(t *testing.T) {
		f, _ := newArticleField(t)
		require.NoError(t, f.SetMethodName(primitive.DefaultMethod))
		res, err := f.Import(ctx, primitive.Scope{"article": "1"})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultImported, res)
	})

	t.Run("unknown method name", func(t *testing.T) {
		f, _ := newArticleField(t)
		assert.ErrorIs(t, f.SetMethodName("GetByTitle"), dao.ErrMethodNotFound)
	})

	t.Run("static descriptor", func(t *testing.T) {
		reg, _ := fixtures(t)
		require.NoError(t, reg.RegisterFunc("Article::latest", func(context.Context, any) (dao.Entity, error) {
			return &article{id: 2}, nil
		}))

		f := primitive.NewIdentifier("article", primitive.WithRegistry(reg))
		require.NoError(t, f.Of("Article"))
		require.NoError(t, f.SetMethodName("Article::latest"))

		res, err := f.Import(ctx, primitive.Scope{"article": "anything"})
		require.NoError(t, err)
		require.Equal(t, primitive.ResultImported, res)
		assert.Equal(t, int64(2), f.Value().ID())

		assert.ErrorIs(t, f.SetMethodName("Article::oldest"), dao.ErrMethodNotFound)
		assert.ErrorIs(t, f.SetMethodName("Article::"), dao.ErrBadDescriptor)
	})

	t.Run("callable", func(t *testing.T) {
		f, _ := newArticleField(t)
		var seen any
		require.NoError(t, f.SetMethodName(func(_ context.Context, raw any) (dao.Entity, error) {
			seen = raw
			return &article{id: 3}, nil
		}))

		res, err := f.Import(ctx, primitive.Scope{"article": "x"})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultImported, res)
		assert.Equal(t, "x", seen)

		require.NoError(t, f.SetMethodName(primitive.ResolverFunc(func(context.Context, any) (dao.Entity, error) {
			return nil, dao.ErrNotFound
		})))
		res, err = f.Import(ctx, primitive.Scope{"article": "x"})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultFailed, res)
	})

	t.Run("unsupported value", func(t *testing.T) {
		f, _ := newArticleField(t)
		assert.ErrorIs(t, f.SetMethodName(42), primitive.ErrWrongType)
	})
}

func TestIdentifier_ResolverFaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("backend error propagates", func(t *testing.T) {
		boom := errors.New("connection reset")
		f, _ := newArticleField(t)
		f.SetResolver(primitive.ResolverFunc(func(context.Context, any) (dao.Entity, error) {
			return nil, boom
		}))

		res, err := f.Import(ctx, primitive.Scope{"article": "1"})
		assert.Equal(t, primitive.ResultFailed, res)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil entity is not found", func(t *testing.T) {
		f, _ := newArticleField(t)
		f.SetResolver(primitive.ResolverFunc(func(context.Context, any) (dao.Entity, error) {
			return (*article)(nil), nil
		}))

		res, err := f.Import(ctx, primitive.Scope{"article": "1"})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultFailed, res)
		assert.ErrorIs(t, f.Reason(), dao.ErrNotFound)
	})

	t.Run("entity of another class fails the import", func(t *testing.T) {
		f, _ := newArticleField(t)
		f.SetResolver(primitive.ResolverFunc(func(context.Context, any) (dao.Entity, error) {
			return &author{id: 1}, nil
		}))

		res, err := f.Import(ctx, primitive.Scope{"article": "1"})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultFailed, res)
		assert.ErrorIs(t, f.Reason(), primitive.ErrWrongType)
		assert.Nil(t, f.Value())
		assert.Nil(t, f.Export())
	})
}

func TestIdentifier_ImportValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("entity of the class is re-resolved by id", func(t *testing.T) {
		f, store := newArticleField(t)
		res, err := f.ImportValue(ctx, &article{id: 1})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultImported, res)
		assert.Equal(t, "hello", f.Value().(*article).slug)
		assert.Equal(t, int64(1), f.Export())
		assert.Equal(t, 1, store.calls)
	})

	t.Run("entity of another class fails", func(t *testing.T) {
		f, store := newArticleField(t)
		res, err := f.ImportValue(ctx, &author{id: 1})
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultFailed, res)
		assert.ErrorIs(t, f.Reason(), primitive.ErrWrongType)
		assert.Zero(t, store.calls)
	})

	t.Run("raw identifier", func(t *testing.T) {
		f, _ := newArticleField(t)
		res, err := f.ImportValue(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultImported, res)
		assert.Equal(t, int64(2), f.Value().ID())

		res, err = f.ImportValue(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, primitive.ResultEmpty, res)
		assert.Nil(t, f.Value())
	})
}

func TestIdentifier_ExportIdempotent(t *testing.T) {
	t.Parallel()

	f, _ := newArticleField(t)
	assert.Nil(t, f.Export())

	_, err := f.Import(context.Background(), primitive.Scope{"article": "2"})
	require.NoError(t, err)
	assert.Equal(t, f.Export(), f.Export())

	f.Clean()
	assert.Nil(t, f.Export())
	assert.Nil(t, f.Raw())
}
