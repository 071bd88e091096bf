package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repotest "github.com/amcdental/dentalhub-backend/internal/data/repos/testutil"
	types "github.com/amcdental/dentalhub-backend/internal/domain"
)

func lessonRef(id uuid.UUID) types.ItemRef {
	return types.ItemRef{Type: types.ItemTypeLesson, ID: id}
}

func TestResolveManyBatchesAcrossStores(t *testing.T) {
	e := newEnv(t)
	a := repotest.SeedArticle(t, e.ctx, e.db, "Article")
	l := repotest.SeedLesson(t, e.ctx, e.db, "Lesson")
	tl := repotest.SeedTool(t, e.ctx, e.db, "Tool")
	missing := types.ItemRef{Type: types.ItemTypeTool, ID: uuid.New()}

	refs := []types.ItemRef{
		{Type: types.ItemTypeArticle, ID: a.ID},
		lessonRef(l.ID),
		{Type: types.ItemTypeTool, ID: tl.ID},
		missing,
		{Type: types.ItemTypeArticle, ID: a.ID},
	}
	out := e.resolver.ResolveMany(e.ctx, refs)

	assert.Len(t, out, 3)
	assert.Equal(t, a.Slug, out[refs[0]].Slug)
	assert.Equal(t, 600, out[refs[1]].Duration)
	assert.Equal(t, "checklists", out[refs[2]].Category)
	_, ok := out[missing]
	assert.False(t, ok)
}

func TestResolveUnknownTypeOrWrongStoreIsNil(t *testing.T) {
	e := newEnv(t)
	a := repotest.SeedArticle(t, e.ctx, e.db, "Only an article")

	assert.Nil(t, e.resolver.Resolve(e.ctx, types.ItemRef{Type: "podcast", ID: a.ID}))
	assert.Nil(t, e.resolver.Resolve(e.ctx, lessonRef(a.ID)))
	assert.Nil(t, e.resolver.Resolve(e.ctx, types.ItemRef{Type: types.ItemTypeArticle, ID: uuid.Nil}))
	require.NotNil(t, e.resolver.Resolve(e.ctx, types.ItemRef{Type: types.ItemTypeArticle, ID: a.ID}))
}

func TestResolveManyEmpty(t *testing.T) {
	e := newEnv(t)

	out := e.resolver.ResolveMany(e.ctx, nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
