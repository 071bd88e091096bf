package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainagg "github.com/amcdental/dentalhub-backend/internal/domain/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/services"
)

func TestCreateArticleDerivesUniqueSlugs(t *testing.T) {
	e := newEnv(t)

	first, err := e.catalog.CreateArticle(e.ctx, services.CreateArticleInput{Title: "Root Canal Basics"})
	require.NoError(t, err)
	assert.Equal(t, "root-canal-basics", first.Slug)

	second, err := e.catalog.CreateArticle(e.ctx, services.CreateArticleInput{Title: "Root canal basics!"})
	require.NoError(t, err)
	assert.Equal(t, "root-canal-basics-2", second.Slug)

	explicit, err := e.catalog.CreateArticle(e.ctx, services.CreateArticleInput{Title: "Anything", Slug: "Custom Slug"})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", explicit.Slug)

	got, err := e.catalog.GetArticle(e.ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.Slug, got.Slug)
}

func TestCatalogRejectsBlankTitles(t *testing.T) {
	e := newEnv(t)

	_, err := e.catalog.CreateArticle(e.ctx, services.CreateArticleInput{Title: " "})
	assert.Equal(t, domainagg.CodeValidation, domainagg.CodeOf(err))
	_, err = e.catalog.CreateLesson(e.ctx, services.CreateLessonInput{})
	assert.Equal(t, domainagg.CodeValidation, domainagg.CodeOf(err))
	_, err = e.catalog.CreateTool(e.ctx, services.CreateToolInput{Title: "\n"})
	assert.Equal(t, domainagg.CodeValidation, domainagg.CodeOf(err))
	_, err = e.catalog.CreateLesson(e.ctx, services.CreateLessonInput{Title: "Negative", Duration: -5})
	assert.Equal(t, domainagg.CodeValidation, domainagg.CodeOf(err))
}

func TestCatalogGetMissingIsNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.catalog.GetArticle(e.ctx, uuid.New())
	assert.Equal(t, domainagg.CodeNotFound, domainagg.CodeOf(err))
	_, err = e.catalog.GetLesson(e.ctx, uuid.New())
	assert.Equal(t, domainagg.CodeNotFound, domainagg.CodeOf(err))
	_, err = e.catalog.GetTool(e.ctx, uuid.New())
	assert.Equal(t, domainagg.CodeNotFound, domainagg.CodeOf(err))
}

func TestCatalogListsAndResolverSeesNewContent(t *testing.T) {
	e := newEnv(t)

	lesson, err := e.catalog.CreateLesson(e.ctx, services.CreateLessonInput{Title: "Suturing", Duration: 900})
	require.NoError(t, err)
	_, err = e.catalog.CreateTool(e.ctx, services.CreateToolInput{Title: "Consent form", Category: "forms"})
	require.NoError(t, err)
	_, err = e.catalog.CreateTool(e.ctx, services.CreateToolInput{Title: "Sterilization log", Category: "checklists"})
	require.NoError(t, err)

	lessons, err := e.catalog.ListLessons(e.ctx, 0)
	require.NoError(t, err)
	require.Len(t, lessons, 1)

	forms, err := e.catalog.ListTools(e.ctx, "forms", 10)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, "Consent form", forms[0].Title)

	sum := e.resolver.Resolve(e.ctx, lessonRef(lesson.ID))
	require.NotNil(t, sum)
	assert.Equal(t, 900, sum.Duration)
	assert.Equal(t, "lesson", sum.Type)
}
