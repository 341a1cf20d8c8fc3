package service

import (
	"context"
	"encoding/json"
	"testing"

	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleList_OrdersByDifficultyThenOrder(t *testing.T) {
	f := newFixture(t)
	svc := NewModuleService(f.modules)
	ctx := context.Background()

	f.createModule(t, "Zero Trust", model.Advanced, 1, 20)
	f.createModule(t, "Incident Basics", model.Intermediate, 2, 15)
	f.createModule(t, "Passwords", model.Beginner, 2, 10)
	f.createModule(t, "Phishing", model.Beginner, 1, 10)
	f.createModule(t, "Logging", model.Intermediate, 1, 15)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Phishing", "Passwords", "Logging", "Incident Basics", "Zero Trust"}, titles(all))

	mid, err := svc.List(ctx, "intermediate")
	require.NoError(t, err)
	assert.Equal(t, []string{"Logging", "Incident Basics"}, titles(mid))

	_, err = svc.List(ctx, "expert")
	assert.True(t, util.IsKind(err, util.KindValidation))
}

func TestModuleList_OmitsContent(t *testing.T) {
	f := newFixture(t)
	svc := NewModuleService(f.modules)
	f.createModule(t, "Secrets", model.Beginner, 1, 10)

	list, err := svc.List(context.Background(), "")
	require.NoError(t, err)

	body, err := json.Marshal(list)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "content")
}

func TestModuleGet_IncludesContent(t *testing.T) {
	f := newFixture(t)
	svc := NewModuleService(f.modules)
	ctx := context.Background()
	m := f.createModule(t, "Secrets", model.Beginner, 1, 10)

	got, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Secrets content", got.Content)

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"content":"Secrets content"`)

	_, err = svc.Get(ctx, uuid.NewString())
	assert.Equal(t, util.ErrModuleNotFound, err)

	_, err = svc.Get(ctx, "42")
	assert.Equal(t, util.ErrModuleNotFound, err)
}
