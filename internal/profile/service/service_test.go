package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confcloud/confhub/internal/auth"
	"github.com/confcloud/confhub/internal/profile/service"
	"github.com/confcloud/confhub/internal/store"
	model "github.com/confcloud/confhub/pkg/profile"
)

func newService(t *testing.T) *service.Service {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return service.New(s)
}

func TestGetCreatesDefaultProfile(t *testing.T) {
	svc := newService(t)

	p, err := svc.Get(context.Background(), auth.Identity{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ada", p.DisplayName, "display name defaults to the email local part")
	assert.Equal(t, "ada@example.com", p.MainEmail)
	assert.Equal(t, model.TeeShirtSizeNotSpecified, p.TeeShirtSize)
}

func TestGetUsesGatewayName(t *testing.T) {
	svc := newService(t)

	p, err := svc.Get(context.Background(), auth.Identity{Email: "ada@example.com", Name: "Ada Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.DisplayName)
}

func TestUpdateProfile(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	identity := auth.Identity{Email: "ada@example.com"}

	p, err := svc.Update(ctx, identity, &model.UpdateParams{DisplayName: "Ada", TeeShirtSize: "M_W"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.DisplayName)
	assert.Equal(t, "M_W", p.TeeShirtSize)

	// Empty fields leave the stored values alone.
	p, err = svc.Update(ctx, identity, &model.UpdateParams{})
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.DisplayName)
	assert.Equal(t, "M_W", p.TeeShirtSize)
}

func TestUpdateRejectsBadTeeShirtSize(t *testing.T) {
	svc := newService(t)

	_, err := svc.Update(context.Background(), auth.Identity{Email: "ada@example.com"}, &model.UpdateParams{
		TeeShirtSize: "XXXXL",
	})
	assert.ErrorIs(t, err, service.ErrInvalidTeeShirtSize)
}
