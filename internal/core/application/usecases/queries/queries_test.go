package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frete/internal/core/application/usecases/queries"
	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
)

func TestNewListShipmentsQuery_ValidActor(t *testing.T) {
	actor, err := account.NewClientActor(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	query, err := queries.NewListShipmentsQuery(actor)
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, actor, query.Actor())
}

func TestNewListShipmentsQuery_UnconstructedActor(t *testing.T) {
	_, err := queries.NewListShipmentsQuery(account.Actor{})
	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrActorIsNotConstructed)
}

func TestListShipmentsQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.ListShipmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListShipmentsQueryIsNotConstructed)
}

func TestNewGetShipmentQuery_InvalidShipmentID(t *testing.T) {
	actor, err := account.NewAdminActor(kernel.NewUUID())
	require.NoError(t, err)

	_, err = queries.NewGetShipmentQuery(kernel.UUID{}, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewLoginQuery_MissingCredentials(t *testing.T) {
	_, err := queries.NewLoginQuery("", "segredo123")
	require.ErrorIs(t, err, queries.ErrCredentialsAreRequired)

	_, err = queries.NewLoginQuery("ana.mateus", "")
	require.ErrorIs(t, err, queries.ErrCredentialsAreRequired)
}

func TestNewResolveActorQuery_InvalidUserID(t *testing.T) {
	_, err := queries.NewResolveActorQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPendingBacklogQuery(t *testing.T) {
	query := queries.NewPendingBacklogQuery()
	assert.NoError(t, query.Validate())
}
