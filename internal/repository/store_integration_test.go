//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/u4rad/camp-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Connect(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	assert.NotNil(t, db.Client)
	assert.NoError(t, db.HealthCheck(context.Background()))
	assert.NoError(t, db.SetLogsTTL(context.Background(), 30*24*time.Hour))
}

func TestSequence_NextAndReserve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	seq := NewSequence(setupTestDB(t))

	first, err := seq.Next(ctx, "things")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	start, err := seq.Reserve(ctx, "things", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), start)

	next, err := seq.Next(ctx, "things")
	require.NoError(t, err)
	assert.Equal(t, int64(5), next)

	other, err := seq.Next(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other, "counters are independent")

	_, err = seq.Reserve(ctx, "things", 0)
	assert.Error(t, err)
}

func TestStore_CRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore[model.CopyPrice](setupTestDB(t), CollectionCopyPrices, testBreaker("copy-prices"))

	hard := &model.CopyPrice{Name: "Hard Copy", HardCopyPrice: decimal.NewFromInt(25)}
	require.NoError(t, store.Create(ctx, hard))
	assert.Equal(t, int64(1), hard.ID)

	color := &model.CopyPrice{Name: "Colour Copy", HardCopyPrice: decimal.RequireFromString("40.50")}
	require.NoError(t, store.Create(ctx, color))
	assert.Equal(t, int64(2), color.ID)

	found, err := store.FindByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Colour Copy", found.Name)
	assert.True(t, decimal.RequireFromString("40.5").Equal(found.HardCopyPrice))

	missing, err := store.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := store.List(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)

	replaced, err := store.Replace(ctx, 1, &model.CopyPrice{Name: "Hard Copy", HardCopyPrice: decimal.NewFromInt(30)})
	require.NoError(t, err)
	require.NotNil(t, replaced)
	assert.Equal(t, int64(1), replaced.ID)

	notThere, err := store.Replace(ctx, 99, &model.CopyPrice{Name: "x"})
	require.NoError(t, err)
	assert.Nil(t, notThere)

	deleted, err := store.Delete(ctx, 2)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete(ctx, 2)
	require.NoError(t, err)
	assert.False(t, deleted)

	empty, err := store.List(ctx, Query{Filter: bson.M{"name": "nope"}})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestStore_ReplaceKeepsCreatedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore[model.TestData](setupTestDB(t), CollectionTestData, nil)

	row := &model.TestData{CompanyID: 1, PackageName: "Basic", ServiceName: "CBC", CasePerDay: 10, NumberOfDays: 2, ReportType: model.ReportTypeDigital}
	require.NoError(t, row.Compute())
	require.NoError(t, store.Create(ctx, row))
	require.False(t, row.CreatedAt.IsZero())

	update := &model.TestData{CompanyID: 1, PackageName: "Basic", ServiceName: "CBC", CasePerDay: 20, NumberOfDays: 2, ReportType: model.ReportTypeDigital}
	require.NoError(t, update.Compute())
	_, err := store.Replace(ctx, row.ID, update)
	require.NoError(t, err)

	stored, err := store.FindByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), stored.TotalCase)
	assert.WithinDuration(t, row.CreatedAt, stored.CreatedAt, time.Millisecond)
}

func TestStore_CreateMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore[model.TestData](setupTestDB(t), CollectionTestData, nil)

	rows := []*model.TestData{
		{CompanyID: 1, PackageName: "Basic", ServiceName: "CBC"},
		{CompanyID: 1, PackageName: "Basic", ServiceName: "Lipid"},
		{CompanyID: 2, PackageName: "Eye", ServiceName: "Vision"},
	}
	require.NoError(t, store.CreateMany(ctx, rows))
	assert.Equal(t, []int64{1, 2, 3}, []int64{rows[0].ID, rows[1].ID, rows[2].ID})

	forCompany, err := store.List(ctx, ByCompany(1))
	require.NoError(t, err)
	assert.Len(t, forCompany, 2)
}

func TestCompanyRepository_CascadeAndCamps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)
	camps := NewStore[model.Camp](db, CollectionCamps, nil)
	repo := NewCompanyRepository(db, camps, NewTxRunner(db, true), nil)

	acme := &model.Company{Name: "Acme", District: "Pune", State: "MH", PinCode: "411001"}
	other := &model.Company{Name: "Other", District: "Agra", State: "UP", PinCode: "282001"}
	require.NoError(t, repo.Create(ctx, acme))
	require.NoError(t, repo.Create(ctx, other))

	for _, c := range []*model.Camp{
		{CompanyID: acme.ID, Location: "Plant 2", StartDate: "2026-03-05", EndDate: "2026-03-06"},
		{CompanyID: acme.ID, Location: "Plant 1", StartDate: "2026-03-01", EndDate: "2026-03-02"},
		{CompanyID: other.ID, Location: "HQ", StartDate: "2026-04-01", EndDate: "2026-04-01"},
	} {
		require.NoError(t, camps.Create(ctx, c))
	}

	companies, err := repo.List(ctx, Query{})
	require.NoError(t, err)
	require.NoError(t, repo.AttachCamps(ctx, companies))
	require.Len(t, companies[0].Camps, 2)
	assert.Equal(t, "Plant 1", companies[0].Camps[0].Location, "camps are ordered by start date")
	assert.Len(t, companies[1].Camps, 1)

	deleted, err := repo.Delete(ctx, acme.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	left, err := camps.List(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, other.ID, left[0].CompanyID)
}
