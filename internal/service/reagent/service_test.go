package reagent

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haemolab/lab-api/internal/filter"
	"github.com/haemolab/lab-api/internal/model"
)

type countingRepo struct {
	reagents  []*model.Reagent
	listCalls int
}

func (r *countingRepo) Create(_ context.Context, reagent *model.Reagent) error {
	r.reagents = append(r.reagents, reagent)
	return nil
}

func (r *countingRepo) Get(_ context.Context, id uuid.UUID) (*model.Reagent, error) {
	for _, reagent := range r.reagents {
		if reagent.ID == id {
			return reagent, nil
		}
	}
	return nil, errors.New("reagent not found")
}

func (r *countingRepo) Update(_ context.Context, reagent *model.Reagent) error {
	for i, existing := range r.reagents {
		if existing.ID == reagent.ID {
			r.reagents[i] = reagent
			return nil
		}
	}
	return errors.New("reagent not found")
}

func (r *countingRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, reagent := range r.reagents {
		if reagent.ID == id {
			r.reagents = append(r.reagents[:i], r.reagents[i+1:]...)
			return nil
		}
	}
	return errors.New("reagent not found")
}

func (r *countingRepo) List(_ context.Context) ([]*model.Reagent, error) {
	r.listCalls++
	return r.reagents, nil
}

func TestListUsesCachedSnapshot(t *testing.T) {
	repo := &countingRepo{}
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), &model.CreateReagentRequest{
		Name:        "CBC Diluent",
		Vendor:      "Sysmex",
		ReagentType: "hematology",
		LotNumber:   "LOT-2026-AB12CD",
		ExpiryDate:  "31/12/2026",
	})
	require.NoError(t, err)

	_, err = svc.List(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	_, err = svc.List(context.Background(), filter.Criteria{})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls, "second list must hit the snapshot cache")
}

func TestWritesInvalidateSnapshot(t *testing.T) {
	repo := &countingRepo{}
	svc := NewService(repo, nil)

	first, err := svc.Create(context.Background(), &model.CreateReagentRequest{
		Name:        "CBC Diluent",
		Vendor:      "Sysmex",
		ReagentType: "hematology",
		LotNumber:   "LOT-2026-AB12CD",
		ExpiryDate:  "31/12/2026",
	})
	require.NoError(t, err)

	got, err := svc.List(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = svc.Create(context.Background(), &model.CreateReagentRequest{
		Name:        "Glucose Reagent",
		Vendor:      "Roche",
		ReagentType: "biochemistry",
		LotNumber:   "LOT-2026-EF34GH",
		ExpiryDate:  "30/06/2027",
	})
	require.NoError(t, err)

	got, err = svc.List(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	assert.Len(t, got, 2, "create must invalidate the cached snapshot")

	require.NoError(t, svc.Delete(context.Background(), first.ID))
	got, err = svc.List(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	assert.Len(t, got, 1, "delete must invalidate the cached snapshot")
}

func TestListFiltersByTypeAndExpiry(t *testing.T) {
	repo := &countingRepo{}
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), &model.CreateReagentRequest{
		Name:        "CBC Diluent",
		Vendor:      "Sysmex",
		ReagentType: "hematology",
		LotNumber:   "LOT-2026-AB12CD",
		ExpiryDate:  "31/12/2026",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &model.CreateReagentRequest{
		Name:        "Glucose Reagent",
		Vendor:      "Roche",
		ReagentType: "biochemistry",
		LotNumber:   "LOT-2026-EF34GH",
		ExpiryDate:  "30/06/2027",
	})
	require.NoError(t, err)

	got, err := svc.List(context.Background(), filter.Criteria{Category: "biochemistry"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Glucose Reagent", got[0].Name)

	got, err = svc.List(context.Background(), filter.Criteria{Query: "sysmex"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CBC Diluent", got[0].Name)
}
