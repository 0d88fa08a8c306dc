package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	classifierMocks "wineapi/internal/classifier/mocks"
	"wineapi/internal/config"
	"wineapi/internal/database"
	"wineapi/internal/database/migration"
	"wineapi/internal/logger"
	"wineapi/internal/model"
	repoMocks "wineapi/internal/repository/mocks"
	"wineapi/internal/repository/sqlstore"
)

const rawDocument = "00623904000173"

func sample() model.WineSample {
	return model.WineSample{
		Name:               "Lagoas",
		Supplier:           "Vinhos BR",
		IdentityDocument:   rawDocument,
		FixedAcidity:       6.7,
		VolatileAcidity:    0.37,
		CitricAcid:         0.44,
		ResidualSugar:      5.4,
		Chlorides:          0.061,
		FreeSulfurDioxide:  24,
		TotalSulfurDioxide: 34,
		Density:            0.999,
		PH:                 3.29,
		Sulphates:          0.8,
		Alcohol:            11.6,
	}
}

func anonymized(rec *model.WineRecord) bool {
	return rec.IdentityDocument == "**.***.***/****-173"
}

func TestWineService_Create(t *testing.T) {
	ctx := context.Background()
	s := sample()

	tests := []struct {
		name       string
		setupMocks func(mRepo *repoMocks.MockWineRepository, mClf *classifierMocks.MockClassifier)
		wantErrMsg string
		wantLabel  model.Classification
	}{
		{
			name: "happy path",
			setupMocks: func(mRepo *repoMocks.MockWineRepository, mClf *classifierMocks.MockClassifier) {
				mClf.On("Classify", ctx, s.Features()).Return(model.ClassificationGood, nil)
				mRepo.On("Insert", ctx, mock.MatchedBy(func(rec *model.WineRecord) bool {
					return anonymized(rec) && rec.Classification == model.ClassificationGood && rec.ID == 0
				})).Return(int64(42), nil)
			},
			wantLabel: model.ClassificationGood,
		},
		{
			name: "classifier error",
			setupMocks: func(mRepo *repoMocks.MockWineRepository, mClf *classifierMocks.MockClassifier) {
				mClf.On("Classify", ctx, s.Features()).Return(model.Classification(""), errors.New("bad output"))
			},
			wantErrMsg: "classify: bad output",
		},
		{
			name: "repository error",
			setupMocks: func(mRepo *repoMocks.MockWineRepository, mClf *classifierMocks.MockClassifier) {
				mClf.On("Classify", ctx, s.Features()).Return(model.ClassificationBad, nil)
				mRepo.On("Insert", ctx, mock.Anything).Return(int64(0), errors.New("disk I/O error"))
			},
			wantErrMsg: "insert wine record: disk I/O error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockWineRepository)
			mClf := new(classifierMocks.MockClassifier)
			tt.setupMocks(mRepo, mClf)
			svc := NewWineService(mRepo, mClf)

			rec, err := svc.Create(ctx, s)

			if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Nil(t, rec)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(42), rec.ID)
				assert.Equal(t, tt.wantLabel, rec.Classification)
				assert.True(t, anonymized(rec))
			}
			mRepo.AssertExpectations(t)
			mClf.AssertExpectations(t)
		})
	}
}

func TestWineService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("nil becomes empty", func(t *testing.T) {
		mRepo := new(repoMocks.MockWineRepository)
		mRepo.On("List", ctx).Return([]model.WineRecord(nil), nil)

		items, err := NewWineService(mRepo, nil).List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockWineRepository)
		mRepo.On("List", ctx).Return(nil, errors.New("no such table"))

		_, err := NewWineService(mRepo, nil).List(ctx)

		assert.EqualError(t, err, "list wine records: no such table")
	})
}

func TestWineService_Update(t *testing.T) {
	ctx := context.Background()
	s := sample()

	t.Run("success keeps id", func(t *testing.T) {
		mRepo := new(repoMocks.MockWineRepository)
		mClf := new(classifierMocks.MockClassifier)
		mClf.On("Classify", ctx, s.Features()).Return(model.ClassificationBad, nil)
		mRepo.On("Update", ctx, int64(9), mock.MatchedBy(anonymized)).Return(true, nil)

		rec, err := NewWineService(mRepo, mClf).Update(ctx, 9, s)

		require.NoError(t, err)
		assert.Equal(t, int64(9), rec.ID)
		assert.Equal(t, model.ClassificationBad, rec.Classification)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing id", func(t *testing.T) {
		mRepo := new(repoMocks.MockWineRepository)
		mClf := new(classifierMocks.MockClassifier)
		mClf.On("Classify", ctx, s.Features()).Return(model.ClassificationBad, nil)
		mRepo.On("Update", ctx, int64(9), mock.Anything).Return(false, nil)

		rec, err := NewWineService(mRepo, mClf).Update(ctx, 9, s)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, rec)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := NewWineService(nil, nil).Update(ctx, 0, s)
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockWineRepository)
		mClf := new(classifierMocks.MockClassifier)
		mClf.On("Classify", ctx, s.Features()).Return(model.ClassificationGood, nil)
		mRepo.On("Update", ctx, int64(3), mock.Anything).Return(false, errors.New("readonly database"))

		_, err := NewWineService(mRepo, mClf).Update(ctx, 3, s)

		assert.EqualError(t, err, "update wine record: readonly database")
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestWineService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int64
		removed bool
		repoErr error
		wantErr error
	}{
		{name: "deleted", id: 1, removed: true},
		{name: "not found", id: 2, removed: false, wantErr: ErrNotFound},
		{name: "invalid id", id: -1, wantErr: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockWineRepository)
			if tt.id > 0 {
				mRepo.On("Delete", ctx, tt.id).Return(tt.removed, tt.repoErr)
			}

			err := NewWineService(mRepo, nil).Delete(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

// fixedClassifier labels by alcohol content, enough to exercise recomputation.
type fixedClassifier struct{}

func (fixedClassifier) Classify(_ context.Context, f model.Features) (model.Classification, error) {
	if f[10] >= 12 {
		return model.ClassificationGood, nil
	}
	return model.ClassificationBad, nil
}

func TestWineService_AgainstSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(config.DatabaseConfig{Ephemeral: true})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, migration.EnsureSchema(ctx, db, logger.Nop()))

	svc := NewWineService(sqlstore.NewWineSQL(db), fixedClassifier{})

	created, err := svc.Create(ctx, sample())
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, model.ClassificationBad, created.Classification)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, *created, items[0])
	for _, it := range items {
		assert.False(t, strings.Contains(it.IdentityDocument, rawDocument))
	}

	changed := sample()
	changed.Alcohol = 13
	changed.IdentityDocument = "123.456.789-00"
	updated, err := svc.Update(ctx, created.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, model.ClassificationGood, updated.Classification)
	assert.Equal(t, "***.***.***-900", updated.IdentityDocument)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, *updated, items[0])

	_, err = svc.Update(ctx, created.ID+100, changed)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
