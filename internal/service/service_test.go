package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gummy1803-ai/assessment-system/config"
	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/internal/model"
	"github.com/gummy1803-ai/assessment-system/internal/repository"
	"github.com/gummy1803-ai/assessment-system/internal/testutil"
	pkgerrors "github.com/gummy1803-ai/assessment-system/pkg/errors"
	"github.com/gummy1803-ai/assessment-system/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()
	svc, repo, _ := setupTestServiceDB(t)
	return svc, repo
}

func setupTestServiceDB(t *testing.T) (*Service, *repository.Repository, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	repo := repository.NewRepository(db)
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL: time.Hour,
	})
	return NewService(repo, jwtMgr, zap.NewNop()), repo, db
}

func sampleUpload() *dto.SyncUploadRequest {
	return &dto.SyncUploadRequest{
		Cadres: []model.Cadre{
			{ID: "C1", Name: "李伟", Department: testutil.Ptr("学习部"), EquipmentScore: 2},
			{ID: "C2", Name: "王芳"},
		},
		Competitions: []model.Competition{
			{ID: 1, CadreID: "C1", Name: testutil.Ptr("数学建模"), Score: testutil.Ptr(10.5)},
			{ID: 2, CadreID: "C2", Score: testutil.Ptr(3.0)},
		},
		Contributions: []model.Contribution{
			{ID: 1, CadreID: "C1", Type: testutil.Ptr("值班"), Count: testutil.Ptr(2.0), TotalScore: testutil.Ptr(4.0)},
		},
		Trainings: []model.Training{
			{ID: 1, CadreID: "C1", TraineeName: testutil.Ptr("小张"), Hours: testutil.Ptr(6.0), Score: testutil.Ptr(3.0)},
		},
		Deductions: []model.Deduction{
			{ID: 1, CadreID: "C1", Score: testutil.Ptr(1.5), Reason: testutil.Ptr("迟到")},
		},
	}
}

// ── 干部 ──

func TestCadreService_SaveAppliesDefaults(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Cadre.Save(ctx, &dto.SaveCadreRequest{ID: "C1", Name: "Li Wei"})
	require.NoError(t, err)

	cadre, err := svc.Cadre.Get(ctx, "C1")
	require.NoError(t, err)
	require.NotNil(t, cadre)
	assert.Nil(t, cadre.Department)
	assert.Nil(t, cadre.Position)
	assert.Nil(t, cadre.Major)
	assert.Nil(t, cadre.Class)
	assert.Nil(t, cadre.Grade)
	assert.Equal(t, float64(0), cadre.EquipmentScore)
}

func TestCadreService_SaveTwiceKeepsLatest(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Cadre.Save(ctx, &dto.SaveCadreRequest{ID: "C1", Name: "李伟"})
	require.NoError(t, err)
	_, err = svc.Cadre.Save(ctx, &dto.SaveCadreRequest{ID: "C1", Name: "李伟", Grade: testutil.Ptr("2023")})
	require.NoError(t, err)

	cadres, err := svc.Cadre.List(ctx)
	require.NoError(t, err)
	require.Len(t, cadres, 1)
	assert.Equal(t, "2023", *cadres[0].Grade)
}

func TestCadreService_SaveMissingName(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Cadre.Save(context.Background(), &dto.SaveCadreRequest{ID: "C1"})
	assert.True(t, pkgerrors.IsValidation(err), "期望校验错误，实际: %v", err)

	cadres, err := svc.Cadre.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cadres)
}

func TestCadreService_DeleteCascades(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Sync.Upload(ctx, sampleUpload())
	require.NoError(t, err)

	require.NoError(t, svc.Cadre.Delete(ctx, "C1"))

	cadre, err := svc.Cadre.Get(ctx, "C1")
	require.NoError(t, err)
	assert.Nil(t, cadre)

	comps, _ := repo.Competition.ListByCadre(ctx, "C1")
	contribs, _ := repo.Contribution.ListByCadre(ctx, "C1")
	trainings, _ := repo.Training.ListByCadre(ctx, "C1")
	deductions, _ := repo.Deduction.ListByCadre(ctx, "C1")
	assert.Empty(t, comps)
	assert.Empty(t, contribs)
	assert.Empty(t, trainings)
	assert.Empty(t, deductions)

	// 其他干部的数据不受影响
	others, err := repo.Competition.ListByCadre(ctx, "C2")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestCadreService_DeleteMissingIsNoop(t *testing.T) {
	svc, _ := setupTestService(t)
	assert.NoError(t, svc.Cadre.Delete(context.Background(), "missing"))
}

// ── 子记录 ──

func TestRecordService_CreateAndListByCadre(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	rec, err := svc.Competition.Create(ctx, &dto.CreateCompetitionRequest{
		CadreID: "C1",
		Name:    testutil.Ptr("程序设计"),
		Score:   8,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)

	rows, err := svc.Competition.ListByCadre(ctx, "C1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "程序设计", *rows[0].Name)
	assert.Nil(t, rows[0].Level)

	require.NoError(t, svc.Competition.Delete(ctx, rec.ID))
	rows, err = svc.Competition.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRecordService_CreateRejectsZeroRequired(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Deduction.Create(context.Background(), &dto.CreateDeductionRequest{CadreID: "C1"})
	assert.True(t, pkgerrors.IsValidation(err))

	_, err = svc.Training.Create(context.Background(), &dto.CreateTrainingRequest{CadreID: "C1", TraineeName: "小张", Hours: 2})
	assert.True(t, pkgerrors.IsValidation(err))
}

// 孤儿记录按原有约定放行
func TestRecordService_AcceptsOrphan(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Contribution.Create(context.Background(), &dto.CreateContributionRequest{
		CadreID: "nobody", Count: 1, TotalScore: 2,
	})
	assert.NoError(t, err)
}

func TestScenario_CadreLifecycle(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Cadre.Save(ctx, &dto.SaveCadreRequest{ID: "C1", Name: "Li Wei"})
	require.NoError(t, err)
	_, err = svc.Competition.Create(ctx, &dto.CreateCompetitionRequest{CadreID: "C1", Score: 5})
	require.NoError(t, err)

	rows, err := svc.Competition.ListByCadre(ctx, "C1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, svc.Cadre.Delete(ctx, "C1"))

	cadre, err := svc.Cadre.Get(ctx, "C1")
	require.NoError(t, err)
	assert.Nil(t, cadre)
	rows, err = svc.Competition.ListByCadre(ctx, "C1")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// ── 同步 ──

func TestSyncService_UploadThenSnapshot(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	req := sampleUpload()
	result, err := svc.Sync.Upload(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Cadres)
	assert.Equal(t, 2, result.Competitions)
	assert.Equal(t, 1, result.Deductions)

	snap, err := svc.Sync.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, req.Cadres, snap.Cadres)
	assert.Equal(t, req.Competitions, snap.Competitions)
	assert.Equal(t, req.Contributions, snap.Contributions)
	assert.Equal(t, req.Trainings, snap.Trainings)
	assert.Equal(t, req.Deductions, snap.Deductions)
}

func TestSyncService_UploadIsIdempotent(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Sync.Upload(ctx, sampleUpload())
	require.NoError(t, err)
	_, err = svc.Sync.Upload(ctx, sampleUpload())
	require.NoError(t, err)

	snap, err := svc.Sync.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Cadres, 2)
	assert.Len(t, snap.Competitions, 2)
	assert.Len(t, snap.Deductions, 1)
}

func TestSyncService_UploadFailureRollsBack(t *testing.T) {
	svc, _, db := setupTestServiceDB(t)
	ctx := context.Background()

	_, err := svc.Cadre.Save(ctx, &dto.SaveCadreRequest{ID: "C0", Name: "原有干部"})
	require.NoError(t, err)
	before, err := svc.Sync.Snapshot(ctx)
	require.NoError(t, err)

	testutil.FailInsertsOn(t, db, "deductions", "NEW.reason = '迟到'")

	_, err = svc.Sync.Upload(ctx, sampleUpload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "写入职责扣分")

	after, err := svc.Sync.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSyncService_SnapshotReadsRealCount(t *testing.T) {
	svc, _, db := setupTestServiceDB(t)
	ctx := context.Background()

	// 旧版服务按原样写入 count，INTEGER 列会保留小数为 REAL
	require.NoError(t, db.Exec(
		"INSERT INTO contributions (cadreId, count, totalScore) VALUES ('L1', 2.5, 1), ('L1', 3, 2)").Error)

	snap, err := svc.Sync.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Contributions, 2)
	assert.Equal(t, 2.5, *snap.Contributions[0].Count)
	assert.Equal(t, 3.0, *snap.Contributions[1].Count)

	rows, err := svc.Contribution.ListByCadre(ctx, "L1")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, _, err = svc.Export.ExportWorkbook(ctx)
	require.NoError(t, err)
}

func TestSyncService_UploadFractionalCount(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	req := sampleUpload()
	req.Contributions[0].Count = testutil.Ptr(1.5)
	_, err := svc.Sync.Upload(ctx, req)
	require.NoError(t, err)

	snap, err := svc.Sync.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Contributions, 1)
	assert.Equal(t, 1.5, *snap.Contributions[0].Count)
}

func TestSyncService_UploadRejectsInvalidRows(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	req := sampleUpload()
	req.Trainings = append(req.Trainings, model.Training{})
	_, err := svc.Sync.Upload(ctx, req)
	require.True(t, pkgerrors.IsValidation(err))
	assert.Contains(t, err.Error(), "trainings[1].cadreId")

	snap, err := svc.Sync.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Cadres, "校验失败不应写入任何数据")
}

func TestSyncService_UploadEmpty(t *testing.T) {
	svc, _ := setupTestService(t)

	result, err := svc.Sync.Upload(context.Background(), &dto.SyncUploadRequest{})
	require.NoError(t, err)
	assert.Equal(t, dto.SyncUploadResult{}, *result)
}

func TestSyncService_ClearResetsIDs(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Sync.Upload(ctx, sampleUpload())
	require.NoError(t, err)
	require.NoError(t, svc.Sync.Clear(ctx))

	snap, err := svc.Sync.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Cadres)
	assert.Empty(t, snap.Competitions)
	assert.Empty(t, snap.Contributions)
	assert.Empty(t, snap.Trainings)
	assert.Empty(t, snap.Deductions)

	rec, err := svc.Competition.Create(ctx, &dto.CreateCompetitionRequest{CadreID: "C1", Score: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
}

// ── 设置与认证 ──

func TestSettingService_PasswordDefaultsAndUpdate(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	pw, err := svc.Setting.GetPassword(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAdminPassword, pw)

	require.NoError(t, svc.Setting.SetPassword(ctx, &dto.UpdatePasswordRequest{Password: "s3cret"}))
	require.NoError(t, svc.Setting.EnsureDefaults(ctx))

	pw, err = svc.Setting.GetPassword(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw, "写入默认值不应覆盖已修改的密码")

	err = svc.Setting.SetPassword(ctx, &dto.UpdatePasswordRequest{})
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Setting.EnsureDefaults(ctx))

	_, err := svc.Auth.Login(ctx, &dto.LoginRequest{Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidPassword)

	token, err := svc.Auth.Login(ctx, &dto.LoginRequest{Password: model.DefaultAdminPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, 3600, token.ExpiresIn)
}
