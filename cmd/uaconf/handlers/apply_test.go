package handlers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analyticsops/uaconf/internal/config"
	"github.com/analyticsops/uaconf/internal/errs"
	"github.com/analyticsops/uaconf/internal/platform/analytics"
	"github.com/analyticsops/uaconf/internal/reconcile"
)

func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origLoadDescription := loadDescription
	origLookupToken := lookupToken
	origNewAPIClient := newAPIClient
	origNewReconciler := newReconciler
	origWriteMetricsTextfile := writeMetricsTextfile
	origColorOutput := colorOutput
	origStdout := stdout
	origStderr := stderr
	origFileExists := fileExists
	origRunWizard := runWizard
	origWriteDescription := writeDescription

	t.Cleanup(func() {
		loadDescription = origLoadDescription
		lookupToken = origLookupToken
		newAPIClient = origNewAPIClient
		newReconciler = origNewReconciler
		writeMetricsTextfile = origWriteMetricsTextfile
		colorOutput = origColorOutput
		stdout = origStdout
		stderr = origStderr
		fileExists = origFileExists
		runWizard = origRunWizard
		writeDescription = origWriteDescription
	})
}

type fakeReconciler struct {
	result *reconcile.Result
	err    error

	gotDesc *config.Description
}

func (f *fakeReconciler) Reconcile(_ context.Context, desc *config.Description) (*reconcile.Result, error) {
	f.gotDesc = desc
	return f.result, f.err
}

func stubCommonFactories(t *testing.T, fake *fakeReconciler) *strings.Builder {
	t.Helper()
	out := &strings.Builder{}
	stdout = out
	stderr = &strings.Builder{}
	colorOutput = func() bool { return false }
	lookupToken = func() string { return "test-token" }
	loadDescription = func(string) (*config.Description, error) {
		return &config.Description{AccountID: "42"}, nil
	}
	newAPIClient = func(context.Context, string) analytics.Client {
		return &analytics.MockClient{}
	}
	newReconciler = func(analytics.Client, reconcile.Observer) Reconciler {
		return fake
	}
	return out
}

func TestApply_Success(t *testing.T) {
	saveAndRestoreFactories(t)

	summary := reconcile.Summary{}
	fake := &fakeReconciler{
		result: &reconcile.Result{
			Description: &config.Description{AccountID: "42"},
			Summary:     summary,
		},
	}
	out := stubCommonFactories(t, fake)

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "uaconf.yaml"})
	require.NoError(t, err)

	require.NotNil(t, fake.gotDesc)
	assert.Equal(t, "42", fake.gotDesc.AccountID)
	assert.Contains(t, out.String(), "Reconciliation summary")
}

func TestApply_MissingToken(t *testing.T) {
	saveAndRestoreFactories(t)

	fake := &fakeReconciler{}
	stubCommonFactories(t, fake)
	lookupToken = func() string { return "" }

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "uaconf.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), tokenEnv)
	assert.Nil(t, fake.gotDesc, "no reconcile may run without a token")
}

func TestApply_LoadError(t *testing.T) {
	saveAndRestoreFactories(t)

	fake := &fakeReconciler{}
	stubCommonFactories(t, fake)
	loadDescription = func(string) (*config.Description, error) {
		return nil, errors.New("no such file")
	}

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "missing.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such file")
}

func TestApply_ReconcileErrorStillPrintsSummary(t *testing.T) {
	saveAndRestoreFactories(t)

	cause := errors.New("backend exploded")
	summary := reconcile.Summary{}
	summary["webProperty"] = map[reconcile.Outcome]int{reconcile.OutcomeInserted: 1}
	fake := &fakeReconciler{
		result: &reconcile.Result{
			Description: &config.Description{AccountID: "42"},
			Summary:     summary,
		},
		err: cause,
	}
	out := stubCommonFactories(t, fake)

	err := Apply(context.Background(), ApplyOptions{ConfigPath: "uaconf.yaml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)

	var se *errs.ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"apply"}, se.Chain())

	assert.Contains(t, out.String(), "1 inserted")
}

func TestApply_MetricsTextfile(t *testing.T) {
	saveAndRestoreFactories(t)

	fake := &fakeReconciler{
		result: &reconcile.Result{Summary: reconcile.Summary{}},
	}
	stubCommonFactories(t, fake)

	var gotPath string
	writeMetricsTextfile = func(path string) error {
		gotPath = path
		return nil
	}

	err := Apply(context.Background(), ApplyOptions{
		ConfigPath:      "uaconf.yaml",
		MetricsTextfile: "/tmp/uaconf.prom",
	})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/uaconf.prom", gotPath)
}
