package classify

import (
	"os"
	"path/filepath"
	"testing"

	applogger "StockSage/pkg/logger"
)

func TestLoadAccuracyMissingFile(t *testing.T) {
	r := LoadAccuracy(filepath.Join(t.TempDir(), "absent.json"), applogger.Nop())
	if r.OverallAccuracy != 0.782 || r.ModelType != DefaultAccuracy.ModelType {
		t.Fatalf("expected default report, got %+v", r)
	}
}

func TestLoadAccuracyMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acc.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if r := LoadAccuracy(path, applogger.Nop()); r.OverallAccuracy != DefaultAccuracy.OverallAccuracy {
		t.Fatalf("expected default report, got %+v", r)
	}
}

func TestLoadAccuracyValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acc.json")
	doc := `{
		"overall_accuracy": 0.861,
		"training_accuracy": 0.93,
		"model_type": "Random Forest Professional",
		"training_samples": 8000,
		"feature_count": 9,
		"feature_importance": {"RSI": 0.31}
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	r := LoadAccuracy(path, applogger.Nop())
	if r.OverallAccuracy != 0.861 {
		t.Errorf("overall accuracy = %v, want 0.861", r.OverallAccuracy)
	}
	if r.ModelType != "Random Forest Professional" {
		t.Errorf("model type = %q", r.ModelType)
	}
	if r.FeatureImportance["RSI"] != 0.31 {
		t.Errorf("feature importance not parsed: %+v", r.FeatureImportance)
	}
}

func TestLoadAccuracyImplausible(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acc.json")
	if err := os.WriteFile(path, []byte(`{"overall_accuracy": 7.8, "model_type": "x"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if r := LoadAccuracy(path, applogger.Nop()); r.OverallAccuracy != DefaultAccuracy.OverallAccuracy {
		t.Fatalf("expected default report for implausible accuracy, got %+v", r)
	}
}
