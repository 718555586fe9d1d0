package classify

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"StockSage/internal/domain/models"
)

// stumpForest returns a two-tree forest splitting on RSI (feature 0) at 50:
// low RSI votes strong buy, high RSI votes strong sell.
func stumpForest() *Forest {
	tree := Tree{Nodes: []TreeNode{
		{Feature: 0, Threshold: 50, Left: 1, Right: 2},
		{Feature: -1, Counts: []float64{0, 0, 1, 0, 9}}, // mostly strong buy
		{Feature: -1, Counts: []float64{9, 0, 1, 0, 0}}, // mostly strong sell
	}}
	return &Forest{
		Version:      ForestVersion,
		FeatureCount: models.FeatureCount,
		Classes: []models.Level{
			models.StrongSell, models.Sell, models.Hold, models.Buy, models.StrongBuy,
		},
		Trees: []Tree{tree, tree},
	}
}

func writeForest(t *testing.T, f *Forest) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	b, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal forest: %v", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write forest: %v", err)
	}
	return path
}

func TestLoadForestRoundTrip(t *testing.T) {
	path := writeForest(t, stumpForest())

	f, err := LoadForest(path)
	if err != nil {
		t.Fatalf("load forest: %v", err)
	}
	if len(f.Trees) != 2 {
		t.Errorf("trees = %d, want 2", len(f.Trees))
	}
}

func TestForestPredict(t *testing.T) {
	f := stumpForest()

	level, conf := f.Predict(models.FeatureVector{RSI: 25})
	if level != models.StrongBuy {
		t.Errorf("low RSI: level = %d, want strong buy", level)
	}
	if conf != 0.9 {
		t.Errorf("low RSI: confidence = %v, want 0.9", conf)
	}

	level, conf = f.Predict(models.FeatureVector{RSI: 75})
	if level != models.StrongSell {
		t.Errorf("high RSI: level = %d, want strong sell", level)
	}
	if conf != 0.9 {
		t.Errorf("high RSI: confidence = %v, want 0.9", conf)
	}
}

func TestForestClassifierContract(t *testing.T) {
	c := NewForestClassifier(stumpForest())
	if c.Name() != StrategyForest {
		t.Errorf("name = %q, want %q", c.Name(), StrategyForest)
	}
	res, err := c.Classify(models.FeatureVector{RSI: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Level.Valid() {
		t.Errorf("level %d out of range", res.Level)
	}
}

func TestLoadForestMissingFile(t *testing.T) {
	if _, err := LoadForest(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestLoadForestCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadForest(path); err == nil {
		t.Fatal("expected error for corrupt artifact")
	}
}

func TestLoadForestWrongVersion(t *testing.T) {
	f := stumpForest()
	f.Version = ForestVersion + 1
	if _, err := LoadForest(writeForest(t, f)); err == nil {
		t.Fatal("expected error for wrong artifact version")
	}
}

func TestLoadForestWrongFeatureCount(t *testing.T) {
	f := stumpForest()
	f.FeatureCount = 4
	if _, err := LoadForest(writeForest(t, f)); err == nil {
		t.Fatal("expected error for incompatible feature shape")
	}
}

func TestLoadForestBadLeafCounts(t *testing.T) {
	f := stumpForest()
	f.Trees[0].Nodes[1].Counts = []float64{1, 2}
	if _, err := LoadForest(writeForest(t, f)); err == nil {
		t.Fatal("expected error for leaf counts not matching classes")
	}
}
