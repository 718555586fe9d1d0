package classify

import (
	"encoding/json"
	"fmt"
	"os"

	"StockSage/internal/domain/models"
)

// StrategyForest names the trained-model classification strategy.
const StrategyForest = "forest"

// ForestVersion is the artifact format version this build understands.
const ForestVersion = 1

// TreeNode is one node of a decision tree in flattened array form.
// Feature == -1 marks a leaf; Counts then holds per-class sample counts.
type TreeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Counts    []float64 `json:"counts,omitempty"`
}

// Tree is a single decision tree; Nodes[0] is the root.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// Forest is the trained classifier artifact: a random forest over the
// nine-feature vector, voting over the five recommendation levels.
type Forest struct {
	Version      int            `json:"version"`
	FeatureCount int            `json:"feature_count"`
	Classes      []models.Level `json:"classes"`
	Trees        []Tree         `json:"trees"`
}

// LoadForest reads and validates a forest artifact.
func LoadForest(path string) (*Forest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var f Forest
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}

	if f.Version != ForestVersion {
		return nil, fmt.Errorf("model artifact version %d, want %d", f.Version, ForestVersion)
	}
	if f.FeatureCount != models.FeatureCount {
		return nil, fmt.Errorf("model artifact expects %d features, engine derives %d",
			f.FeatureCount, models.FeatureCount)
	}
	if len(f.Classes) == 0 || len(f.Trees) == 0 {
		return nil, fmt.Errorf("model artifact is empty: %d classes, %d trees",
			len(f.Classes), len(f.Trees))
	}
	for _, cls := range f.Classes {
		if !cls.Valid() {
			return nil, fmt.Errorf("model artifact class %d out of range", cls)
		}
	}
	for ti, tree := range f.Trees {
		if len(tree.Nodes) == 0 {
			return nil, fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, n := range tree.Nodes {
			if n.Feature == -1 {
				if len(n.Counts) != len(f.Classes) {
					return nil, fmt.Errorf("tree %d node %d: %d counts for %d classes",
						ti, ni, len(n.Counts), len(f.Classes))
				}
				continue
			}
			if n.Feature < 0 || n.Feature >= f.FeatureCount {
				return nil, fmt.Errorf("tree %d node %d: feature index %d out of range", ti, ni, n.Feature)
			}
			if n.Left < 0 || n.Left >= len(tree.Nodes) || n.Right < 0 || n.Right >= len(tree.Nodes) {
				return nil, fmt.Errorf("tree %d node %d: child index out of range", ti, ni)
			}
		}
	}

	return &f, nil
}

// Predict averages the class distributions of all trees and returns the
// majority level with its mean probability.
func (f *Forest) Predict(v models.FeatureVector) (models.Level, float64) {
	values := v.Values()
	probs := make([]float64, len(f.Classes))

	for _, tree := range f.Trees {
		node := tree.Nodes[0]
		for node.Feature != -1 {
			if values[node.Feature] <= node.Threshold {
				node = tree.Nodes[node.Left]
			} else {
				node = tree.Nodes[node.Right]
			}
		}
		total := 0.0
		for _, c := range node.Counts {
			total += c
		}
		if total == 0 {
			continue
		}
		for i, c := range node.Counts {
			probs[i] += c / total
		}
	}

	best := 0
	for i := range probs {
		probs[i] /= float64(len(f.Trees))
		if probs[i] > probs[best] {
			best = i
		}
	}

	return f.Classes[best], probs[best]
}

// ForestClassifier adapts a loaded Forest to the Classifier contract.
type ForestClassifier struct {
	forest *Forest
}

// NewForestClassifier wraps a validated forest.
func NewForestClassifier(f *Forest) *ForestClassifier {
	return &ForestClassifier{forest: f}
}

func (c *ForestClassifier) Name() string { return StrategyForest }

func (c *ForestClassifier) Classify(v models.FeatureVector) (models.ClassificationResult, error) {
	level, confidence := c.forest.Predict(v)
	if !level.Valid() {
		return models.ClassificationResult{}, fmt.Errorf("model predicted level %d out of range", level)
	}
	return models.ClassificationResult{Level: level, Confidence: confidence}, nil
}
