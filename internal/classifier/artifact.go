package classifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"wineapi/internal/model"
)

const (
	KindLogisticRegression = "logistic_regression"
	KindTreeEnsemble       = "tree_ensemble"
)

var ErrInvalidArtifact = errors.New("invalid model artifact")

// Artifact is the serialized form of a trained binary classifier as exported by
// the training pipeline. Only the fields relevant to Kind are populated.
type Artifact struct {
	Kind      string          `json:"kind" yaml:"kind"`
	Version   string          `json:"version" yaml:"version"`
	Features  []string        `json:"features" yaml:"features"`
	Scaler    *Scaler         `json:"scaler,omitempty" yaml:"scaler,omitempty"`
	Logistic  *LogisticParams `json:"logistic_regression,omitempty" yaml:"logistic_regression,omitempty"`
	Trees     []Tree          `json:"trees,omitempty" yaml:"trees,omitempty"`
	Threshold float64         `json:"threshold,omitempty" yaml:"threshold,omitempty"`
}

// Scaler standardizes each feature as (x - mean) / scale before prediction.
type Scaler struct {
	Mean  []float64 `json:"mean" yaml:"mean"`
	Scale []float64 `json:"scale" yaml:"scale"`
}

type LogisticParams struct {
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Intercept    float64   `json:"intercept" yaml:"intercept"`
}

// Tree is a flattened binary decision tree. Node 0 is the root; a node with
// Left == -1 is a leaf predicting Class.
type Tree struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

type Node struct {
	Feature   int     `json:"feature" yaml:"feature"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Left      int     `json:"left" yaml:"left"`
	Right     int     `json:"right" yaml:"right"`
	Class     int     `json:"class" yaml:"class"`
}

// LoadFile reads and validates a model artifact from disk.
func LoadFile(path string) (Predictor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model artifact: %w", err)
	}
	defer f.Close()
	return Decode(f, path)
}

// Decode parses an artifact from r. The format is chosen from the extension
// of name: .yaml/.yml is decoded as YAML, anything else as JSON.
func Decode(r io.Reader, name string) (Predictor, error) {
	a, err := DecodeArtifact(r, name)
	if err != nil {
		return nil, err
	}
	return a.Predictor()
}

// DecodeArtifact parses an artifact without building its predictor.
func DecodeArtifact(r io.Reader, name string) (Artifact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Artifact{}, fmt.Errorf("read model artifact: %w", err)
	}

	var a Artifact
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &a)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&a)
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	return a, nil
}

// Predictor validates the artifact and builds the matching predictor.
func (a Artifact) Predictor() (Predictor, error) {
	if err := a.validateFeatures(); err != nil {
		return nil, err
	}
	if err := a.Scaler.validate(); err != nil {
		return nil, err
	}

	switch a.Kind {
	case KindLogisticRegression:
		if a.Logistic == nil {
			return nil, fmt.Errorf("%w: missing logistic_regression parameters", ErrInvalidArtifact)
		}
		if len(a.Logistic.Coefficients) != model.FeatureCount {
			return nil, fmt.Errorf("%w: expected %d coefficients, got %d",
				ErrInvalidArtifact, model.FeatureCount, len(a.Logistic.Coefficients))
		}
		threshold := a.Threshold
		if threshold == 0 {
			threshold = 0.5
		}
		if threshold <= 0 || threshold >= 1 {
			return nil, fmt.Errorf("%w: threshold must be in (0, 1)", ErrInvalidArtifact)
		}
		lr := &logistic{scaler: a.Scaler, intercept: a.Logistic.Intercept, threshold: threshold}
		copy(lr.coef[:], a.Logistic.Coefficients)
		return lr, nil

	case KindTreeEnsemble:
		if len(a.Trees) == 0 {
			return nil, fmt.Errorf("%w: tree ensemble has no trees", ErrInvalidArtifact)
		}
		for i, t := range a.Trees {
			if err := t.validate(); err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
		}
		return &ensemble{scaler: a.Scaler, trees: a.Trees}, nil

	default:
		return nil, fmt.Errorf("%w: unsupported kind %q", ErrInvalidArtifact, a.Kind)
	}
}

func (a Artifact) validateFeatures() error {
	if len(a.Features) != model.FeatureCount {
		return fmt.Errorf("%w: expected %d features, got %d", ErrInvalidArtifact, model.FeatureCount, len(a.Features))
	}
	for i, name := range a.Features {
		if name != model.FeatureNames[i] {
			return fmt.Errorf("%w: feature %d is %q, expected %q", ErrInvalidArtifact, i, name, model.FeatureNames[i])
		}
	}
	return nil
}

func (s *Scaler) validate() error {
	if s == nil {
		return nil
	}
	if len(s.Mean) != model.FeatureCount || len(s.Scale) != model.FeatureCount {
		return fmt.Errorf("%w: scaler must have %d means and scales", ErrInvalidArtifact, model.FeatureCount)
	}
	for i, v := range s.Scale {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: scale for %s must be a non-zero number", ErrInvalidArtifact, model.FeatureNames[i])
		}
	}
	return nil
}

// validate checks node references. Children must come after their parent so
// that every walk from the root terminates.
func (t Tree) validate() error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("%w: empty tree", ErrInvalidArtifact)
	}
	for i, n := range t.Nodes {
		if n.Left == -1 {
			if n.Class != 0 && n.Class != 1 {
				return fmt.Errorf("%w: leaf %d has class %d", ErrInvalidArtifact, i, n.Class)
			}
			continue
		}
		if n.Feature < 0 || n.Feature >= model.FeatureCount {
			return fmt.Errorf("%w: node %d splits on unknown feature %d", ErrInvalidArtifact, i, n.Feature)
		}
		if n.Left <= i || n.Left >= len(t.Nodes) || n.Right <= i || n.Right >= len(t.Nodes) {
			return fmt.Errorf("%w: node %d has invalid children", ErrInvalidArtifact, i)
		}
	}
	return nil
}
