// Package model loads the pre-trained housing price regression
// artifact and serves predictions from it. The model is immutable
// after Load; handlers receive it by injection, so a missing or
// corrupt artifact fails the process at startup instead of per
// request.
package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Artifact is the on-disk model format: one coefficient per feature
// plus an intercept, produced offline by the training pipeline.
type Artifact struct {
	Name         string    `json:"model"`
	Features     []string  `json:"features"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

type Model struct {
	name         string
	features     []string
	coefficients []float64
	intercept    float64
}

// Load reads and validates the model artifact at path.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	return New(artifact)
}

// New builds a Model from an artifact, rejecting mismatched shapes.
func New(artifact Artifact) (*Model, error) {
	if len(artifact.Features) == 0 {
		return nil, fmt.Errorf("model artifact has no features")
	}
	if len(artifact.Coefficients) != len(artifact.Features) {
		return nil, fmt.Errorf("model artifact has %d coefficients for %d features",
			len(artifact.Coefficients), len(artifact.Features))
	}

	return &Model{
		name:         artifact.Name,
		features:     append([]string(nil), artifact.Features...),
		coefficients: append([]float64(nil), artifact.Coefficients...),
		intercept:    artifact.Intercept,
	}, nil
}

func (m *Model) Name() string {
	return m.name
}

// Features returns the expected feature order for Predict.
func (m *Model) Features() []string {
	return append([]string(nil), m.features...)
}

// Predict computes the regression output for one feature vector.
func (m *Model) Predict(features []float64) (float64, error) {
	if len(features) != len(m.coefficients) {
		return 0, fmt.Errorf("expected %d features, got %d", len(m.coefficients), len(features))
	}

	prediction := m.intercept
	for i, f := range features {
		prediction += m.coefficients[i] * f
	}

	return prediction, nil
}
