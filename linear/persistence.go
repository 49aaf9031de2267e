package linear

import (
	"encoding/json"
	"io"
	"os"

	"github.com/slearn/slearn/core/dense"
	"github.com/slearn/slearn/pkg/errors"
)

// modelWeights is the JSON document describing a trained regression model.
type modelWeights struct {
	ModelType    string    `json:"model_type"`
	FormatVer    string    `json:"format_version"`
	FitIntercept bool      `json:"fit_intercept"`
	Penalty      float64   `json:"penalty"`
	NFeatures    int       `json:"n_features"`
	Coefficients []float64 `json:"coefficients"`
}

const weightsFormatVersion = "1.0"

// ExportWeights writes the trained model as JSON. It fails with an
// UntrainedModelError when no successful Train has happened.
func (r *RidgeRegression) ExportWeights(w io.Writer) error {
	if !r.core.IsTrained() {
		return errors.NewUntrainedModelError(r.name, "ExportWeights")
	}
	beta, _ := r.core.Coefficients()
	nFeatures, _ := r.core.state.Dimensions()

	doc := modelWeights{
		ModelType:    r.name,
		FormatVer:    weightsFormatVersion,
		FitIntercept: r.core.FitIntercept(),
		Penalty:      r.core.Penalty(),
		NFeatures:    nFeatures,
		Coefficients: beta,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return errors.NewUnknownError(r.name+".ExportWeights", err)
	}
	return nil
}

// ImportWeights reads a JSON weight document and restores the model to the
// trained state it describes, replacing configuration and coefficients.
func (r *RidgeRegression) ImportWeights(rd io.Reader) error {
	op := r.name + ".ImportWeights"

	var doc modelWeights
	if err := json.NewDecoder(rd).Decode(&doc); err != nil {
		return errors.WrapInvalidData(err, op, "malformed weight document")
	}
	if doc.ModelType != r.name {
		return errors.NewInvalidDataErrorf(op, "model type mismatch: expected %s, got %s", r.name, doc.ModelType)
	}
	if doc.Penalty < 0 {
		return errors.NewInvalidParamsError("penalty", "must be non-negative", doc.Penalty)
	}
	// The penalty is fixed at construction; a weight document cannot change
	// it. Rejecting a mismatch also keeps a LinearRegression at penalty 0.
	if doc.Penalty != r.core.Penalty() {
		return errors.NewInvalidDataErrorf(op, "penalty mismatch: model is configured with %v, document has %v",
			r.core.Penalty(), doc.Penalty)
	}

	expected := doc.NFeatures
	if doc.FitIntercept {
		expected++
	}
	if len(doc.Coefficients) != expected {
		return errors.NewInvalidDataErrorf(op, "expected %d coefficients for %d features, got %d",
			expected, doc.NFeatures, len(doc.Coefficients))
	}

	core := newRidge[float64](r.name, doc.Penalty, config{fitIntercept: doc.FitIntercept})
	core.setTrainedState(dense.Vector[float64](doc.Coefficients), doc.NFeatures)
	r.core = core
	return nil
}

// SaveWeights exports the trained model to a JSON file.
func (r *RidgeRegression) SaveWeights(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewUnknownError(r.name+".SaveWeights", err)
	}
	defer f.Close()
	return r.ExportWeights(f)
}

// LoadWeights restores the model from a JSON file written by SaveWeights.
func (r *RidgeRegression) LoadWeights(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.NewUnknownError(r.name+".LoadWeights", err)
	}
	defer f.Close()
	return r.ImportWeights(f)
}
