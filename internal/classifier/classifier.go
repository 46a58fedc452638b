// Package classifier implements the pretrained emotion classifier served by
// the analyze endpoint.
//
// The model is a TF-IDF + multinomial naive-Bayes pipeline exported by the
// offline training tooling as two files in the model directory:
//
//	label_map.txt      maps class index to emotion name (Python dict literal)
//	emotion_model.json holds vocabulary, idf weights, class log priors, and
//	                     per-class feature log likelihoods
//
// Both files are read once at startup; a load failure is fatal for the
// process. After construction the classifier is read-only and safe for
// concurrent use.
package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wellmind/wellmind/internal/config"
	"github.com/wellmind/wellmind/internal/logger"
)

const (
	labelMapFile = "label_map.txt"
	modelFile    = "emotion_model.json"

	// NeutralLabel is returned when the winning class index has no entry in
	// the label map.
	NeutralLabel = "neutral"
)

// wordPattern matches word tokens of two or more characters, mirroring the
// tokenization the model was trained with.
var wordPattern = regexp.MustCompile(`\b\w\w+\b`)

// Model holds the serialized parameters of the TF-IDF + naive-Bayes pipeline.
// Slice positions are class indices; Vocabulary maps a token to its feature
// column.
type Model struct {
	// Vocabulary maps a token to its feature column in Idf and LogLikelihoods.
	Vocabulary map[string]int `json:"vocabulary"`

	// Idf holds the inverse-document-frequency weight per feature column.
	Idf []float64 `json:"idf"`

	// ClassLogPriors holds the log prior probability per class index.
	ClassLogPriors []float64 `json:"class_log_priors"`

	// LogLikelihoods holds, per class index, the log likelihood per feature
	// column.
	LogLikelihoods [][]float64 `json:"log_likelihoods"`
}

// Classifier scores text against the loaded model and resolves the winning
// class index through the label map.
type Classifier struct {
	model  *Model
	labels map[int]string

	logger *logger.Logger
}

// New loads the label map and model parameters from cfg.ModelDir and returns
// a ready classifier.
//
// Returns an error when either file is missing, unreadable, or internally
// inconsistent (e.g. a likelihood row of the wrong width). Callers treat
// this as fatal: the process must not serve requests without a model.
func New(cfg config.Classifier, log *logger.Logger) (*Classifier, error) {
	labelFile, err := os.Open(filepath.Join(cfg.ModelDir, labelMapFile))
	if err != nil {
		return nil, fmt.Errorf("error opening label map: %w", err)
	}
	defer labelFile.Close()

	labels, err := ParseLabelMap(labelFile)
	if err != nil {
		return nil, fmt.Errorf("error parsing label map: %w", err)
	}

	rawModel, err := os.ReadFile(filepath.Join(cfg.ModelDir, modelFile))
	if err != nil {
		return nil, fmt.Errorf("error reading model file: %w", err)
	}

	model := new(Model)
	if err := json.Unmarshal(rawModel, model); err != nil {
		return nil, fmt.Errorf("error decoding model file: %w", err)
	}

	if err := model.validate(); err != nil {
		return nil, fmt.Errorf("inconsistent model file: %w", err)
	}

	log.Info().
		Int("classes", len(model.ClassLogPriors)).
		Int("vocabulary", len(model.Vocabulary)).
		Msg("emotion model loaded")

	return &Classifier{
		model:  model,
		labels: labels,
		logger: log,
	}, nil
}

// Classify returns the most probable emotion label for text.
//
// The text is turned into an L2-normalized tf-idf vector (term count times
// idf weight, the whole vector scaled to unit norm, matching the vectorizer
// the model was trained with); the score of each class is its log prior
// plus the dot product of that vector with the class's feature log
// likelihoods, and the label of the argmax class is returned. Text with no
// in-vocabulary tokens is scored by the priors alone, so a label is always
// produced. A winning index missing from the label map yields
// [NeutralLabel].
func (c *Classifier) Classify(text string) string {
	weights := c.termWeights(text)

	best := 0
	bestScore := 0.0
	for class, prior := range c.model.ClassLogPriors {
		score := prior
		for column, weight := range weights {
			score += weight * c.model.LogLikelihoods[class][column]
		}

		if class == 0 || score > bestScore {
			best = class
			bestScore = score
		}
	}

	label, ok := c.labels[best]
	if !ok {
		return NeutralLabel
	}

	return label
}

// termWeights tokenizes text and returns its L2-normalized tf-idf weights
// keyed by feature column. Tokens outside the vocabulary are dropped; a text
// with no known tokens yields an empty map.
func (c *Classifier) termWeights(text string) map[int]float64 {
	weights := make(map[int]float64)
	for _, token := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if column, ok := c.model.Vocabulary[token]; ok {
			weights[column] += c.model.Idf[column]
		}
	}

	var sumSquares float64
	for _, weight := range weights {
		sumSquares += weight * weight
	}
	if sumSquares == 0 {
		return weights
	}

	norm := math.Sqrt(sumSquares)
	for column := range weights {
		weights[column] /= norm
	}

	return weights
}

// validate checks structural consistency between the model's parameter
// slices: every class needs a likelihood row as wide as the vocabulary.
func (m *Model) validate() error {
	if len(m.ClassLogPriors) == 0 {
		return fmt.Errorf("model has no classes")
	}
	if len(m.ClassLogPriors) != len(m.LogLikelihoods) {
		return fmt.Errorf("got %d priors but %d likelihood rows", len(m.ClassLogPriors), len(m.LogLikelihoods))
	}
	if len(m.Idf) != len(m.Vocabulary) {
		return fmt.Errorf("got %d idf weights for %d vocabulary entries", len(m.Idf), len(m.Vocabulary))
	}

	for class, row := range m.LogLikelihoods {
		if len(row) != len(m.Vocabulary) {
			return fmt.Errorf("likelihood row %d has %d columns, want %d", class, len(row), len(m.Vocabulary))
		}
	}

	for token, column := range m.Vocabulary {
		if column < 0 || column >= len(m.Idf) {
			return fmt.Errorf("token %q maps to out-of-range column %d", token, column)
		}
	}

	return nil
}
