package services

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/domain"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
)

// ExecScorer invokes the external scoring routine as a subprocess: the eight
// features become positional arguments and the score is read from stdout.
type ExecScorer struct {
	Command string
	Script  string
}

// NewExecScorer creates a scorer that shells out to command script arg1..arg8.
func NewExecScorer(command, script string) *ExecScorer {
	return &ExecScorer{Command: command, Script: script}
}

var _ portssvc.Scorer = (*ExecScorer)(nil)

func (s *ExecScorer) Score(ctx context.Context, features []float64) (float64, error) {
	args := make([]string, 0, len(features)+1)
	args = append(args, s.Script)
	for _, f := range features {
		args = append(args, strconv.FormatFloat(f, 'f', -1, 64))
	}

	cmd := exec.CommandContext(ctx, s.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "prediction failed"
		}
		return 0, fmt.Errorf("scorer failed: %s: %w", msg, err)
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(stdout.String()), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid prediction result %q: %w", strings.TrimSpace(stdout.String()), err)
	}
	return score, nil
}

// sustainabilityService wraps the opaque scorer with the rating tiers and
// rule-based advisories.
type sustainabilityService struct {
	BaseService
	scorer portssvc.Scorer
}

// NewSustainabilityService creates a new sustainability service.
func NewSustainabilityService(scorer portssvc.Scorer) portssvc.SustainabilitySvcFacade {
	return &sustainabilityService{scorer: scorer}
}

func (s *sustainabilityService) Predict(ctx context.Context, features domain.SustainabilityFeatures) (*domain.SustainabilityReport, error) {
	score, err := s.scorer.Score(ctx, features.Ordered())
	if err != nil {
		s.LogError(ctx, err, "sustainability scorer failed")
		return nil, apperrors.NewInternalError("Failed to predict sustainability score", err)
	}

	return &domain.SustainabilityReport{
		Score:           score,
		Rating:          RatingForScore(score),
		Recommendations: RecommendationsFor(features),
	}, nil
}

// RatingForScore maps a score in [0,100] onto the five-tier rating scale.
func RatingForScore(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Very Good"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// RecommendationsFor returns the fixed advisory strings triggered by the
// feature thresholds.
func RecommendationsFor(f domain.SustainabilityFeatures) []string {
	recommendations := []string{}

	if f.SoilPH < 6.0 || f.SoilPH > 7.5 {
		recommendations = append(recommendations, "Consider soil pH adjustment for optimal crop growth")
	}
	if f.SoilMoisture < 30 {
		recommendations = append(recommendations, "Implement better irrigation practices to maintain soil moisture")
	}
	if f.FertilizerUsageKG > 70 {
		recommendations = append(recommendations, "Consider reducing chemical fertilizer usage and adopt organic alternatives")
	}
	if f.PesticideUsageKG > 50 {
		recommendations = append(recommendations, "Look into integrated pest management and organic pest control")
	}
	if f.CropYieldTon < 50 {
		recommendations = append(recommendations, "Consider crop rotation and soil enrichment to improve yield")
	}

	return recommendations
}
