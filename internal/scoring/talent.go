package scoring

import (
	"math"
	"strings"

	"github.com/ZanzyTHEbar/org-air-engine/internal/monitoring"
	"github.com/ZanzyTHEbar/org-air-engine/internal/types"
)

// Talent concentration constants.
const (
	tcLeadershipWeight = 0.4
	tcTeamSizeWeight   = 0.3
	tcSkillWeight      = 0.2
	tcIndividualWeight = 0.1

	tcSkillCeiling     = 15.0
	tcTeamSizeEpsilon  = 0.1
	tcNeutralComponent = 0.5

	tcRiskCoefficient = 0.15
	tcRiskThreshold   = 0.25
)

var seniorityKeywords = map[string][]string{
	"senior": {"principal", "staff", "director", "vp", "head", "chief", "executive"},
	"mid":    {"senior", "lead", "manager", "architect"},
	"entry":  {"junior", "associate", "entry", "intern", "analyst"},
}

var aiRoleKeywords = []string{
	"machine learning", "ml engineer", "data scientist", "ai engineer",
	"artificial intelligence", "deep learning", "nlp", "computer vision",
	"software engineer", "developer", "programmer", "architect", "systems engineer",
	"data engineer", "ai scientist",
}

var aiSkillKeywords = []string{
	"python", "java", "scala", "sql",
	"tensorflow", "pytorch", "keras", "scikit-learn",
	"spark", "hadoop", "kafka", "airflow",
	"aws", "azure", "gcp", "docker", "kubernetes",
	"nlp", "computer vision", "llm", "generative ai",
	"algorithm", "neural networks", "cuda", "pandas",
}

var mentionKeywords = []string{
	"ceo", "cto", "cfo", "manager", "supervisor", "lead", "head of", "director",
}

// JobAnalysis summarizes job postings for talent concentration.
type JobAnalysis struct {
	TotalAIJobs  int             `json:"total_ai_jobs"`
	SeniorAIJobs int             `json:"senior_ai_jobs"`
	MidAIJobs    int             `json:"mid_ai_jobs"`
	EntryAIJobs  int             `json:"entry_ai_jobs"`
	UniqueSkills map[string]bool `json:"-"`
}

// ReviewAnalysis counts individual mentions across employee reviews.
type ReviewAnalysis struct {
	IndividualMentions int `json:"individual_mentions"`
	TotalReviews       int `json:"total_reviews"`
}

// TalentConcentration is the computed key-person risk with its component
// factors kept for auditability.
type TalentConcentration struct {
	TC                 float64 `json:"talent_concentration"`
	RiskAdjustment     float64 `json:"risk_adjustment"`
	LeadershipRatio    float64 `json:"leadership_ratio"`
	TeamSizeFactor     float64 `json:"team_size_factor"`
	SkillConcentration float64 `json:"skill_concentration"`
	IndividualFactor   float64 `json:"individual_factor"`
}

// TalentConcentrationCalculator derives key-person risk from job-posting
// composition and review-mention density.
type TalentConcentrationCalculator struct {
	logger *monitoring.Logger
}

// NewTalentConcentrationCalculator creates a calculator.
func NewTalentConcentrationCalculator(logger *monitoring.Logger) *TalentConcentrationCalculator {
	if logger == nil {
		logger = monitoring.NewDiscardLogger()
	}
	return &TalentConcentrationCalculator{logger: logger}
}

// AnalyzeJobPostings categorizes AI-relevant postings by seniority and
// collects the distinct technical skills their descriptions mention.
// Seniority is matched senior before mid before entry; postings with no
// seniority marker default to mid.
func (t *TalentConcentrationCalculator) AnalyzeJobPostings(postings []types.JobPosting) JobAnalysis {
	analysis := JobAnalysis{UniqueSkills: make(map[string]bool)}

	for _, job := range postings {
		title := strings.ToLower(job.Title)
		desc := strings.ToLower(job.Description)

		if !containsAny(title, aiRoleKeywords) && !containsAny(desc, aiRoleKeywords) {
			continue
		}
		analysis.TotalAIJobs++

		switch {
		case containsAny(title, seniorityKeywords["senior"]):
			analysis.SeniorAIJobs++
		case containsAny(title, seniorityKeywords["mid"]):
			analysis.MidAIJobs++
		case containsAny(title, seniorityKeywords["entry"]):
			analysis.EntryAIJobs++
		default:
			analysis.MidAIJobs++
		}

		for _, skill := range aiSkillKeywords {
			if strings.Contains(desc, skill) || strings.Contains(title, skill) {
				analysis.UniqueSkills[skill] = true
			}
		}
	}

	return analysis
}

// AnalyzeReviews counts reviews that mention a specific individual role.
func (t *TalentConcentrationCalculator) AnalyzeReviews(reviews []types.Review) ReviewAnalysis {
	mentions := 0
	for _, r := range reviews {
		text := strings.ToLower(r.Title + " " + r.Text)
		if containsAny(text, mentionKeywords) {
			mentions++
		}
	}
	return ReviewAnalysis{IndividualMentions: mentions, TotalReviews: len(reviews)}
}

// CalculateTC combines job and review analysis into the talent
// concentration ratio and its risk adjustment.
//
// Missing data reads as neutral, not as zero: no AI jobs gives a 0.5
// leadership ratio and a maximal team-size factor (the smallest team is
// the most concentrated); no reviews gives a 0.5 individual factor.
func (t *TalentConcentrationCalculator) CalculateTC(jobs JobAnalysis, reviews ReviewAnalysis) TalentConcentration {
	leadershipRatio := tcNeutralComponent
	if jobs.TotalAIJobs > 0 {
		leadershipRatio = float64(jobs.SeniorAIJobs) / float64(jobs.TotalAIJobs)
	}

	teamSizeFactor := 1.0
	if jobs.TotalAIJobs > 0 {
		teamSizeFactor = math.Min(1.0, 1.0/(math.Sqrt(float64(jobs.TotalAIJobs))+tcTeamSizeEpsilon))
	}

	skillConcentration := clamp(1.0-float64(len(jobs.UniqueSkills))/tcSkillCeiling, 0, 1)

	individualFactor := tcNeutralComponent
	if reviews.TotalReviews > 0 {
		individualFactor = clamp(float64(reviews.IndividualMentions)/float64(reviews.TotalReviews), 0, 1)
	}

	tc := tcLeadershipWeight*leadershipRatio +
		tcTeamSizeWeight*teamSizeFactor +
		tcSkillWeight*skillConcentration +
		tcIndividualWeight*individualFactor
	tc = roundTo(clamp(tc, 0, 1), 4)

	result := TalentConcentration{
		TC:                 tc,
		RiskAdjustment:     RiskAdjustment(tc),
		LeadershipRatio:    leadershipRatio,
		TeamSizeFactor:     teamSizeFactor,
		SkillConcentration: skillConcentration,
		IndividualFactor:   individualFactor,
	}

	t.logger.TalentLogger(result.TC, leadershipRatio, teamSizeFactor, skillConcentration, individualFactor)

	return result
}

// RiskAdjustment maps a talent concentration onto the H^R multiplier.
// Only concentration above the threshold penalizes; below it the
// adjustment is exactly 1.0.
func RiskAdjustment(tc float64) float64 {
	penaltyRange := math.Max(0, tc-tcRiskThreshold)
	return roundTo(1.0-tcRiskCoefficient*penaltyRange, 4)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
