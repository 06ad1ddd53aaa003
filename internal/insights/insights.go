// Package insights derives aggregate job-market statistics from the
// fitted catalog and the interaction ledger.
package insights

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/campus-connect/internal/recommend"
)

const (
	maxTrendingSkills    = 5
	maxGrowingIndustries = 5
)

// SkillTrend is one trending skill with a demand-growth indicator.
type SkillTrend struct {
	Skill  string `json:"skill"`
	Growth int    `json:"growth"`
}

// IndustryTrend is one industry with a demand-growth indicator.
type IndustryTrend struct {
	Industry string `json:"industry"`
	Growth   int    `json:"growth"`
}

// SalaryTrends summarizes posted salary ranges per field of study as
// percent deviation from the catalog-wide average.
type SalaryTrends struct {
	OverallGrowth int            `json:"overall_growth"`
	ByField       map[string]int `json:"by_field"`
}

// LocationDemand labels hiring demand for one location.
type LocationDemand struct {
	Location string `json:"location"`
	Demand   string `json:"demand"`
}

// MarketInsights is the aggregate view served by GET /insights.
type MarketInsights struct {
	TrendingSkills    []SkillTrend     `json:"trending_skills"`
	GrowingIndustries []IndustryTrend  `json:"growing_industries"`
	SalaryTrends      SalaryTrends     `json:"salary_trends"`
	LocationDemand    []LocationDemand `json:"location_demand"`
}

// Compute builds market insights from a catalog snapshot and the
// per-job engagement totals. Output ordering is deterministic: values
// descending, names ascending on ties.
func Compute(jobs []recommend.Job, engagement map[string]float64) MarketInsights {
	return MarketInsights{
		TrendingSkills:    trendingSkills(jobs, engagement),
		GrowingIndustries: growingIndustries(jobs, engagement),
		SalaryTrends:      salaryTrends(jobs, engagement),
		LocationDemand:    locationDemand(jobs),
	}
}

// trendingSkills ranks required skills by posting share plus positive
// engagement on the postings that require them.
func trendingSkills(jobs []recommend.Job, engagement map[string]float64) []SkillTrend {
	counts := make(map[string]int)
	boost := make(map[string]float64)
	for _, job := range jobs {
		for _, skill := range job.RequiredSkills {
			skill = strings.ToLower(strings.TrimSpace(skill))
			if skill == "" {
				continue
			}
			counts[skill]++
			if w := engagement[job.ID]; w > 0 {
				boost[skill] += w
			}
		}
	}
	if len(counts) == 0 || len(jobs) == 0 {
		return []SkillTrend{}
	}

	trends := make([]SkillTrend, 0, len(counts))
	for skill, count := range counts {
		growth := int(math.Round(100*float64(count)/float64(len(jobs)))) +
			int(math.Round(boost[skill]))
		trends = append(trends, SkillTrend{Skill: skill, Growth: growth})
	}
	sortAndTrimSkills(trends)
	if len(trends) > maxTrendingSkills {
		trends = trends[:maxTrendingSkills]
	}
	return trends
}

func sortAndTrimSkills(trends []SkillTrend) {
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Growth != trends[j].Growth {
			return trends[i].Growth > trends[j].Growth
		}
		return trends[i].Skill < trends[j].Skill
	})
}

// growingIndustries ranks company industries by posting share plus
// positive engagement. Jobs without an industry tag are skipped.
func growingIndustries(jobs []recommend.Job, engagement map[string]float64) []IndustryTrend {
	counts := make(map[string]int)
	boost := make(map[string]float64)
	for _, job := range jobs {
		if job.CompanyIndustry == "" {
			continue
		}
		counts[job.CompanyIndustry]++
		if w := engagement[job.ID]; w > 0 {
			boost[job.CompanyIndustry] += w
		}
	}
	if len(counts) == 0 {
		return []IndustryTrend{}
	}

	trends := make([]IndustryTrend, 0, len(counts))
	for industry, count := range counts {
		growth := int(math.Round(100*float64(count)/float64(len(jobs)))) +
			int(math.Round(boost[industry]))
		trends = append(trends, IndustryTrend{Industry: industry, Growth: growth})
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Growth != trends[j].Growth {
			return trends[i].Growth > trends[j].Growth
		}
		return trends[i].Industry < trends[j].Industry
	})
	if len(trends) > maxGrowingIndustries {
		trends = trends[:maxGrowingIndustries]
	}
	return trends
}

// salaryTrends averages posted salary midpoints per field of study and
// reports each field as percent deviation from the overall average.
// OverallGrowth is the share of postings with positive engagement.
func salaryTrends(jobs []recommend.Job, engagement map[string]float64) SalaryTrends {
	type agg struct {
		sum   float64
		count int
	}
	byField := make(map[string]*agg)
	var overallSum float64
	var overallCount, engaged int

	for _, job := range jobs {
		if engagement[job.ID] > 0 {
			engaged++
		}
		mid, ok := salaryMidpoint(job.Salary)
		if !ok {
			continue
		}
		overallSum += mid
		overallCount++
		if job.FieldOfStudy != "" {
			a := byField[job.FieldOfStudy]
			if a == nil {
				a = &agg{}
				byField[job.FieldOfStudy] = a
			}
			a.sum += mid
			a.count++
		}
	}

	trends := SalaryTrends{ByField: make(map[string]int, len(byField))}
	if len(jobs) > 0 {
		trends.OverallGrowth = int(math.Round(100 * float64(engaged) / float64(len(jobs))))
	}
	if overallCount == 0 {
		return trends
	}
	overallAvg := overallSum / float64(overallCount)
	for field, a := range byField {
		fieldAvg := a.sum / float64(a.count)
		trends.ByField[field] = int(math.Round(100 * (fieldAvg - overallAvg) / overallAvg))
	}
	return trends
}

// demand labels, from most postings to fewest.
const (
	demandVeryHigh = "Très élevée"
	demandHigh     = "Élevée"
	demandModerate = "Modérée"
	demandGrowing  = "En croissance"
)

// locationDemand labels each hiring location by posting count.
func locationDemand(jobs []recommend.Job) []LocationDemand {
	counts := make(map[string]int)
	for _, job := range jobs {
		if job.Location == "" {
			continue
		}
		counts[job.Location]++
	}
	locations := make([]string, 0, len(counts))
	for loc := range counts {
		locations = append(locations, loc)
	}
	sort.Slice(locations, func(i, j int) bool {
		if counts[locations[i]] != counts[locations[j]] {
			return counts[locations[i]] > counts[locations[j]]
		}
		return locations[i] < locations[j]
	})

	demand := make([]LocationDemand, 0, len(locations))
	for _, loc := range locations {
		demand = append(demand, LocationDemand{Location: loc, Demand: demandLabel(counts[loc])})
	}
	return demand
}

func demandLabel(count int) string {
	switch {
	case count >= 5:
		return demandVeryHigh
	case count >= 3:
		return demandHigh
	case count >= 2:
		return demandModerate
	default:
		return demandGrowing
	}
}

// salaryNumber matches one amount in a posted salary string, allowing
// thousands groups separated by spaces ("1 500 000").
var salaryNumber = regexp.MustCompile(`\d+(?:[ \x{00a0}]\d{3})*`)

// salaryMidpoint parses a posted salary string ("1 500 000 - 2 000 000
// FCFA", "200 000 FCFA") into the midpoint of its range. Non-numeric
// salaries ("Selon projet") report ok=false.
func salaryMidpoint(salary string) (float64, bool) {
	matches := salaryNumber.FindAllString(salary, -1)
	if len(matches) == 0 {
		return 0, false
	}
	parse := func(s string) float64 {
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, " ", "")
		var v float64
		for _, r := range s {
			v = v*10 + float64(r-'0')
		}
		return v
	}
	low := parse(matches[0])
	high := low
	if len(matches) > 1 {
		high = parse(matches[1])
	}
	return (low + high) / 2, true
}
