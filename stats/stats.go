// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"fmt"
	"sort"

	"github.com/danielhkuo/ten-rounds/models"
)

// Unspecified labels groups for participants who skipped a demographic field.
const Unspecified = "Unspecified"

// Flatten expands every participant into one Decision per stored round,
// applying display defaults for missing demographics.
func Flatten(participants []models.Participant) []models.Decision {
	var decisions []models.Decision
	for _, p := range participants {
		gender := p.Gender
		if gender == "" {
			gender = Unspecified
		}
		race := p.Race
		if race == "" {
			race = Unspecified
		}
		for _, r := range p.Rounds {
			decisions = append(decisions, models.Decision{
				ParticipantID: p.ID,
				Name:          p.DisplayName(),
				Gender:        gender,
				Age:           p.Age,
				Race:          race,
				Round:         r.Round,
				X:             r.X,
				Win:           r.Win,
				Wealth:        r.Wealth,
			})
		}
	}
	return decisions
}

func binLabel(low, width int) string {
	return fmt.Sprintf("%d–%d", low, low+width-1)
}

// Histogram buckets decisions by committed amount into half-open [b, b+width)
// intervals. Empty buckets are omitted; output is ascending by lower bound.
func Histogram(decisions []models.Decision, width int) []models.HistogramBin {
	counts := make(map[int]int)
	for _, d := range decisions {
		counts[(d.X/width)*width]++
	}

	lows := make([]int, 0, len(counts))
	for low := range counts {
		lows = append(lows, low)
	}
	sort.Ints(lows)

	bins := make([]models.HistogramBin, 0, len(lows))
	for _, low := range lows {
		bins = append(bins, models.HistogramBin{Bin: binLabel(low, width), Count: counts[low]})
	}
	return bins
}

// GroupAverages computes the mean committed amount per group, groups sorted
// by label.
func GroupAverages(decisions []models.Decision, group func(models.Decision) string) []models.GroupAverage {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, d := range decisions {
		g := group(d)
		sums[g] += d.X
		counts[g]++
	}

	labels := make([]string, 0, len(counts))
	for g := range counts {
		labels = append(labels, g)
	}
	sort.Strings(labels)

	averages := make([]models.GroupAverage, 0, len(labels))
	for _, g := range labels {
		averages = append(averages, models.GroupAverage{
			Group: g,
			AvgX:  float64(sums[g]) / float64(counts[g]),
		})
	}
	return averages
}

// AgeBucket maps an optional age to its reporting bucket.
func AgeBucket(age *int) string {
	switch {
	case age == nil:
		return "Unknown"
	case *age < 20:
		return "<20"
	case *age < 25:
		return "20–24"
	case *age < 30:
		return "25–29"
	case *age < 40:
		return "30–39"
	default:
		return "40+"
	}
}

// NamesByBin collects the distinct display names falling into each 10-wide
// bin, names sorted within a bin, bins ascending.
func NamesByBin(decisions []models.Decision) []models.NameBin {
	byBin := make(map[int]map[string]struct{})
	for _, d := range decisions {
		low := (d.X / 10) * 10
		if byBin[low] == nil {
			byBin[low] = make(map[string]struct{})
		}
		byBin[low][d.Name] = struct{}{}
	}

	lows := make([]int, 0, len(byBin))
	for low := range byBin {
		lows = append(lows, low)
	}
	sort.Ints(lows)

	bins := make([]models.NameBin, 0, len(lows))
	for _, low := range lows {
		names := make([]string, 0, len(byBin[low]))
		for name := range byBin[low] {
			names = append(names, name)
		}
		sort.Strings(names)
		bins = append(bins, models.NameBin{Bin: binLabel(low, 10), Names: names})
	}
	return bins
}

// Compute builds the full stats payload from the durable participant set.
// Everything is recomputed per call; nothing is cached.
func Compute(participants []models.Participant) models.StatsResponse {
	decisions := Flatten(participants)
	return models.StatsResponse{
		Hist5:            Histogram(decisions, 5),
		Hist10:           Histogram(decisions, 10),
		Hist20:           Histogram(decisions, 20),
		AvgByGender:      GroupAverages(decisions, func(d models.Decision) string { return d.Gender }),
		AvgByAge:         GroupAverages(decisions, func(d models.Decision) string { return AgeBucket(d.Age) }),
		AvgByRace:        GroupAverages(decisions, func(d models.Decision) string { return d.Race }),
		NamesByBin10:     NamesByBin(decisions),
		DecisionCount:    len(decisions),
		ParticipantCount: len(participants),
	}
}
