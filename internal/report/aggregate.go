package report

import (
	"math"
	"sort"
	"strconv"

	"worklog-tracker/internal/models"
)

// Dimension selects the field aggregation groups by.
type Dimension string

const (
	DimensionCustomer Dimension = "customer"
	DimensionProject  Dimension = "project"
	DimensionCategory Dimension = "category"
	DimensionUser     Dimension = "user"
	DimensionDate     Dimension = "date"
)

// ParseDimension maps a query-parameter value to a Dimension. Unknown values
// fall back to customer, the default of the aggregation page.
func ParseDimension(s string) Dimension {
	switch Dimension(s) {
	case DimensionCustomer, DimensionProject, DimensionCategory, DimensionUser, DimensionDate:
		return Dimension(s)
	default:
		return DimensionCustomer
	}
}

// GroupSummary is one row of an aggregation result.
type GroupSummary struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Hours      float64 `json:"hours"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Aggregate groups the records by the given dimension and returns per-group
// summaries sorted by descending hours, plus the total hours across all
// records. Entries without an end time contribute zero hours but still count.
// Ties keep first-encounter order; an empty input yields an empty list and a
// zero total, not an error.
func Aggregate(logs []models.WorkLogDetail, dim Dimension) ([]GroupSummary, float64) {
	groups := []GroupSummary{}
	if len(logs) == 0 {
		return groups, 0
	}

	var total float64
	index := make(map[string]int)

	for i := range logs {
		log := &logs[i]

		hours, known := Hours(&log.WorkLog)
		if !known {
			hours = 0
		}
		total += hours

		key, name := groupKey(log, dim)

		if at, ok := index[key]; ok {
			groups[at].Hours += hours
			groups[at].Count++
			continue
		}
		index[key] = len(groups)
		groups = append(groups, GroupSummary{
			Key:   key,
			Name:  name,
			Hours: hours,
			Count: 1,
		})
	}

	for i := range groups {
		if total > 0 {
			groups[i].Percentage = round1(groups[i].Hours / total * 100)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Hours > groups[j].Hours
	})

	return groups, total
}

// groupKey resolves the grouping key and display name of one record. A record
// whose key comes out empty lands in a single synthetic "Unclassified" bucket
// regardless of dimension.
func groupKey(log *models.WorkLogDetail, dim Dimension) (string, string) {
	var key, name string

	switch dim {
	case DimensionCustomer:
		if log.Customer != nil {
			key = strconv.FormatUint(uint64(log.Customer.ID), 10)
			name = log.Customer.Name
		}
		if name == "" {
			name = "Unknown"
		}
	case DimensionProject:
		if log.Project != nil {
			key = strconv.FormatUint(uint64(log.Project.ID), 10)
			name = log.Project.Name
		} else if log.ProjectNameInput != nil {
			key = *log.ProjectNameInput
			name = *log.ProjectNameInput
		}
		if name == "" {
			name = "Unspecified"
		}
	case DimensionCategory:
		if log.WorkCategory != nil {
			key = strconv.FormatUint(uint64(log.WorkCategory.ID), 10)
			name = log.WorkCategory.Name
		}
		if name == "" {
			name = "Uncategorized"
		}
	case DimensionUser:
		if log.User != nil {
			key = strconv.FormatUint(uint64(log.User.ID), 10)
			name = log.User.Name
		}
		if name == "" {
			name = "Unknown"
		}
	case DimensionDate:
		key = log.WorkDate
		name = log.WorkDate
	default:
		name = "Unknown"
	}

	if key == "" {
		return "unknown", "Unclassified"
	}
	return key, name
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
