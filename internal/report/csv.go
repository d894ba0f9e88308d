package report

import (
	"fmt"
	"strconv"
	"strings"

	"worklog-tracker/internal/models"
)

// GroupsCSV renders aggregation results as header-plus-rows CSV. String
// fields are quoted with internal quotes doubled; numeric fields stay raw.
func GroupsCSV(groups []GroupSummary, total float64) string {
	var b strings.Builder
	b.WriteString("name,hours,count,percentage\n")

	for _, g := range groups {
		b.WriteString(quote(g.Name))
		b.WriteByte(',')
		b.WriteString(formatHours(g.Hours))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(g.Count))
		b.WriteByte(',')
		b.WriteString(quote(fmt.Sprintf("%.1f%%", g.Percentage)))
		b.WriteByte('\n')
	}

	b.WriteString(quote("Total"))
	b.WriteByte(',')
	b.WriteString(formatHours(total))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(countOf(groups)))
	b.WriteByte(',')
	b.WriteString(quote("100.0%"))
	b.WriteByte('\n')

	return b.String()
}

// DetailsCSV renders a filtered work log listing as CSV, one row per entry
// with reference names resolved and the display duration.
func DetailsCSV(details []models.WorkLogDetail) string {
	var b strings.Builder
	b.WriteString("work_date,user,department,customer,project,category,start_time,end_time,duration,status,work_details\n")

	for i := range details {
		d := &details[i]
		fields := []string{
			d.WorkDate,
			nameOf(d.User != nil, func() string { return d.User.Name }),
			nameOf(d.Department != nil, func() string { return d.Department.Name }),
			nameOf(d.Customer != nil, func() string { return d.Customer.Name }),
			projectName(d),
			nameOf(d.WorkCategory != nil, func() string { return d.WorkCategory.Name }),
			d.StartTime,
			deref(d.EndTime),
			FormatDuration(d.StartTime, d.EndTime),
			d.WorkStatus,
			d.WorkDetails,
		}
		for j, f := range fields {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(f))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatHours prints hours the shortest way, "5" rather than "5.000000".
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func countOf(groups []GroupSummary) int {
	n := 0
	for _, g := range groups {
		n += g.Count
	}
	return n
}

func nameOf(ok bool, name func() string) string {
	if !ok {
		return ""
	}
	return name()
}

func projectName(d *models.WorkLogDetail) string {
	if d.Project != nil {
		return d.Project.Name
	}
	return deref(d.ProjectNameInput)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
