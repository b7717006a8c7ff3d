// file: internals/features/progress/activities/service/summary.go
package service

import (
	"sort"

	"kdm_backend/internals/features/progress/activities/model"
)

// ActivitySummary = rekap satu amalan di seluruh catatan yang diberikan
type ActivitySummary struct {
	Activity  string `json:"activity"`
	DoneCount int    `json:"done_count"`
	Total     int    `json:"total"`
}

// SummarizeActivities menghitung berapa kali tiap amalan tercentang
// di sekumpulan catatan harian.
func SummarizeActivities(records []model.ActivityModel) []ActivitySummary {
	summaries := make([]ActivitySummary, 0, len(model.AllActivities))
	for _, activity := range model.AllActivities {
		done := 0
		for _, rec := range records {
			if rec.ActivityFlags.Done(activity) {
				done++
			}
		}
		summaries = append(summaries, ActivitySummary{
			Activity:  activity,
			DoneCount: done,
			Total:     len(records),
		})
	}
	return summaries
}

// LeaderEntry = posisi santri di papan amalan
type LeaderEntry struct {
	StudentName string `json:"student_name"`
	DoneCount   int    `json:"done_count"`
}

// TopByActivity mengambil 3 santri terbanyak untuk satu amalan tertentu.
func TopByActivity(records []model.ActivityModel, activity string) []LeaderEntry {
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.ActivityFlags.Done(activity) {
			counts[rec.ActivityStudentName]++
		}
	}
	return rankCounts(counts)
}

// TopOverall mengambil 3 santri dengan total centang amalan terbanyak.
func TopOverall(records []model.ActivityModel) []LeaderEntry {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.ActivityStudentName] += rec.ActivityFlags.Completed()
	}
	return rankCounts(counts)
}

func rankCounts(counts map[string]int) []LeaderEntry {
	entries := make([]LeaderEntry, 0, len(counts))
	for name, count := range counts {
		if count == 0 {
			continue
		}
		entries = append(entries, LeaderEntry{StudentName: name, DoneCount: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DoneCount != entries[j].DoneCount {
			return entries[i].DoneCount > entries[j].DoneCount
		}
		return entries[i].StudentName < entries[j].StudentName
	})
	if len(entries) > 3 {
		entries = entries[:3]
	}
	return entries
}
