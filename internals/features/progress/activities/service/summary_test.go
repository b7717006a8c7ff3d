package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kdm_backend/internals/features/progress/activities/model"
)

func activity(name string, flags model.ActivityFlags) model.ActivityModel {
	return model.ActivityModel{
		ActivityStudentName: name,
		ActivityFlags:       flags,
	}
}

func TestActivityFlagsCompleted(t *testing.T) {
	assert.Equal(t, 0, model.ActivityFlags{}.Completed())
	assert.Equal(t, 2, model.ActivityFlags{Tilawah: true, QiyamulLail: true}.Completed())
	assert.Equal(t, 6, model.ActivityFlags{
		SubuhBerjamaah: true, DzikirPagi: true, Tilawah: true,
		SholatDhuha: true, PuasaSunnah: true, QiyamulLail: true,
	}.Completed())
}

func TestSummarizeActivities(t *testing.T) {
	records := []model.ActivityModel{
		activity("Ahmad", model.ActivityFlags{Tilawah: true, SubuhBerjamaah: true}),
		activity("Budi", model.ActivityFlags{Tilawah: true}),
	}

	got := SummarizeActivities(records)

	assert.Len(t, got, len(model.AllActivities))
	byName := map[string]ActivitySummary{}
	for _, s := range got {
		byName[s.Activity] = s
	}
	assert.Equal(t, 2, byName[model.ActivityTilawah].DoneCount)
	assert.Equal(t, 1, byName[model.ActivitySubuhBerjamaah].DoneCount)
	assert.Equal(t, 0, byName[model.ActivityPuasaSunnah].DoneCount)
	assert.Equal(t, 2, byName[model.ActivityTilawah].Total)
}

func TestTopByActivity(t *testing.T) {
	records := []model.ActivityModel{
		activity("Ahmad", model.ActivityFlags{Tilawah: true}),
		activity("Ahmad", model.ActivityFlags{Tilawah: true}),
		activity("Budi", model.ActivityFlags{Tilawah: true}),
		activity("Citra", model.ActivityFlags{DzikirPagi: true}), // amalan lain
	}

	got := TopByActivity(records, model.ActivityTilawah)

	assert.Len(t, got, 2)
	assert.Equal(t, "Ahmad", got[0].StudentName)
	assert.Equal(t, 2, got[0].DoneCount)
	assert.Equal(t, "Budi", got[1].StudentName)
}

func TestTopOverall(t *testing.T) {
	records := []model.ActivityModel{
		activity("Ahmad", model.ActivityFlags{Tilawah: true, DzikirPagi: true}),
		activity("Budi", model.ActivityFlags{Tilawah: true}),
		activity("Citra", model.ActivityFlags{}),
		activity("Dina", model.ActivityFlags{SubuhBerjamaah: true, SholatDhuha: true, QiyamulLail: true}),
		activity("Eka", model.ActivityFlags{PuasaSunnah: true}),
	}

	got := TopOverall(records)

	// santri tanpa centang tidak masuk; maksimum 3 teratas
	assert.Len(t, got, 3)
	assert.Equal(t, "Dina", got[0].StudentName)
	assert.Equal(t, 3, got[0].DoneCount)
	assert.Equal(t, "Ahmad", got[1].StudentName)
}
