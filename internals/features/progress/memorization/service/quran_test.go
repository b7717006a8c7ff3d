package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJuzList(t *testing.T) {
	juz := JuzList()
	require.Len(t, juz, 30)

	assert.Equal(t, JuzInfo{Juz: 1, PageFrom: 1, PageTo: 21}, juz[0])
	assert.Equal(t, JuzInfo{Juz: 2, PageFrom: 22, PageTo: 41}, juz[1])
	assert.Equal(t, JuzInfo{Juz: 30, PageFrom: 582, PageTo: 604}, juz[29])

	// rentang halaman tidak boleh saling tumpang tindih
	for i := 1; i < len(juz); i++ {
		assert.Equal(t, juz[i-1].PageTo+1, juz[i].PageFrom, "juz %d", juz[i].Juz)
	}
}

func TestSurahList(t *testing.T) {
	surahs := SurahList()
	require.Len(t, surahs, 114)
	assert.Equal(t, "Al-Fatihah", surahs[0].Name)
	assert.Equal(t, 7, surahs[0].AyahCount)
	assert.Equal(t, "An-Nas", surahs[113].Name)
	assert.Equal(t, 6, surahs[113].AyahCount)
}

func TestSurahByName(t *testing.T) {
	info, ok := SurahByName("Al-Baqarah")
	require.True(t, ok)
	assert.Equal(t, 286, info.AyahCount)

	_, ok = SurahByName("Surah Tidak Ada")
	assert.False(t, ok)
}
