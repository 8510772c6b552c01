package roulette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtWheel(t *testing.T) *Wheel {
	t.Helper()
	w, err := NewBuiltWheel()
	require.NoError(t, err)
	return w
}

func binAt(t *testing.T, w *Wheel, position int) *Bin {
	t.Helper()
	b, err := w.Bin(position)
	require.NoError(t, err)
	return b
}

func TestStraightBets(t *testing.T) {
	w := builtWheel(t)

	for n := 1; n <= 36; n++ {
		o, ok := binAt(t, w, n).Find(StraightName(n))
		require.True(t, ok, "number %d", n)
		assert.Equal(t, 35, o.Odds())
		assert.Equal(t, []int{n}, w.Positions(o))
	}
}

func TestEveryBinIsNotEmpty(t *testing.T) {
	w := builtWheel(t)

	for position := 0; position < BinCount; position++ {
		assert.Positive(t, binAt(t, w, position).Len(), "position %d", position)
	}
}

func TestBinSizes(t *testing.T) {
	w := builtWheel(t)

	cases := []struct {
		position int
		want     int
	}{
		{position: ZeroPosition, want: 1},
		{position: DoubleZeroPosition, want: 1},
		// straight, 2 сплита, стрит, угол, линия, колонка, дюжина, 3 ставки 1:1
		{position: 1, want: 11},
		{position: 3, want: 11},
		// 4 сплита, 4 угла, 2 линии
		{position: 5, want: 17},
		{position: 36, want: 11},
		{position: 35, want: 13},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, binAt(t, w, tc.position).Len(), "position %d", tc.position)
	}
}

func TestOutcomeCatalogue(t *testing.T) {
	w := builtWheel(t)

	// 36 straight + 57 split + 12 street + 22 corner + 11 line + 3 column + 3 dozen + 6 even money + 0 + 00
	assert.Len(t, w.Outcomes(), 152)
}

func TestSplitNamesAreShared(t *testing.T) {
	w := builtWheel(t)

	assert.Equal(t, SplitName(2, 5), SplitName(5, 2))
	assert.Equal(t, "{1 - 2}", SplitName(2, 1))

	cases := []struct {
		a, b int
	}{
		{1, 2}, {2, 3}, {1, 4}, {2, 5}, {32, 35}, {35, 36}, {33, 36},
	}
	for _, tc := range cases {
		o := NewOutcome(SplitName(tc.b, tc.a), 17)
		assert.Equal(t, []int{tc.a, tc.b}, w.Positions(o), "split %d-%d", tc.a, tc.b)
	}

	// Горизонтальный сплит 2-3 не должен подменяться сплитом 1-2
	assert.False(t, binAt(t, w, 3).Contains(NewOutcome(SplitName(1, 2), 17)))
}

func TestStreetCornerLineCoverage(t *testing.T) {
	w := builtWheel(t)

	assert.Equal(t, []int{4, 5, 6}, w.Positions(NewOutcome(StreetName(1), 11)))
	assert.Equal(t, []int{34, 35, 36}, w.Positions(NewOutcome(StreetName(11), 11)))
	assert.Equal(t, []int{2, 3, 5, 6}, w.Positions(NewOutcome("{2 - 3 - 5 - 6}", 8)))
	assert.Equal(t, []int{31, 32, 33, 34, 35, 36}, w.Positions(NewOutcome("{31 - 32 - 33 - 34 - 35 - 36}", 5)))
}

func TestColumnAndDozenBets(t *testing.T) {
	w := builtWheel(t)

	column2 := w.Positions(NewOutcome(ColumnName(2), 2))
	require.Len(t, column2, 12)
	for _, n := range column2 {
		assert.Equal(t, 2, n%3)
	}

	dozen3 := w.Positions(NewOutcome(DozenName(3), 2))
	require.Len(t, dozen3, 12)
	assert.Equal(t, 25, dozen3[0])
	assert.Equal(t, 36, dozen3[11])

	// Колонка и дюжина не совпадают по имени со straight "1"
	b := binAt(t, w, 1)
	assert.True(t, b.Contains(NewOutcome("1", 35)))
	assert.True(t, b.Contains(NewOutcome(ColumnName(1), 2)))
	assert.True(t, b.Contains(NewOutcome(DozenName(1), 2)))
}

func TestEvenMoneyBets(t *testing.T) {
	w := builtWheel(t)

	assert.Len(t, w.Positions(NewOutcome(Red, 1)), 18)
	assert.Len(t, w.Positions(NewOutcome(Black, 1)), 18)
	assert.Len(t, w.Positions(NewOutcome(Even, 1)), 18)
	assert.Len(t, w.Positions(NewOutcome(Odd, 1)), 18)
	assert.Equal(t, 1, w.Positions(NewOutcome(Low, 1))[0])
	assert.Equal(t, 19, w.Positions(NewOutcome(High, 1))[0])

	for n := 1; n <= 36; n++ {
		b := binAt(t, w, n)
		assert.Equal(t, IsRed(n), b.Contains(NewOutcome(Red, 1)), "number %d", n)
		assert.NotEqual(t, b.Contains(NewOutcome(Red, 1)), b.Contains(NewOutcome(Black, 1)), "number %d", n)
	}

	for _, position := range []int{ZeroPosition, DoubleZeroPosition} {
		b := binAt(t, w, position)
		for _, name := range []string{Red, Black, Even, Odd, Low, High} {
			assert.False(t, b.Contains(NewOutcome(name, 1)), "%s in %d", name, position)
		}
	}
}

func TestZeroBins(t *testing.T) {
	w := builtWheel(t)

	zero := binAt(t, w, ZeroPosition)
	o, ok := zero.Find("0")
	require.True(t, ok)
	assert.Equal(t, 35, o.Odds())
	assert.False(t, zero.Contains(NewOutcome("00", 35)))

	doubleZero := binAt(t, w, DoubleZeroPosition)
	assert.True(t, doubleZero.Contains(NewOutcome("00", 35)))
	assert.False(t, doubleZero.Contains(NewOutcome("0", 35)))
}

func TestBinFive(t *testing.T) {
	w := builtWheel(t)
	b := binAt(t, w, 5)

	want := []string{
		"5",
		DozenName(1),
		ColumnName(2),
		"{2 - 5}", "{4 - 5}", "{5 - 6}", "{5 - 8}",
		"{4 - 5 - 6}",
		"{1 - 2 - 4 - 5}", "{2 - 3 - 5 - 6}", "{4 - 5 - 7 - 8}", "{5 - 6 - 8 - 9}",
		"{1 - 2 - 3 - 4 - 5 - 6}", "{4 - 5 - 6 - 7 - 8 - 9}",
		Low, Odd, Red,
	}
	for _, name := range want {
		_, ok := b.Find(name)
		assert.True(t, ok, "bin 5 must contain %q", name)
	}
	assert.Equal(t, len(want), b.Len())
}

func TestBuildBinsTwiceIsHarmless(t *testing.T) {
	w := builtWheel(t)
	before := len(w.Outcomes())

	require.NoError(t, NewBinBuilder().BuildBins(w))
	assert.Len(t, w.Outcomes(), before)
	assert.Equal(t, 17, binAt(t, w, 5).Len())
}
