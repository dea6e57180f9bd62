package proposal

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages_Catalog(t *testing.T) {
	want := []string{
		"Are you sure?",
		"Really sure??",
		"Are you positive?",
		"Pookie please...",
		"Just think about it!",
		"If you say no, I will be really sad...",
		"I will be very sad...",
		"I will be very very very sad...",
		"Ok fine, I will stop asking...",
		"Just kidding, say yes please! ❤️",
	}
	require.Equal(t, 10, MessageCount)
	if diff := cmp.Diff(want, Messages()); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestMessages_ReturnsCopy(t *testing.T) {
	got := Messages()
	got[0] = "changed"
	assert.Equal(t, "Are you sure?", Messages()[0])
	assert.Equal(t, "Are you sure?", LabelFor(1))
}

func TestLabelFor_Zero(t *testing.T) {
	assert.Equal(t, "No", LabelFor(0))
}

func TestLabelFor_Cycles(t *testing.T) {
	catalog := Messages()
	for n := 1; n <= 1000; n++ {
		got := LabelFor(n)
		require.Equal(t, catalog[(n-1)%len(catalog)], got, "clicks=%d", n)
		require.Contains(t, catalog, got)
	}
}

func TestLabelFor_WrapsToFirst(t *testing.T) {
	for cycle := 0; cycle <= 100; cycle++ {
		assert.Equal(t, "Are you sure?", LabelFor(cycle*MessageCount+1), "cycle=%d", cycle)
	}
}

func TestLabelFor_NegativeIsInitial(t *testing.T) {
	assert.Equal(t, InitialLabel, LabelFor(-3))
}

func TestSizeFor_Initial(t *testing.T) {
	assert.Equal(t, 1.5, SizeFor(0))
	assert.Equal(t, 2.25, SizeFor(1))
}

func TestSizeFor_RatioIsGrowthFactor(t *testing.T) {
	for n := 0; n < 50; n++ {
		ratio := SizeFor(n+1) / SizeFor(n)
		assert.InDelta(t, 1.5, ratio, 1e-10, "n=%d", n)
		assert.Greater(t, SizeFor(n+1), SizeFor(n))
	}
}

func TestSizeFor_ClosedForm(t *testing.T) {
	for n := 0; n <= 50; n++ {
		want := 1.5 * math.Pow(1.5, float64(n))
		assert.InEpsilon(t, want, SizeFor(n), 1e-6, "n=%d", n)
	}
}

func TestSizeFor_Unclamped(t *testing.T) {
	assert.True(t, math.IsInf(SizeFor(5000), 1))
}

func TestFormatEm(t *testing.T) {
	tests := []struct {
		size float64
		want string
	}{
		{1.5, "1.5em"},
		{2.25, "2.25em"},
		{3.375, "3.375em"},
		{SizeFor(3), "5.0625em"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatEm(tt.size))
	}
}

func TestFormatEm_Exponent(t *testing.T) {
	assert.Equal(t, "1e+21em", FormatEm(1e21))
	assert.Equal(t, "999999999999999900000em", FormatEm(999999999999999900000))

	assert.NotContains(t, FormatEm(SizeFor(118)), "e+")
	assert.Equal(t, "1.3519202917880824e+21em", FormatEm(SizeFor(119)))
	assert.Equal(t, "Infinityem", FormatEm(SizeFor(5000)))
}

func TestHome_Transitions(t *testing.T) {
	var h Home
	assert.Equal(t, 0, h.Clicks())
	assert.Equal(t, "No", h.Label())
	assert.Equal(t, "1.5em", h.FontSizeCSS())

	h.NoClick()
	assert.Equal(t, 1, h.Clicks())
	assert.Equal(t, "Are you sure?", h.Label())
	assert.Equal(t, "2.25em", h.FontSizeCSS())

	assert.Equal(t, "/yes", h.YesClick())
	assert.Equal(t, 1, h.Clicks(), "YesClick must not change the counter")
}

func TestRestore(t *testing.T) {
	assert.Equal(t, 12, Restore(12).Clicks())
	assert.Equal(t, "Really sure??", Restore(12).Label())
	assert.Equal(t, 0, Restore(-1).Clicks())
}
