package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMetrics_Percentages(t *testing.T) {
	got := ExtractMetrics("Improved performance by 30% and increased revenue by 50%")

	assert.Equal(t, []string{"30%", "50%"}, got)
}

func TestExtractMetrics_MoneyMagnitudes(t *testing.T) {
	got := ExtractMetrics("Managed a $2 million budget and saved $300k annually")

	assert.Contains(t, got, "$2 million")
	assert.Contains(t, got, "$300k")
}

func TestExtractMetrics_ScaleCounts(t *testing.T) {
	got := ExtractMetrics("Platform serving 50,000 users across 12 projects")

	assert.Contains(t, got, "50,000 users")
	assert.Contains(t, got, "12 projects")
}

func TestExtractMetrics_ExactDuplicatesRemoved(t *testing.T) {
	got := ExtractMetrics("Cut latency 30%. Later cut costs 30% as well.")

	assert.Equal(t, []string{"30%"}, got)
}

func TestExtractMetrics_DecimalPercentage(t *testing.T) {
	got := ExtractMetrics("Raised conversion by 2.5%")

	assert.Equal(t, []string{"2.5%"}, got)
}

func TestExtractMetrics_NoMetrics(t *testing.T) {
	assert.Empty(t, ExtractMetrics("Responsible for maintaining internal tooling."))
}
