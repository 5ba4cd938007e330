package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndFormatDate(t *testing.T) {
	got, err := ParseDate(" 2024-03-01 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", FormatDate(got))

	_, err = ParseDate("01/03/2024")
	assert.Error(t, err)
}

func TestUTCDateCrossesMidnight(t *testing.T) {
	bucharest := time.FixedZone("EET", 2*60*60)
	local := time.Date(2024, 3, 2, 1, 30, 0, 0, bucharest)
	assert.Equal(t, "2024-03-01", UTCDate(local))
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange("", ""))
	assert.NoError(t, ValidateRange("2024-03-01", ""))
	assert.NoError(t, ValidateRange("2024-03-01", "2024-03-01"))
	assert.Error(t, ValidateRange("2024-13-01", ""))
	assert.Error(t, ValidateRange("", "tomorrow"))
	assert.Error(t, ValidateRange("2024-03-02", "2024-03-01"))
}
