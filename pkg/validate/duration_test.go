package validate

import (
	"testing"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "Seconds", input: "30s", want: 30 * time.Second},
		{name: "Minutes", input: "15m", want: 15 * time.Minute},
		{name: "Hours", input: "2h", want: 2 * time.Hour},
		{name: "Days", input: "7d", want: 7 * 24 * time.Hour},
		{name: "UppercaseUnit", input: "5M", want: 5 * time.Minute},
		{name: "Empty", input: "", wantErr: true},
		{name: "NoDigits", input: "h", wantErr: true},
		{name: "UnknownUnit", input: "10w", wantErr: true},
		{name: "Zero", input: "0h", wantErr: true},
		{name: "Negative", input: "-5m", wantErr: true},
		{name: "NotANumber", input: "abch", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidFormat)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
