package cas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/cas-parser/dto"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		issuer   string
		casType  dto.CASType
		strategy FormatStrategy
		wantErr  error
	}{
		{
			name:     "CAMS detailed statement",
			text:     "CAMS - Consolidated Account Statement\nStatement for the period from 01-Apr-2024 to 31-Mar-2025",
			issuer:   IssuerCAMS,
			casType:  dto.CASTypeFull,
			strategy: fullStrategy{},
		},
		{
			name:     "CAMS summary",
			text:     "Computer Age Management Services Limited\nConsolidated Account Summary",
			issuer:   IssuerCAMS,
			casType:  dto.CASTypeSummary,
			strategy: summaryStrategy{},
		},
		{
			name:     "KFintech detailed statement",
			text:     "KFin Technologies Limited\nConsolidated Account Statement",
			issuer:   IssuerKFintech,
			casType:  dto.CASTypeFull,
			strategy: fullStrategy{},
		},
		{
			name:    "empty text",
			text:    " \n ",
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "unknown issuer",
			text:    "HSBC UK Bank plc\nConsolidated Account Statement",
			wantErr: ErrUnrecognizedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Classify(tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.issuer, c.Issuer)
			assert.Equal(t, tt.casType, c.CASType)
			assert.IsType(t, tt.strategy, c.Strategy)
		})
	}
}
