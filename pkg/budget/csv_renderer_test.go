package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvRendererImpl_RenderStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []CategoryStatus
		want     string
	}{
		{
			name: "renders a tree with an indented child and a SUM of the roots",
			statuses: []CategoryStatus{
				{CategoryId: 1, Name: "Living", Spent: 35000, Limit: 80000, Percentage: 43.75, Status: StatusNormal, Depth: 0, HasChildren: true},
				{CategoryId: 2, Name: "Food", Spent: 25000, Limit: 50000, Percentage: 50, Status: StatusNormal, Depth: 1},
				{CategoryId: 3, Name: "Transport", Spent: 10000, Limit: 30000, Percentage: 33.3, Status: StatusNormal, Depth: 1},
				{CategoryId: 4, Name: "Fun", Spent: 28000, Limit: 30000, Percentage: 93.3, Status: StatusCritical, Depth: 0},
			},
			want: "Category,Spent,Limit,Percentage,Status\n" +
				"Living,350.00,800.00,43.8%,NORMAL\n" +
				"  Food,250.00,500.00,50.0%,NORMAL\n" +
				"  Transport,100.00,300.00,33.3%,NORMAL\n" +
				"Fun,280.00,300.00,93.3%,CRITICAL\n" +
				"SUM,630.00,1100.00,,\n",
		},
		{
			name:     "renders an empty report",
			statuses: nil,
			want: "Category,Spent,Limit,Percentage,Status\n" +
				"SUM,0.00,0.00,,\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := NewCsvRenderer()

			got, err := renderer.RenderStatus(tt.statuses)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
