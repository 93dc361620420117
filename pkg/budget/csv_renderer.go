package budget

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/centavo/centavo/pkg/money"
	log "github.com/sirupsen/logrus"
)

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

// RenderStatus writes one row per category, indented by depth, plus a SUM
// row over the roots. Child figures are already contained in their parents,
// so only root figures go into the SUM.
func (t *CsvRendererImpl) RenderStatus(statuses []CategoryStatus) (string, error) {
	data := make([][]string, 0, len(statuses)+2)
	data = append(data, []string{"Category", "Spent", "Limit", "Percentage", "Status"})

	var totalSpent, totalLimit money.Cents
	for _, s := range statuses {
		data = append(data, []string{
			strings.Repeat("  ", s.Depth) + s.Name,
			s.Spent.String(),
			s.Limit.String(),
			strconv.FormatFloat(s.Percentage, 'f', 1, 64) + "%",
			string(s.Status),
		})
		if s.Depth == 0 {
			totalSpent += s.Spent
			totalLimit += s.Limit
		}
	}
	data = append(data, []string{"SUM", totalSpent.String(), totalLimit.String(), "", ""})

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
