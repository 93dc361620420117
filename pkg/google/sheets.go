package google

import (
	"context"
	"fmt"
	"time"

	"github.com/centavo/centavo/pkg/budget"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/sheets/v4"
)

// BudgetSheet wraps a Sheets client for writing budget reports into a fresh
// spreadsheet on the user's Drive.
type BudgetSheet struct {
	service *sheets.Service
	userId  int
}

func newBudgetSheet(service *sheets.Service, userId int) *BudgetSheet {
	return &BudgetSheet{service: service, userId: userId}
}

// WriteReport creates a spreadsheet titled after the period and fills it
// with one row per category. It returns the spreadsheet URL.
func (b *BudgetSheet) WriteReport(ctx context.Context, from, to time.Time, statuses []budget.CategoryStatus) (string, error) {
	title := fmt.Sprintf("Budget %s - %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	spreadsheet, err := b.service.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("unable to create spreadsheet: %v", err)
		log.Error(err)
		return "", err
	}

	values := make([][]interface{}, 0, len(statuses)+1)
	values = append(values, []interface{}{"Category", "Spent", "Limit", "Percentage", "Status"})
	for _, s := range statuses {
		values = append(values, []interface{}{
			s.Name,
			s.Spent.Float(),
			s.Limit.Float(),
			s.Percentage,
			string(s.Status),
		})
	}

	valueRange := &sheets.ValueRange{Values: values}
	_, err = b.service.Spreadsheets.Values.Update(spreadsheet.SpreadsheetId, "A1", valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		err := fmt.Errorf("unable to write budget report to spreadsheet: %v", err)
		log.Error(err)
		return "", err
	}

	log.Infof("budget report for user %d exported to spreadsheet %s", b.userId, spreadsheet.SpreadsheetId)
	return spreadsheet.SpreadsheetUrl, nil
}
