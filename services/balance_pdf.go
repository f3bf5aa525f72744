package services

import (
	"bytes"
	"fmt"

	"github.com/Barfer-herni/raw-barfer-sub000/models"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// GenerateBalancePDF renders the balance sheet as a downloadable PDF.
func GenerateBalancePDF(sheet *models.BalanceSheet, periodLabel string) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("BALANCE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("BARFER", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(periodLabel, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	headers := []string{"Month", "Revenue", "Expenses", "Net", "Orders"}
	contents := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		contents = append(contents, []string{
			row.Month,
			fmt.Sprintf("$%.2f", row.Revenue),
			fmt.Sprintf("$%.2f", row.Expenses),
			fmt.Sprintf("$%.2f", row.Net),
			fmt.Sprintf("%d", row.OrderCount),
		})
	}

	m.TableList(headers, contents, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      9,
			Style:     consts.Bold,
			GridSizes: []uint{3, 3, 3, 2, 1},
		},
		ContentProp: props.TableListContent{
			Size:      8,
			GridSizes: []uint{3, 3, 3, 2, 1},
		},
		Align:              consts.Left,
		HeaderContentSpace: 2,
		Line:               true,
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("TOTAL NET", props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("$%.2f", sheet.TotalNet), props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
