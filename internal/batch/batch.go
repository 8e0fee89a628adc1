// Package batch evaluates V_Rd,max for every row of an xlsx workbook.
//
// Expected columns, one case per row after a header row:
//
//	bw | d | fck | fyk | fywk | theta | alpha_cw (optional) | gamma_c (optional)
//
// Rows that fail to parse or to evaluate are skipped and counted, so one bad
// case never aborts the run.
package batch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mbruyneel/goec2/internal/shear"
	"github.com/mbruyneel/goec2/internal/units"
)

// Item is one successfully evaluated row.
type Item struct {
	Row    int // 1-based worksheet row
	Result *shear.VRdMaxResult
}

// Summary holds the outcome of a batch run.
type Summary struct {
	Units   units.System
	Items   []Item
	Skipped int
}

// EvaluateWorkbook reads the first sheet of the workbook at path and runs a
// V_Rd,max check per data row. All rows share one unit system.
func EvaluateWorkbook(path string, sys units.System) (*Summary, error) {
	if _, err := units.Parse(string(sys)); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	sum := &Summary{Units: sys}
	for i := 1; i < len(rows); i++ {
		in, err := parseRow(rows[i], sys)
		if err != nil {
			sum.Skipped++
			continue
		}
		res, err := shear.VRdMaxDetailed(in)
		if err != nil {
			sum.Skipped++
			continue
		}
		sum.Items = append(sum.Items, Item{Row: i + 1, Result: res})
	}
	return sum, nil
}

func parseRow(row []string, sys units.System) (shear.VRdMaxInput, error) {
	if len(row) < 6 {
		return shear.VRdMaxInput{}, fmt.Errorf("row has %d columns, want at least 6", len(row))
	}
	vals := make([]float64, 6)
	for i := 0; i < 6; i++ {
		v, err := toFloat(row[i])
		if err != nil {
			return shear.VRdMaxInput{}, err
		}
		vals[i] = v
	}
	in := shear.VRdMaxInput{
		Bw:    vals[0],
		D:     vals[1],
		Fck:   vals[2],
		Fyk:   vals[3],
		Fywk:  vals[4],
		Theta: vals[5],
		Units: sys,
	}
	if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
		if v, err := toFloat(row[6]); err == nil {
			in.AlphaCW = v
		}
	}
	if len(row) > 7 && strings.TrimSpace(row[7]) != "" {
		if v, err := toFloat(row[7]); err == nil {
			in.GammaC = v
		}
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// WriteResults writes the batch outcome as a new workbook: the source row,
// the echoed inputs and the resistance with its governing sub-terms.
func WriteResults(sum *Summary, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []interface{}{
		"row",
		"bw (" + sum.Units.LengthUnit() + ")",
		"d (" + sum.Units.LengthUnit() + ")",
		"fck (" + sum.Units.StressUnit() + ")",
		"fyk (" + sum.Units.StressUnit() + ")",
		"fywk (" + sum.Units.StressUnit() + ")",
		"theta (" + sum.Units.AngleUnit() + ")",
		"z (" + sum.Units.LengthUnit() + ")",
		"fcd (" + sum.Units.StressUnit() + ")",
		"nu1",
		"VRd,max (" + sum.Units.ForceUnit() + ")",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, item := range sum.Items {
		r := item.Result
		row := []interface{}{
			item.Row,
			r.Bw, r.D, r.Fck, r.Fyk, r.Fywk, r.Theta,
			r.Z, r.Fcd, r.Nu1, r.Value,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
