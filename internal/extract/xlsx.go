package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// readXLSX renders a preview of the first worksheet: up to maxTabularRows
// rows, cells joined by commas. Shared strings are resolved; everything
// else is shown as the stored value.
func readXLSX(_ context.Context, path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open xlsx archive: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	shared, err := sharedStrings(&reader.Reader)
	if err != nil {
		return "", err
	}

	sheetName := firstSheetName(&reader.Reader)
	if sheetName == "" {
		return "", fmt.Errorf("xlsx has no worksheets")
	}
	content, err := zipFileContent(&reader.Reader, sheetName)
	if err != nil {
		return "", err
	}

	var sheet xlsxWorksheet
	if err := xml.Unmarshal(content, &sheet); err != nil {
		return "", fmt.Errorf("parse %s: %w", sheetName, err)
	}

	var rows []string
	for _, row := range sheet.Rows {
		if len(rows) >= maxTabularRows {
			break
		}
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, cell.value(shared))
		}
		rows = append(rows, strings.Join(cells, ", "))
	}
	return strings.Join(rows, "\n"), nil
}

// firstSheetName returns the archive path of the lowest-numbered
// worksheet.
func firstSheetName(reader *zip.Reader) string {
	var names []string
	for _, file := range reader.File {
		if strings.HasPrefix(file.Name, "xl/worksheets/sheet") && strings.HasSuffix(file.Name, ".xml") {
			names = append(names, file.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return names[0]
}

func sharedStrings(reader *zip.Reader) ([]string, error) {
	content, err := zipFileContent(reader, "xl/sharedStrings.xml")
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var sst xlsxSharedStrings
	if err := xml.Unmarshal(content, &sst); err != nil {
		return nil, fmt.Errorf("parse sharedStrings.xml: %w", err)
	}

	out := make([]string, len(sst.Items))
	for i, item := range sst.Items {
		if item.Text != "" {
			out[i] = item.Text
			continue
		}
		// Rich-text strings split the value across runs.
		var b strings.Builder
		for _, run := range item.Runs {
			b.WriteString(run.Text)
		}
		out[i] = b.String()
	}
	return out, nil
}

type xlsxSharedStrings struct {
	Items []struct {
		Text string `xml:"t"`
		Runs []struct {
			Text string `xml:"t"`
		} `xml:"r"`
	} `xml:"si"`
}

type xlsxWorksheet struct {
	Rows []struct {
		Cells []xlsxCell `xml:"c"`
	} `xml:"sheetData>row"`
}

type xlsxCell struct {
	Type  string `xml:"t,attr"`
	Value string `xml:"v"`
	// Inline strings live under is>t instead of v.
	Inline string `xml:"is>t"`
}

func (c xlsxCell) value(shared []string) string {
	switch c.Type {
	case "s":
		idx, err := strconv.Atoi(c.Value)
		if err == nil && idx >= 0 && idx < len(shared) {
			return shared[idx]
		}
		return c.Value
	case "inlineStr":
		return c.Inline
	default:
		return c.Value
	}
}
