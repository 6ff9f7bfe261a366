package utils

import (
	"bytes"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"
)

// BuildQRSheet produces the factory label sheet for a batch of generated
// codes: one row per code with the QR image embedded next to it.
func BuildQRSheet(codes []string, typeName string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "QR Code ID")
	f.SetCellValue(sheet, "B1", "Product Type")
	f.SetCellValue(sheet, "C1", "QR Image")
	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "C", "C", 18)

	for i, code := range codes {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), code)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), typeName)

		png, err := qrcode.Encode(code, qrcode.Medium, 96)
		if err != nil {
			return nil, err
		}
		f.SetRowHeight(sheet, row, 80)
		if err := f.AddPictureFromBytes(sheet, fmt.Sprintf("C%d", row), &excelize.Picture{
			Extension: ".png",
			File:      png,
			Format:    &excelize.GraphicOptions{AutoFit: true},
		}); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
