package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(tableID int) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(tableID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/order.html?table_id=%d", g.BaseURL, tableID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
